package util
import (
	"golang.org/x/text/unicode/norm"
)

// FixUnicode composes the text so the same visible message always
// produces the same bytes.
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}
