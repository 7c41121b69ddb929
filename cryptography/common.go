package cryptography
import (
	"strings"
)

/*
 * Word substitution "encryption". It hides the text from a casual
 * look only, anyone can rebuild the tables.
 */
func Encrypt( message string, key int ) string {
	if message == "" {
		return ""
	}
	table := NewTable( key )
	tokens := make( []string, 0, len(message) )
	for _, r := range message {
		if w, ok := table.Word( r ); ok {
			tokens = append( tokens, w )
		} else {
			tokens = append( tokens, string(r) )
		}
	}
	return strings.Join( tokens, Delimiter )
}

// Decrypt splits on single spaces, so pass-through whitespace in the
// original message does not survive a round trip.
func Decrypt( ciphertext string, key int ) string {
	table := NewTable( key )
	words := strings.Split( strings.TrimSpace( ciphertext ), Delimiter )

	var sb strings.Builder
	for _, word := range words {
		if r, ok := table.Char( word ); ok {
			sb.WriteRune( r )
		} else {
			sb.WriteString( word )
		}
	}
	return sb.String()
}
