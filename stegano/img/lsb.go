package img
import (
	"fmt"
	"bytes"
	"errors"
	"unicode/utf8"

	"imgstegno/stegano/util"
)

const (
	// marks the end of the hidden text
	Terminator = "$$"

	// shown to users when nothing could be extracted
	NoMessage = "no hidden message or unsupported format"
)

var (
	ErrMessageTooLarge = errors.New("message is too large for this image")
	ErrInvalidText = errors.New("message is not valid UTF-8 text")
)

/*
 * Embed hides message followed by the terminator in the least
 * significant bits of R, G and B, row by row. Pixels after the last
 * bit are left untouched. The grid is modified in place.
 */
func Embed( grid *Grid, message string ) error {
	if !utf8.ValidString( message ) {
		return ErrInvalidText
	}
	encoded := util.EncodeToBinary( message + Terminator )
	if capacity := grid.Capacity(); len(encoded) > capacity {
		return fmt.Errorf("%w: %d bits required, %d available",
			ErrMessageTooLarge, len(encoded), capacity)
	}

	pix, stride := grid.pix.Pix, grid.pix.Stride
	width, height := grid.Width(), grid.Height()
	bitIndex := 0
	for y := 0; y < height && bitIndex < len(encoded); y++ {
		for x := 0; x < width && bitIndex < len(encoded); x++ {
			offset := y * stride + x * bytesPerPixel
			for c := 0; c < Channels && bitIndex < len(encoded); c++ {
				pix[ offset + c ] = (pix[ offset + c ] & 0xfe) | encoded[ bitIndex ]
				bitIndex++
			}
		}
	}
	return nil
}

/*
 * Extract reads the bits back in the order Embed wrote them. Decoding
 * stops at the terminator, at the first byte which can't be part of a
 * UTF-8 character, or at the end of the grid. Only the first case
 * reports a message.
 */
func Extract( grid *Grid ) (string, bool) {
	var (
		decoded []byte
		runeStart int
	)
	bits := make( []byte, 0, util.BitsPerByte )
	terminator := []byte(Terminator)

	pix, stride := grid.pix.Pix, grid.pix.Stride
	width, height := grid.Width(), grid.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			offset := y * stride + x * bytesPerPixel
			for c := 0; c < Channels; c++ {
				bits = append( bits, pix[ offset + c ] & 1 )
				if len(bits) < util.BitsPerByte {
					continue
				}
				decoded = append( decoded, util.FromBin( bits ) )
				bits = bits[:0]

				pending := decoded[runeStart:]
				if !utf8.FullRune( pending ) {
					continue
				}
				if r, size := utf8.DecodeRune( pending ); r == utf8.RuneError && size <= 1 {
					return "", false
				}
				runeStart = len(decoded)
				if bytes.HasSuffix( decoded, terminator ) {
					return string(decoded[ : len(decoded) - len(terminator) ]), true
				}
			}
		}
	}
	return "", false
}
