package img
import (
	"errors"
	"strings"
	"path/filepath"
)

const (
	PNG = "png"
	BMP = "bmp"
	TIFF = "tiff"
	JPEG = "jpeg"
	GIF = "gif"
	WEBP = "webp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

var extensions = map[string]string{
	"png": PNG,
	"bmp": BMP,
	"tif": TIFF,
	"tiff": TIFF,
	"jpg": JPEG,
	"jpeg": JPEG,
	"gif": GIF,
	"webp": WEBP,
}

// DetermineFormat maps a file extension, with or without the dot, to
// a format name. Unknown extensions give an empty string.
func DetermineFormat( ext string ) string {
	return extensions[ strings.ToLower( strings.TrimPrefix( ext, "." ) ) ]
}

func FormatOf( filename string ) string {
	return DetermineFormat( filepath.Ext( filename ) )
}

// IsLossless reports whether LSBs survive saving in this format.
func IsLossless( format string ) bool {
	return format == PNG || format == BMP || format == TIFF
}

// KeepsAlpha reports whether the encoder writes the alpha channel.
// x/image/bmp writes opaque bitmaps only.
func KeepsAlpha( format string ) bool {
	return format == PNG || format == TIFF
}

// CanHold reports whether saving a grid in format loses nothing.
func CanHold( format string, hasAlpha bool ) bool {
	return IsLossless( format ) && (!hasAlpha || KeepsAlpha( format ))
}

/*
 * OutputPath returns a file name whose format keeps every bit of the
 * grid, alpha included. Names with any other extension get the
 * fallback format instead, and the second result reports the
 * substitution.
 */
func OutputPath( filename, fallback string, hasAlpha bool ) (string, bool) {
	ext := filepath.Ext( filename )
	if CanHold( DetermineFormat( ext ), hasAlpha ) {
		return filename, false
	}
	if !CanHold( fallback, hasAlpha ) {
		fallback = PNG
	}
	return strings.TrimSuffix( filename, ext ) + "." + fallback, true
}
