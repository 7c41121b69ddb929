package img
import (
	"os"
	"io"
	"fmt"
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Sniff guesses the image format from the leading magic bytes.
func Sniff( data []byte ) string {
	switch {
	case bytes.HasPrefix( data, []byte("GIF8") ):
		return GIF
	case bytes.HasPrefix( data, []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a} ):
		return PNG
	case bytes.HasPrefix( data, []byte{0xff, 0xd8, 0xff} ):
		return JPEG
	case bytes.HasPrefix( data, []byte("BM") ):
		return BMP
	case bytes.HasPrefix( data, []byte("II*\x00") ), bytes.HasPrefix( data, []byte("MM\x00*") ):
		return TIFF
	case len(data) >= 12 && bytes.Equal( data[:4], []byte("RIFF") ) && bytes.Equal( data[8:12], []byte("WEBP") ):
		return WEBP
	}
	return ""
}

// Decode reads any registered image format into a grid.
func Decode( r io.Reader ) (*Grid, string, error) {
	m, format, err := image.Decode( r )
	if err != nil {
		return nil, "", err
	}
	return FromImage( m ), format, nil
}

func Load( filename string ) (*Grid, error) {
	f, err := os.Open( filename )
	if err != nil {
		return nil, err
	}
	defer f.Close()

	grid, _, err := Decode( f )
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}
	return grid, nil
}

func Encode( w io.Writer, grid *Grid, format string ) error {
	if IsLossless( format ) && !CanHold( format, grid.HasAlpha ) {
		return fmt.Errorf("%w: %s can't store alpha", ErrUnsupportedFormat, format)
	}
	switch format {
	case PNG:
		return encodePNG( w, grid )
	case BMP:
		return encodeBMP( w, grid )
	case TIFF:
		return encodeTIFF( w, grid )
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Save writes the grid in the lossless format named by the file
// extension. Grids with alpha need a format which stores it.
func Save( grid *Grid, filename string ) error {
	format := FormatOf( filename )
	if !CanHold( format, grid.HasAlpha ) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	f, err := os.OpenFile( filename, os.O_CREATE | os.O_TRUNC | os.O_WRONLY, 0660 )
	if err != nil {
		return err
	}
	if err = Encode( f, grid, format ); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
