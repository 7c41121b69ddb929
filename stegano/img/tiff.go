package img
import (
	"io"
	"golang.org/x/image/tiff"
)

func encodeTIFF( w io.Writer, grid *Grid ) error {
	return tiff.Encode( w, grid.Image(), &tiff.Options{
		Compression: tiff.Deflate,
	})
}
