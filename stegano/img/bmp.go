package img
import (
	"io"
	"golang.org/x/image/bmp"
)

// alpha is not written, Encode only passes opaque grids here
func encodeBMP( w io.Writer, grid *Grid ) error {
	return bmp.Encode( w, grid.Image() )
}
