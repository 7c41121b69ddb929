package img
import (
	"io"
	"image/png"
)

func encodePNG( w io.Writer, grid *Grid ) error {
	enc := png.Encoder{ CompressionLevel: png.BestCompression }
	return enc.Encode( w, grid.Image() )
}
