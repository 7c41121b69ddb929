package img
import (
	"image"
	"image/color"
)

const (
	// channels carrying hidden bits: R, G and B. Alpha is never touched.
	Channels = 3
	bytesPerPixel = 4
)

/*
 * Grid is an 8 bit RGB or RGBA pixel grid with its origin at (0, 0).
 * Pixels are kept non-premultiplied so every channel value is stored
 * exactly as it is read from or written to a file.
 */
type Grid struct {
	pix		*image.NRGBA
	HasAlpha	bool
}

func NewGrid( width, height int, hasAlpha bool ) *Grid {
	g := &Grid{
		pix: image.NewNRGBA( image.Rect( 0, 0, width, height ) ),
		HasAlpha: hasAlpha,
	}
	for i := 3; i < len(g.pix.Pix); i += bytesPerPixel {
		g.pix.Pix[i] = 0xff
	}
	return g
}

// FromImage copies src into a new grid. Sources with any transparent
// pixel keep their alpha channel, all others become RGB.
func FromImage( src image.Image ) *Grid {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	g := &Grid{
		pix: image.NewNRGBA( image.Rect( 0, 0, width, height ) ),
		HasAlpha: !opaque( src ),
	}

	if nrgba, ok := src.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			from := nrgba.PixOffset( bounds.Min.X, bounds.Min.Y + y )
			copy( g.pix.Pix[ y * g.pix.Stride : y * g.pix.Stride + width * bytesPerPixel ],
				nrgba.Pix[ from : from + width * bytesPerPixel ] )
		}
		return g
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert( src.At( bounds.Min.X + x, bounds.Min.Y + y ) ).(color.NRGBA)
			g.pix.SetNRGBA( x, y, c )
		}
	}
	return g
}

func opaque( src image.Image ) bool {
	if o, ok := src.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	bounds := src.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := src.At( x, y ).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

func(g *Grid) Width() int {
	return g.pix.Rect.Dx()
}

func(g *Grid) Height() int {
	return g.pix.Rect.Dy()
}

func(g *Grid) At( x, y int ) color.NRGBA {
	return g.pix.NRGBAAt( x, y )
}

// Set stores c. The alpha of RGB grids stays opaque.
func(g *Grid) Set( x, y int, c color.NRGBA ) {
	if !g.HasAlpha {
		c.A = 0xff
	}
	g.pix.SetNRGBA( x, y, c )
}

// Image exposes the grid for encoders. It shares memory with the grid.
func(g *Grid) Image() image.Image {
	return g.pix
}

func(g *Grid) Clone() *Grid {
	pix := image.NewNRGBA( g.pix.Rect )
	copy( pix.Pix, g.pix.Pix )
	return &Grid{ pix, g.HasAlpha }
}

// Capacity is the amount of bits the grid can hide.
func(g *Grid) Capacity() int {
	return g.Width() * g.Height() * Channels
}

// MaxMessageLen is the longest message, in bytes, that fits next to
// the terminator.
func(g *Grid) MaxMessageLen() int {
	n := g.Capacity() / 8 - len(Terminator)
	if n < 0 {
		return 0
	}
	return n
}
