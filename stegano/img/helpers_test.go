package img
import (
	"math/rand"
	"image/color"
)

// testGrid builds a noisy cover image, deterministic for a given seed.
func testGrid( width, height int, hasAlpha bool, seed int64 ) *Grid {
	rnd := rand.New( rand.NewSource( seed ) )
	g := NewGrid( width, height, hasAlpha )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{
				uint8(rnd.Intn(256)),
				uint8(rnd.Intn(256)),
				uint8(rnd.Intn(256)),
				0xff,
			}
			if hasAlpha {
				c.A = uint8(rnd.Intn(256))
			}
			g.Set( x, y, c )
		}
	}
	return g
}

// uniformGrid has every channel set to v.
func uniformGrid( width, height int, v uint8 ) *Grid {
	g := NewGrid( width, height, false )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set( x, y, color.NRGBA{ v, v, v, 0xff } )
		}
	}
	return g
}
