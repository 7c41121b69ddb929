package img
import (
	"fmt"
	"math"
	"errors"
)

const (
	MaxChannelValue = 255
)

var ErrSizeMismatch = errors.New("images have different dimensions")

// Metrics describes how far a stego image drifted from its cover.
type Metrics struct {
	MSE	float64	`yaml:"mse"`
	PSNR	float64	`yaml:"psnr"`	// dB, +Inf for identical images
}

func(m Metrics) String() string {
	if math.IsInf( m.PSNR, 1 ) {
		return fmt.Sprintf("MSE: %.6f, PSNR: inf", m.MSE)
	}
	return fmt.Sprintf("MSE: %.6f, PSNR: %.2f dB", m.MSE, m.PSNR)
}

/*
 * Compare computes MSE and PSNR over the R, G and B channels of two
 * grids, so RGBA images are measured the same way as RGB ones.
 */
func Compare( a, b *Grid ) (Metrics, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return Metrics{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch,
			a.Width(), a.Height(), b.Width(), b.Height())
	}
	samples := a.Width() * a.Height() * Channels
	if samples == 0 {
		return Metrics{ 0, math.Inf(1) }, nil
	}

	var sum float64
	for y := 0; y < a.Height(); y++ {
		rowA := a.pix.Pix[ y * a.pix.Stride : ]
		rowB := b.pix.Pix[ y * b.pix.Stride : ]
		for x := 0; x < a.Width(); x++ {
			for c := 0; c < Channels; c++ {
				diff := float64(rowA[ x * bytesPerPixel + c ]) - float64(rowB[ x * bytesPerPixel + c ])
				sum += diff * diff
			}
		}
	}
	mse := sum / float64(samples)
	return Metrics{ mse, PSNR( mse ) }, nil
}

func PSNR( mse float64 ) float64 {
	if mse == 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10( MaxChannelValue * MaxChannelValue / mse )
}
