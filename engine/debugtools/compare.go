package debugtools

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var ErrImageSizeMismatch = errors.New("images have different sizes")

// ImageDelta summarizes the per-pixel difference of two images. A pixel's
// delta is the mean absolute difference of its four 8-bit channels.
type ImageDelta struct {
	Max  float32
	Mean float32
	// Pixels whose delta is above zero.
	Differing int
}

func (d ImageDelta) String() string {
	return fmt.Sprintf("max %.2f, mean %.4f, %d pixels differ", d.Max, d.Mean, d.Differing)
}

// Within reports whether the delta stays under both thresholds.
func (d ImageDelta) Within(maxThreshold, meanThreshold float32) bool {
	return d.Max <= maxThreshold && d.Mean <= meanThreshold
}

// CompareImages compares actual against expected pixel by pixel. Both images
// are read from their own bounds origin.
func CompareImages(actual, expected image.Image) (ImageDelta, error) {
	ab, eb := actual.Bounds(), expected.Bounds()
	if ab.Dx() != eb.Dx() || ab.Dy() != eb.Dy() {
		return ImageDelta{}, fmt.Errorf("%w: %v vs %v", ErrImageSizeMismatch, ab.Size(), eb.Size())
	}

	var delta ImageDelta
	var sum float64
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			a := color.NRGBAModel.Convert(actual.At(ab.Min.X+x, ab.Min.Y+y)).(color.NRGBA)
			e := color.NRGBAModel.Convert(expected.At(eb.Min.X+x, eb.Min.Y+y)).(color.NRGBA)
			d := float32(absDiff(a.R, e.R)+absDiff(a.G, e.G)+absDiff(a.B, e.B)+absDiff(a.A, e.A)) / 4
			if d > 0 {
				delta.Differing++
			}
			if d > delta.Max {
				delta.Max = d
			}
			sum += float64(d)
		}
	}
	if n := ab.Dx() * ab.Dy(); n > 0 {
		delta.Mean = float32(sum / float64(n))
	}
	return delta, nil
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
