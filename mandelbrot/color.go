package mandelbrot

import (
	"ParallelMandelbrot/misc"
	"fmt"
)

// Color is one opaque pixel value. Alpha is carried so adapters that want
// four channels do not need their own color type, but nothing in this
// system produces anything other than fully opaque colors.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

func (c Color) String() string {
	return fmt.Sprintf("{Color %d %d %d %d}", c.R, c.G, c.B, c.A)
}

var Black = Color{A: 255}

// Classifier turns an escape result into a pixel color.
type Classifier func(result EscapeResult) Color

// Grayscale maps a non-escaping point to black and an escaping point to the
// gray whose channels all equal its iteration index. Indexes of 256 and up
// wrap modulo 256; the resulting banding at high iteration budgets is a
// kept behavior, not an accident to clamp away.
func Grayscale(result EscapeResult) Color {
	if !result.Escaped {
		return Black
	}
	value := uint8(result.Iteration)
	return Color{R: value, G: value, B: value, A: 255}
}

// PaletteClassifier cycles through palette by iteration index and paints
// non-escaping points with escapeColor.
func PaletteClassifier(palette []Color, escapeColor Color) Classifier {
	return func(result EscapeResult) Color {
		if !result.Escaped {
			return escapeColor
		}
		return palette[int(result.Iteration)%len(palette)]
	}
}

// GeneratePalette interpolates numberColors steps from startColor towards
// endColor. Chain several calls to build multi-ramp palettes.
func GeneratePalette(startColor Color, endColor Color, numberColors int) []Color {
	palette := make([]Color, 0, numberColors)
	for j := 0; j < numberColors; j++ {
		fraction := float64(j) / float64(numberColors)
		colorStep := Color{
			R: misc.LerpUint8(startColor.R, endColor.R, fraction),
			G: misc.LerpUint8(startColor.G, endColor.G, fraction),
			B: misc.LerpUint8(startColor.B, endColor.B, fraction),
			A: 255,
		}
		palette = append(palette, colorStep)
	}
	return palette
}
