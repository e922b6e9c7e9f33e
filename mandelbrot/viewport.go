package mandelbrot

import (
	"errors"
	"fmt"
)

// Viewport is the rectangular region of the complex plane mapped onto the
// image grid. TopLeft carries the highest imaginary component, BottomRight
// the lowest, matching the top-to-bottom pixel row order.
type Viewport struct {
	TopLeft     complex128
	BottomRight complex128
}

func ViewportFromCorners(topLeft complex128, bottomRight complex128) Viewport {
	return Viewport{
		TopLeft:     topLeft,
		BottomRight: bottomRight,
	}
}

// ViewportFromCenter builds the same rectangle from its center point and a
// complex-valued (width, height) extent. Both parametrizations are required
// to agree: topLeft = center - extent/2, bottomRight = center + extent/2.
func ViewportFromCenter(center complex128, extent complex128) Viewport {
	half := extent / 2
	return Viewport{
		TopLeft:     center - half,
		BottomRight: center + half,
	}
}

// Classic framings of the set. DefaultView frames the whole set; the
// remaining landmarks are popular zoom targets.
var (
	DefaultView    = ViewportFromCorners(complex(-2.0, 1.2), complex(0.5, -1.2))
	SeahorseValley = ViewportFromCorners(complex(-0.8, 0.15), complex(-0.7, 0.05))
	ElephantValley = ViewportFromCorners(complex(-1.85, -0.02), complex(-1.75, -0.10))
	SpiralMinibrot = ViewportFromCorners(complex(-0.7435, 0.1325), complex(-0.7420, 0.1310))
	TripleSpiral   = ViewportFromCorners(complex(-0.7480, 0.0980), complex(-0.7450, 0.0950))
)

func (v Viewport) Extent() complex128 {
	return v.BottomRight - v.TopLeft
}

func (v Viewport) Center() complex128 {
	return v.TopLeft + v.Extent()/2
}

// Validate rejects degenerate rectangles. A zero width or height would send
// every sample down a single line of the plane and is invalid input, not
// something to silently tolerate.
func (v Viewport) Validate() error {
	extent := v.Extent()
	if real(extent) == 0 {
		return errors.New("viewport has zero width")
	}
	if imag(extent) == 0 {
		return errors.New("viewport has zero height")
	}
	return nil
}

// PixelToComplex converts the (column, row) point on the image to the sample
// point on the complex plane. Each pixel ratio lands in [0, 1) so the bottom
// right corner itself is never sampled.
//
// The arguments form an internal contract: dimensions are positive and the
// pixel lies inside them. Violations panic rather than return an error
// because the pipeline can never produce one.
func (v Viewport) PixelToComplex(column uint, row uint, imageWidth uint, imageHeight uint) complex128 {
	if imageWidth == 0 || imageHeight == 0 {
		panic(fmt.Sprintf("mandelbrot: image resolution %dx%d must be positive", imageWidth, imageHeight))
	}
	if column >= imageWidth || row >= imageHeight {
		panic(fmt.Sprintf("mandelbrot: pixel (%d, %d) outside %dx%d image", column, row, imageWidth, imageHeight))
	}

	horizontal := float64(column) / float64(imageWidth)
	vertical := float64(row) / float64(imageHeight)
	extent := v.Extent()
	return v.TopLeft + complex(real(extent)*horizontal, imag(extent)*vertical)
}

func (v Viewport) String() string {
	output := "{Viewport "
	output += fmt.Sprintf("TopLeft: %v ", v.TopLeft)
	output += fmt.Sprintf("BottomRight: %v}", v.BottomRight)
	return output
}
