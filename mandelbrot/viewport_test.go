package mandelbrot

import "testing"

func TestPixelToComplexTopLeft(t *testing.T) {
	viewports := []Viewport{
		DefaultView,
		ViewportFromCorners(complex(-1, 1), complex(1, -1)),
		SeahorseValley,
	}
	sizes := [][2]uint{{1, 1}, {3, 3}, {640, 480}, {1920, 1080}}

	for _, viewport := range viewports {
		for _, size := range sizes {
			got := viewport.PixelToComplex(0, 0, size[0], size[1])
			if got != viewport.TopLeft {
				t.Errorf("%s map(0,0,%d,%d) = %v, want top left %v",
					viewport.String(), size[0], size[1], got, viewport.TopLeft)
			}
		}
	}
}

func TestViewportParametrizationEquivalence(t *testing.T) {
	// Both constructions of the same rectangle must map every pixel to the
	// same sample point. The corner values are chosen to be exact in binary
	// so the recovered center and extent reproduce them without rounding.
	corners := ViewportFromCorners(complex(-2.0, 1.2), complex(0.5, -1.2))
	centered := ViewportFromCenter(corners.Center(), corners.Extent())

	if centered != corners {
		t.Fatalf("reconstructed viewport %s differs from %s", centered.String(), corners.String())
	}

	const width, height = 16, 9
	for row := uint(0); row < height; row++ {
		for column := uint(0); column < width; column++ {
			fromCorners := corners.PixelToComplex(column, row, width, height)
			fromCenter := centered.PixelToComplex(column, row, width, height)
			if fromCorners != fromCenter {
				t.Errorf("pixel (%d, %d): corner form gives %v, center form gives %v",
					column, row, fromCorners, fromCenter)
			}
		}
	}
}

func TestViewportFromCenter(t *testing.T) {
	viewport := ViewportFromCenter(complex(-0.75, 0), complex(2.5, -2.4))
	if viewport.TopLeft != complex(-2.0, 1.2) {
		t.Errorf("top left = %v, want -2+1.2i", viewport.TopLeft)
	}
	if viewport.BottomRight != complex(0.5, -1.2) {
		t.Errorf("bottom right = %v, want 0.5-1.2i", viewport.BottomRight)
	}
}

func TestViewportValidate(t *testing.T) {
	if err := DefaultView.Validate(); err != nil {
		t.Errorf("default view is invalid: %s", err)
	}
	zeroWidth := ViewportFromCorners(complex(1, 1), complex(1, -1))
	if err := zeroWidth.Validate(); err == nil {
		t.Error("zero width viewport passed validation")
	}
	zeroHeight := ViewportFromCorners(complex(-1, 1), complex(1, 1))
	if err := zeroHeight.Validate(); err == nil {
		t.Error("zero height viewport passed validation")
	}
}

func TestPixelToComplexContract(t *testing.T) {
	tests := []struct {
		name                  string
		column, row           uint
		imageWidth, imageHeight uint
	}{
		{"column out of range", 4, 0, 4, 4},
		{"row out of range", 0, 4, 4, 4},
		{"zero width", 0, 0, 0, 4},
		{"zero height", 0, 0, 4, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("PixelToComplex(%d, %d, %d, %d) did not panic",
						test.column, test.row, test.imageWidth, test.imageHeight)
				}
			}()
			DefaultView.PixelToComplex(test.column, test.row, test.imageWidth, test.imageHeight)
		})
	}
}

func TestViewportCenterExtent(t *testing.T) {
	viewport := ViewportFromCorners(complex(-1, 1), complex(1, -1))
	if viewport.Center() != 0 {
		t.Errorf("center = %v, want 0", viewport.Center())
	}
	if viewport.Extent() != complex(2, -2) {
		t.Errorf("extent = %v, want 2-2i", viewport.Extent())
	}
}
