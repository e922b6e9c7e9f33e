// Package picture adapts row-major color buffers to the standard image
// types and persists them as PNG files. It is a thin consumer of the render
// output; a write failure here never touches the buffer it was handed.
package picture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"ParallelMandelbrot/mandelbrot"
)

// ToRGBA copies a row-major buffer of width*height colors into an
// image.RGBA of the same dimensions.
func ToRGBA(buffer []mandelbrot.Color, width uint, height uint) (*image.RGBA, error) {
	if uint(len(buffer)) != width*height {
		return nil, fmt.Errorf("buffer holds %d colors, want %d for %dx%d", len(buffer), width*height, width, height)
	}

	output := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	for row := uint(0); row < height; row++ {
		for column := uint(0); column < width; column++ {
			c := buffer[row*width+column]
			output.SetRGBA(int(column), int(row), color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	return output, nil
}

// FileName is the naming convention for saved renders: resolution and
// iteration budget, so a directory of outputs stays self-describing.
func FileName(width uint, height uint, maxIterations uint) string {
	return fmt.Sprintf("mandelbrot_%dx%d_%d_iter.png", width, height, maxIterations)
}

// EncodePNG writes the buffer to w as a PNG image.
func EncodePNG(w io.Writer, buffer []mandelbrot.Color, width uint, height uint) error {
	img, err := ToRGBA(buffer, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func SavePNG(fileName string, buffer []mandelbrot.Color, width uint, height uint) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create file %s - %s", fileName, err)
	}
	if err := EncodePNG(file, buffer, width, height); err != nil {
		file.Close()
		return fmt.Errorf("unable to encode %s - %s", fileName, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close file %s - %s", fileName, err)
	}
	return nil
}
