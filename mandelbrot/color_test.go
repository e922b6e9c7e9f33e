package mandelbrot

import "testing"

func TestGrayscale(t *testing.T) {
	tests := []struct {
		name   string
		result EscapeResult
		want   Color
	}{
		{"did not escape is black", EscapeResult{}, Color{A: 255}},
		{"iteration 0 is black too", EscapeResult{Iteration: 0, Escaped: true}, Color{A: 255}},
		{"iteration becomes the gray level", EscapeResult{Iteration: 7, Escaped: true}, Color{R: 7, G: 7, B: 7, A: 255}},
		{"last level before the wrap", EscapeResult{Iteration: 255, Escaped: true}, Color{R: 255, G: 255, B: 255, A: 255}},
		{"256 wraps to black", EscapeResult{Iteration: 256, Escaped: true}, Color{A: 255}},
		{"wrap is modulo 256", EscapeResult{Iteration: 260, Escaped: true}, Color{R: 4, G: 4, B: 4, A: 255}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Grayscale(test.result); got != test.want {
				t.Errorf("Grayscale(%s) = %s, want %s", test.result.String(), got.String(), test.want.String())
			}
		})
	}
}

func TestPaletteClassifier(t *testing.T) {
	palette := []Color{
		{R: 10, A: 255},
		{G: 20, A: 255},
		{B: 30, A: 255},
	}
	escapeColor := Color{R: 1, G: 2, B: 3, A: 255}
	classify := PaletteClassifier(palette, escapeColor)

	if got := classify(EscapeResult{}); got != escapeColor {
		t.Errorf("non-escaping color = %s, want %s", got.String(), escapeColor.String())
	}
	if got := classify(EscapeResult{Iteration: 1, Escaped: true}); got != palette[1] {
		t.Errorf("iteration 1 color = %s, want %s", got.String(), palette[1].String())
	}
	// The palette cycles past its length
	if got := classify(EscapeResult{Iteration: 4, Escaped: true}); got != palette[1] {
		t.Errorf("iteration 4 color = %s, want %s", got.String(), palette[1].String())
	}
}

func TestGeneratePalette(t *testing.T) {
	start := Color{A: 255}
	end := Color{R: 200, G: 100, B: 50, A: 255}
	palette := GeneratePalette(start, end, 10)

	if len(palette) != 10 {
		t.Fatalf("palette length = %d, want 10", len(palette))
	}
	if palette[0] != start {
		t.Errorf("palette[0] = %s, want the start color %s", palette[0].String(), start.String())
	}
	for i, c := range palette {
		if c.A != 255 {
			t.Errorf("palette[%d] alpha = %d, want fully opaque", i, c.A)
		}
	}
	if palette[5].R != 100 {
		t.Errorf("palette[5] red = %d, want the halfway value 100", palette[5].R)
	}
}
