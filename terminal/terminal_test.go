package terminal

import (
	"strings"
	"testing"
)

func TestGetUintRetriesUntilValid(t *testing.T) {
	var output strings.Builder
	prompter := NewPrompter(strings.NewReader("abc\n-3\n1920\n"), &output)

	got, err := prompter.GetUint("Enter image width: ")
	if err != nil {
		t.Fatalf("GetUint failed: %s", err)
	}
	if got != 1920 {
		t.Errorf("GetUint = %d, want 1920", got)
	}
	if strings.Count(output.String(), "Enter image width: ") != 3 {
		t.Errorf("expected three prompts, output was %q", output.String())
	}
	if !strings.Contains(output.String(), "Invalid input") {
		t.Errorf("expected an invalid input notice, output was %q", output.String())
	}
}

func TestGetFloat(t *testing.T) {
	var output strings.Builder
	prompter := NewPrompter(strings.NewReader("wide\n0.5625\n"), &output)

	got, err := prompter.GetFloat("Enter scale factor: ")
	if err != nil {
		t.Fatalf("GetFloat failed: %s", err)
	}
	if got != 0.5625 {
		t.Errorf("GetFloat = %f, want 0.5625", got)
	}
}

func TestGetComplex(t *testing.T) {
	tests := []struct {
		input string
		want  complex128
	}{
		{"-0.75+0.1i\n", complex(-0.75, 0.1)},
		{"2\n", complex(2, 0)},
		{"  -1.5-0.3i \n", complex(-1.5, -0.3)},
	}

	for _, test := range tests {
		var output strings.Builder
		prompter := NewPrompter(strings.NewReader(test.input), &output)
		got, err := prompter.GetComplex("Enter the center: ")
		if err != nil {
			t.Fatalf("GetComplex(%q) failed: %s", test.input, err)
		}
		if got != test.want {
			t.Errorf("GetComplex(%q) = %v, want %v", test.input, got, test.want)
		}
	}
}

func TestGetComplexRetries(t *testing.T) {
	var output strings.Builder
	prompter := NewPrompter(strings.NewReader("origin\n0\n"), &output)

	got, err := prompter.GetComplex("Enter the center: ")
	if err != nil {
		t.Fatalf("GetComplex failed: %s", err)
	}
	if got != 0 {
		t.Errorf("GetComplex = %v, want 0", got)
	}
}

func TestExhaustedInputSurfacesError(t *testing.T) {
	var output strings.Builder
	prompter := NewPrompter(strings.NewReader(""), &output)

	if _, err := prompter.GetUint("Enter image width: "); err == nil {
		t.Error("empty input did not surface an error")
	}
}

func TestLastLineWithoutNewline(t *testing.T) {
	var output strings.Builder
	prompter := NewPrompter(strings.NewReader("42"), &output)

	got, err := prompter.GetUint("Enter max number of iterations: ")
	if err != nil {
		t.Fatalf("GetUint failed: %s", err)
	}
	if got != 42 {
		t.Errorf("GetUint = %d, want 42", got)
	}
}
