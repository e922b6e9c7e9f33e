package mandelbrot

import "fmt"

// DefaultBoundary is the squared magnitude past which an orbit is considered
// divergent. |z| > 2 guarantees divergence for z*z + c, so 4 is the usual
// escape bound.
const DefaultBoundary = 4.0

// UpdateRule advances one complex value to the next. The evaluator takes the
// rule as a parameter so the same loop serves Mandelbrot iteration (the
// parameter is the pixel sample, the orbit starts at 0) and Julia iteration
// (the parameter is fixed, the orbit starts at the pixel sample).
type UpdateRule func(z complex128) complex128

// MandelbrotRule is z -> z*z + c with c fixed to the pixel's sample point.
// Iterate it from 0 to test c for set membership.
func MandelbrotRule(c complex128) UpdateRule {
	return func(z complex128) complex128 {
		return z*z + c
	}
}

// JuliaRule is the same polynomial with a fixed parameter; iterate it from
// the pixel's sample point to draw the Julia set of c.
func JuliaRule(c complex128) UpdateRule {
	return func(z complex128) complex128 {
		return z*z + c
	}
}

// EscapeResult reports either the 0-based iteration at which the orbit first
// exceeded the boundary, or that the iteration budget ran out first. It is a
// sum value; Iteration is meaningless unless Escaped is set.
type EscapeResult struct {
	Iteration uint
	Escaped   bool
}

func (r EscapeResult) String() string {
	if !r.Escaped {
		return "{EscapeResult did not escape}"
	}
	return fmt.Sprintf("{EscapeResult Iteration: %d}", r.Iteration)
}

// EscapeTime applies rule to initial up to iterationMax times, stopping at
// the first iterate whose squared magnitude exceeds boundary. Comparing
// squared magnitudes saves a square root per iteration. An iterationMax of 0
// reports no escape without performing any work; points genuinely inside the
// set always exhaust the budget, the cutoff is the only termination
// guarantee.
func EscapeTime(initial complex128, rule UpdateRule, boundary float64, iterationMax uint) EscapeResult {
	z := initial
	for n := uint(0); n < iterationMax; n++ {
		z = rule(z)
		if real(z)*real(z)+imag(z)*imag(z) > boundary {
			return EscapeResult{Iteration: n, Escaped: true}
		}
	}
	return EscapeResult{}
}

// EscapeTimeTrajectory is EscapeTime recording every visited value, the
// initial one included. It costs O(iterationMax) memory per call where
// EscapeTime costs none, so it is meant for inspecting individual orbits
// rather than full-image rendering.
func EscapeTimeTrajectory(initial complex128, rule UpdateRule, boundary float64, iterationMax uint) ([]complex128, EscapeResult) {
	trajectory := make([]complex128, 0, iterationMax+1)
	trajectory = append(trajectory, initial)

	z := initial
	for n := uint(0); n < iterationMax; n++ {
		z = rule(z)
		trajectory = append(trajectory, z)
		if real(z)*real(z)+imag(z)*imag(z) > boundary {
			return trajectory, EscapeResult{Iteration: n, Escaped: true}
		}
	}
	return trajectory, EscapeResult{}
}
