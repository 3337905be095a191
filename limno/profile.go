package limno

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Profile is a depth-indexed measurement: parallel slices of strictly
// increasing depths (m) and the value observed at each depth.
type Profile struct {
	Depths []float64
	Values []float64
}

// NewProfile validates the pair of slices and returns them as a Profile. The
// slices are not copied; callers must not mutate them afterwards.
func NewProfile(depths, values []float64) (Profile, error) {
	p := Profile{Depths: depths, Values: values}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks the profile invariants: equal slice lengths, at least two
// points, strictly increasing depths.
func (p Profile) Validate() error {
	if len(p.Depths) != len(p.Values) {
		return fmt.Errorf("limno: profile: %d depths but %d values", len(p.Depths), len(p.Values))
	}
	if len(p.Depths) < 2 {
		return fmt.Errorf("limno: profile: need at least 2 points, got %d", len(p.Depths))
	}
	for i := 1; i < len(p.Depths); i++ {
		if p.Depths[i] <= p.Depths[i-1] {
			return fmt.Errorf("limno: profile: depths must be strictly increasing at index %d", i)
		}
	}
	return nil
}

// MinDepth returns the shallowest measured depth.
func (p Profile) MinDepth() float64 { return p.Depths[0] }

// MaxDepth returns the deepest measured depth.
func (p Profile) MaxDepth() float64 { return p.Depths[len(p.Depths)-1] }

// HasNaN reports whether any value in the profile is NaN.
func (p Profile) HasNaN() bool {
	for _, v := range p.Values {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// At returns the value at depth by linear interpolation between the two
// bracketing measurements. Depths outside the measured range are not
// extrapolated and return an OutOfRangeError.
func (p Profile) At(depth float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if depth < p.MinDepth() || depth > p.MaxDepth() {
		return 0, &OutOfRangeError{Depth: depth, Min: p.MinDepth(), Max: p.MaxDepth()}
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(p.Depths, p.Values); err != nil {
		return 0, err
	}
	return pl.Predict(depth), nil
}

// Resample returns the profile linearly interpolated onto a uniform grid of
// step at most dz spanning the measured depth range. This is what gives the
// detector sub-measurement resolution; nothing is extrapolated beyond the
// measured range.
func (p Profile) Resample(dz float64) (Profile, error) {
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	if dz <= 0 {
		return Profile{}, &DomainError{Quantity: "grid resolution", Value: dz, Min: 0, Max: math.Inf(1)}
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(p.Depths, p.Values); err != nil {
		return Profile{}, err
	}
	grid := uniformGrid(p.MinDepth(), p.MaxDepth(), dz)
	vals := make([]float64, len(grid))
	for i, d := range grid {
		vals[i] = pl.Predict(d)
	}
	return Profile{Depths: grid, Values: vals}, nil
}

// uniformGrid returns an evenly spaced grid from lo to hi inclusive with a
// step no larger than dz.
func uniformGrid(lo, hi, dz float64) []float64 {
	n := int(math.Ceil((hi-lo)/dz - 1e-9))
	if n < 1 {
		n = 1
	}
	step := (hi - lo) / float64(n)
	grid := make([]float64, n+1)
	for i := range grid {
		grid[i] = lo + float64(i)*step
	}
	grid[n] = hi
	return grid
}
