package limno

import (
	"gonum.org/v1/gonum/floats"
)

// Layer is a depth interval, top above bottom.
type Layer struct {
	Top    float64
	Bottom float64
}

// Thickness returns the vertical extent of the layer.
func (l Layer) Thickness() float64 { return l.Bottom - l.Top }

// MetalimnionDepths returns the metalimnion bounds around the thermocline.
// Scanning outward from the thermocline, the metalimnion ends where the
// density gradient first drops below MetaSlopeFraction of the maximum
// observed gradient, with the crossing depth linearly interpolated between
// interval midpoints. A profile that stays steep all the way to a boundary
// is bounded at the surface or the deepest measurement. For a defined result
// Top <= thermocline <= Bottom always holds.
func MetalimnionDepths(p Profile, tn *Tuning, seasonal bool) (Layer, error) {
	thermo, err := ThermoclineDepth(p, tn, seasonal)
	if err != nil {
		return Layer{}, err
	}
	grid, mids, slopes, err := densityGradient(p, tn)
	if err != nil {
		return Layer{}, err
	}
	cutoff := slopes[floats.MaxIdx(slopes)] * tn.GetMetaSlopeFraction()

	// Interval containing the thermocline.
	ti := len(slopes) - 1
	for i := range slopes {
		if thermo <= grid[i+1] {
			ti = i
			break
		}
	}

	top := p.MinDepth()
	for i := ti; i >= 0; i-- {
		if slopes[i] >= cutoff {
			continue
		}
		if i+1 < len(slopes) {
			top = interpCrossing(mids[i], slopes[i], mids[i+1], slopes[i+1], cutoff)
		} else {
			top = mids[i]
		}
		break
	}

	bottom := p.MaxDepth()
	for i := ti; i < len(slopes); i++ {
		if slopes[i] >= cutoff {
			continue
		}
		if i > 0 {
			bottom = interpCrossing(mids[i-1], slopes[i-1], mids[i], slopes[i], cutoff)
		} else {
			bottom = mids[i]
		}
		break
	}

	if top > thermo {
		top = thermo
	}
	if bottom < thermo {
		bottom = thermo
	}
	return Layer{Top: top, Bottom: bottom}, nil
}

// interpCrossing interpolates the depth at which the gradient crosses cutoff
// between two adjacent interval midpoints.
func interpCrossing(z0, s0, z1, s1, cutoff float64) float64 {
	if s1 == s0 {
		return (z0 + z1) / 2
	}
	return z0 + (cutoff-s0)/(s1-s0)*(z1-z0)
}
