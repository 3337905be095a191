package limno

import (
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
)

// LayerMean returns the volume-weighted mean of the field (temperature,
// density) over the depth interval [top, bottom]. The field is interpolated
// onto the bathymetry's grid restricted to the layer and each sub-layer is
// weighted by its incremental volume. The interval is clipped to the
// measured depth range; a degenerate or fully out-of-range interval returns
// an EmptyLayerError.
func LayerMean(field Profile, top, bottom float64, bathy *Bathymetry) (float64, error) {
	if err := field.Validate(); err != nil {
		return 0, err
	}
	if bottom <= top {
		return 0, &EmptyLayerError{Top: top, Bottom: bottom}
	}
	lo := math.Max(top, field.MinDepth())
	hi := math.Min(math.Min(bottom, field.MaxDepth()), bathy.MaxDepth())
	if hi <= lo {
		return 0, &EmptyLayerError{Top: top, Bottom: bottom}
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(field.Depths, field.Values); err != nil {
		return 0, err
	}
	grid := bathy.gridBetween(lo, hi)
	areas := make([]float64, len(grid))
	weighted := make([]float64, len(grid))
	for i, d := range grid {
		a, err := bathy.AreaAt(d)
		if err != nil {
			return 0, err
		}
		areas[i] = a
		weighted[i] = pl.Predict(d) * a
	}
	vol := integrate.Trapezoidal(grid, areas)
	if vol <= 0 {
		return 0, &EmptyLayerError{Top: top, Bottom: bottom}
	}
	return integrate.Trapezoidal(grid, weighted) / vol, nil
}

// EpilimnionTemperature returns the volume-weighted mean temperature of the
// layer above the metalimnion. A metalimnion reaching the surface collapses
// the epilimnion to the surface measurement.
func EpilimnionTemperature(p Profile, bathy *Bathymetry, tn *Tuning, seasonal bool) (float64, error) {
	meta, err := MetalimnionDepths(p, tn, seasonal)
	if err != nil {
		return 0, err
	}
	if meta.Top <= p.MinDepth() {
		return p.Values[0], nil
	}
	return LayerMean(p, p.MinDepth(), meta.Top, bathy)
}

// HypolimnionTemperature returns the volume-weighted mean temperature of the
// layer below the metalimnion. A metalimnion reaching the lake bottom
// collapses the hypolimnion to the deepest measurement.
func HypolimnionTemperature(p Profile, bathy *Bathymetry, tn *Tuning, seasonal bool) (float64, error) {
	meta, err := MetalimnionDepths(p, tn, seasonal)
	if err != nil {
		return 0, err
	}
	if meta.Bottom >= p.MaxDepth() {
		return p.Values[len(p.Values)-1], nil
	}
	return LayerMean(p, meta.Bottom, p.MaxDepth(), bathy)
}

// WholeLakeTemperature returns the volume-weighted mean temperature over the
// full measured depth range.
func WholeLakeTemperature(p Profile, bathy *Bathymetry) (float64, error) {
	return LayerMean(p, p.MinDepth(), p.MaxDepth(), bathy)
}
