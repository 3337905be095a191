package limno

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
)

// Bathymetry is an immutable depth-to-area lookup table for a lake basin.
// Depths increase from the surface (0 m) to the maximum depth and areas are
// non-increasing with depth.
type Bathymetry struct {
	depths []float64
	areas  []float64
	area   interp.PiecewiseLinear
}

// NewBathymetry validates and copies the (depth, area) table.
func NewBathymetry(depths, areas []float64) (*Bathymetry, error) {
	if len(depths) != len(areas) {
		return nil, fmt.Errorf("limno: bathymetry: %d depths but %d areas", len(depths), len(areas))
	}
	if len(depths) < 2 {
		return nil, fmt.Errorf("limno: bathymetry: need at least 2 rows, got %d", len(depths))
	}
	if depths[0] != 0 {
		return nil, fmt.Errorf("limno: bathymetry: first row must be the surface (depth 0), got %.3f", depths[0])
	}
	if areas[0] <= 0 {
		return nil, fmt.Errorf("limno: bathymetry: surface area must be positive, got %.3f", areas[0])
	}
	for i := range depths {
		if areas[i] < 0 {
			return nil, fmt.Errorf("limno: bathymetry: negative area at row %d", i)
		}
		if i == 0 {
			continue
		}
		if depths[i] <= depths[i-1] {
			return nil, fmt.Errorf("limno: bathymetry: depths must be strictly increasing at row %d", i)
		}
		if areas[i] > areas[i-1] {
			return nil, fmt.Errorf("limno: bathymetry: areas must be non-increasing at row %d", i)
		}
	}
	b := &Bathymetry{
		depths: append([]float64(nil), depths...),
		areas:  append([]float64(nil), areas...),
	}
	if err := b.area.Fit(b.depths, b.areas); err != nil {
		return nil, fmt.Errorf("limno: bathymetry: %w", err)
	}
	return b, nil
}

// SurfaceArea returns the lake area at depth 0.
func (b *Bathymetry) SurfaceArea() float64 { return b.areas[0] }

// MaxDepth returns the deepest tabulated depth.
func (b *Bathymetry) MaxDepth() float64 { return b.depths[len(b.depths)-1] }

// AreaAt returns the lake area at an arbitrary depth by linear interpolation
// between the bracketing table rows.
func (b *Bathymetry) AreaAt(depth float64) (float64, error) {
	if depth < b.depths[0] || depth > b.MaxDepth() {
		return 0, &OutOfRangeError{Depth: depth, Min: b.depths[0], Max: b.MaxDepth()}
	}
	return b.area.Predict(depth), nil
}

// VolumeBetween integrates area over [top, bottom] with the trapezoid rule
// on the table rows, subdivided at top and bottom.
func (b *Bathymetry) VolumeBetween(top, bottom float64) (float64, error) {
	if bottom <= top {
		return 0, &EmptyLayerError{Top: top, Bottom: bottom}
	}
	if top < b.depths[0] || bottom > b.MaxDepth() {
		d := top
		if bottom > b.MaxDepth() {
			d = bottom
		}
		return 0, &OutOfRangeError{Depth: d, Min: b.depths[0], Max: b.MaxDepth()}
	}
	grid := b.gridBetween(top, bottom)
	areas := make([]float64, len(grid))
	for i, d := range grid {
		areas[i] = b.area.Predict(d)
	}
	return integrate.Trapezoidal(grid, areas), nil
}

// gridBetween returns the table depths strictly inside (top, bottom) with
// the interval endpoints prepended and appended.
func (b *Bathymetry) gridBetween(top, bottom float64) []float64 {
	grid := make([]float64, 0, len(b.depths)+2)
	grid = append(grid, top)
	for _, d := range b.depths {
		if d > top && d < bottom {
			grid = append(grid, d)
		}
	}
	return append(grid, bottom)
}

// CenterOfVolume returns the depth to the basin's center of volume, computed
// on a uniform grid with step dz.
func (b *Bathymetry) CenterOfVolume(dz float64) float64 {
	if dz <= 0 {
		dz = defaultGridResolution
	}
	grid := uniformGrid(b.depths[0], b.MaxDepth(), dz)
	areas := make([]float64, len(grid))
	weighted := make([]float64, len(grid))
	for i, d := range grid {
		a := b.area.Predict(d)
		areas[i] = a
		weighted[i] = d * a
	}
	vol := integrate.Trapezoidal(grid, areas)
	if vol == 0 {
		return 0
	}
	return integrate.Trapezoidal(grid, weighted) / vol
}
