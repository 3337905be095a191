package limno

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// uniquePeakFraction is the fraction of the maximum gradient a second local
// peak must reach to count as a distinct thermocline candidate.
const uniquePeakFraction = 0.15

// densityGradient resamples the temperature profile onto the tuning grid and
// returns the grid, the interval midpoint depths, and the density gradient
// (kg/m^3 per m) across each fine-grid interval.
func densityGradient(p Profile, tn *Tuning) (grid, mids, slopes []float64, err error) {
	fine, err := p.Resample(tn.GetGridResolution())
	if err != nil {
		return nil, nil, nil, err
	}
	rho, err := densities(fine.Values, tn)
	if err != nil {
		return nil, nil, nil, err
	}
	grid = fine.Depths
	mids = make([]float64, len(grid)-1)
	slopes = make([]float64, len(grid)-1)
	for i := 0; i < len(grid)-1; i++ {
		mids[i] = (grid[i] + grid[i+1]) / 2
		slopes[i] = (rho[i+1] - rho[i]) / (grid[i+1] - grid[i])
	}
	return grid, mids, slopes, nil
}

// ThermoclineDepth locates the thermocline: the depth of the maximum water
// density gradient on the fine-resampled profile. With seasonal set, the
// search prefers the deepest local gradient peak whose magnitude exceeds the
// tuning's seasonal minimum gradient, tracking the deepest significant
// density transition rather than simply the steepest one.
//
// A mixed column — temperature range below the mixed cutoff, or density
// gradient nowhere above the seasonal minimum — returns ErrNoThermocline.
func ThermoclineDepth(p Profile, tn *Tuning, seasonal bool) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if floats.Max(p.Values)-floats.Min(p.Values) < tn.GetMixedCutoff() {
		return 0, ErrNoThermocline
	}
	grid, _, slopes, err := densityGradient(p, tn)
	if err != nil {
		return 0, err
	}
	maxIdx := floats.MaxIdx(slopes)
	if slopes[maxIdx] < tn.GetSeasonalMinGradient() {
		return 0, ErrNoThermocline
	}
	depth := refineGradientPeak(grid, slopes, maxIdx)
	if !seasonal {
		return depth, nil
	}

	// Deepest significant peak; fall back to the global maximum when no
	// distinct deeper peak clears the cutoff.
	cutoff := math.Max(slopes[maxIdx]*uniquePeakFraction, tn.GetSeasonalMinGradient())
	peaks := findPeaks(slopes, cutoff)
	if len(peaks) == 0 {
		return depth, nil
	}
	deepest := peaks[len(peaks)-1]
	if deepest <= maxIdx+1 {
		return depth, nil
	}
	seasonalDepth := refineGradientPeak(grid, slopes, deepest)
	if seasonalDepth < depth {
		return depth, nil
	}
	return seasonalDepth, nil
}

// refineGradientPeak refines the depth of the gradient maximum at interval i
// by intersecting the slopes of the adjacent intervals, recovering precision
// below the grid spacing. Falls back to the interval midpoint at the grid
// boundary or when the local slopes are degenerate.
func refineGradientPeak(grid, slopes []float64, i int) float64 {
	depth := (grid[i] + grid[i+1]) / 2
	if i == 0 || i >= len(slopes)-1 {
		return depth
	}
	sdn := -(grid[i+1] - grid[i]) / (slopes[i+1] - slopes[i])
	sup := (grid[i] - grid[i-1]) / (slopes[i] - slopes[i-1])
	if math.IsInf(sdn, 0) || math.IsInf(sup, 0) || math.IsNaN(sdn) || math.IsNaN(sup) || sdn+sup == 0 {
		return depth
	}
	upD, dnD := grid[i], grid[i+1]
	return dnD*(sdn/(sdn+sup)) + upD*(sup/(sdn+sup))
}

// findPeaks returns the indices of local maxima exceeding thresh.
func findPeaks(values []float64, thresh float64) []int {
	var peaks []int
	for i := 1; i < len(values)-1; i++ {
		if values[i] > values[i-1] && values[i] >= values[i+1] && values[i] > thresh {
			peaks = append(peaks, i)
		}
	}
	return peaks
}
