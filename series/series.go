// Package series applies the limno per-profile algorithms across timestamped
// measurement series: exact-timestamp alignment between temperature and wind
// rows, NaN-marked output rows for inputs the per-profile math cannot use,
// and optional bounded parallelism across rows.
package series

import (
	"fmt"
	"time"

	"github.com/lakewatch-data/stratify/limno"
)

// ProfileSeries is an ordered set of temperature profiles sharing one depth
// vector: row i of Temps holds the measurements taken at Times[i], column j
// the measurement at Depths[j]. Missing measurements are NaN.
type ProfileSeries struct {
	Times  []time.Time
	Depths []float64
	Temps  [][]float64
}

// NewProfileSeries validates row shape, depth ordering and strictly
// increasing timestamps.
func NewProfileSeries(times []time.Time, depths []float64, temps [][]float64) (ProfileSeries, error) {
	if len(times) != len(temps) {
		return ProfileSeries{}, fmt.Errorf("series: %d timestamps but %d temperature rows", len(times), len(temps))
	}
	if err := checkTimes(times); err != nil {
		return ProfileSeries{}, err
	}
	if len(depths) < 2 {
		return ProfileSeries{}, fmt.Errorf("series: need at least 2 depths, got %d", len(depths))
	}
	for i := 1; i < len(depths); i++ {
		if depths[i] <= depths[i-1] {
			return ProfileSeries{}, fmt.Errorf("series: depths must be strictly increasing at index %d", i)
		}
	}
	for i, row := range temps {
		if len(row) != len(depths) {
			return ProfileSeries{}, fmt.Errorf("series: row %d has %d values for %d depths", i, len(row), len(depths))
		}
	}
	return ProfileSeries{Times: times, Depths: depths, Temps: temps}, nil
}

// Len returns the number of rows.
func (s ProfileSeries) Len() int { return len(s.Times) }

// Row returns the profile for row i. The profile shares the series' backing
// slices; callers must not mutate it.
func (s ProfileSeries) Row(i int) limno.Profile {
	return limno.Profile{Depths: s.Depths, Values: s.Temps[i]}
}

// WindSeries is an ordered set of wind speed measurements (m/s). Missing
// speeds are NaN.
type WindSeries struct {
	Times  []time.Time
	Speeds []float64
}

// NewWindSeries validates lengths and strictly increasing timestamps.
func NewWindSeries(times []time.Time, speeds []float64) (WindSeries, error) {
	if len(times) != len(speeds) {
		return WindSeries{}, fmt.Errorf("series: %d timestamps but %d wind speeds", len(times), len(speeds))
	}
	if err := checkTimes(times); err != nil {
		return WindSeries{}, err
	}
	return WindSeries{Times: times, Speeds: speeds}, nil
}

func checkTimes(times []time.Time) error {
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			return fmt.Errorf("series: timestamps must be strictly increasing at row %d", i)
		}
	}
	return nil
}

// Align verifies that the wind series joins the profile series by exact
// timestamp. Any length or timestamp mismatch returns a
// *limno.AlignmentError; no implicit join or interpolation is performed.
func Align(profiles ProfileSeries, wind WindSeries) error {
	if len(profiles.Times) != len(wind.Times) {
		row := len(profiles.Times)
		if len(wind.Times) < row {
			row = len(wind.Times)
		}
		return &limno.AlignmentError{Row: row}
	}
	for i := range profiles.Times {
		if !profiles.Times[i].Equal(wind.Times[i]) {
			return &limno.AlignmentError{Row: i, Left: profiles.Times[i], Right: wind.Times[i]}
		}
	}
	return nil
}
