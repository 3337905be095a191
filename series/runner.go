package series

import (
	"errors"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lakewatch-data/stratify/internal/monitoring"
	"github.com/lakewatch-data/stratify/limno"
)

// Runner applies per-profile functions across the rows of a series. Rows are
// independent pure computations, so a Runner may evaluate them concurrently;
// results always come back in input timestamp order. The zero value runs
// serially with default tuning and the 10 m reference wind height.
type Runner struct {
	// Parallelism bounds concurrent row evaluation; values below 1 run
	// serially.
	Parallelism int

	// Tuning configures the per-profile algorithms; nil uses defaults.
	Tuning *limno.Tuning

	// WindHeight is the wind sensor height (m) for the wind-driven indices.
	// Zero means the 10 m reference height.
	WindHeight float64
}

func (r *Runner) limit() int {
	if r == nil || r.Parallelism < 1 {
		return 1
	}
	return r.Parallelism
}

func (r *Runner) windHeight() float64 {
	if r == nil || r.WindHeight <= 0 {
		return 10
	}
	return r.WindHeight
}

// Run applies fn to every row and collects the results by timestamp. A row
// with missing (NaN) measurements, or for which fn fails, yields a NaN row;
// rows are never dropped and one row's failure never aborts the batch.
func (r *Runner) Run(ts ProfileSeries, fn func(limno.Profile) (float64, error)) Table {
	out := Table{
		Times:  append([]time.Time(nil), ts.Times...),
		Values: make([]float64, ts.Len()),
	}
	failed := make([]bool, ts.Len())

	var g errgroup.Group
	g.SetLimit(r.limit())
	for i := 0; i < ts.Len(); i++ {
		i := i
		g.Go(func() error {
			p := ts.Row(i)
			if p.HasNaN() {
				monitoring.Logf("series: row %d (%s): skipped, missing measurement", i, ts.Times[i].Format(time.RFC3339))
				out.Values[i] = math.NaN()
				failed[i] = true
				return nil
			}
			v, err := fn(p)
			if err != nil {
				monitoring.Logf("series: row %d (%s): %v", i, ts.Times[i].Format(time.RFC3339), err)
				v = math.NaN()
				failed[i] = true
			}
			out.Values[i] = v
			return nil
		})
	}
	g.Wait() // workers report failure through the table, never an error
	for _, f := range failed {
		if f {
			out.Failed++
		}
	}
	return out
}

// runWind is Run for wind-coupled indices. The wind series must align with
// the profile series by exact timestamp.
func (r *Runner) runWind(ts ProfileSeries, wind WindSeries, fn func(p limno.Profile, speed float64) (float64, error)) (Table, error) {
	if err := Align(ts, wind); err != nil {
		return Table{}, err
	}
	out := Table{
		Times:  append([]time.Time(nil), ts.Times...),
		Values: make([]float64, ts.Len()),
	}
	failed := make([]bool, ts.Len())

	var g errgroup.Group
	g.SetLimit(r.limit())
	for i := 0; i < ts.Len(); i++ {
		i := i
		g.Go(func() error {
			p := ts.Row(i)
			speed := wind.Speeds[i]
			if p.HasNaN() || math.IsNaN(speed) {
				monitoring.Logf("series: row %d (%s): skipped, missing measurement", i, ts.Times[i].Format(time.RFC3339))
				out.Values[i] = math.NaN()
				failed[i] = true
				return nil
			}
			v, err := fn(p, speed)
			if err != nil {
				monitoring.Logf("series: row %d (%s): %v", i, ts.Times[i].Format(time.RFC3339), err)
				v = math.NaN()
				failed[i] = true
			}
			out.Values[i] = v
			return nil
		})
	}
	g.Wait()
	for _, f := range failed {
		if f {
			out.Failed++
		}
	}
	return out, nil
}

// Thermocline collects the thermocline depth for every row.
func (r *Runner) Thermocline(ts ProfileSeries, seasonal bool) Table {
	return r.Run(ts, func(p limno.Profile) (float64, error) {
		return limno.ThermoclineDepth(p, r.tuning(), seasonal)
	})
}

// Metalimnion collects the metalimnion bounds for every row.
func (r *Runner) Metalimnion(ts ProfileSeries, seasonal bool) LayerTable {
	out := LayerTable{
		Times:   append([]time.Time(nil), ts.Times...),
		Tops:    make([]float64, ts.Len()),
		Bottoms: make([]float64, ts.Len()),
	}
	failed := make([]bool, ts.Len())

	var g errgroup.Group
	g.SetLimit(r.limit())
	for i := 0; i < ts.Len(); i++ {
		i := i
		g.Go(func() error {
			p := ts.Row(i)
			if p.HasNaN() {
				monitoring.Logf("series: row %d (%s): skipped, missing measurement", i, ts.Times[i].Format(time.RFC3339))
				out.Tops[i] = math.NaN()
				out.Bottoms[i] = math.NaN()
				failed[i] = true
				return nil
			}
			layer, err := limno.MetalimnionDepths(p, r.tuning(), seasonal)
			if err != nil {
				monitoring.Logf("series: row %d (%s): %v", i, ts.Times[i].Format(time.RFC3339), err)
				layer = limno.Layer{Top: math.NaN(), Bottom: math.NaN()}
				failed[i] = true
			}
			out.Tops[i] = layer.Top
			out.Bottoms[i] = layer.Bottom
			return nil
		})
	}
	g.Wait()
	for _, f := range failed {
		if f {
			out.Failed++
		}
	}
	return out
}

// SchmidtStability collects the Schmidt stability for every row.
func (r *Runner) SchmidtStability(ts ProfileSeries, bathy *limno.Bathymetry) Table {
	return r.Run(ts, func(p limno.Profile) (float64, error) {
		return limno.SchmidtStability(p, bathy, r.tuning())
	})
}

// MetalimnionBuoyancy collects the mean metalimnion N^2 for every row.
func (r *Runner) MetalimnionBuoyancy(ts ProfileSeries) Table {
	return r.Run(ts, func(p limno.Profile) (float64, error) {
		return limno.MetalimnionBuoyancy(p, r.tuning())
	})
}

// EpilimnionTemperature collects the volume-weighted epilimnion temperature
// for every row.
func (r *Runner) EpilimnionTemperature(ts ProfileSeries, bathy *limno.Bathymetry, seasonal bool) Table {
	return r.Run(ts, func(p limno.Profile) (float64, error) {
		return limno.EpilimnionTemperature(p, bathy, r.tuning(), seasonal)
	})
}

// HypolimnionTemperature collects the volume-weighted hypolimnion
// temperature for every row.
func (r *Runner) HypolimnionTemperature(ts ProfileSeries, bathy *limno.Bathymetry, seasonal bool) Table {
	return r.Run(ts, func(p limno.Profile) (float64, error) {
		return limno.HypolimnionTemperature(p, bathy, r.tuning(), seasonal)
	})
}

// WholeLakeTemperature collects the volume-weighted whole-column temperature
// for every row.
func (r *Runner) WholeLakeTemperature(ts ProfileSeries, bathy *limno.Bathymetry) Table {
	return r.Run(ts, func(p limno.Profile) (float64, error) {
		return limno.WholeLakeTemperature(p, bathy)
	})
}

// UStar collects the friction velocity for every aligned row, deriving the
// epilimnion density from each row's profile.
func (r *Runner) UStar(ts ProfileSeries, wind WindSeries, bathy *limno.Bathymetry) (Table, error) {
	return r.runWind(ts, wind, func(p limno.Profile, speed float64) (float64, error) {
		rho, err := r.epilimnionDensity(p, bathy)
		if err != nil {
			return 0, err
		}
		return limno.UStar(speed, r.windHeight(), rho)
	})
}

// LakeNumber collects the Lake Number for every aligned row.
func (r *Runner) LakeNumber(ts ProfileSeries, wind WindSeries, bathy *limno.Bathymetry) (Table, error) {
	return r.runWind(ts, wind, func(p limno.Profile, speed float64) (float64, error) {
		meta, err := limno.MetalimnionDepths(p, r.tuning(), true)
		if err != nil {
			return 0, err
		}
		st, err := limno.SchmidtStability(p, bathy, r.tuning())
		if err != nil {
			return 0, err
		}
		epiRho, err := r.epilimnionDensity(p, bathy)
		if err != nil {
			return 0, err
		}
		hypoRho, err := r.hypolimnionDensity(p, bathy)
		if err != nil {
			return 0, err
		}
		us, err := limno.UStar(speed, r.windHeight(), epiRho)
		if err != nil {
			return 0, err
		}
		return limno.LakeNumber(bathy, us, st, meta.Top, meta.Bottom, hypoRho, r.tuning())
	})
}

// WedderburnNumber collects the Wedderburn Number for every aligned row.
func (r *Runner) WedderburnNumber(ts ProfileSeries, wind WindSeries, bathy *limno.Bathymetry) (Table, error) {
	return r.runWind(ts, wind, func(p limno.Profile, speed float64) (float64, error) {
		meta, err := limno.MetalimnionDepths(p, r.tuning(), true)
		if err != nil {
			return 0, err
		}
		epiRho, err := r.epilimnionDensity(p, bathy)
		if err != nil {
			return 0, err
		}
		hypoRho, err := r.hypolimnionDensity(p, bathy)
		if err != nil {
			return 0, err
		}
		us, err := limno.UStar(speed, r.windHeight(), epiRho)
		if err != nil {
			return 0, err
		}
		return limno.WedderburnNumber(hypoRho-epiRho, meta.Top, us, hypoRho, bathy.SurfaceArea())
	})
}

func (r *Runner) tuning() *limno.Tuning {
	if r == nil {
		return nil
	}
	return r.Tuning
}

// epilimnionDensity is the density at the volume-weighted epilimnion
// temperature; a mixed column falls back to the whole-column mean.
func (r *Runner) epilimnionDensity(p limno.Profile, bathy *limno.Bathymetry) (float64, error) {
	t, err := limno.EpilimnionTemperature(p, bathy, r.tuning(), true)
	if errors.Is(err, limno.ErrNoThermocline) {
		t, err = limno.WholeLakeTemperature(p, bathy)
	}
	if err != nil {
		return 0, err
	}
	return limno.DensityChecked(t, r.tuning())
}

// hypolimnionDensity is the density at the volume-weighted hypolimnion
// temperature; a mixed column falls back to the whole-column mean.
func (r *Runner) hypolimnionDensity(p limno.Profile, bathy *limno.Bathymetry) (float64, error) {
	t, err := limno.HypolimnionTemperature(p, bathy, r.tuning(), true)
	if errors.Is(err, limno.ErrNoThermocline) {
		t, err = limno.WholeLakeTemperature(p, bathy)
	}
	if err != nil {
		return 0, err
	}
	return limno.DensityChecked(t, r.tuning())
}
