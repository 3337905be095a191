package limno

import (
	"gonum.org/v1/gonum/stat"
)

// BuoyancyFrequency returns the squared Brunt-Vaisala frequency N^2 (s^-2)
// between consecutive measurements, as a profile indexed by the interval
// midpoint depths. N^2 is positive where density increases with depth
// (stable stratification).
func BuoyancyFrequency(p Profile, tn *Tuning) (Profile, error) {
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	rho, err := densities(p.Values, tn)
	if err != nil {
		return Profile{}, err
	}
	n := len(p.Depths) - 1
	mids := make([]float64, n)
	n2 := make([]float64, n)
	for i := 0; i < n; i++ {
		mids[i] = (p.Depths[i] + p.Depths[i+1]) / 2
		n2[i] = gravity / rho[i] * (rho[i+1] - rho[i]) / (p.Depths[i+1] - p.Depths[i])
	}
	return Profile{Depths: mids, Values: n2}, nil
}

// MetalimnionBuoyancy returns the mean N^2 over the metalimnion, the
// seasonal variant of the buoyancy frequency. When the metalimnion is
// thinner than the measurement spacing, the N^2 of the interval containing
// the thermocline is returned.
func MetalimnionBuoyancy(p Profile, tn *Tuning) (float64, error) {
	meta, err := MetalimnionDepths(p, tn, true)
	if err != nil {
		return 0, err
	}
	prof, err := BuoyancyFrequency(p, tn)
	if err != nil {
		return 0, err
	}
	var inLayer []float64
	for i, d := range prof.Depths {
		if d >= meta.Top && d <= meta.Bottom {
			inLayer = append(inLayer, prof.Values[i])
		}
	}
	if len(inLayer) > 0 {
		return stat.Mean(inLayer, nil), nil
	}
	thermo, err := ThermoclineDepth(p, tn, true)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(p.Depths)-1; i++ {
		if thermo <= p.Depths[i+1] {
			return prof.Values[i], nil
		}
	}
	return prof.Values[len(prof.Values)-1], nil
}
