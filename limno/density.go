package limno

// Physical constants shared by the stability indices.
const (
	gravity    = 9.81 // m/s^2
	airDensity = 1.2  // kg/m^3
	vonKarman  = 0.4
)

// Density returns the density of fresh water (kg/m^3) at the given
// temperature (degrees C) using the Martin & McCutcheon (1999)
// approximation. The polynomial is accurate over the 0-40 C range typical of
// lakes; use DensityChecked to enforce that range.
func Density(tempC float64) float64 {
	d := tempC - 3.9863
	return 1000 * (1 - (tempC+288.9414)/(508929.2*(tempC+68.12963))*d*d)
}

// DensityChecked is Density with the tuning's valid-range check applied. It
// returns a DomainError when checking is enabled and the temperature falls
// outside the configured range.
func DensityChecked(tempC float64, tn *Tuning) (float64, error) {
	if tn.GetDensityRangeCheck() {
		lo, hi := tn.GetDensityMinTempC(), tn.GetDensityMaxTempC()
		if tempC < lo || tempC > hi {
			return 0, &DomainError{Quantity: "temperature", Value: tempC, Min: lo, Max: hi}
		}
	}
	return Density(tempC), nil
}

// DensityProfile maps Density over a temperature slice.
func DensityProfile(tempsC []float64) []float64 {
	out := make([]float64, len(tempsC))
	for i, t := range tempsC {
		out[i] = Density(t)
	}
	return out
}

// densities converts a temperature slice with the tuning's range check.
func densities(tempsC []float64, tn *Tuning) ([]float64, error) {
	out := make([]float64, len(tempsC))
	for i, t := range tempsC {
		rho, err := DensityChecked(t, tn)
		if err != nil {
			return nil, err
		}
		out[i] = rho
	}
	return out, nil
}
