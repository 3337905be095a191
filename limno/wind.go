package limno

import "math"

// Drag coefficients from Hicks (1972); the reference coefficient feeds the
// logarithmic height correction of Fischer et al. (1979).
const (
	dragCoefficientLow  = 1.0e-3 // U10 below 5 m/s
	dragCoefficientHigh = 1.5e-3 // U10 at or above 5 m/s
	dragCoefficientRef  = 1.3e-3
	dragSpeedSplit      = 5.0 // m/s
)

// UStar returns the water-side friction velocity (m/s) for a wind speed
// measured at sensorHeight (m). The speed is corrected to the 10 m reference
// height with a logarithmic wind profile, converted to shear stress through
// the Hicks (1972) drag coefficient, and scaled by the epilimnion density.
// Zero wind yields zero friction velocity; nonzero wind never does.
func UStar(windSpeed, sensorHeight, epiDensity float64) (float64, error) {
	if windSpeed < 0 {
		return 0, &DomainError{Quantity: "wind speed", Value: windSpeed, Min: 0, Max: math.Inf(1)}
	}
	if sensorHeight <= 0 {
		return 0, &DomainError{Quantity: "wind sensor height", Value: sensorHeight, Min: 0, Max: math.Inf(1)}
	}
	if epiDensity <= 0 {
		return 0, &DomainError{Quantity: "epilimnion density", Value: epiDensity, Min: 0, Max: math.Inf(1)}
	}
	u10 := windSpeed
	if sensorHeight != 10 {
		u10 = windSpeed / (1 - math.Sqrt(dragCoefficientRef)/vonKarman*math.Log(10/sensorHeight))
	}
	cd := dragCoefficientLow
	if u10 >= dragSpeedSplit {
		cd = dragCoefficientHigh
	}
	tau := cd * airDensity * u10 * u10
	return math.Sqrt(tau / epiDensity), nil
}
