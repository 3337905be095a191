package limno

import (
	"gonum.org/v1/gonum/integrate"
)

// SchmidtStability returns the potential energy per unit area (J/m^2)
// required to fully mix the water column: the density anomaly integrated
// against its lever arm about the basin's center of volume, area-weighted
// and normalized by the surface area. Non-negative for stable (density
// increasing with depth) columns and zero for an isothermal one.
//
// The profile must not reach below the bathymetry's maximum depth.
func SchmidtStability(p Profile, bathy *Bathymetry, tn *Tuning) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	dz := tn.GetGridResolution()
	fine, err := p.Resample(dz)
	if err != nil {
		return 0, err
	}
	rho, err := densities(fine.Values, tn)
	if err != nil {
		return 0, err
	}
	areas := make([]float64, len(fine.Depths))
	for i, d := range fine.Depths {
		a, err := bathy.AreaAt(d)
		if err != nil {
			return 0, err
		}
		areas[i] = a
	}
	vol := integrate.Trapezoidal(fine.Depths, areas)
	if vol <= 0 {
		return 0, &EmptyLayerError{Top: fine.MinDepth(), Bottom: fine.MaxDepth()}
	}
	weighted := make([]float64, len(rho))
	for i := range rho {
		weighted[i] = rho[i] * areas[i]
	}
	meanRho := integrate.Trapezoidal(fine.Depths, weighted) / vol

	zcv := bathy.CenterOfVolume(dz)
	integrand := make([]float64, len(rho))
	for i, d := range fine.Depths {
		integrand[i] = (rho[i] - meanRho) * (d - zcv) * areas[i]
	}
	return gravity / bathy.SurfaceArea() * integrate.Trapezoidal(fine.Depths, integrand), nil
}
