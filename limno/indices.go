package limno

import "math"

// LakeNumber returns the dimensionless Lake Number: the ratio of the
// stabilizing moment of the stratification about the basin's center of
// volume to the overturning moment of the wind stress. st is the Schmidt
// stability (J/m^2), metaTop and metaBottom the metalimnion bounds (m) and
// hypoDensity the mean hypolimnion density (kg/m^3).
func LakeNumber(bathy *Bathymetry, uStar, st, metaTop, metaBottom, hypoDensity float64, tn *Tuning) (float64, error) {
	switch {
	case st <= 0:
		return 0, &UndefinedIndexError{Index: "lake number", Reason: "schmidt stability is not positive"}
	case uStar == 0:
		return 0, &UndefinedIndexError{Index: "lake number", Reason: "friction velocity is zero"}
	case metaTop >= metaBottom:
		return 0, &UndefinedIndexError{Index: "lake number", Reason: "degenerate metalimnion"}
	}
	if hypoDensity <= 0 {
		return 0, &DomainError{Quantity: "hypolimnion density", Value: hypoDensity, Min: 0, Max: math.Inf(1)}
	}
	a0 := bathy.SurfaceArea()
	zcv := bathy.CenterOfVolume(tn.GetGridResolution())
	if zcv <= 0 {
		return 0, &UndefinedIndexError{Index: "lake number", Reason: "center of volume at the surface"}
	}
	stVol := st * a0 / gravity // stability de-normalized by surface area (kg m)
	return gravity * stVol * (metaTop + metaBottom) /
		(2 * hypoDensity * uStar * uStar * math.Pow(a0, 1.5) * zcv), nil
}

// WedderburnNumber returns the dimensionless Wedderburn Number, using the
// diameter of the circle of equal surface area as the characteristic fetch
// length. deltaRho is the hypolimnion minus epilimnion density difference
// (kg/m^3) and metaTop the metalimnion top depth, i.e. the mixed-layer
// thickness (m).
func WedderburnNumber(deltaRho, metaTop, uStar, hypoDensity, surfaceArea float64) (float64, error) {
	if surfaceArea <= 0 {
		return 0, &DomainError{Quantity: "surface area", Value: surfaceArea, Min: 0, Max: math.Inf(1)}
	}
	return WedderburnNumberL(deltaRho, metaTop, uStar, hypoDensity, 2*math.Sqrt(surfaceArea/math.Pi))
}

// WedderburnNumberL is WedderburnNumber with an explicit fetch length (m).
func WedderburnNumberL(deltaRho, metaTop, uStar, hypoDensity, length float64) (float64, error) {
	if uStar == 0 {
		return 0, &UndefinedIndexError{Index: "wedderburn number", Reason: "friction velocity is zero"}
	}
	if length <= 0 {
		return 0, &UndefinedIndexError{Index: "wedderburn number", Reason: "non-positive fetch length"}
	}
	if hypoDensity <= 0 {
		return 0, &DomainError{Quantity: "hypolimnion density", Value: hypoDensity, Min: 0, Max: math.Inf(1)}
	}
	gPrime := gravity * deltaRho / hypoDensity
	return gPrime * metaTop * metaTop / (uStar * uStar * length), nil
}
