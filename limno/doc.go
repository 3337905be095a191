// Package limno implements the profile-analysis core for lake
// stratification: thermocline and metalimnion detection, volume-weighted
// layer averages, and the standard water-column stability indices (Schmidt
// stability, buoyancy frequency, friction velocity, Lake Number and
// Wedderburn Number).
//
// All functions are pure. They operate on in-memory depth profiles and an
// immutable bathymetry table, perform no I/O, and keep no state between
// calls. Batch application across timestamped series lives in the series
// package.
package limno
