// Package conduction covers steady-state heat conduction: conversions
// between thermal conductivity, resistance, resistivity and R-value,
// conduction shape factors for buried and enclosed geometries, and the
// multilayer cylindrical wall problem.
package conduction
