// Package ht is a reference library of heat-transfer correlations for
// process engineering: convection, conduction, radiation, boiling,
// condensation, heat-exchanger sizing and rating methods, and insulation
// material properties.
//
// Every correlation is a stateless function of named physical quantities in
// SI units. Families of competing published correlations are grouped behind
// dispatcher functions that select by method name, with the available names
// exported as ordered slices; an empty name selects the recommended default
// and an unknown name returns a descriptive error.
//
// The root package carries the primitives shared across the domain
// subpackages: log-mean temperature difference, heating/cooling direction
// checks, wall-property correction factors, and fin efficiency.
package ht
