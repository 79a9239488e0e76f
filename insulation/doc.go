// Package insulation provides density, thermal conductivity and heat
// capacity tables for building materials (DIN EN 12524), insulating and
// construction products (ASHRAE Handbook: Fundamentals) and refractories
// (VDI Heat Atlas), with exact and fuzzy lookup by material name.
//
// The tables ship embedded in the binary and are decoded once at package
// load. Refractory conductivity and heat capacity are temperature dependent
// between 673.15 K and 1473.15 K; requests outside that range clamp to the
// nearest tabulated limit.
package insulation
