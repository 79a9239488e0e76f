// Package numerics provides the small numerical kernel shared by the
// correlation packages: a Brent scalar root solver, modified Bessel
// functions, B-spline evaluation for embedded chart fits, and grid
// interpolation helpers.
package numerics
