package conduction

import (
	"fmt"
	"math"
	"strings"
)

// Conduction shape factors S for common isothermal geometries. For each,
// Q = S*k*(T1-T2) and the shape resistance is 1/(S*k).

// SIsothermalSphereToPlane returns the shape factor of an isothermal sphere
// of diameter d whose center is z away from an infinite plane.
func SIsothermalSphereToPlane(d, z float64) float64 {
	return 2 * math.Pi * d / (1. - d/(4.*z))
}

// SIsothermalPipeToPlane returns the shape factor of an isothermal pipe of
// diameter d and length l whose center is z away from an infinite plane.
// l should be much larger than d.
func SIsothermalPipeToPlane(d, z, l float64) float64 {
	return 2. * math.Pi * l / math.Acosh(2.*z/d)
}

// SIsothermalPipeNormalToPlane returns the shape factor of an isothermal
// pipe of diameter d extending a length l into an infinite medium below an
// infinite plane.
func SIsothermalPipeNormalToPlane(d, l float64) float64 {
	return 2. * math.Pi * l / math.Log(4.*l/d)
}

// SIsothermalPipeToIsothermalPipe returns the shape factor between two
// parallel isothermal pipes of diameters d1 and d2 in an infinite medium,
// with w between their centers. l should be much larger than w.
func SIsothermalPipeToIsothermalPipe(d1, d2, w, l float64) float64 {
	return 2. * math.Pi * l / math.Acosh((4*w*w-d1*d1-d2*d2)/(2.*d1*d2))
}

// SIsothermalPipeToTwoPlanes returns the shape factor of an isothermal pipe
// of diameter d midway between two parallel isothermal planes 2z apart.
func SIsothermalPipeToTwoPlanes(d, z, l float64) float64 {
	return 2. * math.Pi * l / math.Log(8.*z/(math.Pi*d))
}

// SIsothermalPipeEccentricToIsothermalPipe returns the shape factor of a
// pipe of diameter d1 inside another pipe of diameter d2, their centers
// offset by z. d2 should be larger than d1.
func SIsothermalPipeEccentricToIsothermalPipe(d1, d2, z, l float64) float64 {
	return 2. * math.Pi * l / math.Acosh((d2*d2+d1*d1-4.*z*z)/(2.*d1*d2))
}

// Shape factor geometry names accepted by ShapeFactor, in the argument
// convention of ShapeFactorConfig.
const (
	SphereToPlane                = "sphere to plane"
	PipeToPlane                  = "pipe to plane"
	PipeNormalToPlane            = "pipe normal to plane"
	PipeToIsothermalPipe         = "pipe to isothermal pipe"
	PipeToTwoPlanes              = "pipe to two planes"
	PipeEccentricToIsothermalPipe = "pipe eccentric to isothermal pipe"
)

// ShapeFactorGeometries lists the geometries ShapeFactor accepts.
var ShapeFactorGeometries = []string{
	SphereToPlane,
	PipeToPlane,
	PipeNormalToPlane,
	PipeToIsothermalPipe,
	PipeToTwoPlanes,
	PipeEccentricToIsothermalPipe,
}

// ShapeFactorConfig carries the dimensions a shape factor geometry may use.
// D1 is the primary body diameter; D2 the second pipe where one exists; Z
// the center offset or plane distance; W the center-to-center spacing of
// parallel pipes; L the length (1 for the dimensionless forms).
type ShapeFactorConfig struct {
	D1 float64
	D2 float64
	Z  float64
	W  float64
	L  float64
}

// ShapeFactor computes the conduction shape factor for a named geometry.
// An unrecognized geometry returns an error listing the accepted names.
func ShapeFactor(geometry string, cfg ShapeFactorConfig) (float64, error) {
	l := cfg.L
	if l == 0 {
		l = 1
	}
	switch strings.ToLower(geometry) {
	case SphereToPlane:
		return SIsothermalSphereToPlane(cfg.D1, cfg.Z), nil
	case PipeToPlane:
		return SIsothermalPipeToPlane(cfg.D1, cfg.Z, l), nil
	case PipeNormalToPlane:
		return SIsothermalPipeNormalToPlane(cfg.D1, l), nil
	case PipeToIsothermalPipe:
		return SIsothermalPipeToIsothermalPipe(cfg.D1, cfg.D2, cfg.W, l), nil
	case PipeToTwoPlanes:
		return SIsothermalPipeToTwoPlanes(cfg.D1, cfg.Z, l), nil
	case PipeEccentricToIsothermalPipe:
		return SIsothermalPipeEccentricToIsothermalPipe(cfg.D1, cfg.D2, cfg.Z, l), nil
	}
	return 0, fmt.Errorf("unknown shape factor geometry %q: valid geometries are %v", geometry, ShapeFactorGeometries)
}

// QShapeFactor returns the heat transferred between the two isothermal
// boundaries of a shape factor geometry with medium conductivity k.
func QShapeFactor(s, k, t1, t2 float64) float64 {
	return s * k * (t1 - t2)
}
