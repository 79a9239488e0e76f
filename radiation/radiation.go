// Package radiation covers thermal radiation: blackbody spectral radiance
// and grey-body radiant heat flux.
package radiation

import "math"

// Physical constants (CODATA 2014, matching the published worked examples).
const (
	planck          = 6.62607004e-34  // [J*s]
	speedOfLight    = 299792458.0     // [m/s]
	boltzmann       = 1.38064852e-23  // [J/K]
	stefanBoltzmann = 5.670367e-08    // [W/m^2/K^4]
)

// BlackbodySpectralRadiance returns the spectral radiance of a blackbody
// surface at temperature t for the given wavelength, in W/m^3/sr. It can be
// used to derive the Stefan-Boltzmann law or to locate the peak radiant
// wavelength for a temperature.
func BlackbodySpectralRadiance(t, wavelength float64) float64 {
	l := wavelength
	return 2. * planck * speedOfLight * speedOfLight /
		(l * l * l * l * l) /
		(math.Exp(planck*speedOfLight/(l*t*boltzmann)) - 1.)
}

// QRad returns the radiant heat flux of a grey surface with the given
// emissivity at temperature t, optionally net of radiation received back
// from surroundings at t2 (pass 0 for emission into empty space). t2 may
// exceed t, giving a negative flux.
func QRad(emissivity, t, t2 float64) float64 {
	return stefanBoltzmann * emissivity * (t*t*t*t - t2*t2*t2*t2)
}
