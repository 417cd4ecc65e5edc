// Package physics holds the physical constants table and the pure
// calculation functions for photon-matter interactions. All functions take
// explicit arguments and keep their units in keV/MeV or SI as documented,
// so they can be exercised without any of the page plumbing.
package physics

import (
	"fmt"
	"math"
)

// Fundamental constants, CODATA 2022.
const (
	PlanckConstant     = 6.62607015e-34    // J·s
	SpeedOfLight       = 2.99792458e8      // m/s
	ElectronRestMass   = 9.1093837015e-31  // kg
	ElectronRestEnergy = 510.998946        // keV
	ProtonRestMass     = 1.67262192369e-27 // kg
	NeutronRestMass    = 1.67492749804e-27 // kg
)

// PlanckConstantBar is ħ = h/2π in J·s.
var PlanckConstantBar = PlanckConstant / (2 * math.Pi)

// Conversion factors.
const (
	EVToJoules  = 1.602176634e-19
	KeVToJoules = 1.602176634e-16
	MeVToJoules = 1.602176634e-13

	JoulesToEV  = 1 / EVToJoules
	JoulesToKeV = 1 / KeVToJoules
	JoulesToMeV = 1 / MeVToJoules

	AngstromToMeters = 1e-10
	MetersToAngstrom = 1e10
)

// Process thresholds.
const (
	// PairThreshold is 2·m_e·c², the minimum photon energy for
	// electron-positron pair production, in keV.
	PairThreshold = 2 * ElectronRestEnergy

	// TripletThreshold is 4·m_e·c², the minimum photon energy for triplet
	// production in the field of an atomic electron, in MeV.
	TripletThreshold = 2.044
)

// Constant is a named physical constant with its unit.
type Constant struct {
	Name  string
	Value float64
	Unit  string
}

var constants = map[string]Constant{
	"planck":               {"planck", PlanckConstant, "J·s"},
	"planck-bar":           {"planck-bar", PlanckConstantBar, "J·s"},
	"speed-of-light":       {"speed-of-light", SpeedOfLight, "m/s"},
	"electron-rest-mass":   {"electron-rest-mass", ElectronRestMass, "kg"},
	"electron-rest-energy": {"electron-rest-energy", ElectronRestEnergy, "keV"},
	"proton-rest-mass":     {"proton-rest-mass", ProtonRestMass, "kg"},
	"neutron-rest-mass":    {"neutron-rest-mass", NeutronRestMass, "kg"},
}

// Lookup returns the named constant. The table is fixed at compile time, so
// an unknown name is a programming error and panics.
func Lookup(name string) Constant {
	c, ok := constants[name]
	if !ok {
		panic(fmt.Sprintf("physics: unknown constant %q", name))
	}
	return c
}

// AtomicNumbers maps element symbols to Z for the supported elements.
var AtomicNumbers = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6,
	"N": 7, "O": 8, "F": 9, "Ne": 10, "Na": 11, "Mg": 12,
	"Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18,
	"K": 19, "Ca": 20, "Fe": 26, "Cu": 29, "Zn": 30, "Ag": 47,
	"I": 53, "W": 74, "Pb": 82, "U": 92,
}

// AtomicNumber returns Z for an element symbol. Unknown symbols are a user
// input condition, not a programming error.
func AtomicNumber(symbol string) (int, error) {
	z, ok := AtomicNumbers[symbol]
	if !ok {
		return 0, fmt.Errorf("unsupported element: %q", symbol)
	}
	return z, nil
}

// EnergyToWavelength converts a photon energy in keV to its wavelength in
// meters. Energy must be positive.
func EnergyToWavelength(energyKeV float64) float64 {
	return (PlanckConstant * SpeedOfLight) / (energyKeV * KeVToJoules)
}

// WavelengthToEnergy converts a wavelength in meters to the photon energy in
// keV. Inverse of EnergyToWavelength.
func WavelengthToEnergy(wavelengthM float64) float64 {
	return (PlanckConstant * SpeedOfLight) / (wavelengthM * KeVToJoules)
}

// ComptonWavelength is λ_C = h/(m_e·c) in meters.
func ComptonWavelength() float64 {
	return PlanckConstant / (ElectronRestMass * SpeedOfLight)
}
