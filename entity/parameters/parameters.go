// Package parameters holds the user-adjusted inputs of each page. A record
// is built fresh from the request, validated, and discarded once the derived
// quantities are computed.
package parameters

import (
	"fmt"
	"math"

	"radphys/entity/material"
)

// finite rejects NaN and ±Inf, which pass ordered comparisons against any
// domain bound.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Photoelectric are the photoelectric page inputs.
type Photoelectric struct {
	PhotonEnergy float64 // eV
	Material     material.Material
}

func (p Photoelectric) Validate() error {
	if p.PhotonEnergy <= 0 || !finite(p.PhotonEnergy) {
		return fmt.Errorf("photon energy must be positive and finite, got %g eV", p.PhotonEnergy)
	}
	return nil
}

// Compton are the Compton scattering page inputs.
type Compton struct {
	IncidentEnergy  float64 // MeV
	ScatteringAngle float64 // degrees
}

func (c Compton) Validate() error {
	if c.IncidentEnergy <= 0 || !finite(c.IncidentEnergy) {
		return fmt.Errorf("incident energy must be positive and finite, got %g MeV", c.IncidentEnergy)
	}
	if c.ScatteringAngle < 0 || c.ScatteringAngle > 180 || !finite(c.ScatteringAngle) {
		return fmt.Errorf("scattering angle must be in [0°, 180°], got %g°", c.ScatteringAngle)
	}
	return nil
}

// Pair are the pair production page inputs.
type Pair struct {
	IncidentEnergy float64 // MeV
	AtomicNumber   int     // nuclear charge Z
}

func (p Pair) Validate() error {
	if p.IncidentEnergy <= 0 || !finite(p.IncidentEnergy) {
		return fmt.Errorf("incident energy must be positive and finite, got %g MeV", p.IncidentEnergy)
	}
	if p.AtomicNumber < 1 || p.AtomicNumber > 100 {
		return fmt.Errorf("nuclear charge must be in [1, 100], got %d", p.AtomicNumber)
	}
	return nil
}

// Rayleigh are the Rayleigh scattering page inputs.
type Rayleigh struct {
	PhotonEnergy float64 // keV
	AtomicNumber int
}

func (r Rayleigh) Validate() error {
	if r.PhotonEnergy <= 0 || !finite(r.PhotonEnergy) {
		return fmt.Errorf("photon energy must be positive and finite, got %g keV", r.PhotonEnergy)
	}
	if r.AtomicNumber < 1 || r.AtomicNumber > 100 {
		return fmt.Errorf("atomic number must be in [1, 100], got %d", r.AtomicNumber)
	}
	return nil
}

// EnergyRange are the inputs of the pages that only choose an energy axis
// limit (triplet production, photodisintegration).
type EnergyRange struct {
	MaxEnergy float64 // MeV
}

func (e EnergyRange) Validate() error {
	if e.MaxEnergy <= 0 || !finite(e.MaxEnergy) {
		return fmt.Errorf("maximum energy must be positive and finite, got %g MeV", e.MaxEnergy)
	}
	return nil
}
