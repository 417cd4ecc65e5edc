package physics_test

import (
	"math"
	"testing"

	"radphys/physics"
)

func TestLookup(t *testing.T) {
	c := physics.Lookup("planck")
	if c.Value != physics.PlanckConstant {
		t.Fatalf("planck = %v, want %v", c.Value, physics.PlanckConstant)
	}
	if c.Unit != "J·s" {
		t.Fatalf("planck unit = %q, want J·s", c.Unit)
	}

	if got := physics.Lookup("electron-rest-energy"); got.Value != physics.ElectronRestEnergy {
		t.Fatalf("electron-rest-energy = %v, want %v", got.Value, physics.ElectronRestEnergy)
	}

	if got := physics.Lookup("planck-bar"); got.Value != physics.PlanckConstantBar {
		t.Fatalf("planck-bar = %v, want %v", got.Value, physics.PlanckConstantBar)
	}
}

func TestLookupUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown constant name")
		}
	}()
	physics.Lookup("flux-capacitance")
}

func TestEnergyWavelengthRoundTrip(t *testing.T) {
	for _, energy := range []float64{0.0045, 1, 60, 500, 1022, 50000} {
		back := physics.WavelengthToEnergy(physics.EnergyToWavelength(energy))
		if math.Abs(back-energy)/energy > 1e-12 {
			t.Fatalf("round trip of %v keV gave %v keV", energy, back)
		}
	}
}

func TestEnergyToWavelengthScale(t *testing.T) {
	// 511 keV photon wavelength is about 0.0243 Å, the Compton wavelength.
	got := physics.EnergyToWavelength(physics.ElectronRestEnergy) * physics.MetersToAngstrom
	if math.Abs(got-0.0243) > 1e-4 {
		t.Fatalf("λ(511 keV) = %v Å, want ≈ 0.0243 Å", got)
	}
}

func TestAtomicNumber(t *testing.T) {
	z, err := physics.AtomicNumber("Pb")
	if err != nil {
		t.Fatalf("AtomicNumber: %v", err)
	}
	if z != 82 {
		t.Fatalf("Z(Pb) = %d, want 82", z)
	}

	if _, err := physics.AtomicNumber("Xx"); err == nil {
		t.Fatal("expected error for unknown element")
	}
}
