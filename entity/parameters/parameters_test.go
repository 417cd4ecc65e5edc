package parameters_test

import (
	"math"
	"testing"

	"radphys/entity/material"
	"radphys/entity/parameters"
)

func TestPhotoelectricValidate(t *testing.T) {
	ok := parameters.Photoelectric{PhotonEnergy: 25, Material: material.Sodium}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	bad := parameters.Photoelectric{PhotonEnergy: -1, Material: material.Sodium}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for negative energy")
	}
	for _, energy := range []float64{math.NaN(), math.Inf(1)} {
		p := parameters.Photoelectric{PhotonEnergy: energy, Material: material.Sodium}
		if err := p.Validate(); err == nil {
			t.Fatalf("expected error for energy %v", energy)
		}
	}
}

func TestComptonValidate(t *testing.T) {
	ok := parameters.Compton{IncidentEnergy: 1, ScatteringAngle: 90}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cases := []parameters.Compton{
		{IncidentEnergy: 0, ScatteringAngle: 90},
		{IncidentEnergy: 1, ScatteringAngle: -1},
		{IncidentEnergy: 1, ScatteringAngle: 181},
		{IncidentEnergy: math.NaN(), ScatteringAngle: 90},
		{IncidentEnergy: 1, ScatteringAngle: math.NaN()},
		{IncidentEnergy: math.Inf(1), ScatteringAngle: 90},
	}
	for _, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("expected error for %+v", c)
		}
	}
}

func TestPairValidate(t *testing.T) {
	ok := parameters.Pair{IncidentEnergy: 2.5, AtomicNumber: 26}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cases := []parameters.Pair{
		{IncidentEnergy: 0, AtomicNumber: 26},
		{IncidentEnergy: 2.5, AtomicNumber: 0},
		{IncidentEnergy: 2.5, AtomicNumber: 101},
		{IncidentEnergy: math.NaN(), AtomicNumber: 26},
		{IncidentEnergy: math.Inf(1), AtomicNumber: 26},
	}
	for _, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("expected error for %+v", c)
		}
	}
}

func TestEnergyRangeValidate(t *testing.T) {
	if err := (parameters.EnergyRange{MaxEnergy: 20}).Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := (parameters.EnergyRange{}).Validate(); err == nil {
		t.Fatal("expected error for zero max energy")
	}
	if err := (parameters.EnergyRange{MaxEnergy: math.NaN()}).Validate(); err == nil {
		t.Fatal("expected error for NaN max energy")
	}
}
