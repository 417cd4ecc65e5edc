package material_test

import (
	"testing"

	"radphys/entity/material"
)

func TestUnmarshalTextRoundTrip(t *testing.T) {
	for _, m := range material.All() {
		got, err := material.UnmarshalText(m.String())
		if err != nil {
			t.Fatalf("UnmarshalText(%q): %v", m.String(), err)
		}
		if got != m {
			t.Fatalf("UnmarshalText(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestUnmarshalTextInvalid(t *testing.T) {
	if _, err := material.UnmarshalText("unobtainium"); err == nil {
		t.Fatal("expected error for unsupported material")
	}
	if _, err := material.UnmarshalText(""); err == nil {
		t.Fatal("expected error for empty material")
	}
}

func TestWorkFunctions(t *testing.T) {
	cases := []struct {
		m    material.Material
		want float64
	}{
		{material.Cesium, 2.1},
		{material.Sodium, 2.28},
		{material.Copper, 4.7},
		{material.Platinum, 6.35},
	}
	for _, c := range cases {
		if got := c.m.WorkFunction(); got != c.want {
			t.Fatalf("WorkFunction(%v) = %v, want %v", c.m, got, c.want)
		}
	}
}
