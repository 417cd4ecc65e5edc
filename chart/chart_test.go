package chart_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"radphys/chart"
)

func TestLineRender(t *testing.T) {
	x := []float64{0, 90, 180}
	line := chart.Line(chart.Options{
		Title: "Test Figure",
		XName: "Scattering angle, °",
		YName: "Energy, MeV",
	}, x, chart.Series{Name: "Scattered photon", Values: []float64{1, 0.6, 0.4}})

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Test Figure", "Scattered photon", "echarts"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered chart is missing %q", want)
		}
	}
}

func TestFigures(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 0.5, 1}

	figures := map[string]interface {
		Render(w io.Writer) error
	}{
		"energy-frequency": chart.EnergyFrequency(x, y, y, y),
		"compton-energies": chart.ComptonEnergies(x, y, y),
		"wavelength-shift": chart.WavelengthShift(x, y),
		"pair-budget":      chart.PairEnergyBudget(x, y, y, y),
		"pair-xs":          chart.PairCrossSection(x, y),
		"angular":          chart.AngularDistribution("Angular", x, y),
		"triplet":          chart.TripletBudget(x, y, y),
		"photonuclear":     chart.Photodisintegration(x, y),
	}
	for name, fig := range figures {
		var buf bytes.Buffer
		if err := fig.Render(&buf); err != nil {
			t.Fatalf("%s: Render: %v", name, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s: empty render output", name)
		}
	}
}
