package server_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"radphys/config"
	"radphys/server"
)

func newTestServer(t *testing.T, concepts ...string) *httptest.Server {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.Concepts = concepts

	s, err := server.New(cfg)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestIndexListsConcepts(t *testing.T) {
	ts := newTestServer(t)

	code, body := get(t, ts.URL+"/")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	for _, want := range []string{"Photoelectric Effect", "Compton Scattering", "Pair Production"} {
		if !strings.Contains(body, want) {
			t.Fatalf("index is missing %q", want)
		}
	}
}

func TestUnknownPath(t *testing.T) {
	ts := newTestServer(t)
	if code, _ := get(t, ts.URL+"/annihilation"); code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}

func TestConceptSubset(t *testing.T) {
	ts := newTestServer(t, "compton")

	if code, _ := get(t, ts.URL+"/compton"); code != http.StatusOK {
		t.Fatalf("compton status = %d, want 200", code)
	}
	if code, _ := get(t, ts.URL+"/photoelectric"); code != http.StatusNotFound {
		t.Fatalf("photoelectric status = %d, want 404 when disabled", code)
	}
}

func TestInvalidConceptConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.Concepts = []string{"alchemy"}
	if _, err := server.New(cfg); err == nil {
		t.Fatal("expected error for invalid concept in config")
	}
}

func TestComptonPage(t *testing.T) {
	ts := newTestServer(t)

	code, body := get(t, ts.URL+"/compton?energy=0.5&angle=90")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	for _, want := range []string{"Scattered photon energy", "Recoil electron energy", "0.253 MeV"} {
		if !strings.Contains(body, want) {
			t.Fatalf("page is missing %q", want)
		}
	}
}

func TestComptonPageInvalidAngle(t *testing.T) {
	ts := newTestServer(t)

	code, body := get(t, ts.URL+"/compton?energy=1&angle=270")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with inline error", code)
	}
	if !strings.Contains(body, "scattering angle must be in [0°, 180°]") {
		t.Fatal("page is missing the inline validation message")
	}
	if strings.Contains(body, "<iframe") {
		t.Fatal("no chart should be shown for invalid input")
	}
}

func TestComptonPageNonFiniteEnergy(t *testing.T) {
	ts := newTestServer(t)

	// strconv.ParseFloat accepts "NaN" and "Inf"; the validators must stop
	// them before any quantity is computed.
	for _, raw := range []string{"NaN", "Inf", "-Inf"} {
		code, body := get(t, ts.URL+"/compton?energy="+raw+"&angle=90")
		if code != http.StatusOK {
			t.Fatalf("energy=%s: status = %d, want 200 with inline error", raw, code)
		}
		if !strings.Contains(body, "incident energy must be positive and finite") {
			t.Fatalf("energy=%s: page is missing the validation message", raw)
		}
		if strings.Contains(body, "<iframe") {
			t.Fatalf("energy=%s: no chart should be shown", raw)
		}
		if strings.Contains(body, "<td>NaN") {
			t.Fatalf("energy=%s: NaN leaked into the metrics table", raw)
		}
	}

	if code, _ := get(t, ts.URL+"/compton/chart?energy=NaN&angle=90"); code != http.StatusBadRequest {
		t.Fatalf("chart status = %d, want 400", code)
	}
}

func TestPhotoelectricPageBelowThreshold(t *testing.T) {
	ts := newTestServer(t)

	code, body := get(t, ts.URL+"/photoelectric?energy=1.5&material=platinum")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	for _, want := range []string{"not possible", "Energy deficit", "4.85 eV"} {
		if !strings.Contains(body, want) {
			t.Fatalf("page is missing %q", want)
		}
	}
}

func TestPhotoelectricPageUnsupportedMaterial(t *testing.T) {
	ts := newTestServer(t)

	_, body := get(t, ts.URL+"/photoelectric?energy=10&material=kryptonite")
	if !strings.Contains(body, "unsupported material") {
		t.Fatal("page is missing the material validation message")
	}
}

func TestPairPageBelowThreshold(t *testing.T) {
	ts := newTestServer(t)

	code, body := get(t, ts.URL+"/pair?energy=0.8&z=26")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	for _, want := range []string{"below threshold", "Energy deficit", "0.222 MeV"} {
		if !strings.Contains(body, want) {
			t.Fatalf("page is missing %q", want)
		}
	}
}

func TestChartEndpoints(t *testing.T) {
	ts := newTestServer(t)

	urls := []string{
		"/photoelectric/chart?energy=25&material=sodium",
		"/compton/chart?energy=1&angle=90&figure=energy",
		"/compton/chart?energy=1&angle=90&figure=shift",
		"/pair/chart?energy=2.5&z=26&figure=budget",
		"/pair/chart?energy=2.5&z=26&figure=crosssection",
		"/thomson/chart",
		"/rayleigh/chart?energy=60&z=13",
		"/triplet/chart?max=20",
		"/photodisintegration/chart?max=30",
	}
	for _, u := range urls {
		code, body := get(t, ts.URL+u)
		if code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", u, code)
		}
		if !strings.Contains(body, "echarts") {
			t.Fatalf("%s: response does not look like a chart", u)
		}
	}
}

func TestChartEndpointInvalidInput(t *testing.T) {
	ts := newTestServer(t)

	code, _ := get(t, ts.URL+"/compton/chart?energy=-1")
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}
