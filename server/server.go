// Package server renders the per-concept pages. Each page gathers the
// request's control values, validates them, runs the physics functions and
// shows the derived quantities; the charts themselves are served on a
// per-figure endpoint embedded in the page.
package server

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"radphys/chart"
	"radphys/config"
	"radphys/entity/concept"
	"radphys/entity/material"
	"radphys/entity/parameters"
	"radphys/physics"
)

type Server struct {
	cfg      *config.Config
	concepts []concept.Concept
	mux      *http.ServeMux
}

// New builds a server for the concepts enabled in the config. An empty
// concept list enables all pages.
func New(cfg *config.Config) (*Server, error) {
	concepts := concept.All()
	if len(cfg.Concepts) > 0 {
		concepts = make([]concept.Concept, 0, len(cfg.Concepts))
		for _, name := range cfg.Concepts {
			c, err := concept.UnmarshalText(name)
			if err != nil {
				return nil, fmt.Errorf("invalid concept in config: %w", err)
			}
			concepts = append(concepts, c)
		}
	}

	s := &Server{
		cfg:      cfg,
		concepts: concepts,
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("/", s.index)
	for _, c := range concepts {
		page, figure := s.handlers(c)
		s.mux.HandleFunc(c.Route(), page)
		s.mux.HandleFunc(c.Route()+"/chart", figure)
	}

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handlers(c concept.Concept) (page, figure http.HandlerFunc) {
	switch c {
	case concept.Photoelectric:
		return s.photoelectricPage, s.photoelectricChart
	case concept.Compton:
		return s.comptonPage, s.comptonChart
	case concept.Pair:
		return s.pairPage, s.pairChart
	case concept.Thomson:
		return s.thomsonPage, s.thomsonChart
	case concept.Rayleigh:
		return s.rayleighPage, s.rayleighChart
	case concept.Triplet:
		return s.tripletPage, s.tripletChart
	default:
		return s.photoNuclearPage, s.photoNuclearChart
	}
}

func (s *Server) nav() []navItem {
	items := make([]navItem, len(s.concepts))
	for i, c := range s.concepts {
		items[i] = navItem{Title: c.Title(), Route: c.Route(), Description: c.Description()}
	}
	return items
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, indexTmpl, pageData{Nav: s.nav()})
}

func (s *Server) render(w http.ResponseWriter, tmpl *template.Template, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		log.WithError(err).Error("failed to render page")
	}
}

// query helpers. A missing parameter falls back to the configured default; a
// malformed one is a user input error reported on the page.

func floatParam(q url.Values, name string, def float64) (float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

func chartURL(route string, params url.Values) string {
	return route + "/chart?" + params.Encode()
}

func ff(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// Photoelectric effect.

func (s *Server) photoelectricInput(q url.Values) (parameters.Photoelectric, error) {
	energy, err := floatParam(q, "energy", s.cfg.Defaults.PhotonEnergyEV)
	if err != nil {
		return parameters.Photoelectric{}, err
	}
	name := q.Get("material")
	if name == "" {
		name = s.cfg.Defaults.Material
	}
	mat, err := material.UnmarshalText(name)
	if err != nil {
		return parameters.Photoelectric{}, err
	}
	in := parameters.Photoelectric{PhotonEnergy: energy, Material: mat}
	return in, in.Validate()
}

func (s *Server) photoelectricPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:    concept.Photoelectric.Title(),
		Subtitle: concept.Photoelectric.Description(),
		Nav:      s.nav(),
		Notes: []string{
			"Energy conservation: photon energy = work function + kinetic energy.",
			"The threshold frequency is independent of intensity; below it no electrons are emitted.",
			"Intensity changes the emission rate, not the energy per electron.",
			"Photoelectric absorption dominates X-ray attenuation at diagnostic energies.",
		},
	}

	in, err := s.photoelectricInput(r.URL.Query())
	mats := make([]option, 0, len(material.All()))
	for _, m := range material.All() {
		mats = append(mats, option{
			Label:    fmt.Sprintf("%s (%.2f eV)", m.Title(), m.WorkFunction()),
			Value:    m.String(),
			Selected: err == nil && m == in.Material,
		})
	}
	data.Controls = []control{
		{Label: "Photon energy, eV", Name: "energy", Value: ff(in.PhotonEnergy, 1), Min: "0.5", Max: "50", Step: "0.5"},
		{Label: "Material", Name: "material", Options: mats},
	}

	if err != nil {
		data.Error = err.Error()
		s.render(w, pageTmpl, data)
		return
	}

	res, err := physics.Photoelectric(in.PhotonEnergy, in.Material.WorkFunction())
	if err != nil {
		data.Error = err.Error()
		s.render(w, pageTmpl, data)
		return
	}

	data.Metrics = []metric{
		{"Work function", ff(in.Material.WorkFunction(), 2) + " eV"},
		{"Photon energy", ff(in.PhotonEnergy, 1) + " eV"},
		{"Threshold frequency", ff(res.ThresholdFrequency/1e14, 2) + " × 10¹⁴ Hz"},
		{"Threshold wavelength", ff(res.ThresholdWavelength*1e9, 1) + " nm"},
	}
	if res.CanEject {
		data.Metrics = append(data.Metrics,
			metric{"Electron ejection", "possible"},
			metric{"Max kinetic energy", ff(res.KineticEnergy, 2) + " eV"},
		)
	} else {
		data.Metrics = append(data.Metrics,
			metric{"Electron ejection", "not possible"},
			metric{"Energy deficit", ff(in.Material.WorkFunction()-in.PhotonEnergy, 2) + " eV"},
		)
	}

	params := url.Values{}
	params.Set("energy", ff(in.PhotonEnergy, 4))
	params.Set("material", in.Material.String())
	data.Charts = []string{chartURL(concept.Photoelectric.Route(), params)}

	s.render(w, pageTmpl, data)
}

func (s *Server) photoelectricChart(w http.ResponseWriter, r *http.Request) {
	in, err := s.photoelectricInput(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	const points = 500
	maxEnergy := math.Max(50, 1.2*in.PhotonEnergy) // eV
	workFn := in.Material.WorkFunction()

	freq := make([]float64, points)
	photon := make([]float64, points)
	level := make([]float64, points)
	kinetic := make([]float64, points)
	for i := range freq {
		e := maxEnergy * float64(i) / float64(points-1)
		photon[i] = e
		level[i] = workFn
		kinetic[i] = math.Max(0, e-workFn)
		freq[i] = e * physics.EVToJoules / physics.PlanckConstant / 1e14
	}

	s.renderChart(w, chart.EnergyFrequency(freq, photon, level, kinetic))
}

// Compton scattering.

func (s *Server) comptonInput(q url.Values) (parameters.Compton, error) {
	energy, err := floatParam(q, "energy", s.cfg.Defaults.ComptonEnergyMeV)
	if err != nil {
		return parameters.Compton{}, err
	}
	angle, err := floatParam(q, "angle", s.cfg.Defaults.ScatteringAngleDeg)
	if err != nil {
		return parameters.Compton{}, err
	}
	in := parameters.Compton{IncidentEnergy: energy, ScatteringAngle: angle}
	return in, in.Validate()
}

func (s *Server) comptonPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:    concept.Compton.Title(),
		Subtitle: concept.Compton.Description(),
		Nav:      s.nav(),
		Notes: []string{
			"The wavelength shift Δλ = λ_C(1 − cos θ) is independent of the incident energy.",
			"The Compton wavelength λ_C = h/(m_e c) ≈ 0.0243 Å sets the scale of the shift.",
			"Energy conservation: incident = scattered photon + recoil electron.",
			"The maximum shift 2λ_C occurs at 180° backscatter.",
		},
	}

	in, err := s.comptonInput(r.URL.Query())
	data.Controls = []control{
		{Label: "Incident photon energy, MeV", Name: "energy", Value: ff(in.IncidentEnergy, 1), Min: "0.1", Max: "10", Step: "0.1"},
		{Label: "Scattering angle, °", Name: "angle", Value: ff(in.ScatteringAngle, 0), Min: "0", Max: "180", Step: "5"},
	}

	if err != nil {
		data.Error = err.Error()
		s.render(w, pageTmpl, data)
		return
	}

	res, err := physics.Compton(in.IncidentEnergy*1000, in.ScatteringAngle)
	if err != nil {
		data.Error = err.Error()
		s.render(w, pageTmpl, data)
		return
	}

	data.Metrics = []metric{
		{"Incident energy", ff(in.IncidentEnergy, 3) + " MeV"},
		{"Scattering angle", ff(in.ScatteringAngle, 0) + "°"},
		{"Scattered photon energy", ff(res.ScatteredEnergy/1000, 3) + " MeV"},
		{"Recoil electron energy", ff(res.RecoilEnergy/1000, 3) + " MeV"},
		{"Wavelength shift Δλ", ff(res.WavelengthShift, 4) + " Å"},
		{"Compton wavelength λ_C", ff(res.ComptonWavelength, 4) + " Å"},
		{"Max Δλ (180°)", ff(physics.MaxWavelengthShift(), 4) + " Å"},
	}

	energyParams, shiftParams := url.Values{}, url.Values{}
	for _, v := range []url.Values{energyParams, shiftParams} {
		v.Set("energy", ff(in.IncidentEnergy, 4))
	}
	energyParams.Set("figure", "energy")
	shiftParams.Set("figure", "shift")
	data.Charts = []string{
		chartURL(concept.Compton.Route(), energyParams),
		chartURL(concept.Compton.Route(), shiftParams),
	}

	s.render(w, pageTmpl, data)
}

func (s *Server) comptonChart(w http.ResponseWriter, r *http.Request) {
	in, err := s.comptonInput(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	const points = 181
	angles := make([]float64, points)
	scattered := make([]float64, points)
	recoil := make([]float64, points)
	shift := make([]float64, points)
	for i := range angles {
		angles[i] = float64(i) * 180 / float64(points-1)
		res, err := physics.Compton(in.IncidentEnergy*1000, angles[i])
		if err != nil {
			http.Error(w, "failed to build chart", http.StatusInternalServerError)
			return
		}
		scattered[i] = res.ScatteredEnergy / 1000
		recoil[i] = res.RecoilEnergy / 1000
		shift[i] = res.WavelengthShift
	}

	switch r.URL.Query().Get("figure") {
	case "shift":
		s.renderChart(w, chart.WavelengthShift(angles, shift))
	default:
		s.renderChart(w, chart.ComptonEnergies(angles, scattered, recoil))
	}
}

// Pair production.

func (s *Server) pairInput(q url.Values) (parameters.Pair, error) {
	energy, err := floatParam(q, "energy", s.cfg.Defaults.PairEnergyMeV)
	if err != nil {
		return parameters.Pair{}, err
	}
	z, err := intParam(q, "z", s.cfg.Defaults.AtomicNumber)
	if err != nil {
		return parameters.Pair{}, err
	}
	in := parameters.Pair{IncidentEnergy: energy, AtomicNumber: z}
	return in, in.Validate()
}

func (s *Server) pairPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:    concept.Pair.Title(),
		Subtitle: concept.Pair.Description(),
		Nav:      s.nav(),
		Notes: []string{
			"Pair production requires E_γ ≥ 2m_e c² = 1.022 MeV.",
			"It must occur near a nucleus; the nuclear recoil balances momentum.",
			"Excess energy above threshold becomes kinetic energy of the pair.",
			"The inverse process, annihilation, yields the 511 keV photons used in PET.",
		},
	}

	in, err := s.pairInput(r.URL.Query())
	data.Controls = []control{
		{Label: "Incident photon energy, MeV", Name: "energy", Value: ff(in.IncidentEnergy, 1), Min: "0.5", Max: "10", Step: "0.1"},
		{Label: "Nuclear charge Z", Name: "z", Value: strconv.Itoa(in.AtomicNumber), Min: "1", Max: "100", Step: "1"},
	}

	if err != nil {
		data.Error = err.Error()
		s.render(w, pageTmpl, data)
		return
	}

	res, err := physics.PairProduction(in.IncidentEnergy * 1000)
	if err != nil {
		data.Error = err.Error()
		s.render(w, pageTmpl, data)
		return
	}

	data.Metrics = []metric{
		{"Incident energy", ff(in.IncidentEnergy, 3) + " MeV"},
		{"Threshold energy", ff(res.ThresholdEnergy/1000, 3) + " MeV"},
	}
	if res.CanOccur {
		sigma, err := physics.PairCrossSection(in.IncidentEnergy, in.AtomicNumber)
		if err != nil {
			data.Error = err.Error()
			s.render(w, pageTmpl, data)
			return
		}
		data.Metrics = append(data.Metrics,
			metric{"Pair production", "possible"},
			metric{"Excess energy", ff(res.ExcessEnergy/1000, 3) + " MeV"},
			metric{"Kinetic energy per particle", ff(res.KineticEnergyEach/1000, 3) + " MeV"},
			metric{"Cross-section (Z = " + strconv.Itoa(in.AtomicNumber) + ")", ff(sigma, 2) + " barns"},
		)
	} else {
		data.Metrics = append(data.Metrics,
			metric{"Pair production", "below threshold"},
			metric{"Energy deficit", ff(res.ThresholdEnergy/1000-in.IncidentEnergy, 3) + " MeV"},
		)
	}

	budget, crossSection := url.Values{}, url.Values{}
	for _, v := range []url.Values{budget, crossSection} {
		v.Set("energy", ff(in.IncidentEnergy, 4))
		v.Set("z", strconv.Itoa(in.AtomicNumber))
	}
	budget.Set("figure", "budget")
	crossSection.Set("figure", "crosssection")
	data.Charts = []string{
		chartURL(concept.Pair.Route(), budget),
		chartURL(concept.Pair.Route(), crossSection),
	}

	s.render(w, pageTmpl, data)
}

func (s *Server) pairChart(w http.ResponseWriter, r *http.Request) {
	in, err := s.pairInput(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.URL.Query().Get("figure") == "crosssection" {
		const points = 60
		lo, hi := math.Log10(1.1), math.Log10(10)
		energies := make([]float64, points)
		sigma := make([]float64, points)
		for i := range energies {
			energies[i] = math.Pow(10, lo+(hi-lo)*float64(i)/float64(points-1))
			sigma[i], err = physics.PairCrossSection(energies[i], in.AtomicNumber)
			if err != nil {
				http.Error(w, "failed to build chart", http.StatusInternalServerError)
				return
			}
		}
		s.renderChart(w, chart.PairCrossSection(energies, sigma))
		return
	}

	const points = 200
	maxEnergy := math.Max(10, 1.2*in.IncidentEnergy) // MeV
	energies := make([]float64, points)
	threshold := make([]float64, points)
	excess := make([]float64, points)
	each := make([]float64, points)
	for i := range energies {
		energies[i] = 0.5 + (maxEnergy-0.5)*float64(i)/float64(points-1)
		res, err := physics.PairProduction(energies[i] * 1000)
		if err != nil {
			http.Error(w, "failed to build chart", http.StatusInternalServerError)
			return
		}
		threshold[i] = res.ThresholdEnergy / 1000
		excess[i] = res.ExcessEnergy / 1000
		each[i] = res.KineticEnergyEach / 1000
	}
	s.renderChart(w, chart.PairEnergyBudget(energies, threshold, excess, each))
}

// Thomson scattering.

func (s *Server) thomsonPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageTmpl, pageData{
		Title:    concept.Thomson.Title(),
		Subtitle: concept.Thomson.Description(),
		Nav:      s.nav(),
		Metrics: []metric{
			{"Angular distribution", "I(θ) ∝ 1 + cos²θ"},
			{"Validity", "photon energy ≪ electron rest energy"},
		},
		Charts: []string{chartURL(concept.Thomson.Route(), url.Values{})},
		Notes: []string{
			"Classical limit of photon-electron scattering with no energy loss.",
			"Provides intuition for scattering backgrounds and detector angular response.",
			"Compton scattering takes over at diagnostic to MV energies.",
		},
	})
}

func (s *Server) thomsonChart(w http.ResponseWriter, r *http.Request) {
	angles, intensity := physics.ThomsonDistribution(361)
	s.renderChart(w, chart.AngularDistribution("Thomson Scattering Angular Distribution", angles, intensity))
}

// Rayleigh scattering.

func (s *Server) rayleighInput(q url.Values) (parameters.Rayleigh, error) {
	energy, err := floatParam(q, "energy", s.cfg.Defaults.RayleighEnergyKeV)
	if err != nil {
		return parameters.Rayleigh{}, err
	}
	z, err := intParam(q, "z", s.cfg.Defaults.AtomicNumber)
	if err != nil {
		return parameters.Rayleigh{}, err
	}
	in := parameters.Rayleigh{PhotonEnergy: energy, AtomicNumber: z}
	return in, in.Validate()
}

func (s *Server) rayleighPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:    concept.Rayleigh.Title(),
		Subtitle: concept.Rayleigh.Description(),
		Nav:      s.nav(),
		Notes: []string{
			"Elastic scattering off bound electrons; the photon loses no energy.",
			"Forward-peaked, more so for higher photon energy and higher Z.",
			"Contributes low-angle scatter background in diagnostic imaging.",
		},
	}

	in, err := s.rayleighInput(r.URL.Query())
	data.Controls = []control{
		{Label: "Photon energy, keV", Name: "energy", Value: ff(in.PhotonEnergy, 0), Min: "20", Max: "150", Step: "5"},
		{Label: "Atomic number Z", Name: "z", Value: strconv.Itoa(in.AtomicNumber), Min: "1", Max: "82", Step: "1"},
	}

	if err != nil {
		data.Error = err.Error()
		s.render(w, pageTmpl, data)
		return
	}

	params := url.Values{}
	params.Set("energy", ff(in.PhotonEnergy, 4))
	params.Set("z", strconv.Itoa(in.AtomicNumber))
	data.Charts = []string{chartURL(concept.Rayleigh.Route(), params)}

	s.render(w, pageTmpl, data)
}

func (s *Server) rayleighChart(w http.ResponseWriter, r *http.Request) {
	in, err := s.rayleighInput(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	angles, intensity, err := physics.RayleighDistribution(in.PhotonEnergy, in.AtomicNumber, 361)
	if err != nil {
		http.Error(w, "failed to build chart", http.StatusInternalServerError)
		return
	}
	title := fmt.Sprintf("Rayleigh Scattering: E = %.0f keV, Z = %d", in.PhotonEnergy, in.AtomicNumber)
	s.renderChart(w, chart.AngularDistribution(title, angles, intensity))
}

// Triplet production.

func (s *Server) tripletPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:    concept.Triplet.Title(),
		Subtitle: concept.Triplet.Description(),
		Nav:      s.nav(),
		Notes: []string{
			"Threshold is 4m_e c² = 2.044 MeV, double the pair production threshold.",
			"The recoiling atomic electron joins the created pair, hence three leptons.",
			"Competes with nuclear pair production at high energies.",
		},
	}

	maxEnergy, err := floatParam(r.URL.Query(), "max", s.cfg.Defaults.TripletMaxMeV)
	if err == nil {
		err = parameters.EnergyRange{MaxEnergy: maxEnergy}.Validate()
	}
	data.Controls = []control{
		{Label: "Max photon energy, MeV", Name: "max", Value: ff(maxEnergy, 0), Min: "5", Max: "50", Step: "1"},
	}
	if err != nil {
		data.Error = err.Error()
		s.render(w, pageTmpl, data)
		return
	}

	data.Metrics = []metric{
		{"Threshold energy", ff(physics.TripletThreshold, 3) + " MeV"},
	}
	params := url.Values{}
	params.Set("max", ff(maxEnergy, 4))
	data.Charts = []string{chartURL(concept.Triplet.Route(), params)}

	s.render(w, pageTmpl, data)
}

func (s *Server) tripletChart(w http.ResponseWriter, r *http.Request) {
	maxEnergy, err := floatParam(r.URL.Query(), "max", s.cfg.Defaults.TripletMaxMeV)
	if err == nil {
		err = parameters.EnergyRange{MaxEnergy: maxEnergy}.Validate()
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	const points = 300
	start := physics.TripletThreshold
	if maxEnergy <= start {
		maxEnergy = start + 1
	}
	energies := make([]float64, points)
	available := make([]float64, points)
	perLepton := make([]float64, points)
	for i := range energies {
		energies[i] = start + (maxEnergy-start)*float64(i)/float64(points-1)
		res, err := physics.TripletProduction(energies[i])
		if err != nil {
			http.Error(w, "failed to build chart", http.StatusInternalServerError)
			return
		}
		available[i] = res.AvailableKinetic
		perLepton[i] = res.KineticPerLepton
	}
	s.renderChart(w, chart.TripletBudget(energies, available, perLepton))
}

// Photodisintegration.

func (s *Server) photoNuclearPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:    concept.Photodisintegration.Title(),
		Subtitle: concept.Photodisintegration.Description(),
		Nav:      s.nav(),
		Notes: []string{
			"The photon excites the nucleus, which then emits a nucleon.",
			"Thresholds vary by nucleus; the giant dipole resonance sits near 10–20 MeV.",
			"Relevant for high-energy linac head leakage and activation products.",
			"The curve shown is a schematic shape, not a database cross-section.",
		},
	}

	maxEnergy, err := floatParam(r.URL.Query(), "max", s.cfg.Defaults.PhotoNuclearMaxMeV)
	if err == nil {
		err = parameters.EnergyRange{MaxEnergy: maxEnergy}.Validate()
	}
	data.Controls = []control{
		{Label: "Max photon energy, MeV", Name: "max", Value: ff(maxEnergy, 0), Min: "10", Max: "80", Step: "1"},
	}
	if err != nil {
		data.Error = err.Error()
		s.render(w, pageTmpl, data)
		return
	}

	params := url.Values{}
	params.Set("max", ff(maxEnergy, 4))
	data.Charts = []string{chartURL(concept.Photodisintegration.Route(), params)}

	s.render(w, pageTmpl, data)
}

func (s *Server) photoNuclearChart(w http.ResponseWriter, r *http.Request) {
	maxEnergy, err := floatParam(r.URL.Query(), "max", s.cfg.Defaults.PhotoNuclearMaxMeV)
	if err == nil {
		err = parameters.EnergyRange{MaxEnergy: maxEnergy}.Validate()
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	energies, crossSection := physics.GiantDipoleResonance(maxEnergy, 600)
	s.renderChart(w, chart.Photodisintegration(energies, crossSection))
}

type renderable interface {
	Render(w io.Writer) error
}

func (s *Server) renderChart(w http.ResponseWriter, c renderable) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(w); err != nil {
		log.WithError(err).Error("failed to render chart")
		http.Error(w, "failed to build chart", http.StatusInternalServerError)
	}
}
