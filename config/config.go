package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults are the initial control values of the pages, used when a request
// carries no query parameters.
type Defaults struct {
	PhotonEnergyEV     float64 `yaml:"photon_energy_ev"`
	Material           string  `yaml:"material"`
	ComptonEnergyMeV   float64 `yaml:"compton_energy_mev"`
	ScatteringAngleDeg float64 `yaml:"scattering_angle_deg"`
	PairEnergyMeV      float64 `yaml:"pair_energy_mev"`
	AtomicNumber       int     `yaml:"atomic_number"`
	RayleighEnergyKeV  float64 `yaml:"rayleigh_energy_kev"`
	TripletMaxMeV      float64 `yaml:"triplet_max_mev"`
	PhotoNuclearMaxMeV float64 `yaml:"photonuclear_max_mev"`
}

type Config struct {
	HTTPPort string   `yaml:"http_port"`
	LogFile  string   `yaml:"log_file"` // empty: log to stderr
	Debug    bool     `yaml:"debug"`
	Concepts []string `yaml:"concepts"` // empty: serve all pages
	Defaults Defaults `yaml:"defaults"`
}

// Load reads a YAML config file on top of the built-in defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	conf := Config{
		HTTPPort: "8080",
		Defaults: Defaults{
			PhotonEnergyEV:     25,
			Material:           "sodium",
			ComptonEnergyMeV:   1.0,
			ScatteringAngleDeg: 90,
			PairEnergyMeV:      2.5,
			AtomicNumber:       26,
			RayleighEnergyKeV:  60,
			TripletMaxMeV:      20,
			PhotoNuclearMaxMeV: 30,
		},
	}

	if path == "" {
		return &conf, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&conf); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return &conf, nil
}
