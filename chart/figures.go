package chart

import "github.com/go-echarts/go-echarts/v2/charts"

// EnergyFrequency is the photoelectric energy-vs-frequency figure: photon
// energy E = hf, the work function level, and the resulting maximum kinetic
// energy, over a shared frequency grid in units of 10¹⁴ Hz.
func EnergyFrequency(freq, photon, workFn, kinetic []float64) *charts.Line {
	return Line(Options{
		Title: "Photoelectric Effect: Energy vs Frequency",
		XName: "Frequency, 10¹⁴ Hz",
		YName: "Energy, eV",
	}, freq,
		Series{Name: "Photon energy E = hf", Values: photon},
		Series{Name: "Work function", Values: workFn},
		Series{Name: "Max kinetic energy", Values: kinetic},
	)
}

// ComptonEnergies shows scattered photon energy and recoil electron energy
// against scattering angle.
func ComptonEnergies(angles, scattered, recoil []float64) *charts.Line {
	return Line(Options{
		Title: "Compton Scattering: Energy vs Angle",
		XName: "Scattering angle, °",
		YName: "Energy, MeV",
	}, angles,
		Series{Name: "Scattered photon", Values: scattered},
		Series{Name: "Recoil electron", Values: recoil},
	)
}

// WavelengthShift shows the Compton shift Δλ against scattering angle.
func WavelengthShift(angles, shift []float64) *charts.Line {
	return Line(Options{
		Title: "Compton Scattering: Wavelength Shift",
		XName: "Scattering angle, °",
		YName: "Δλ, Å",
	}, angles,
		Series{Name: "Δλ", Values: shift},
	)
}

// PairEnergyBudget shows the pair production threshold, the excess energy
// above it and the per-particle kinetic share against photon energy.
func PairEnergyBudget(energies, threshold, excess, each []float64) *charts.Line {
	return Line(Options{
		Title: "Pair Production Energy Analysis",
		XName: "Incident photon energy, MeV",
		YName: "Energy, MeV",
	}, energies,
		Series{Name: "Threshold (1.022 MeV)", Values: threshold},
		Series{Name: "Excess energy", Values: excess},
		Series{Name: "Kinetic energy per particle", Values: each},
	)
}

// PairCrossSection shows the Bethe-Heitler-shaped cross-section estimate.
func PairCrossSection(energies, sigma []float64) *charts.Line {
	return Line(Options{
		Title: "Pair Production Cross-Section",
		XName: "Photon energy, MeV",
		YName: "Cross-section, barns",
	}, energies,
		Series{Name: "Cross-section", Values: sigma},
	)
}

// AngularDistribution shows a normalized scattering intensity over angle,
// used by the Thomson and Rayleigh pages.
func AngularDistribution(title string, angles, intensity []float64) *charts.Line {
	return Line(Options{
		Title: title,
		XName: "Scattering angle, °",
		YName: "Normalized intensity",
	}, angles,
		Series{Name: "Normalized intensity", Values: intensity},
	)
}

// TripletBudget shows the triplet production kinetic energy budget above
// the 2.044 MeV threshold.
func TripletBudget(energies, available, perLepton []float64) *charts.Line {
	return Line(Options{
		Title: "Triplet Production Energy Budget",
		XName: "Incident photon energy, MeV",
		YName: "Energy, MeV",
	}, energies,
		Series{Name: "Available kinetic (total)", Values: available},
		Series{Name: "Avg kinetic per lepton", Values: perLepton},
	)
}

// Photodisintegration shows the schematic giant dipole resonance curve.
func Photodisintegration(energies, crossSection []float64) *charts.Line {
	return Line(Options{
		Title: "Photodisintegration Cross-Section",
		XName: "Photon energy, MeV",
		YName: "Relative cross-section",
	}, energies,
		Series{Name: "Relative cross-section", Values: crossSection},
	)
}
