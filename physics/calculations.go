package physics

import (
	"fmt"
	"math"
)

// finite rejects NaN and ±Inf, which pass ordered comparisons against any
// domain bound.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// PhotoelectricResult holds the derived quantities of a single
// photoelectric interaction. Energies in eV.
type PhotoelectricResult struct {
	KineticEnergy       float64 // eV, maximum kinetic energy of the ejected electron
	CanEject            bool    // false below threshold, KineticEnergy is zero then
	ThresholdFrequency  float64 // Hz
	ThresholdWavelength float64 // m
}

// Photoelectric evaluates Einstein's photoelectric equation for a photon of
// photonEnergy (eV) against a surface with the given workFunction (eV).
// Below threshold the result reports no emission instead of a negative
// kinetic energy.
func Photoelectric(photonEnergy, workFunction float64) (PhotoelectricResult, error) {
	if photonEnergy <= 0 || !finite(photonEnergy) {
		return PhotoelectricResult{}, fmt.Errorf("photon energy must be positive and finite, got %g eV", photonEnergy)
	}
	if workFunction <= 0 || !finite(workFunction) {
		return PhotoelectricResult{}, fmt.Errorf("work function must be positive and finite, got %g eV", workFunction)
	}

	res := PhotoelectricResult{
		ThresholdFrequency:  workFunction * EVToJoules / PlanckConstant,
		ThresholdWavelength: EnergyToWavelength(workFunction / 1000), // eV to keV
	}
	if photonEnergy < workFunction {
		return res, nil
	}
	res.CanEject = true
	res.KineticEnergy = photonEnergy - workFunction
	return res, nil
}

// ComptonResult holds the derived quantities of a single Compton scattering
// event. Energies in keV, wavelengths in Å.
type ComptonResult struct {
	ScatteredEnergy   float64 // keV, photon energy after scattering
	RecoilEnergy      float64 // keV, kinetic energy of the recoil electron
	EnergyTransfer    float64 // keV, incident minus scattered
	WavelengthShift   float64 // Å, Δλ = λ_C(1 - cos θ)
	ComptonWavelength float64 // Å, λ_C = h/(m_e c)
}

// Compton evaluates the Compton shift for a photon of incidentEnergy (keV)
// scattering off a free electron at scatteringAngle (degrees). The recoil
// electron carries exactly the transferred energy, so
// incident = scattered + recoil holds by construction.
func Compton(incidentEnergy, scatteringAngle float64) (ComptonResult, error) {
	if incidentEnergy <= 0 || !finite(incidentEnergy) {
		return ComptonResult{}, fmt.Errorf("incident energy must be positive and finite, got %g keV", incidentEnergy)
	}
	if scatteringAngle < 0 || scatteringAngle > 180 || !finite(scatteringAngle) {
		return ComptonResult{}, fmt.Errorf("scattering angle must be in [0°, 180°], got %g°", scatteringAngle)
	}

	theta := scatteringAngle * math.Pi / 180
	lambdaC := ComptonWavelength()
	lambdaIn := EnergyToWavelength(incidentEnergy)
	lambdaOut := lambdaIn + lambdaC*(1-math.Cos(theta))

	scattered := WavelengthToEnergy(lambdaOut)
	transfer := incidentEnergy - scattered

	return ComptonResult{
		ScatteredEnergy:   scattered,
		RecoilEnergy:      transfer,
		EnergyTransfer:    transfer,
		WavelengthShift:   (lambdaOut - lambdaIn) * MetersToAngstrom,
		ComptonWavelength: lambdaC * MetersToAngstrom,
	}, nil
}

// MaxWavelengthShift is the 180° backscatter shift 2h/(m_e c) in Å, the
// largest Δλ any Compton event can produce.
func MaxWavelengthShift() float64 {
	return 2 * ComptonWavelength() * MetersToAngstrom
}

// PairResult holds the derived quantities of a pair production event.
// Energies in keV.
type PairResult struct {
	ThresholdEnergy   float64 // keV, 2·m_e·c²
	ExcessEnergy      float64 // keV, energy above threshold available as kinetic
	KineticEnergyEach float64 // keV, approximate equal sharing between e⁻ and e⁺
	CanOccur          bool    // false below threshold
}

// PairProduction evaluates the energy budget of electron-positron pair
// production for a photon of incidentEnergy (keV). Below 2·m_e·c² the result
// reports below-threshold instead of extrapolating.
func PairProduction(incidentEnergy float64) (PairResult, error) {
	if incidentEnergy <= 0 || !finite(incidentEnergy) {
		return PairResult{}, fmt.Errorf("incident energy must be positive and finite, got %g keV", incidentEnergy)
	}

	res := PairResult{ThresholdEnergy: PairThreshold}
	if incidentEnergy < PairThreshold {
		return res, nil
	}
	res.CanOccur = true
	res.ExcessEnergy = incidentEnergy - PairThreshold
	res.KineticEnergyEach = res.ExcessEnergy / 2
	return res, nil
}

// PairCrossSection approximates the pair production cross-section in barns
// for a photon of energyMeV in the field of a nucleus with charge Z, using a
// Bethe-Heitler-shaped estimate. Below threshold the cross-section is zero.
func PairCrossSection(energyMeV float64, atomicNumber int) (float64, error) {
	if energyMeV <= 0 || !finite(energyMeV) {
		return 0, fmt.Errorf("photon energy must be positive and finite, got %g MeV", energyMeV)
	}
	if atomicNumber < 1 || atomicNumber > 100 {
		return 0, fmt.Errorf("nuclear charge must be in [1, 100], got %d", atomicNumber)
	}
	if energyMeV < PairThreshold/1000 {
		return 0, nil
	}
	z := float64(atomicNumber)
	return 1.5e-2 * (1 / energyMeV) * (math.Log(2*energyMeV/0.511) - 1) * z * z, nil
}

// ThomsonDistribution samples the classical Thomson angular distribution
// I(θ) ∝ 1 + cos²θ, normalized to 1 at θ = 0, over [0°, 180°].
func ThomsonDistribution(points int) (angles, intensity []float64) {
	if points < 2 {
		points = 2
	}
	angles = make([]float64, points)
	intensity = make([]float64, points)
	for i := range angles {
		angles[i] = 180 * float64(i) / float64(points-1)
		cos := math.Cos(angles[i] * math.Pi / 180)
		intensity[i] = (1 + cos*cos) / 2
	}
	return angles, intensity
}

// RayleighDistribution samples a schematic coherent scattering distribution
// over [0°, 180°]: a forward-peaked Gaussian whose width shrinks with photon
// energy (keV) and atomic number. It is an educational shape, not a form
// factor calculation.
func RayleighDistribution(energyKeV float64, atomicNumber, points int) (angles, intensity []float64, err error) {
	if energyKeV <= 0 || !finite(energyKeV) {
		return nil, nil, fmt.Errorf("photon energy must be positive and finite, got %g keV", energyKeV)
	}
	if atomicNumber < 1 {
		return nil, nil, fmt.Errorf("atomic number must be positive, got %d", atomicNumber)
	}
	if points < 2 {
		points = 2
	}

	theta0 := 35.0 * (30.0 / energyKeV) * math.Cbrt(10.0/float64(atomicNumber))
	theta0 = math.Min(math.Max(theta0, 5.0), 60.0)

	angles = make([]float64, points)
	intensity = make([]float64, points)
	for i := range angles {
		angles[i] = 180 * float64(i) / float64(points-1)
		r := angles[i] / theta0
		intensity[i] = math.Exp(-r * r)
	}
	return angles, intensity, nil
}

// TripletResult holds the energy budget of triplet production. Energies in
// MeV.
type TripletResult struct {
	ThresholdEnergy  float64 // MeV, 4·m_e·c²
	AvailableKinetic float64 // MeV, total kinetic energy above threshold
	KineticPerLepton float64 // MeV, ~1/3 share for each of the three leptons
	CanOccur         bool
}

// TripletProduction evaluates the schematic energy sharing of triplet
// production for a photon of incidentEnergy (MeV).
func TripletProduction(incidentEnergy float64) (TripletResult, error) {
	if incidentEnergy <= 0 || !finite(incidentEnergy) {
		return TripletResult{}, fmt.Errorf("incident energy must be positive and finite, got %g MeV", incidentEnergy)
	}

	res := TripletResult{ThresholdEnergy: TripletThreshold}
	if incidentEnergy < TripletThreshold {
		return res, nil
	}
	res.CanOccur = true
	res.AvailableKinetic = incidentEnergy - TripletThreshold
	res.KineticPerLepton = res.AvailableKinetic / 3
	return res, nil
}

// Giant dipole resonance shape parameters, typical order for many nuclei.
const (
	gdrThreshold = 8.0  // MeV
	gdrPeak      = 15.0 // MeV
	gdrWidth     = 5.0  // MeV
)

// GiantDipoleResonance samples a schematic photodisintegration relative
// cross-section over [0, maxEnergyMeV]: zero below a typical ~8 MeV
// threshold, then a Gaussian-shaped resonance normalized to a peak of 1.
func GiantDipoleResonance(maxEnergyMeV float64, points int) (energies, crossSection []float64) {
	if maxEnergyMeV <= 0 || !finite(maxEnergyMeV) {
		maxEnergyMeV = 30
	}
	if points < 2 {
		points = 2
	}
	energies = make([]float64, points)
	crossSection = make([]float64, points)
	peak := 0.0
	for i := range energies {
		energies[i] = maxEnergyMeV * float64(i) / float64(points-1)
		if energies[i] < gdrThreshold {
			continue
		}
		r := (energies[i] - gdrPeak) / gdrWidth
		crossSection[i] = math.Exp(-0.5 * r * r)
		if crossSection[i] > peak {
			peak = crossSection[i]
		}
	}
	if peak > 0 {
		for i := range crossSection {
			crossSection[i] /= peak
		}
	}
	return energies, crossSection
}
