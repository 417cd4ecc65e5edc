package concept

import "fmt"

// Concept is one of the interactive photon-matter interaction pages.
type Concept uint8

const (
	Photoelectric Concept = iota
	Compton
	Pair
	Thomson
	Rayleigh
	Triplet
	Photodisintegration
)

func UnmarshalText(text string) (Concept, error) {
	switch text {
	case "photoelectric":
		return Photoelectric, nil
	case "compton":
		return Compton, nil
	case "pair":
		return Pair, nil
	case "thomson":
		return Thomson, nil
	case "rayleigh":
		return Rayleigh, nil
	case "triplet":
		return Triplet, nil
	case "photodisintegration":
		return Photodisintegration, nil
	default:
		return 0, fmt.Errorf("invalid concept: %q", text)
	}
}

func (c Concept) String() string {
	switch c {
	case Photoelectric:
		return "photoelectric"
	case Compton:
		return "compton"
	case Pair:
		return "pair"
	case Thomson:
		return "thomson"
	case Rayleigh:
		return "rayleigh"
	case Triplet:
		return "triplet"
	case Photodisintegration:
		return "photodisintegration"
	default:
		return "unknown"
	}
}

func (c Concept) Title() string {
	switch c {
	case Photoelectric:
		return "Photoelectric Effect"
	case Compton:
		return "Compton Scattering"
	case Pair:
		return "Pair Production"
	case Thomson:
		return "Thomson Scattering"
	case Rayleigh:
		return "Rayleigh Scattering"
	case Triplet:
		return "Triplet Production"
	case Photodisintegration:
		return "Photodisintegration"
	default:
		return "Unknown"
	}
}

func (c Concept) Description() string {
	switch c {
	case Photoelectric:
		return "Einstein's quantum theory of light"
	case Compton:
		return "Quantum scattering of photons by electrons"
	case Pair:
		return "Photon conversion to electron-positron pairs"
	case Thomson:
		return "Classical elastic scattering of low-energy photons"
	case Rayleigh:
		return "Coherent scattering with no energy loss"
	case Triplet:
		return "Pair production in the field of an atomic electron"
	case Photodisintegration:
		return "Photon-induced nuclear reactions"
	default:
		return ""
	}
}

// Route is the URL path of the concept's page.
func (c Concept) Route() string {
	return "/" + c.String()
}

// All lists every concept in menu order. The first three are the main
// topics, the rest supplementary.
func All() []Concept {
	return []Concept{
		Photoelectric, Compton, Pair,
		Thomson, Rayleigh, Triplet, Photodisintegration,
	}
}
