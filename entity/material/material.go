// Package material lists the photocathode materials supported by the
// photoelectric page, with their work functions.
package material

import "fmt"

type Material int8

const (
	Cesium Material = iota
	Potassium
	Sodium
	Lithium
	Zinc
	Copper
	Silver
	Platinum
)

// workFunctions holds the work function of each material in eV.
var workFunctions = [...]float64{
	Cesium:    2.1,
	Potassium: 2.3,
	Sodium:    2.28,
	Lithium:   2.9,
	Zinc:      4.3,
	Copper:    4.7,
	Silver:    4.26,
	Platinum:  6.35,
}

func UnmarshalText(text string) (Material, error) {
	switch text {
	case "cesium":
		return Cesium, nil
	case "potassium":
		return Potassium, nil
	case "sodium":
		return Sodium, nil
	case "lithium":
		return Lithium, nil
	case "zinc":
		return Zinc, nil
	case "copper":
		return Copper, nil
	case "silver":
		return Silver, nil
	case "platinum":
		return Platinum, nil
	default:
		return 0, fmt.Errorf("unsupported material: %q", text)
	}
}

func (m Material) String() string {
	switch m {
	case Cesium:
		return "cesium"
	case Potassium:
		return "potassium"
	case Sodium:
		return "sodium"
	case Lithium:
		return "lithium"
	case Zinc:
		return "zinc"
	case Copper:
		return "copper"
	case Silver:
		return "silver"
	case Platinum:
		return "platinum"
	default:
		return "unknown"
	}
}

// Title is the display name of the material.
func (m Material) Title() string {
	switch m {
	case Cesium:
		return "Cesium"
	case Potassium:
		return "Potassium"
	case Sodium:
		return "Sodium"
	case Lithium:
		return "Lithium"
	case Zinc:
		return "Zinc"
	case Copper:
		return "Copper"
	case Silver:
		return "Silver"
	case Platinum:
		return "Platinum"
	default:
		return "Unknown"
	}
}

// WorkFunction returns the material's work function in eV.
func (m Material) WorkFunction() float64 {
	return workFunctions[m]
}

// All lists the supported materials in display order.
func All() []Material {
	return []Material{Cesium, Potassium, Sodium, Lithium, Zinc, Copper, Silver, Platinum}
}
