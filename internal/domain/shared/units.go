package shared

import "fmt"

// LitersPerGallon converts US gallons to litres
const LitersPerGallon = 3.78541

// FuelUnits is the unit fuel quantities are displayed in. Quantities are
// always computed in gallons.
type FuelUnits string

const (
	FuelUnitsGallons FuelUnits = "gal"
	FuelUnitsLiters  FuelUnits = "l"
)

// GallonsToLiters converts a gallon quantity to litres
func GallonsToLiters(gal float64) float64 {
	return gal * LitersPerGallon
}

// LitersToGallons converts a litre quantity to gallons
func LitersToGallons(l float64) float64 {
	return l / LitersPerGallon
}

// FromGallons converts gal into the display unit
func (u FuelUnits) FromGallons(gal float64) float64 {
	if u == FuelUnitsLiters {
		return GallonsToLiters(gal)
	}
	return gal
}

// Label returns the short unit label
func (u FuelUnits) Label() string {
	if u == FuelUnitsLiters {
		return "L"
	}
	return "gal"
}

// Format renders gal in the display unit with one decimal
func (u FuelUnits) Format(gal float64) string {
	return fmt.Sprintf("%.1f %s", u.FromGallons(gal), u.Label())
}

// ParseFuelUnits parses a unit name; the empty string means gallons
func ParseFuelUnits(s string) (FuelUnits, error) {
	switch FuelUnits(s) {
	case "", FuelUnitsGallons:
		return FuelUnitsGallons, nil
	case FuelUnitsLiters:
		return FuelUnitsLiters, nil
	}
	return FuelUnitsGallons, fmt.Errorf("invalid fuel units: %s", s)
}
