package domain

import (
	"fmt"
	"strings"
)

// Family is the closed set of unit families. Every defined Unit belongs to
// exactly one family.
type Family uint8

const (
	FamilyUnknown Family = iota
	FamilyMetricVolume
	FamilyImperialVolume
	FamilyMetricWeight
	FamilyImperialWeight
)

func (f Family) IsVolume() bool {
	return f == FamilyMetricVolume || f == FamilyImperialVolume
}

func (f Family) IsWeight() bool {
	return f == FamilyMetricWeight || f == FamilyImperialWeight
}

func (f Family) IsMetric() bool {
	return f == FamilyMetricVolume || f == FamilyMetricWeight
}

func (f Family) IsImperial() bool {
	return f == FamilyImperialVolume || f == FamilyImperialWeight
}

// BaseUnit returns the canonical base of the family: Milliliter for volume,
// Gram for weight.
func (f Family) BaseUnit() Unit {
	switch {
	case f.IsVolume():
		return Milliliter
	case f.IsWeight():
		return Gram
	default:
		return UnitUnknown
	}
}

func (f Family) String() string {
	switch f {
	case FamilyMetricVolume:
		return "metric volume"
	case FamilyImperialVolume:
		return "imperial volume"
	case FamilyMetricWeight:
		return "metric weight"
	case FamilyImperialWeight:
		return "imperial weight"
	default:
		return "unknown"
	}
}

// Unit is a concrete measuring unit. The zero value is UnitUnknown and is
// never a defined unit.
type Unit uint8

const (
	UnitUnknown Unit = iota

	Milliliter
	Liter

	Teaspoon
	Tablespoon
	FluidOunce
	Cup
	Pint
	Quart
	Gallon

	Gram
	Kilogram

	Ounce
	Pound

	unitCount
)

type unitInfo struct {
	name    string
	symbol  string
	family  Family
	factor  float64 // to ml for volume families, to g for weight families
	aliases []string
}

var units = [unitCount]unitInfo{
	UnitUnknown: {name: "unknown", symbol: "?"},

	Milliliter: {"milliliter", "ml", FamilyMetricVolume, 1, []string{"milliliters", "millilitre", "millilitres"}},
	Liter:      {"liter", "l", FamilyMetricVolume, 1000, []string{"liters", "litre", "litres"}},

	Teaspoon:   {"teaspoon", "tsp", FamilyImperialVolume, 4.92892, []string{"teaspoons"}},
	Tablespoon: {"tablespoon", "tbsp", FamilyImperialVolume, 14.7868, []string{"tablespoons"}},
	FluidOunce: {"fluid_ounce", "fl oz", FamilyImperialVolume, 29.5735, []string{"fluid ounces", "fluidounce", "floz"}},
	Cup:        {"cup", "cup", FamilyImperialVolume, 236.588, []string{"cups"}},
	Pint:       {"pint", "pt", FamilyImperialVolume, 473.176, []string{"pints"}},
	Quart:      {"quart", "qt", FamilyImperialVolume, 946.353, []string{"quarts"}},
	Gallon:     {"gallon", "gal", FamilyImperialVolume, 3785.41, []string{"gallons"}},

	Gram:     {"gram", "g", FamilyMetricWeight, 1, []string{"grams", "gramme", "grammes"}},
	Kilogram: {"kilogram", "kg", FamilyMetricWeight, 1000, []string{"kilograms", "kilo", "kilos"}},

	Ounce: {"ounce", "oz", FamilyImperialWeight, 28.3495, []string{"ounces"}},
	Pound: {"pound", "lb", FamilyImperialWeight, 453.592, []string{"pounds", "lbs"}},
}

var unitsByName = func() map[string]Unit {
	m := make(map[string]Unit, int(unitCount)*4)
	for u := Milliliter; u < unitCount; u++ {
		info := units[u]
		m[normalizeUnitName(info.name)] = u
		m[normalizeUnitName(info.symbol)] = u
		for _, a := range info.aliases {
			m[normalizeUnitName(a)] = u
		}
	}
	return m
}()

// AllUnits returns every defined unit in table order.
func AllUnits() []Unit {
	out := make([]Unit, 0, int(unitCount)-1)
	for u := Milliliter; u < unitCount; u++ {
		out = append(out, u)
	}
	return out
}

// Valid reports whether u is one of the defined units.
func (u Unit) Valid() bool {
	return u > UnitUnknown && u < unitCount
}

// Family returns FamilyUnknown for values outside the defined set.
func (u Unit) Family() Family {
	if !u.Valid() {
		return FamilyUnknown
	}
	return units[u].family
}

// Factor is the multiplier from u to its family base unit.
func (u Unit) Factor() (float64, error) {
	if !u.Valid() {
		return 0, unknownUnit("unit.factor", u)
	}
	return units[u].factor, nil
}

// Symbol is the conventional abbreviation used for display ("ml", "fl oz").
func (u Unit) Symbol() string {
	if !u.Valid() {
		return units[UnitUnknown].symbol
	}
	return units[u].symbol
}

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("unit(%d)", uint8(u))
	}
	return units[u].name
}

func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, unknownUnit("unit.marshal", u)
	}
	return []byte(units[u].name), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// ParseUnit maps a unit name or abbreviation ("cups", "tbsp", "fl oz") to a Unit.
// Matching ignores case, surrounding space, and trailing dots.
func ParseUnit(s string) (Unit, error) {
	if u, ok := unitsByName[normalizeUnitName(s)]; ok {
		return u, nil
	}
	return UnitUnknown, conversionError("unit.parse", KindUnknownUnit, ErrUnknownUnit, "%q", s)
}

func normalizeUnitName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ", ".", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

func unknownUnit(op string, u Unit) error {
	return conversionError(op, KindUnknownUnit, ErrUnknownUnit, "%s", u)
}
