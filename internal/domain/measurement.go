package domain

import "fmt"

// Measurement is an amount in a unit, optionally tied to the ingredient whose
// density is needed to cross between volume and weight.
//
// Conversions never modify the receiver; they return a new Measurement that
// carries the same ingredient forward.
type Measurement struct {
	amount     float64
	unit       Unit
	ingredient *Ingredient
}

// MeasurementOption configures NewMeasurement.
type MeasurementOption func(*Measurement)

// WithIngredient attaches a copy of ing to the measurement.
func WithIngredient(ing Ingredient) MeasurementOption {
	return func(m *Measurement) {
		cp := ing
		m.ingredient = &cp
	}
}

func NewMeasurement(amount float64, unit Unit, opts ...MeasurementOption) Measurement {
	m := Measurement{amount: amount, unit: unit}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Measurement) Amount() float64 { return m.amount }
func (m Measurement) Unit() Unit      { return m.unit }

// Ingredient returns the attached ingredient, if any.
func (m Measurement) Ingredient() (Ingredient, bool) {
	if m.ingredient == nil {
		return Ingredient{}, false
	}
	return *m.ingredient, true
}

// SetAmount replaces the amount in place, keeping unit and ingredient.
func (m *Measurement) SetAmount(amount float64) {
	m.amount = amount
}

func (m Measurement) IsVolume() bool   { return m.unit.Family().IsVolume() }
func (m Measurement) IsWeight() bool   { return m.unit.Family().IsWeight() }
func (m Measurement) IsMetric() bool   { return m.unit.Family().IsMetric() }
func (m Measurement) IsImperial() bool { return m.unit.Family().IsImperial() }

// BaseAmount is the amount expressed in the family base unit (ml or g).
func (m Measurement) BaseAmount() (float64, error) {
	f, err := m.unit.Factor()
	if err != nil {
		return 0, err
	}
	return m.amount * f, nil
}

// ConvertTo converts to target. Volume<->weight conversions go through the
// attached ingredient's density and fail with KindMissingIngredient when no
// ingredient is attached.
func (m Measurement) ConvertTo(target Unit) (Measurement, error) {
	const op = "measurement.convert"

	if !m.unit.Valid() {
		return Measurement{}, unknownUnit(op, m.unit)
	}
	if !target.Valid() {
		return Measurement{}, conversionError(op, KindUnsupportedConversion, ErrUnsupportedConversion,
			"%s -> %s", m.unit, target)
	}
	if target == m.unit {
		return m.derive(m.amount, target), nil
	}

	src, dst := m.unit.Family(), target.Family()
	dstFactor := units[target].factor
	base := m.amount * units[m.unit].factor

	switch {
	case src.IsVolume() && dst.IsVolume(), src.IsWeight() && dst.IsWeight():
		return m.derive(base/dstFactor, target), nil

	case src.IsVolume() && dst.IsWeight():
		density, err := m.density(op, target)
		if err != nil {
			return Measurement{}, err
		}
		return m.derive(base*density/dstFactor, target), nil

	case src.IsWeight() && dst.IsVolume():
		density, err := m.density(op, target)
		if err != nil {
			return Measurement{}, err
		}
		return m.derive(base/density/dstFactor, target), nil
	}

	return Measurement{}, conversionError(op, KindUnsupportedConversion, ErrUnsupportedConversion,
		"%s -> %s", m.unit, target)
}

// ToMetric converts to Milliliter (volume) or Gram (weight). A measurement
// already in metric units is returned unchanged.
func (m Measurement) ToMetric() (Measurement, error) {
	switch {
	case m.IsMetric():
		return m.derive(m.amount, m.unit), nil
	case m.IsVolume():
		return m.ConvertTo(Milliliter)
	case m.IsWeight():
		return m.ConvertTo(Gram)
	}
	return Measurement{}, unknownUnit("measurement.to_metric", m.unit)
}

// ToImperial converts to Cup (volume) or Ounce (weight). A measurement
// already in imperial units is returned unchanged.
func (m Measurement) ToImperial() (Measurement, error) {
	switch {
	case m.IsImperial():
		return m.derive(m.amount, m.unit), nil
	case m.IsVolume():
		return m.ConvertTo(Cup)
	case m.IsWeight():
		return m.ConvertTo(Ounce)
	}
	return Measurement{}, unknownUnit("measurement.to_imperial", m.unit)
}

// String renders "125.39 g (all purpose flour)".
func (m Measurement) String() string {
	s := fmt.Sprintf("%.2f %s", m.amount, m.unit.Symbol())
	if m.ingredient != nil {
		s += fmt.Sprintf(" (%s)", m.ingredient.DisplayName())
	}
	return s
}

func (m Measurement) density(op string, target Unit) (float64, error) {
	if m.ingredient == nil {
		return 0, conversionError(op, KindMissingIngredient, ErrMissingIngredient,
			"%s -> %s needs an ingredient density", m.unit, target)
	}
	if m.ingredient.density <= 0 {
		return 0, conversionError(op, KindInvalidDensity, ErrInvalidDensity,
			"ingredient %q has no density", m.ingredient.name)
	}
	return m.ingredient.density, nil
}

func (m Measurement) derive(amount float64, unit Unit) Measurement {
	return Measurement{amount: amount, unit: unit, ingredient: m.ingredient}
}
