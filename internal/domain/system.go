package domain

import (
	"fmt"
	"strings"
)

// System is a target unit system for canonical conversions.
type System string

const (
	SystemMetric   System = "metric"
	SystemImperial System = "imperial"
)

func ParseSystem(s string) (System, error) {
	switch System(strings.ToLower(strings.TrimSpace(s))) {
	case SystemMetric:
		return SystemMetric, nil
	case SystemImperial:
		return SystemImperial, nil
	}
	return "", fmt.Errorf("unsupported system %q (expected metric|imperial): %w", s, ErrInvalidConfig)
}

// ConvertToSystem dispatches to ToMetric or ToImperial.
func (m Measurement) ConvertToSystem(s System) (Measurement, error) {
	switch s {
	case SystemMetric:
		return m.ToMetric()
	case SystemImperial:
		return m.ToImperial()
	}
	return Measurement{}, conversionError("measurement.to_system", KindUnsupportedConversion, ErrUnsupportedConversion, "system %q", s)
}
