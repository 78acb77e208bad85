// Package display renders measurements for people: fixed precision and
// locale-aware digits. Measurement.String stays the locale-free form.
package display

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aalvaropc/cookiecalc/internal/domain"
)

type Formatter struct {
	precision int
	tag       language.Tag
	printer   *message.Printer
	verb      string
}

type Option func(*Formatter) error

func WithPrecision(p int) Option {
	return func(f *Formatter) error {
		if p < 0 || p > domain.MaxPrecision {
			return fmt.Errorf("precision %d out of range 0..%d: %w", p, domain.MaxPrecision, domain.ErrInvalidConfig)
		}
		f.precision = p
		return nil
	}
}

// WithLocale takes a BCP 47 tag such as "en", "de" or "pt-BR".
func WithLocale(locale string) Option {
	return func(f *Formatter) error {
		tag, err := language.Parse(strings.TrimSpace(locale))
		if err != nil {
			return fmt.Errorf("locale %q: %v: %w", locale, err, domain.ErrInvalidConfig)
		}
		f.tag = tag
		return nil
	}
}

func NewFormatter(opts ...Option) (*Formatter, error) {
	f := &Formatter{precision: 2, tag: language.English}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, &domain.OpError{
				Op:   "display.new",
				Kind: domain.KindInvalidConfig,
				Err:  err,
			}
		}
	}
	f.printer = message.NewPrinter(f.tag)
	f.verb = fmt.Sprintf("%%.%df", f.precision)
	return f, nil
}

// FromConfig builds a Formatter from the display section of the workspace config.
func FromConfig(cfg domain.DisplayConfig) (*Formatter, error) {
	return NewFormatter(WithPrecision(cfg.Precision), WithLocale(cfg.Locale))
}

func (f *Formatter) Precision() int       { return f.precision }
func (f *Formatter) Locale() language.Tag { return f.tag }

// Amount formats v with the configured precision and locale separators.
func (f *Formatter) Amount(v float64) string {
	return f.printer.Sprintf(f.verb, v)
}

// Measurement renders "<amount> <symbol>" and the ingredient, if any.
func (f *Formatter) Measurement(m domain.Measurement) string {
	s := f.Amount(m.Amount()) + " " + m.Unit().Symbol()
	if ing, ok := m.Ingredient(); ok {
		s += " (" + ing.DisplayName() + ")"
	}
	return s
}

// Percent renders p with one decimal and a trailing percent sign.
func (f *Formatter) Percent(p float64) string {
	return f.printer.Sprintf("%.1f%%", p)
}
