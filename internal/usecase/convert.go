package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/ports"
)

// ConvertRequest carries unparsed values from the command line.
type ConvertRequest struct {
	Amount float64
	From   string

	// To is a unit name or a system ("metric", "imperial"). Empty means the
	// default system.
	To string

	// Ingredient is resolved through the catalog when set.
	Ingredient string
}

type ConvertResult struct {
	Source domain.Measurement
	Result domain.Measurement
}

type ConvertMeasurement struct {
	catalog ports.IngredientCatalog
	system  domain.System
	log     *slog.Logger
}

type ConvertOption func(*ConvertMeasurement)

func WithDefaultSystem(s domain.System) ConvertOption {
	return func(uc *ConvertMeasurement) {
		if s != "" {
			uc.system = s
		}
	}
}

func WithConvertLogger(l *slog.Logger) ConvertOption {
	return func(uc *ConvertMeasurement) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewConvertMeasurement(cat ports.IngredientCatalog, opts ...ConvertOption) *ConvertMeasurement {
	uc := &ConvertMeasurement{
		catalog: cat,
		system:  domain.SystemMetric,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ConvertMeasurement) Execute(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	if err := ctx.Err(); err != nil {
		return ConvertResult{}, err
	}

	from, err := domain.ParseUnit(req.From)
	if err != nil {
		return ConvertResult{}, err
	}

	var opts []domain.MeasurementOption
	if name := strings.TrimSpace(req.Ingredient); name != "" {
		ing, err := uc.catalog.Lookup(name)
		if err != nil {
			return ConvertResult{}, err
		}
		opts = append(opts, domain.WithIngredient(ing))
	}
	src := domain.NewMeasurement(req.Amount, from, opts...)

	out, err := uc.convert(src, req.To)
	if err != nil {
		uc.log.Debug("convert.failed", "from", from, "to", req.To, "kind", domain.KindOf(err))
		return ConvertResult{}, err
	}

	uc.log.Info("convert.done", "from", src.String(), "to", out.String())
	return ConvertResult{Source: src, Result: out}, nil
}

func (uc *ConvertMeasurement) convert(src domain.Measurement, to string) (domain.Measurement, error) {
	if strings.TrimSpace(to) == "" {
		return src.ConvertToSystem(uc.system)
	}
	if sys, err := domain.ParseSystem(to); err == nil {
		return src.ConvertToSystem(sys)
	}
	target, err := domain.ParseUnit(to)
	if err != nil {
		return domain.Measurement{}, &domain.OpError{
			Op:   "usecase.convert",
			Kind: domain.KindUnsupportedConversion,
			Err:  err,
		}
	}
	return src.ConvertTo(target)
}
