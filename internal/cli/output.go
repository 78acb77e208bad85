package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aalvaropc/cookiecalc/internal/domain"
	"github.com/aalvaropc/cookiecalc/internal/infra/display"
	"github.com/aalvaropc/cookiecalc/internal/usecase"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatPretty, formatJSON, "":
		return nil
	}
	return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type measurementJSON struct {
	Amount     float64 `json:"amount"`
	Unit       string  `json:"unit"`
	Symbol     string  `json:"symbol"`
	Ingredient string  `json:"ingredient,omitempty"`
}

func toMeasurementJSON(m domain.Measurement) measurementJSON {
	out := measurementJSON{
		Amount: m.Amount(),
		Unit:   m.Unit().String(),
		Symbol: m.Unit().Symbol(),
	}
	if ing, ok := m.Ingredient(); ok {
		out.Ingredient = ing.Name()
	}
	return out
}

func printConversion(w io.Writer, res usecase.ConvertResult, f *display.Formatter, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, map[string]any{
			"source":  toMeasurementJSON(res.Source),
			"result":  toMeasurementJSON(res.Result),
			"display": f.Measurement(res.Result),
		})
	case formatPretty, "":
		fmt.Fprintf(w, "%s %s %s\n",
			f.Measurement(res.Source),
			styles.Muted.Render("="),
			styles.Title.Render(f.Measurement(res.Result)))
		return nil
	}
	return checkFormat(format)
}

type unitJSON struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Family string  `json:"family"`
	Factor float64 `json:"factor"`
	Base   string  `json:"base"`
}

func printUnits(w io.Writer, format string) error {
	units := domain.AllUnits()

	switch format {
	case formatJSON:
		out := make([]unitJSON, 0, len(units))
		for _, u := range units {
			factor, _ := u.Factor()
			out = append(out, unitJSON{
				Name:   u.String(),
				Symbol: u.Symbol(),
				Family: u.Family().String(),
				Factor: factor,
				Base:   u.Family().BaseUnit().Symbol(),
			})
		}
		return writeJSON(w, out)
	case formatPretty, "":
		var family domain.Family
		for _, u := range units {
			if u.Family() != family {
				family = u.Family()
				fmt.Fprintf(w, "\n%s\n", styles.Heading.Render(family.String()))
			}
			factor, _ := u.Factor()
			fmt.Fprintf(w, "  %-12s %-6s = %g %s\n", u, u.Symbol(), factor, family.BaseUnit().Symbol())
		}
		return nil
	}
	return checkFormat(format)
}

type ingredientJSON struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Density  float64 `json:"density"`
}

func printIngredients(w io.Writer, list []domain.Ingredient, format string) error {
	switch format {
	case formatJSON:
		out := make([]ingredientJSON, 0, len(list))
		for _, ing := range list {
			out = append(out, ingredientJSON{Name: ing.Name(), Category: string(ing.Category()), Density: ing.Density()})
		}
		return writeJSON(w, out)
	case formatPretty, "":
		if len(list) == 0 {
			fmt.Fprintln(w, "(no ingredients found)")
			return nil
		}
		for _, ing := range list {
			fmt.Fprintf(w, "- %-22s %-10s %.3f g/ml\n", ing.Name(), ing.Category().DisplayName(), ing.Density())
		}
		return nil
	}
	return checkFormat(format)
}

func printSummary(w io.Writer, s domain.RecipeSummary, f *display.Formatter, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, s)
	case formatPretty, "":
		fmt.Fprintf(w, "%s\n", styles.Title.Render(s.Name))
		fmt.Fprintf(w, "Total: %s g\n\n", f.Amount(s.TotalGrams))
		for _, c := range s.Categories {
			fmt.Fprintf(w, "- %-10s %10s g  %6s  %s\n",
				c.Category.DisplayName(),
				f.Amount(c.Grams),
				f.Percent(c.Percent),
				styles.Muted.Render(fmt.Sprintf("(%d item(s))", c.Items)))
		}
		return nil
	}
	return checkFormat(format)
}
