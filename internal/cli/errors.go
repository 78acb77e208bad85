package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/cookiecalc/internal/domain"
)

var (
	reLine   = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reQuoted = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
)

func printError(w io.Writer, err error, debug bool) {
	fmt.Fprintf(w, "%s %s\n", styles.Error.Render("error:"), userMessage(err))
	if debug {
		fmt.Fprintf(w, "  %s\n", err)
	}
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs := joined.Unwrap()
		if len(errs) > 1 {
			return fmt.Sprintf("%s (and %d more)", userMessage(errs[0]), len(errs)-1)
		}
		if len(errs) == 1 {
			return userMessage(errs[0])
		}
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		if looksLikeYAMLProblem(err.Error()) {
			return "Invalid YAML"
		}
		return "Unexpected error (see logs)"
	}

	ops := opChain(err)
	switch oe.Kind {
	case domain.KindUnknownUnit:
		return "Unknown unit" + subject(err) + " (run `cookiecalc units` for the list)"

	case domain.KindMissingIngredient:
		return "Converting between volume and weight needs an ingredient (use --ingredient)"

	case domain.KindUnsupportedConversion:
		return "Unsupported conversion target" + subject(err) + " (use a unit, metric or imperial)"

	case domain.KindInvalidDensity:
		return "Ingredient" + subject(err) + " density must be a positive number"

	case domain.KindConflict:
		return "Ingredient already exists"

	case domain.KindNotFound:
		switch {
		case hasOp(ops, "catalog.lookup"):
			return "Ingredient" + subject(err) + " not found (run `cookiecalc ingredients list`)"
		case hasOp(ops, "cli.resolve_recipe"), hasOp(ops, "config.load_recipe"):
			return "Recipe not found"
		case hasOp(ops, "yamlrecipe.list"):
			return "Recipes directory not found"
		case hasOp(ops, "workspacefinder"):
			return "Workspace not found (run `cookiecalc init`)"
		}
		return "Not found"

	case domain.KindInvalidConfig:
		base := "config"
		if strings.TrimSpace(oe.Path) != "" {
			base = filepath.Base(oe.Path)
		}
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML at " + base + " line " + line
		}
		if looksLikeYAMLProblem(err.Error()) {
			return "Invalid YAML at " + base
		}
		return "Invalid config in " + base
	}

	return "Unexpected error (see logs)"
}

// opChain lists the Op of every OpError in err's chain, outermost first.
func opChain(err error) []string {
	var ops []string
	for err != nil {
		var oe *domain.OpError
		if !errors.As(err, &oe) {
			break
		}
		ops = append(ops, oe.Op)
		err = oe.Err
	}
	return ops
}

func hasOp(ops []string, prefix string) bool {
	for _, op := range ops {
		if strings.HasPrefix(op, prefix) {
			return true
		}
	}
	return false
}

// subject returns the offending unit or ingredient name, quoted and with a
// leading space, from the innermost OpError. Empty when there is none.
func subject(err error) string {
	var inner error
	for e := err; e != nil; {
		var oe *domain.OpError
		if !errors.As(e, &oe) {
			break
		}
		inner = oe.Err
		e = oe.Err
	}
	if inner == nil {
		return ""
	}
	if q := reQuoted.FindString(inner.Error()); q != "" {
		return " " + q
	}
	return ""
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
