// Package domain contains the core model for cookiecalc: units, ingredients,
// measurements and the conversion engine that bridges volume and weight.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// the filesystem, or logging. Infra/adapters map into/from these types.
package domain
