// Package content loads optional YAML overrides for the upgrade tables and
// applies them to the built-in defaults once at startup.
package content

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/osse101/prestige/internal/bignum"
)

// Literal is a numeric literal as written in the file. Bare YAML numbers and quoted
// strings both decode to their source text so "1e400" survives float64 overflow.
type Literal string

// UnmarshalYAML keeps the raw scalar text.
func (l *Literal) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a numeric literal", n.Line)
	}
	*l = Literal(n.Value)
	return nil
}

// Value parses the literal. Validation has already rejected malformed text.
func (l Literal) Value() (bignum.Value, error) {
	return bignum.Parse(string(l))
}

// File mirrors content.schema.json.
type File struct {
	Effarig  EffarigSection  `yaml:"effarig" json:"effarig"`
	Dilation DilationSection `yaml:"dilation" json:"dilation"`
}

type EffarigSection struct {
	Unlocks map[string]CostOverride `yaml:"unlocks" json:"unlocks,omitempty" validate:"dive"`
}

type DilationSection struct {
	Rebuyables map[string]RebuyableOverride `yaml:"rebuyables" json:"rebuyables,omitempty" validate:"dive"`
	Upgrades   map[string]CostOverride      `yaml:"upgrades" json:"upgrades,omitempty" validate:"dive"`
}

// CostOverride replaces a one-time cost.
type CostOverride struct {
	Cost Literal `yaml:"cost" json:"cost,omitempty" validate:"omitempty,bignum,positive"`
}

// RebuyableOverride replaces any subset of a rebuyable's scaling parameters.
// A nil PurchaseCap keeps the default; zero means unbounded.
type RebuyableOverride struct {
	InitialCost Literal `yaml:"initial_cost" json:"initial_cost,omitempty" validate:"omitempty,bignum,positive"`
	Increment   Literal `yaml:"increment" json:"increment,omitempty" validate:"omitempty,bignum,growth"`
	PurchaseCap *int    `yaml:"purchase_cap" json:"purchase_cap,omitempty" validate:"omitempty,min=0"`
}
