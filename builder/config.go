// Package builder: config schema, sentinel errors, and validation.
//
// Errors:
//
//	ErrBadRational     - a rational string failed to parse.
//	ErrNoGenerators    - config declares no generators.
//	ErrDuplicatePair   - two bracket entries for the same ordered pair.
//	ErrSkewSource      - skew_complete entry whose opposite orientation
//	                     was never declared.
//	ErrSkewOverwrite   - skew_complete entry whose target orientation is
//	                     already declared.
//	ErrUnknownAlgebra  - named-catalog lookup miss.
package builder

import (
	"errors"
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for config handling.
var (
	// ErrBadRational indicates a weight, coefficient or central
	// parameter that is not a valid rational string.
	ErrBadRational = errors.New("builder: bad rational literal")

	// ErrNoGenerators indicates an empty generator list.
	ErrNoGenerators = errors.New("builder: no generators declared")

	// ErrDuplicatePair indicates two bracket blocks for one ordered
	// generator pair.
	ErrDuplicatePair = errors.New("builder: duplicate bracket pair")

	// ErrSkewSource indicates a skew_complete entry with no declared
	// opposite orientation to derive from.
	ErrSkewSource = errors.New("builder: skew source bracket not declared")

	// ErrSkewOverwrite indicates a skew_complete entry that would
	// overwrite an explicitly declared bracket.
	ErrSkewOverwrite = errors.New("builder: skew target bracket already declared")

	// ErrUnknownAlgebra indicates a named-catalog lookup miss.
	ErrUnknownAlgebra = errors.New("builder: unknown algebra name")
)

// Config is the root of the declarative schema.
type Config struct {
	// Name labels the algebra; informational only.
	Name string `yaml:"name"`

	// Generators declares every generator, central ones included.
	Generators []GeneratorConfig `yaml:"generators"`

	// Brackets declares the λ-bracket tables, one ordered pair each.
	Brackets []BracketConfig `yaml:"brackets,omitempty"`

	// SkewComplete lists ordered pairs whose table should be derived
	// from the opposite orientation by skew-symmetry.
	SkewComplete []PairConfig `yaml:"skew_complete,omitempty"`

	// CentralParameters assigns rational scalars to central
	// generators; missing entries default to zero.
	CentralParameters map[string]string `yaml:"central_parameters,omitempty"`
}

// GeneratorConfig declares one generator.
type GeneratorConfig struct {
	Name    string `yaml:"name"`
	Weight  string `yaml:"weight"`
	Odd     bool   `yaml:"odd,omitempty"`
	Central bool   `yaml:"central,omitempty"`
}

// BracketConfig declares one ordered bracket table.
type BracketConfig struct {
	Left  string       `yaml:"left"`
	Right string       `yaml:"right"`
	Poles []PoleConfig `yaml:"poles"`
}

// PoleConfig declares the terms at one pole order.
type PoleConfig struct {
	Pole  int          `yaml:"pole"`
	Terms []TermConfig `yaml:"terms"`
}

// TermConfig declares one coef·T^(deriv)·gen summand.
type TermConfig struct {
	Gen   string `yaml:"gen"`
	Deriv int    `yaml:"deriv,omitempty"`
	Coef  string `yaml:"coef"`
}

// PairConfig names an ordered generator pair.
type PairConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Parse decodes a YAML document into a Config. Structural validation
// happens later, in FromConfig.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("builder: parse config: %w", err)
	}
	return &cfg, nil
}

// parseRat parses a rational literal like "2", "-1/2" or "0.25".
func parseRat(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, ErrBadRational)
	}
	return r, nil
}
