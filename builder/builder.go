package builder

import (
	"fmt"
	"math/big"
	"os"

	"github.com/arclimit/veva/lieconf"
	"github.com/arclimit/veva/vertex"
)

// FromConfig materializes a Config into an enveloping vertex algebra.
//
// Description:
//
//	Weights and coefficients are parsed exactly, bracket tables are
//	assembled pair by pair, skew_complete entries are derived from
//	their declared opposites, and the result is validated by the
//	lieconf and vertex constructors.
//
// Errors: the package sentinels for schema problems, plus wrapped
// lieconf/vertex validation errors.
func FromConfig(cfg *Config) (*vertex.Algebra, error) {
	if len(cfg.Generators) == 0 {
		return nil, ErrNoGenerators
	}

	gens := make([]lieconf.Generator, len(cfg.Generators))
	parity := make(map[string]bool, len(cfg.Generators))
	central := make(map[string]bool, len(cfg.Generators))
	for i, gc := range cfg.Generators {
		w, err := parseRat(gc.Weight)
		if err != nil {
			return nil, fmt.Errorf("generator %q weight: %w", gc.Name, err)
		}
		gens[i] = lieconf.Generator{Name: gc.Name, Weight: w, Odd: gc.Odd, Central: gc.Central}
		parity[gc.Name] = gc.Odd
		central[gc.Name] = gc.Central
	}

	brackets := make(map[lieconf.Pair]lieconf.Bracket, len(cfg.Brackets))
	for _, bc := range cfg.Brackets {
		pair := lieconf.Pair{Left: bc.Left, Right: bc.Right}
		if _, dup := brackets[pair]; dup {
			return nil, fmt.Errorf("[%s,%s]: %w", bc.Left, bc.Right, ErrDuplicatePair)
		}
		table := make(lieconf.Bracket, len(bc.Poles))
		for _, pc := range bc.Poles {
			terms := make([]lieconf.Term, 0, len(pc.Terms))
			for _, tc := range pc.Terms {
				c, err := parseRat(tc.Coef)
				if err != nil {
					return nil, fmt.Errorf("[%s,%s] pole %d: %w", bc.Left, bc.Right, pc.Pole, err)
				}
				terms = append(terms, lieconf.Term{Gen: tc.Gen, Deriv: tc.Deriv, Coef: c})
			}
			table[pc.Pole] = terms
		}
		brackets[pair] = table
	}

	for _, sc := range cfg.SkewComplete {
		target := lieconf.Pair{Left: sc.Left, Right: sc.Right}
		source := lieconf.Pair{Left: sc.Right, Right: sc.Left}
		if _, declared := brackets[target]; declared {
			return nil, fmt.Errorf("[%s,%s]: %w", sc.Left, sc.Right, ErrSkewOverwrite)
		}
		src, ok := brackets[source]
		if !ok {
			return nil, fmt.Errorf("[%s,%s]: %w", sc.Left, sc.Right, ErrSkewSource)
		}
		brackets[target] = lieconf.SkewOpposite(src, parity[sc.Right], parity[sc.Left],
			func(name string) bool { return central[name] })
	}

	def, err := lieconf.New(gens, brackets)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	params := make(map[string]*big.Rat, len(cfg.CentralParameters))
	for name, lit := range cfg.CentralParameters {
		v, err := parseRat(lit)
		if err != nil {
			return nil, fmt.Errorf("central parameter %q: %w", name, err)
		}
		params[name] = v
	}
	alg, err := vertex.New(def, params)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}
	return alg, nil
}

// Build parses a YAML document and materializes it.
func Build(data []byte) (*vertex.Algebra, error) {
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

// Load reads a YAML file and materializes it.
func Load(path string) (*vertex.Algebra, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("builder: read config: %w", err)
	}
	return Build(data)
}

// Named materializes a catalog algebra by name with the given central
// scalars. Recognized names: virasoro, free-boson, neveu-schwarz,
// affine-sl2.
//
// Errors: ErrUnknownAlgebra, plus vertex validation errors.
func Named(name string, central map[string]*big.Rat) (*vertex.Algebra, error) {
	var def *lieconf.Algebra
	switch name {
	case "virasoro":
		def = lieconf.Virasoro()
	case "free-boson":
		def = lieconf.FreeBoson()
	case "neveu-schwarz":
		def = lieconf.NeveuSchwarz()
	case "affine-sl2":
		def = lieconf.AffineSL2()
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgebra)
	}
	return vertex.New(def, central)
}

// CatalogNames lists the named algebras in a stable order.
func CatalogNames() []string {
	return []string{"virasoro", "free-boson", "neveu-schwarz", "affine-sl2"}
}
