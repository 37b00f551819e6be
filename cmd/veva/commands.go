package main

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arclimit/veva/builder"
	"github.com/arclimit/veva/vertex"
)

// CLI-level sentinel errors.
var (
	// errNoAlgebra indicates neither --name nor --config was given.
	errNoAlgebra = errors.New("veva: pass --name or --config to select an algebra")

	// errBothAlgebras indicates --name and --config were both given.
	errBothAlgebras = errors.New("veva: --name and --config are mutually exclusive")

	// errBadCentral indicates a malformed --central flag.
	errBadCentral = errors.New("veva: --central expects NAME=VALUE with a rational value")

	// errUnknownGenerator indicates an ope operand that names no generator.
	errUnknownGenerator = errors.New("veva: unknown generator")
)

// parseCentral turns repeated NAME=VALUE flags into rational scalars.
func parseCentral(pairs []string) (map[string]*big.Rat, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]*big.Rat, len(pairs))
	for _, p := range pairs {
		name, lit, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%q: %w", p, errBadCentral)
		}
		v, good := new(big.Rat).SetString(lit)
		if !good {
			return nil, fmt.Errorf("%q: %w", p, errBadCentral)
		}
		out[name] = v
	}
	return out, nil
}

// resolveAlgebra builds the algebra selected by the shared flags.
func resolveAlgebra(cmd *cobra.Command) (*vertex.Algebra, error) {
	name, _ := cmd.Flags().GetString("name")
	path, _ := cmd.Flags().GetString("config")
	pairs, _ := cmd.Flags().GetStringArray("central")

	switch {
	case name == "" && path == "":
		return nil, errNoAlgebra
	case name != "" && path != "":
		return nil, errBothAlgebras
	}

	central, err := parseCentral(pairs)
	if err != nil {
		return nil, err
	}

	if name != "" {
		zap.L().Debug("building catalog algebra", zap.String("name", name))
		return builder.Named(name, central)
	}

	zap.L().Debug("building algebra from config", zap.String("path", path))
	alg, err := builder.Load(path)
	if err != nil {
		return nil, err
	}
	if len(central) == 0 {
		return alg, nil
	}
	// --central overrides the file's central_parameters
	merged := alg.CentralParameters()
	for k, v := range central {
		merged[k] = v
	}
	return vertex.New(alg.Def(), merged)
}

// parseWeight parses a conformal weight argument like "6" or "7/2".
func parseWeight(s string) (*big.Rat, error) {
	w, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("veva: bad weight %q", s)
	}
	return w, nil
}

func runHilbert(cmd *cobra.Command, args []string) error {
	alg, err := resolveAlgebra(cmd)
	if err != nil {
		return err
	}
	max, _ := cmd.Flags().GetInt("max")
	dims, err := alg.HilbertSeries(max)
	if err != nil {
		return err
	}
	for e, d := range dims {
		fmt.Printf("%d\t%d\n", e, d)
	}
	return nil
}

func runBasis(cmd *cobra.Command, args []string) error {
	alg, err := resolveAlgebra(cmd)
	if err != nil {
		return err
	}
	w, err := parseWeight(args[0])
	if err != nil {
		return err
	}
	basis, err := alg.Basis(w)
	if err != nil {
		return err
	}
	for _, b := range basis {
		fmt.Println(b)
	}
	zap.L().Debug("basis enumerated",
		zap.String("weight", w.RatString()), zap.Int("dim", len(basis)))
	return nil
}

func runOPE(cmd *cobra.Command, args []string) error {
	alg, err := resolveAlgebra(cmd)
	if err != nil {
		return err
	}
	left, ok := alg.GenByName(args[0])
	if !ok {
		return fmt.Errorf("%q: %w", args[0], errUnknownGenerator)
	}
	right, ok := alg.GenByName(args[1])
	if !ok {
		return fmt.Errorf("%q: %w", args[1], errUnknownGenerator)
	}
	poles := left.Bracket(right)
	order := make([]int, 0, len(poles))
	for n := range poles {
		order = append(order, n)
	}
	sort.Ints(order)
	for _, n := range order {
		fmt.Printf("λ^%d/%d!:\t%s\n", n, n, poles[n])
	}
	if len(order) == 0 {
		fmt.Println("regular OPE (zero bracket)")
	}
	return nil
}

func runSingular(cmd *cobra.Command, args []string) error {
	alg, err := resolveAlgebra(cmd)
	if err != nil {
		return err
	}
	w, err := parseWeight(args[0])
	if err != nil {
		return err
	}
	vectors, err := alg.FindSingular(w)
	if err != nil {
		return err
	}
	zap.L().Debug("singular search done",
		zap.String("weight", w.RatString()), zap.Int("found", len(vectors)))
	if len(vectors) == 0 {
		fmt.Println("no singular vectors at this weight")
		return nil
	}
	for _, v := range vectors {
		fmt.Println(v)
	}
	return nil
}
