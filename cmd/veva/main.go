// Package main provides the veva CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arclimit/veva/builder"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "veva",
		Short: "veva - exact universal enveloping vertex algebra kernel",
		Long: `veva computes inside universal enveloping vertex algebras over ℚ:
PBW bases, normally ordered products, λ-brackets and singular vectors,
all with exact rational arithmetic.

Algebras come from the built-in catalog (--name) or from a YAML
structure-constant file (--config); central parameters are set with
repeated --central NAME=VALUE flags.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(verbose)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("veva v%s (%s)\n", version, commit)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "catalog",
		Short: "List the built-in algebra catalog",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range builder.CatalogNames() {
				fmt.Println(name)
			}
		},
	})

	hilbertCmd := &cobra.Command{
		Use:   "hilbert",
		Short: "Print graded dimensions up to a conformal weight",
		Long:  "Print dim of every integer-weight graded piece from 0 up to --max.",
		RunE:  runHilbert,
	}
	addAlgebraFlags(hilbertCmd)
	hilbertCmd.Flags().Int("max", 8, "highest conformal weight to report")
	rootCmd.AddCommand(hilbertCmd)

	basisCmd := &cobra.Command{
		Use:   "basis <weight>",
		Short: "Print the PBW basis of one graded piece",
		Args:  cobra.ExactArgs(1),
		RunE:  runBasis,
	}
	addAlgebraFlags(basisCmd)
	rootCmd.AddCommand(basisCmd)

	opeCmd := &cobra.Command{
		Use:   "ope <left> <right>",
		Short: "Print the λ-bracket of two generators, pole by pole",
		Args:  cobra.ExactArgs(2),
		RunE:  runOPE,
	}
	addAlgebraFlags(opeCmd)
	rootCmd.AddCommand(opeCmd)

	singularCmd := &cobra.Command{
		Use:   "singular <weight>",
		Short: "Find the singular vectors of one conformal weight",
		Long: `Enumerate the PBW basis of the given conformal weight and solve
exactly for the vectors annihilated by every positive shifted mode.`,
		Args: cobra.ExactArgs(1),
		RunE: runSingular,
	}
	addAlgebraFlags(singularCmd)
	rootCmd.AddCommand(singularCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addAlgebraFlags attaches the shared algebra-selection flags.
func addAlgebraFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "catalog algebra name (see `veva catalog`)")
	cmd.Flags().String("config", "", "path to a YAML structure-constant file")
	cmd.Flags().StringArray("central", nil, "central parameter, NAME=VALUE (repeatable)")
}

// initLogger installs the process-wide zap logger.
func initLogger(verbose bool) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "veva: logger init: %v\n", err)
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger)
}
