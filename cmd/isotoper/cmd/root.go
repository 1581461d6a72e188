// Package cmd provides CLI command implementations
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Flags for run command
	inputFile     string
	outputFile    string
	suffix        string
	mzTolerance   float64
	rtTolerance   float64
	monotonic     bool
	maximumCharge int
	autoRemove    bool
	minHeight     float64
	mzRange       string
	rtRange       string
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "isotoper",
	Short: "Isotoper - Isotope pattern grouping for peak lists",
	Long: `Isotoper groups the isotope envelopes in a chromatographic peak list.

For every seed peak (strongest first) it searches the remaining peaks for
isotope partners at each allowed charge state, collapses the best fit into
a single peak annotated with the detected pattern and charge, and writes a
new peak list with both collapsed and untouched rows.

Input is a CSV peak list (mz,rt,height per line); output is a SQLite
database holding the grouped peak list and its processing history.`,
	Version: "1.0.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(summarizeCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Run command flags
	runCmd.Flags().StringVarP(&inputFile, "in", "i", "", "Input CSV peak list (required)")
	runCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output database file (required)")
	runCmd.Flags().StringVar(&suffix, "suffix", "deisotoped", "Suffix appended to the output peak list name")
	runCmd.Flags().Float64Var(&mzTolerance, "mz-tolerance", 0.05, "Maximum m/z distance (Da) from an expected isotope position")
	runCmd.Flags().Float64Var(&rtTolerance, "rt-tolerance", 0.1, "Maximum RT distance from the seed peak")
	runCmd.Flags().BoolVar(&monotonic, "monotonic", false, "Assume monotonic envelope shape (skip search below the seed m/z)")
	runCmd.Flags().IntVar(&maximumCharge, "max-charge", 3, "Highest charge state to try")
	runCmd.Flags().BoolVar(&autoRemove, "auto-remove", false, "Remove the source peak list from the workspace after grouping")
	runCmd.Flags().Float64Var(&minHeight, "min-height", 0, "Keep only peaks at or above this height (0 = no cutoff)")
	runCmd.Flags().StringVar(&mzRange, "mz-range", "", "Keep only peaks inside this m/z range, as 'min-max'")
	runCmd.Flags().StringVar(&rtRange, "rt-range", "", "Keep only peaks inside this RT range, as 'min-max'")

	runCmd.MarkFlagRequired("in")
	runCmd.MarkFlagRequired("out")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Group isotope patterns in a peak list",
	Long: `Group isotope patterns in a CSV peak list and write the result database.

Examples:
  # Group with default tolerances
  isotoper run --in peaks.csv --out peaks.db

  # Tighter tolerances, charge states up to 2
  isotoper run --in peaks.csv --out peaks.db --mz-tolerance 0.01 --rt-tolerance 0.05 --max-charge 2

  # Pre-filter weak peaks and restrict the RT range
  isotoper run --in peaks.csv --out peaks.db --min-height 1000 --rt-range 5-40`,
	RunE: runGroup,
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a peak list file",
	Long:  `Validate that a peak list (CSV or result database) is properly formatted and contains valid peaks.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize peak list contents",
	Long:  `Print summary statistics about a peak list: row counts, m/z / RT / height ranges, charge states, and processing history.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSummarize,
}
