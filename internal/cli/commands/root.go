package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// Global flags, bound by NewRootCommand
var (
	configPath   string
	outputFormat string
	noColor      bool
	verbose      bool
	seed         uint64
	locale       string
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "drills",
		Short: "Small programming drills: numbers, sequences, text and dates",
		Long: color.CyanString(`Drills - a catalog of small, self-contained programming exercises

Every drill is a pure function over numbers, sequences, text or dates.
The CLI lists the catalog, runs a single drill with your own input and
replays the sample inputs of every drill.

Namespaces:
  • Numeric   digits, divisors, primes, no-repeat random numbers
  • Sequence  de-duplication, intersections, flattening, min/max
  • Text      case conversion, truncation, word sorting, initials
  • Calendar  weekday names, seconds split, date validation`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable color output if requested
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./drills.yml)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format: table, json or yaml (default from config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log every invocation to stderr")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed for random drills (0: time based)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Locale for word sorting and weekday names, e.g. ru or en")

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewDemoCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the drills version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			// Set GoVersion to actual runtime if not set at build time
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			w := cmd.OutOrStdout()
			titleColor := color.New(color.FgCyan, color.Bold)

			titleColor.Fprint(w, "Drills version: ")
			cmd.Println(Version)

			titleColor.Fprint(w, "Git commit: ")
			cmd.Println(GitCommit)

			titleColor.Fprint(w, "Build date: ")
			cmd.Println(BuildDate)

			titleColor.Fprint(w, "Go version: ")
			cmd.Println(goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
