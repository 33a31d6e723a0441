// Package commands provides the CLI commands for optcore.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dshills/optcore/internal/logging"
	"github.com/dshills/optcore/internal/option"
	"github.com/dshills/optcore/internal/option/document"
	"github.com/dshills/optcore/internal/option/fromfile"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// Global flags.
var (
	configPaths []string
	buildRoot   string
	seedFlags   []string
	logLevel    string
	pretty      bool
)

var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "optcore",
	Short: "optcore - inspect and validate layered option configuration",
	Long: `optcore resolves strongly-typed option values from layered TOML
configuration files, honoring DEFAULT-section fallback, placeholder
interpolation, list/dict edit syntax, and @fromfile indirection.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.New(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Pretty: pretty,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&configPaths, "config", "c", nil, "config file path (repeatable; later files take precedence)")
	rootCmd.PersistentFlags().StringVar(&buildRoot, "buildroot", "", "build root for seed variables (defaults to the working directory)")
	rootCmd.PersistentFlags().StringArrayVar(&seedFlags, "seed", nil, "extra seed variable as name=value (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", true, "human-readable log output")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadStack parses every --config file into a reader stack, weakest
// first.
func loadStack() (*option.Stack, error) {
	if len(configPaths) == 0 {
		return nil, fmt.Errorf("at least one --config file is required")
	}
	root := buildRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root = wd
	}

	seeds := option.Seeds(root)
	for _, s := range seedFlags {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --seed %q: expected name=value", s)
		}
		seeds[name] = val
	}

	expander := fromfile.NewExpander(root)
	readers := make([]*option.Reader, 0, len(configPaths))
	for _, path := range configPaths {
		src, err := document.FileSource(path)
		if err != nil {
			return nil, err
		}
		doc, err := document.Parse(src, seeds)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Int("sections", len(doc.Sections())).Msg("parsed config file")
		readers = append(readers, option.NewReader(doc, expander))
	}
	return option.NewStack(readers...), nil
}

// parseID converts --scope and a dash-joined option name into an
// OptionID.
func parseID(scope, name string) option.OptionID {
	var scopes []string
	if scope != "" {
		scopes = []string{scope}
	}
	return option.NewID(scopes, strings.Split(name, "-")...)
}
