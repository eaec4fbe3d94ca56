// Package cmd contains the CLI commands for the contentcheck
// application.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eykd/contentcheck/internal/config"
)

var rootCmd *cobra.Command

// verbose holds the global --verbose flag state.
var verbose bool

func init() {
	rootCmd = NewRootCmd()
}

// GetVerbose returns the current verbose flag state.
func GetVerbose() bool {
	return verbose
}

// NewRootCmd creates a new root command instance. The root command runs
// a validation pass itself; doctor and version are subcommands.
func NewRootCmd() *cobra.Command {
	var opts ValidateOptions
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "contentcheck [path]",
		Short: "Validate markdown content against publication conventions",
		Long: `contentcheck lints markdown/MDX content for structural and frontmatter
conventions before publication: heading structure, required metadata,
locale-tagged filenames, renderer-breaking syntax, code fence language
tags, and reading-time heuristics.

With no arguments the whole corpus is scanned. A single path argument
validates exactly that file. --changed validates only files changed in
version control.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.Target = args[0]
			}
			runner := newCorpusRunner(cfg, cmd.ErrOrStderr())
			return runValidateAndReport(cmd, runner, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./.contentcheck.yaml or ~/.config/contentcheck/)")
	cmd.Flags().BoolVar(&opts.Changed, "changed", false, "Validate only files changed in version control")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&opts.ReportPath, "report", "", "Write the JSON report to a file")

	cmd.AddCommand(NewDoctorCmd(cfgFile))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// LoadConfig resolves configuration through viper: an explicit file
// when given, otherwise .contentcheck.yaml discovered in the working
// directory or ~/.config/contentcheck/, overridden by CONTENTCHECK_*
// environment variables. A missing config file is fine; the defaults
// stand alone.
func LoadConfig(cfgFile string) (*config.Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".contentcheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "contentcheck"))
		}
	}

	v.SetEnvPrefix("CONTENTCHECK")
	v.AutomaticEnv()

	cfg := config.Default()
	v.SetDefault("content_roots", cfg.ContentRoots)
	v.SetDefault("extensions", cfg.Extensions)
	v.SetDefault("locales", cfg.Locales)
	v.SetDefault("required_fields", cfg.RequiredFields)
	v.SetDefault("max_description_length", cfg.MaxDescriptionLength)
	v.SetDefault("min_tags", cfg.MinTags)
	v.SetDefault("max_tags", cfg.MaxTags)
	v.SetDefault("min_h2_count", cfg.MinH2Count)
	v.SetDefault("max_h2_words", cfg.MaxH2Words)
	v.SetDefault("words_per_minute", cfg.WordsPerMinute)
	v.SetDefault("min_reading_minutes", cfg.MinReadingMinutes)
	v.SetDefault("max_reading_minutes", cfg.MaxReadingMinutes)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command and returns any error.
// Deprecated: Use ExecuteContext instead for proper signal handling.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
