package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/injectkit/config"
	"github.com/randalmurphal/injectkit/inject"
	"github.com/randalmurphal/injectkit/vars"

	// Register all built-in value loaders.
	_ "github.com/randalmurphal/injectkit/loaders"
)

// rootFlags holds the command-line flag values before merging into config.
type rootFlags struct {
	configPath string
	output     string
	vars       []string
	watch      bool
	verbose    bool
}

// newRootCmd creates the root command for the injectkit CLI.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "injectkit [flags] INPUT",
		Short: "Template files using values from various sources",
		Long: `Injectkit renders a template file by replacing %tag:key% placeholders with
values loaded from pluggable sources.

Built-in sources:
  %env:NAME%                  environment variables
  %awsec2metadata:path%       EC2 instance metadata
  %awsec2tag:Key%             EC2 instance tags
  %awsssm:/param/name%        SSM Parameter Store

Custom sources come from value files registered with --vars:

  injectkit --vars app=deploy.yaml nginx.conf.tmpl

makes %app:image% resolve against the "image" key of deploy.yaml.

INPUT is the template file to render; use "-" to read from stdin. The first
placeholder that cannot be resolved aborts the run with no output.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := mergeConfig(flags)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.Watch {
				return runWatch(cmd.Context(), cfg, args[0], logger, cmd.OutOrStdout())
			}
			return renderOnce(cmd.Context(), cfg, args[0], logger, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output-file", "o", "", "path to write the output to (default stdout)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "TOML config file")
	cmd.Flags().StringArrayVar(&flags.vars, "vars", nil, "custom source as tag=file (repeatable; .yaml, .toml, or .json)")
	cmd.Flags().BoolVar(&flags.watch, "watch", false, "re-render whenever the input or a vars file changes")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log each placeholder resolution to stderr")

	cmd.AddCommand(newSchemaCmd())
	return cmd
}

// mergeConfig layers flag values over environment variables over the config
// file over defaults.
func mergeConfig(flags *rootFlags) (config.Config, error) {
	cfg := config.Default()

	if flags.configPath != "" {
		loaded, err := config.LoadFile(flags.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg.LoadFromEnv()

	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.watch {
		cfg.Watch = true
	}
	if flags.verbose {
		cfg.Verbose = true
	}
	for _, spec := range flags.vars {
		tag, path, ok := strings.Cut(spec, "=")
		if !ok {
			return cfg, fmt.Errorf("invalid --vars value %q: want tag=file", spec)
		}
		cfg.Vars[tag] = path
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a debug-level stderr logger, or nil when not verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// renderOnce reads the template, resolves it, and writes the result.
func renderOnce(ctx context.Context, cfg config.Config, input string, logger *slog.Logger, stdout io.Writer) error {
	template, err := readInput(input)
	if err != nil {
		return err
	}

	in := inject.New(template, inject.WithLogger(logger))
	for tag, path := range cfg.Vars {
		values, err := vars.FromFile(path)
		if err != nil {
			return fmt.Errorf("load vars for tag %q: %w", tag, err)
		}
		in.RegisterLoader(tag, values)
	}

	output, err := in.Process(ctx)
	if err != nil {
		return fmt.Errorf("resolve template: %w", err)
	}

	return writeOutput(cfg.Output, output, stdout)
}

// readInput reads the template from a file, or from stdin when input is "-".
func readInput(input string) (string, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read template from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("read template file: %w", err)
	}
	return string(data), nil
}

// writeOutput writes the rendered text to the output path, or to stdout
// when the path is empty.
func writeOutput(path, output string, stdout io.Writer) error {
	if path == "" {
		_, err := io.WriteString(stdout, output)
		return err
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
