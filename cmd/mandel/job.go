package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/mandel/internal/config"
	"github.com/san-kum/mandel/internal/render"
)

// renderArgs accepts either the full positional form of n arguments or,
// when a preset or config file supplies the view, the leading n-3 of them.
func renderArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}
		if (preset != "" || configFile != "") && len(args) <= n-3 {
			return nil
		}
		return fmt.Errorf("expected %d arguments (%s), got %d", n, strings.TrimPrefix(cmd.Use, cmd.Name()+" "), len(args))
	}
}

// resolveConfig builds the effective settings: preset, then config file,
// then positional arguments and explicitly set flags. With withFile the
// first positional argument is the output path.
func resolveConfig(cmd *cobra.Command, args []string, withFile bool) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		var err error
		if cfg, err = config.LoadOver(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if withFile && len(args) > 0 {
		cfg.Output = args[0]
		args = args[1:]
	}
	if len(args) == 3 {
		cfg.Resolution = args[0]
		cfg.UpperLeft = args[1]
		cfg.LowerRight = args[2]
	}

	if cmd.Flags().Changed("limit") {
		cfg.Limit = limit
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("band-rows") {
		cfg.BandRows = bandRows
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Format = format
	}
	return cfg, nil
}

// resolveJob is resolveConfig followed by parsing and validation. Once it
// succeeds the command line is known to be well formed, so later failures
// no longer print the usage text.
func resolveJob(cmd *cobra.Command, args []string, withFile bool) (*config.Config, render.Job, error) {
	cfg, err := resolveConfig(cmd, args, withFile)
	if err != nil {
		return nil, render.Job{}, err
	}
	job, err := cfg.Job()
	if err != nil {
		return nil, render.Job{}, err
	}
	cmd.SilenceUsage = true
	return cfg, job, nil
}

func newLogger() *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newRenderer(cfg *config.Config, extra ...render.Option) *render.Renderer {
	opts := append(cfg.RendererOptions(), render.WithLogger(newLogger()))
	return render.New(append(opts, extra...)...)
}

func renderContext() (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

// renderBuffer renders job into a fresh buffer.
func renderBuffer(cfg *config.Config, job render.Job) ([]byte, error) {
	ctx, cancel := renderContext()
	defer cancel()

	pixels := make([]byte, job.Bounds.Len())
	if err := newRenderer(cfg).Render(ctx, pixels, job); err != nil {
		return nil, fmt.Errorf("render aborted: %w", err)
	}
	return pixels, nil
}
