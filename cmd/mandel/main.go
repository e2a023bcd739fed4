package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool

	// render settings shared by render, preview, histogram and bench
	limit      int
	workers    int
	bandRows   int
	format     string
	configFile string
	preset     string
	timeout    time.Duration

	// render
	progress   bool
	showPrev   bool
	saveConfig string
	noRecord   bool

	// preview
	cols      int
	shade     bool
	threshold uint8

	// histogram
	buckets  int
	withZero bool

	// bench
	runs int
)

// main executes the root command and exits with status 1 if it fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mandel",
		Short: "escape-time Mandelbrot renderer",
		Long: "mandel renders the Mandelbrot set as an 8-bit grayscale image.\n\n" +
			"Example:\n  mandel render foo.png 1000x750 -1.20,0.35 -1.0,0.20",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".mandel", "render history directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	renderCmd := &cobra.Command{
		Use:   "render FILE PIXELS UPPERLEFT LOWERRIGHT",
		Short: "render an image file",
		Example: "  mandel render foo.png 1000x750 -1.20,0.35 -1.0,0.20\n" +
			"  mandel render --preset seahorse_valley\n" +
			"  mandel render --config view.yaml out.tiff",
		Args: renderArgs(4),
		RunE: renderImage,
	}
	addJobFlags(renderCmd)
	renderCmd.Flags().StringVar(&format, "format", "", "image format: png, bmp or tiff (default from FILE extension)")
	renderCmd.Flags().BoolVar(&progress, "progress", false, "show a progress display")
	renderCmd.Flags().BoolVar(&showPrev, "preview", false, "print a terminal preview after rendering")
	renderCmd.Flags().StringVar(&saveConfig, "save-config", "", "write the effective settings to this yaml file")
	renderCmd.Flags().BoolVar(&noRecord, "no-record", false, "do not record the render in the history")

	previewCmd := &cobra.Command{
		Use:   "preview [PIXELS UPPERLEFT LOWERRIGHT]",
		Short: "render to the terminal",
		Args:  renderArgs(3),
		RunE:  previewImage,
	}
	addJobFlags(previewCmd)
	previewCmd.Flags().IntVar(&cols, "cols", 80, "preview width in characters")
	previewCmd.Flags().BoolVar(&shade, "shade", false, "use shaded characters instead of braille dots")
	previewCmd.Flags().Uint8Var(&threshold, "threshold", 32, "gray level below which a braille dot is drawn")

	histogramCmd := &cobra.Command{
		Use:   "histogram [PIXELS UPPERLEFT LOWERRIGHT]",
		Short: "plot the gray level distribution of a render",
		Args:  renderArgs(3),
		RunE:  histogramPlot,
	}
	addJobFlags(histogramCmd)
	histogramCmd.Flags().IntVar(&buckets, "buckets", 64, "number of histogram buckets")
	histogramCmd.Flags().BoolVar(&withZero, "with-bounded", false, "include bounded points (level 0)")

	benchCmd := &cobra.Command{
		Use:   "bench [PIXELS UPPERLEFT LOWERRIGHT]",
		Short: "time renders at increasing worker counts",
		Args:  renderArgs(3),
		RunE:  benchRender,
	}
	addJobFlags(benchCmd)
	benchCmd.Flags().IntVar(&runs, "runs", 3, "renders per worker count")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named views",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded renders",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "show a recorded render",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	rootCmd.AddCommand(renderCmd, previewCmd, histogramCmd, benchCmd, presetsCmd, listCmd, showCmd)
	return rootCmd
}

// addJobFlags registers the render settings. Flags must come before the
// positional arguments, which may start with a minus sign.
func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().IntVar(&limit, "limit", 200, "iteration limit")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent bands (default number of CPUs)")
	cmd.Flags().IntVar(&bandRows, "band-rows", 0, "rows per band (default derived from height)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named view")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the render after this long (0 = no limit)")
}
