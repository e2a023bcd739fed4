package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/mandel/internal/config"
	"github.com/san-kum/mandel/internal/fractal"
	"github.com/san-kum/mandel/internal/imageio"
	"github.com/san-kum/mandel/internal/render"
	"github.com/san-kum/mandel/internal/storage"
	"github.com/san-kum/mandel/internal/tui"
	"github.com/san-kum/mandel/internal/viz"
)

func renderImage(cmd *cobra.Command, args []string) error {
	cfg, job, err := resolveJob(cmd, args, true)
	if err != nil {
		return err
	}
	imgFormat, err := cfg.OutputFormat()
	if err != nil {
		cmd.SilenceUsage = false
		return err
	}

	if saveConfig != "" {
		if err := config.Save(saveConfig, cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
	}

	ctx, cancel := renderContext()
	defer cancel()

	r := newRenderer(cfg)
	pixels := make([]byte, job.Bounds.Len())

	start := time.Now()
	if progress {
		title := fmt.Sprintf("rendering %s %s", cfg.Output, job.Bounds)
		err = tui.Run(ctx, title, func(ctx context.Context, obs render.Observer) error {
			return newRenderer(cfg, render.WithObserver(obs)).Render(ctx, pixels, job)
		})
	} else {
		fmt.Printf("rendering %s (%s, limit %d)...\n", cfg.Output, job.Bounds, job.Limit)
		err = r.Render(ctx, pixels, job)
	}
	if err != nil {
		return fmt.Errorf("render aborted: %w", err)
	}
	elapsed := time.Since(start)

	if err := imageio.WriteFile(cfg.Output, pixels, job.Bounds.Width, job.Bounds.Height, imgFormat); err != nil {
		return fmt.Errorf("error writing image file: %w", err)
	}

	meta := storage.NewRun(job, pixels)
	meta.Output = cfg.Output
	meta.Format = string(imgFormat)
	meta.Workers = r.Workers()
	meta.Bands = len(render.Bands(job.Bounds.Height, r.BandRows(job.Bounds.Height)))
	meta.Elapsed = elapsed.Seconds()

	fields := []viz.Field{
		{Label: "file", Value: cfg.Output},
		{Label: "size", Value: job.Bounds.String()},
		{Label: "upper left", Value: fractal.FormatComplex(job.Viewport.UpperLeft)},
		{Label: "lower right", Value: fractal.FormatComplex(job.Viewport.LowerRight)},
		{Label: "limit", Value: fmt.Sprint(job.Limit)},
		{Label: "workers", Value: fmt.Sprintf("%d (%d bands)", meta.Workers, meta.Bands)},
		{Label: "bounded", Value: fmt.Sprintf("%.1f%%", 100*float64(meta.Bounded)/float64(job.Bounds.Len()))},
		{Label: "elapsed", Value: elapsed.Round(time.Millisecond).String()},
	}

	if !noRecord {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			newLogger().Warn("render history unavailable", "dir", dataDir, "err", err)
		} else if runID, err := st.Save(meta); err != nil {
			newLogger().Warn("failed to record render", "dir", dataDir, "err", err)
		} else {
			fields = append(fields, viz.Field{Label: "run id", Value: runID})
		}
	}

	fmt.Println(viz.Summary("render complete", fields))

	if showPrev {
		fmt.Print(viz.Braille(pixels, job.Bounds, 80, threshold).String())
	}
	return nil
}

func previewImage(cmd *cobra.Command, args []string) error {
	cfg, job, err := resolveJob(cmd, args, false)
	if err != nil {
		return err
	}
	if cols < 1 {
		return fmt.Errorf("--cols must be positive")
	}

	pixels, err := renderBuffer(cfg, job)
	if err != nil {
		return err
	}

	if shade {
		fmt.Print(viz.Shade(pixels, job.Bounds, cols))
	} else {
		fmt.Print(viz.Braille(pixels, job.Bounds, cols, threshold).String())
	}
	fmt.Println(viz.Subtle.Render(job.Viewport.String()))
	return nil
}

func histogramPlot(cmd *cobra.Command, args []string) error {
	cfg, job, err := resolveJob(cmd, args, false)
	if err != nil {
		return err
	}

	pixels, err := renderBuffer(cfg, job)
	if err != nil {
		return err
	}

	h := render.Histogram(pixels)
	fmt.Println(viz.HistogramPlot(h, buckets, 80, 15, !withZero))
	fmt.Println()

	meta := storage.NewRun(job, pixels)
	fmt.Printf("pixels: %d\n", job.Bounds.Len())
	fmt.Printf("bounded: %d (%.1f%%)\n", meta.Bounded, 100*float64(meta.Bounded)/float64(job.Bounds.Len()))
	fmt.Printf("mean intensity: %.2f\n", meta.Mean)
	return nil
}

func benchRender(cmd *cobra.Command, args []string) error {
	cfg, job, err := resolveJob(cmd, args, false)
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("--runs must be positive")
	}

	want := make([]byte, job.Bounds.Len())
	start := time.Now()
	render.Render(want, job)
	seq := time.Since(start)

	counts := []int{}
	for n := 1; n < runtime.NumCPU(); n *= 2 {
		counts = append(counts, n)
	}
	counts = append(counts, runtime.NumCPU())
	if cmd.Flags().Changed("workers") {
		counts = []int{cfg.Workers}
	}

	pool := render.NewBufferPool(job.Bounds.Len())
	mpix := float64(job.Bounds.Len()) / 1e6

	fmt.Printf("benchmarking %s, limit %d, %d runs each\n\n", job.Bounds, job.Limit, runs)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKERS\tBANDS\tBEST\tMEAN\tMPIX/S\tSPEEDUP\tMATCH")
	fmt.Fprintf(w, "seq\t1\t%v\t%v\t%.2f\t1.00\tref\n", seq.Round(time.Microsecond), seq.Round(time.Microsecond), mpix/seq.Seconds())

	ctx, cancel := renderContext()
	defer cancel()

	mismatch := false
	for _, n := range counts {
		r := render.New(render.WithWorkers(n), render.WithBandRows(cfg.BandRows), render.WithLogger(newLogger()))
		bands := len(render.Bands(job.Bounds.Height, r.BandRows(job.Bounds.Height)))

		var best, total time.Duration
		match := true
		for i := 0; i < runs; i++ {
			buf := pool.Get()
			t0 := time.Now()
			if err := r.Render(ctx, buf, job); err != nil {
				return err
			}
			d := time.Since(t0)
			total += d
			if best == 0 || d < best {
				best = d
			}
			if !bytes.Equal(buf, want) {
				match = false
			}
			pool.Put(buf)
		}

		status := "ok"
		if !match {
			status = "MISMATCH"
			mismatch = true
		}
		mean := total / time.Duration(runs)
		fmt.Fprintf(w, "%d\t%d\t%v\t%v\t%.2f\t%.2f\t%s\n",
			r.Workers(), bands, best.Round(time.Microsecond), mean.Round(time.Microsecond),
			mpix/best.Seconds(), seq.Seconds()/best.Seconds(), status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if mismatch {
		return fmt.Errorf("parallel output differs from sequential render")
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRESOLUTION\tUPPER LEFT\tLOWER RIGHT\tLIMIT")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", name, p.Resolution, p.UpperLeft, p.LowerRight, p.Limit)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no renders recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFILE\tSIZE\tLIMIT\tWORKERS\tELAPSED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%.3fs\n",
			shortID(run.ID),
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Output,
			run.Resolution,
			run.Limit,
			run.Workers,
			run.Elapsed,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	hdr, err := imageio.ReadHeaderFile(meta.Output)
	if err != nil {
		fmt.Printf("file: %s unreadable: %v\n", meta.Output, err)
		return nil
	}
	fmt.Printf("file: %s %s %dx%d\n", meta.Output, hdr.Format, hdr.Width, hdr.Height)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
