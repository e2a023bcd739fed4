package render

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Observer is told about each finished band. It may be called from several
// goroutines at once.
type Observer interface {
	OnBand(band Band, done, total int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(band Band, done, total int)

func (f ObserverFunc) OnBand(band Band, done, total int) { f(band, done, total) }

type Renderer struct {
	workers  int
	bandRows int
	logger   *slog.Logger
	observer Observer
}

type Option func(*Renderer)

// WithWorkers sets how many bands are computed at once. n <= 0 means
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithBandRows fixes the number of rows per band. n <= 0 derives it from the
// image height and the worker count.
func WithBandRows(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.bandRows = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(r *Renderer) { r.observer = o }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		workers: runtime.NumCPU(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Renderer) Workers() int { return r.workers }

// BandRows returns the band height used for an image of the given height.
// Each worker gets about four bands so that slow regions near the set do not
// leave the other workers idle.
func (r *Renderer) BandRows(height int) int {
	if r.bandRows > 0 {
		return r.bandRows
	}
	n := r.workers * 4
	rows := (height + n - 1) / n
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Render fills pixels with job, computing row bands concurrently. Each band
// owns the sub-slice pixels[start*width : end*width]. Render returns once all
// bands are written, or with ctx.Err() if ctx is done first; the buffer
// content is unspecified in that case.
//
// Render panics if len(pixels) != job.Bounds.Len().
func (r *Renderer) Render(ctx context.Context, pixels []byte, job Job) error {
	checkLen(pixels, job.Bounds)

	w := job.Bounds.Width
	bands := Bands(job.Bounds.Height, r.BandRows(job.Bounds.Height))
	total := len(bands)
	var done atomic.Int64

	r.logger.Debug("render start",
		"bounds", job.Bounds.String(),
		"limit", job.Limit,
		"workers", r.workers,
		"bands", total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, band := range bands {
		dst := pixels[band.Start*w : band.End*w]
		g.Go(func() error {
			for row := band.Start; row < band.End; row++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				off := (row - band.Start) * w
				renderRow(dst[off:off+w], job, row)
			}
			n := int(done.Add(1))
			r.logger.Debug("band done", "start", band.Start, "end", band.End, "done", n, "total", total)
			if r.observer != nil {
				r.observer.OnBand(band, n, total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	r.logger.Debug("render done", "bounds", job.Bounds.String())
	return nil
}
