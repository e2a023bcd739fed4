// Package render fills grayscale pixel buffers with the escape-time image of
// a viewport.
//
// [Render] is the sequential reference. [Renderer] splits the raster into
// row bands and computes them concurrently. Every pixel depends only on the
// [Job], so bands write disjoint sub-slices of one buffer and need no
// locking; the output is identical to the sequential one.
//
//	pixels := make([]byte, job.Bounds.Len())
//	r := render.New(render.WithWorkers(8))
//	err := r.Render(ctx, pixels, job)
package render
