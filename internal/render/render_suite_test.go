package render_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandel/internal/fractal"
	"github.com/san-kum/mandel/internal/render"
)

func TestRenderSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Render Suite")
}

var _ = Describe("Renderer", func() {
	var job render.Job

	BeforeEach(func() {
		job = render.Job{
			Bounds:   fractal.Bounds{Width: 41, Height: 23},
			Viewport: fractal.Viewport{UpperLeft: complex(-0.8, 0.15), LowerRight: complex(-0.7, 0.05)},
			Limit:    fractal.DefaultLimit,
		}
	})

	DescribeTable("matches the sequential render",
		func(workers, rows int) {
			want := make([]byte, job.Bounds.Len())
			render.Render(want, job)

			got := make([]byte, job.Bounds.Len())
			r := render.New(render.WithWorkers(workers), render.WithBandRows(rows))
			Expect(r.Render(context.Background(), got, job)).To(Succeed())
			Expect(got).To(Equal(want))
		},
		Entry("one worker, derived bands", 1, 0),
		Entry("two workers, single-row bands", 2, 1),
		Entry("more workers than rows", 64, 1),
		Entry("one band for the whole image", 4, 23),
		Entry("band taller than the image", 4, 500),
	)

	It("reports every band exactly once", func() {
		calls := make(chan render.Band, 100)
		r := render.New(
			render.WithWorkers(4),
			render.WithBandRows(5),
			render.WithObserver(render.ObserverFunc(func(b render.Band, done, total int) {
				calls <- b
			})),
		)

		pixels := make([]byte, job.Bounds.Len())
		Expect(r.Render(context.Background(), pixels, job)).To(Succeed())
		close(calls)

		var starts []int
		for b := range calls {
			starts = append(starts, b.Start)
		}
		Expect(starts).To(ConsistOf(0, 5, 10, 15, 20))
	})

	It("stops when the context deadline passes", func() {
		big := job
		big.Bounds = fractal.Bounds{Width: 2000, Height: 2000}
		big.Viewport = fractal.Viewport{UpperLeft: complex(-0.5, 0.5), LowerRight: complex(0.1, -0.5)}
		big.Limit = 100000

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		pixels := make([]byte, big.Bounds.Len())
		err := render.New(render.WithWorkers(2)).Render(ctx, pixels, big)
		Expect(err).To(MatchError(context.DeadlineExceeded))
	})

	It("panics when the buffer does not fit the bounds", func() {
		Expect(func() {
			_ = render.New().Render(context.Background(), make([]byte, 3), job)
		}).To(Panic())
	})
})
