package mandel

import (
	"fmt"
	"runtime"
	"testing"
)

// Frame-level benchmarks. The worker-scaling benchmark renders the same
// viewport at increasing worker counts; the per-op time should drop until
// the core count is reached.

var benchViewport = Viewport{OffsetX: -0.5, OffsetY: 0, Zoom: 1}

func BenchmarkRender(b *testing.B) {
	r, err := NewRenderer(800, 600, WithIterationCap(1000))
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(benchViewport); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender_WorkerScaling(b *testing.B) {
	counts := []int{1, 2, 4, 8}
	if n := runtime.GOMAXPROCS(0); n > 8 {
		counts = append(counts, n)
	}

	for _, workers := range counts {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			r, err := NewRenderer(640, 480,
				WithIterationCap(500), WithWorkers(workers))
			if err != nil {
				b.Fatal(err)
			}
			defer r.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := r.Render(benchViewport); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkRender_DeepView(b *testing.B) {
	// A seahorse-valley viewport where most pixels iterate close to the
	// cap: the worst case for the early-exit kernel.
	vp := Viewport{OffsetX: -0.745, OffsetY: 0.113, Zoom: 500}

	r, err := NewRenderer(320, 240, WithIterationCap(1000))
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Render(vp); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkImage(b *testing.B) {
	r, err := NewRenderer(640, 480, WithIterationCap(200))
	if err != nil {
		b.Fatal(err)
	}
	defer r.Close()

	buf, err := r.Render(benchViewport)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Image(buf, r.IterationCap(), nil)
	}
}
