// Package mandel computes escape-time fractal frames on the CPU.
//
// # Overview
//
// mandel evaluates the quadratic recurrence z ← z² + c over a rectangular
// pixel grid mapped onto a region of the complex plane, producing one
// iteration count per pixel. The kernel evaluates four points in lockstep
// using SIMD-friendly lane types (internal/wide) and partitions each frame
// into contiguous row spans computed by a fixed pool of workers
// (internal/parallel). Computation is race-free by construction: workers
// write only to disjoint rows of the output buffer, and the buffer is valid
// for reading once Render returns.
//
// # Quick Start
//
//	import "github.com/gogpu/mandel"
//
//	// Create a renderer for an 800x600 frame
//	r, err := mandel.NewRenderer(800, 600, mandel.WithIterationCap(1000))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	// Compute one frame and save it
//	buf, err := r.Render(mandel.Viewport{OffsetX: -0.5, OffsetY: 0, Zoom: 1})
//	if err != nil {
//		log.Fatal(err)
//	}
//	mandel.SavePNG("mandelbrot.png", buf, r.IterationCap(), nil)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Viewport, IterBuffer, color mapping
//   - internal/escape: the vectorized kernel and its scalar reference
//   - internal/wide: fixed-width lane types for auto-vectorization
//   - internal/parallel: row partitioning and the fork-join worker pool
//
// Presentation (windowing, texture upload, input-driven panning) is left to
// the caller; the package exposes only the computation and an image/PNG
// convenience surface for its results.
package mandel
