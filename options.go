package mandel

import "runtime"

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Defaults: GOMAXPROCS workers, DefaultIterationCap
//	r, err := mandel.NewRenderer(800, 600)
//
//	// Explicit worker count and cap
//	r, err := mandel.NewRenderer(800, 600,
//	    mandel.WithWorkers(4), mandel.WithIterationCap(5000))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers int
	maxIter int
	buffer  *IterBuffer
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		workers: runtime.GOMAXPROCS(0),
		maxIter: DefaultIterationCap,
	}
}

// WithWorkers sets the number of workers the renderer's pool uses.
// Worker counts above the frame height leave the excess workers idle.
// NewRenderer rejects values <= 0; the default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithIterationCap sets the per-pixel iteration bound. A pixel whose count
// equals the cap is treated as inside the set. NewRenderer rejects values
// <= 0; the default is DefaultIterationCap.
func WithIterationCap(n int) Option {
	return func(o *rendererOptions) {
		o.maxIter = n
	}
}

// WithBuffer sets a caller-owned output buffer for the Renderer instead of
// allocating one. The buffer dimensions must match the Renderer dimensions.
//
// Example:
//
//	buf := mandel.NewIterBuffer(800, 600)
//	r, err := mandel.NewRenderer(800, 600, mandel.WithBuffer(buf))
func WithBuffer(buf *IterBuffer) Option {
	return func(o *rendererOptions) {
		o.buffer = buf
	}
}
