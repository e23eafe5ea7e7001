package mandel

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/mandel/internal/escape"
	"github.com/gogpu/mandel/internal/parallel"
	"github.com/gogpu/mandel/internal/wide"
)

// DefaultIterationCap is the per-pixel iteration bound used when
// WithIterationCap is not given.
const DefaultIterationCap = 1000

// Renderer computes escape-time frames into a reusable output buffer.
//
// A Renderer owns its buffer and a fixed pool of workers. Render splits the
// frame into contiguous row spans, one per worker, and blocks until every
// worker has joined; only then is the buffer valid for reading. At most one
// frame may be in flight per Renderer: do not call Render concurrently on
// the same Renderer, and do not read the buffer of an earlier frame while a
// later one is rendering.
type Renderer struct {
	width   int
	height  int
	workers int
	maxIter uint32
	buf     *IterBuffer
	pool    *parallel.Pool
}

// NewRenderer creates a renderer for width×height frames.
// Every configuration value is validated up front: non-positive dimensions,
// iteration cap, or worker count fail with an error naming the offending
// field rather than being clamped.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("mandel: invalid width %d (must be > 0)", width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("mandel: invalid height %d (must be > 0)", height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.maxIter <= 0 {
		return nil, fmt.Errorf("mandel: invalid iteration cap %d (must be > 0)", o.maxIter)
	}
	if o.workers <= 0 {
		return nil, fmt.Errorf("mandel: invalid worker count %d (must be > 0)", o.workers)
	}

	buf := o.buffer
	if buf == nil {
		buf = NewIterBuffer(width, height)
	} else if buf.Width() != width || buf.Height() != height {
		return nil, fmt.Errorf("mandel: buffer size %dx%d does not match renderer size %dx%d",
			buf.Width(), buf.Height(), width, height)
	}

	return &Renderer{
		width:   width,
		height:  height,
		workers: o.workers,
		maxIter: uint32(o.maxIter),
		buf:     buf,
		pool:    parallel.NewPool(o.workers),
	}, nil
}

// Width returns the frame width in pixels.
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the frame height in pixels.
func (r *Renderer) Height() int {
	return r.height
}

// Workers returns the number of workers in the renderer's pool.
func (r *Renderer) Workers() int {
	return r.workers
}

// IterationCap returns the per-pixel iteration bound.
func (r *Renderer) IterationCap() uint32 {
	return r.maxIter
}

// Render computes one frame for the given viewport snapshot and returns
// the renderer's buffer. Render blocks until every worker has finished, so
// the returned buffer is complete; it is reused by the next Render call.
// A zoom that is not strictly positive fails before any work starts.
func (r *Renderer) Render(vp Viewport) (*IterBuffer, error) {
	if !(vp.Zoom > 0) {
		return nil, fmt.Errorf("mandel: invalid zoom %g (must be > 0)", vp.Zoom)
	}

	start := time.Now()

	spans := parallel.SplitRows(r.height, r.workers)
	tasks := make([]func(), 0, len(spans))
	for _, s := range spans {
		if s.Empty() {
			continue
		}
		s := s
		tasks = append(tasks, func() {
			r.renderSpan(vp, s)
		})
	}

	r.pool.Dispatch(tasks)

	Logger().Debug("frame complete",
		slog.Int("width", r.width),
		slog.Int("height", r.height),
		slog.Int("workers", r.workers),
		slog.Duration("elapsed", time.Since(start)))

	return r.buf, nil
}

// renderSpan evaluates every pixel of the rows [s.Start, s.End), writing
// into the buffer's disjoint row views. Columns are processed in groups of
// escape.Lanes; a partial trailing group repeats the last column and the
// duplicate lane results are discarded.
func (r *Renderer) renderSpan(vp Viewport, s parallel.Span) {
	for y := s.Start; y < s.End; y++ {
		row := r.buf.Row(y)

		_, im := vp.Map(0, y, r.width, r.height)
		ci := wide.SplatF64(im)

		for x := 0; x < r.width; x += escape.Lanes {
			var cr wide.F64x4
			for l := range cr {
				px := x + l
				if px >= r.width {
					px = r.width - 1
				}
				cr[l], _ = vp.Map(px, y, r.width, r.height)
			}

			counts := escape.Vector(cr, ci, r.maxIter)

			n := min(escape.Lanes, r.width-x)
			copy(row[x:x+n], counts[:n])
		}
	}
}

// Close releases the renderer's worker pool.
// The renderer must not be used after Close.
func (r *Renderer) Close() {
	r.pool.Close()
}
