package mandel

// IterBuffer holds one frame of per-pixel iteration counts in row-major
// order, origin at the top-left pixel. Every count is in [0, cap] for the
// frame's iteration cap: a count equal to the cap means the point never
// escaped, anything smaller is the exact iteration at which it did.
//
// A Renderer allocates its buffer once and overwrites it on every frame;
// workers write through disjoint row views, so the buffer is never shared
// mutably. Do not read a buffer while a frame is being rendered into it.
type IterBuffer struct {
	width  int
	height int
	data   []uint32
}

// NewIterBuffer creates a zeroed buffer with the given dimensions.
func NewIterBuffer(width, height int) *IterBuffer {
	return &IterBuffer{
		width:  width,
		height: height,
		data:   make([]uint32, width*height),
	}
}

// Width returns the width of the buffer in pixels.
func (b *IterBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *IterBuffer) Height() int {
	return b.height
}

// Data returns the raw row-major counts. The slice aliases the buffer's
// storage and is overwritten by the next frame.
func (b *IterBuffer) Data() []uint32 {
	return b.data
}

// At returns the iteration count at (x, y).
// Out-of-bounds coordinates return 0.
func (b *IterBuffer) At(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.data[y*b.width+x]
}

// Row returns the y-th row as a sub-slice of the buffer's storage.
// The slice capacity is clipped to the row, so a writer holding one row
// view can never reach a neighboring row.
func (b *IterBuffer) Row(y int) []uint32 {
	start := y * b.width
	end := start + b.width
	return b.data[start:end:end]
}
