package mandel

// Viewport selects the region of the complex plane a pixel grid represents.
// OffsetX and OffsetY are the plane coordinates of the grid center; Zoom
// scales the view so that zoom 1 spans [-2, 2] along each axis, zoom > 1
// narrows the span and zoom < 1 widens it. Zoom must be positive.
//
// A Viewport is a value: Render takes its own copy, so mutating one between
// frames never affects a frame already in flight.
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Zoom    float64
}

// Map converts the pixel (px, py) of a width×height grid to its
// complex-plane coordinate. The grid origin (0,0) is the top-left pixel;
// the exact grid center maps to (OffsetX, OffsetY) at every zoom.
// Map is pure and total for Zoom > 0.
func (v Viewport) Map(px, py, width, height int) (re, im float64) {
	re = (float64(px)-float64(width)/2)*4/(float64(width)*v.Zoom) + v.OffsetX
	im = (float64(py)-float64(height)/2)*4/(float64(height)*v.Zoom) + v.OffsetY
	return re, im
}
