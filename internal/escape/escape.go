// Package escape implements the escape-time kernel for the quadratic
// recurrence z ← z² + c.
//
// Two evaluators are provided: Scalar iterates one point at a time and is
// the reference implementation; Vector iterates Lanes points in lockstep
// using the wide types and must produce bit-identical counts. Both seed the
// accumulator with c itself (folding the trivial z = 0 first step), so a
// constant that already lies outside the escape radius reports count 0.
package escape

import "github.com/gogpu/mandel/internal/wide"

// Lanes is the number of points the vectorized evaluator processes in
// lockstep. It matches the four float64 lanes of a 256-bit register.
const Lanes = 4

// escapeRadiusSq is the squared magnitude at which a point is considered
// escaped. Radius 2 is exact for the quadratic recurrence: once |z| > 2 the
// orbit diverges.
const escapeRadiusSq = 4.0

// Scalar returns the iteration at which the orbit of c first left the
// escape radius, or limit when it never did within the cap. This is the
// one-point-at-a-time reference the vectorized kernel is validated against.
func Scalar(cr, ci float64, limit uint32) uint32 {
	zr, zi := cr, ci
	var n uint32
	for n < limit && zr*zr+zi*zi < escapeRadiusSq {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		n++
	}
	return n
}

// Vector evaluates Lanes independent constants in lockstep and returns
// their iteration counts. Each pass recomputes the active mask from the
// current magnitudes and applies the z update and counter increment only to
// active lanes; an escaped lane keeps its accumulator frozen, so its
// magnitude stays outside the radius and the lane never reactivates. The
// loop is bounded by limit and exits early once no lane is active.
//
// All state is local to the call. Counts are bit-identical to running
// Scalar on each lane separately.
func Vector(cr, ci wide.F64x4, limit uint32) wide.U32x4 {
	var (
		zr   = cr
		zi   = ci
		two  = wide.SplatF64(2)
		four = wide.SplatF64(escapeRadiusSq)
		iter wide.U32x4
	)

	for n := uint32(0); n < limit; n++ {
		zr2 := zr.Mul(zr)
		zi2 := zi.Mul(zi)

		active := zr2.Add(zi2).Less(four)
		if !active.Any() {
			break
		}

		// z ← z² + c, using the pre-update zr for the imaginary part.
		nextZr := zr2.Sub(zi2).Add(cr)
		nextZi := two.Mul(zr).Mul(zi).Add(ci)

		zr = zr.Blend(active, nextZr)
		zi = zi.Blend(active, nextZi)
		iter = iter.IncMasked(active)
	}

	return iter
}
