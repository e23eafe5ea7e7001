package escape

import (
	"testing"

	"github.com/gogpu/mandel/internal/wide"
)

// Benchmark the vectorized kernel against the scalar reference. Both cases
// evaluate the same four points per op so the numbers compare directly.

var benchCr = wide.F64x4{-0.74, -0.745, -0.75, -0.755}
var benchCi = wide.F64x4{0.11, 0.1125, 0.115, 0.1175}

const benchLimit = 1000

var sinkScalar uint32
var sinkVector wide.U32x4

func BenchmarkScalar4Points(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var total uint32
		for l := 0; l < Lanes; l++ {
			total += Scalar(benchCr[l], benchCi[l], benchLimit)
		}
		sinkScalar = total
	}
}

func BenchmarkVector4Points(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkVector = Vector(benchCr, benchCi, benchLimit)
	}
}

func BenchmarkVector_EarlyEscape(b *testing.B) {
	// All lanes outside the radius: measures per-call overhead when the
	// active mask empties on the first pass.
	cr := wide.SplatF64(3)
	ci := wide.SplatF64(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVector = Vector(cr, ci, benchLimit)
	}
}

func BenchmarkVector_Interior(b *testing.B) {
	// All lanes inside the set: the loop always runs to the cap.
	cr := wide.SplatF64(0)
	ci := wide.SplatF64(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVector = Vector(cr, ci, benchLimit)
	}
}
