// Package wide provides SIMD-friendly lane types for batch point evaluation.
//
// This package implements wide types (F64x4, U32x4, Mask4) that are designed
// to enable Go compiler auto-vectorization. By using fixed-size arrays and
// simple loops, these types allow the compiler to generate SIMD instructions
// on supported architectures (SSE, AVX, NEON).
//
// # Wide Types
//
// F64x4: 4 float64 values, the width of one 256-bit double-precision
// vector register. Used for the complex accumulators and constants of the
// escape-time kernel.
//
// U32x4: 4 uint32 values for per-lane iteration counters.
//
// Mask4: 4 booleans selecting the lanes an operation applies to. Masked
// operations (Blend, IncMasked) leave deselected lanes untouched, which is
// what lets independent points share a lane group: a lane that has finished
// keeps its final values while its neighbors continue.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//   - All state is local to the caller; no package-level mutable state
package wide
