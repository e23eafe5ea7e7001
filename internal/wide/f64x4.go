package wide

// F64x4 represents 4 float64 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// This type matches the lane count of a 256-bit double-precision register.
type F64x4 [4]float64

// SplatF64 creates F64x4 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatF64(n float64) F64x4 {
	var result F64x4
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
// Returns a new F64x4 with v[i] + other[i] for each element.
func (v F64x4) Add(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
// Returns a new F64x4 with v[i] - other[i] for each element.
func (v F64x4) Sub(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
// Returns a new F64x4 with v[i] * other[i] for each element.
func (v F64x4) Mul(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Less performs an element-wise less-than comparison.
// Returns a Mask4 with m[i] set when v[i] < other[i].
func (v F64x4) Less(other F64x4) Mask4 {
	var result Mask4
	for i := range v {
		result[i] = v[i] < other[i]
	}
	return result
}

// Blend merges two vectors under a mask.
// Returns a new F64x4 taking other[i] where m[i] is set and v[i] elsewhere.
// Lanes with a clear mask bit are returned unchanged, which makes Blend the
// masked-update primitive: finished lanes keep their last values.
func (v F64x4) Blend(m Mask4, other F64x4) F64x4 {
	result := v
	for i := range v {
		if m[i] {
			result[i] = other[i]
		}
	}
	return result
}
