package wide

// U32x4 represents 4 uint32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
// This type holds per-lane iteration counters.
type U32x4 [4]uint32

// SplatU32 creates U32x4 with all elements set to n.
// This is useful for initializing constants or broadcasting a single value.
func SplatU32(n uint32) U32x4 {
	var result U32x4
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
// Returns a new U32x4 with v[i] + other[i] for each element.
func (v U32x4) Add(other U32x4) U32x4 {
	var result U32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// IncMasked increments the lanes selected by m.
// Lanes with a clear mask bit are returned unchanged. This is the masked
// counter update of the escape-time kernel: a finished lane's count stays
// at the iteration where it finished.
func (v U32x4) IncMasked(m Mask4) U32x4 {
	result := v
	for i := range v {
		if m[i] {
			result[i]++
		}
	}
	return result
}

// Mask4 is a per-lane boolean mask for 4-wide operations.
type Mask4 [4]bool

// SplatMask creates Mask4 with all elements set to b.
func SplatMask(b bool) Mask4 {
	var result Mask4
	for i := range result {
		result[i] = b
	}
	return result
}

// And performs an element-wise logical AND.
// Returns a new Mask4 with m[i] && other[i] for each element.
func (m Mask4) And(other Mask4) Mask4 {
	var result Mask4
	for i := range m {
		result[i] = m[i] && other[i]
	}
	return result
}

// Any reports whether at least one lane is set.
func (m Mask4) Any() bool {
	for i := range m {
		if m[i] {
			return true
		}
	}
	return false
}

// All reports whether every lane is set.
func (m Mask4) All() bool {
	for i := range m {
		if !m[i] {
			return false
		}
	}
	return true
}
