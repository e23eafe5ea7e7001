package wide

import "testing"

func TestSplatF64(t *testing.T) {
	v := SplatF64(2.5)
	for i := range v {
		if v[i] != 2.5 {
			t.Errorf("v[%d] = %v, want 2.5", i, v[i])
		}
	}
}

func TestF64x4_Add(t *testing.T) {
	a := F64x4{1, 2, 3, 4}
	b := F64x4{10, 20, 30, 40}
	got := a.Add(b)
	want := F64x4{11, 22, 33, 44}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestF64x4_Sub(t *testing.T) {
	a := F64x4{10, 20, 30, 40}
	b := F64x4{1, 2, 3, 4}
	got := a.Sub(b)
	want := F64x4{9, 18, 27, 36}
	if got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
}

func TestF64x4_Mul(t *testing.T) {
	a := F64x4{1, -2, 3, 0.5}
	b := F64x4{2, 2, -3, 8}
	got := a.Mul(b)
	want := F64x4{2, -4, -9, 4}
	if got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestF64x4_Less(t *testing.T) {
	a := F64x4{1, 5, 3, 4}
	b := F64x4{2, 2, 3, 5}
	got := a.Less(b)
	want := Mask4{true, false, false, true}
	if got != want {
		t.Errorf("Less = %v, want %v", got, want)
	}
}

func TestF64x4_Blend(t *testing.T) {
	v := F64x4{1, 2, 3, 4}
	other := F64x4{10, 20, 30, 40}
	m := Mask4{true, false, true, false}

	got := v.Blend(m, other)
	want := F64x4{10, 2, 30, 4}
	if got != want {
		t.Errorf("Blend = %v, want %v", got, want)
	}

	// Deselected lanes must be bit-identical to the receiver.
	if got[1] != v[1] || got[3] != v[3] {
		t.Errorf("Blend modified deselected lanes: %v", got)
	}
}

func TestF64x4_BlendEmptyMask(t *testing.T) {
	v := F64x4{1, 2, 3, 4}
	got := v.Blend(Mask4{}, SplatF64(99))
	if got != v {
		t.Errorf("Blend with empty mask = %v, want %v", got, v)
	}
}
