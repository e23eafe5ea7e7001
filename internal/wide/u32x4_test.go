package wide

import "testing"

func TestSplatU32(t *testing.T) {
	v := SplatU32(7)
	for i := range v {
		if v[i] != 7 {
			t.Errorf("v[%d] = %d, want 7", i, v[i])
		}
	}
}

func TestU32x4_Add(t *testing.T) {
	a := U32x4{1, 2, 3, 4}
	b := U32x4{10, 20, 30, 40}
	got := a.Add(b)
	want := U32x4{11, 22, 33, 44}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestU32x4_IncMasked(t *testing.T) {
	v := U32x4{5, 6, 7, 8}
	m := Mask4{true, false, false, true}

	got := v.IncMasked(m)
	want := U32x4{6, 6, 7, 9}
	if got != want {
		t.Errorf("IncMasked = %v, want %v", got, want)
	}
}

func TestU32x4_IncMaskedEmpty(t *testing.T) {
	v := U32x4{5, 6, 7, 8}
	got := v.IncMasked(Mask4{})
	if got != v {
		t.Errorf("IncMasked with empty mask = %v, want %v", got, v)
	}
}

func TestSplatMask(t *testing.T) {
	if m := SplatMask(true); !m.All() {
		t.Errorf("SplatMask(true) = %v, want all set", m)
	}
	if m := SplatMask(false); m.Any() {
		t.Errorf("SplatMask(false) = %v, want none set", m)
	}
}

func TestMask4_And(t *testing.T) {
	a := Mask4{true, true, false, false}
	b := Mask4{true, false, true, false}
	got := a.And(b)
	want := Mask4{true, false, false, false}
	if got != want {
		t.Errorf("And = %v, want %v", got, want)
	}
}

func TestMask4_Any(t *testing.T) {
	if (Mask4{}).Any() {
		t.Error("empty mask reports Any")
	}
	if !(Mask4{false, false, true, false}).Any() {
		t.Error("mask with one lane set does not report Any")
	}
}

func TestMask4_All(t *testing.T) {
	if !(Mask4{true, true, true, true}).All() {
		t.Error("full mask does not report All")
	}
	if (Mask4{true, true, true, false}).All() {
		t.Error("mask with a clear lane reports All")
	}
}
