package math

import "testing"

func TestVec3AddSubMul(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got, want := a.Add(b), NewVec3(5, 7, 9); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
	if got, want := b.Sub(a), NewVec3(3, 3, 3); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
	if got, want := a.Mul(2), NewVec3(2, 4, 6); got != want {
		t.Errorf("Mul: expected %v, got %v", want, got)
	}
}

func TestVec3NormalizeZeroSafe(t *testing.T) {
	v := Vec3Zero
	if got := v.Normalize(); got != v {
		t.Errorf("Normalize of zero vector should be unchanged, got %v", got)
	}
}

func TestVec3XYProjection(t *testing.T) {
	v := NewVec3(1, 2, 3)
	got := v.XY()
	want := NewVec2(1, 2)
	if got != want {
		t.Errorf("XY: expected %v, got %v", want, got)
	}
}
