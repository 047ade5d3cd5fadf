package math

import "testing"

func TestVec2Operations(t *testing.T) {
	v1 := NewVec2(1, 2)
	v2 := NewVec2(4, 5)

	result := v1.Add(v2)
	expected := NewVec2(5, 7)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec2(3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	expectedDot := 1*4 + 2*5.0
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	rotated := NewVec2(1, 0).Rot90()
	if rotated != (Vec2{X: 0, Y: 1}) {
		t.Errorf("Rot90: expected (0,1), got %v", rotated)
	}
}

// TestVec2NormalizeZero is the spec's (R2)/§4.A guarantee: normalizing a
// zero vector must not produce NaN, and must leave the vector unchanged.
func TestVec2NormalizeZero(t *testing.T) {
	v := Vec2{}
	if got := v.Normalize(); got != v {
		t.Errorf("Normalize of zero vector should be unchanged, got %v", got)
	}
}

// TestVec2NormalizeScaleRoundTrip is (R2): norm(v) followed by
// scale(|v|) reproduces v within 1e-9.
func TestVec2NormalizeScaleRoundTrip(t *testing.T) {
	v := NewVec2(3, -4)
	roundTrip := v.Normalize().Scale(v.Length())
	if abs(roundTrip.X-v.X) > 1e-9 || abs(roundTrip.Y-v.Y) > 1e-9 {
		t.Errorf("round trip: expected %v, got %v", v, roundTrip)
	}
}

func TestVec2SetAngle(t *testing.T) {
	got := SetAngle(0, 2)
	if abs(got.X-2) > 1e-9 || abs(got.Y) > 1e-9 {
		t.Errorf("SetAngle(0,2): expected (2,0), got %v", got)
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
