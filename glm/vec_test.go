package glm

import "testing"

func TestVec2SubIsInverseOfAdd(t *testing.T) {
	a := Vec2f{3.5, -2}
	b := Vec2f{1, 4.25}

	if got := a.Add(b).Sub(b); got != a {
		t.Fatalf("expected %v, got %v", a, got)
	}
}

func TestVec2OfConvertsCursorCoordinates(t *testing.T) {
	v := Vec2Of[float32](12.5, 300)
	if v != (Vec2f{12.5, 300}) {
		t.Fatalf("unexpected vector %v", v)
	}

	if !Vec2Of[float32](0, 0).IsZero() {
		t.Fatalf("expected zero vector")
	}
}

func TestVec3NormalizeKeepsZero(t *testing.T) {
	var zero Vec3f
	if got := zero.Normalize(); got != zero {
		t.Fatalf("expected zero vector, got %v", got)
	}

	unit := Vec3f{0, 3, 4}.Normalize()
	if l := unit.Length(); l < 0.999 || l > 1.001 {
		t.Fatalf("expected unit length, got %f", l)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3f{1, 0, 0}
	y := Vec3f{0, 1, 0}

	if got := x.Cross(y); got != (Vec3f{0, 0, 1}) {
		t.Fatalf("expected z axis, got %v", got)
	}
}
