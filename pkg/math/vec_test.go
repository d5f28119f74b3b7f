package math

import (
	"encoding/json"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("normalizing the zero vector should return zero")
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 0}
	if got, want := a.Min(b), (Vec3{-1, -2, 0}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{1, 2, 3}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestVec3JSON(t *testing.T) {
	data, err := json.Marshal(V3(0, 0.44, -6.95))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[0,0.44,-6.95]" {
		t.Errorf("marshal = %s, want [0,0.44,-6.95]", data)
	}

	var v Vec3
	if err := json.Unmarshal([]byte("[1,2,3]"), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v != (Vec3{1, 2, 3}) {
		t.Errorf("unmarshal = %v, want (1, 2, 3)", v)
	}

	if err := json.Unmarshal([]byte("[1,2]"), &v); err == nil {
		t.Error("expected error for a two-component array")
	}
}
