package math

import "testing"

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: got %f, want 32", got)
	}
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length: got %f, want 5", got)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		points []Vec3
		lo, hi Vec3
		ok     bool
	}{
		{"empty", nil, Vec3{}, Vec3{}, false},
		{"single", []Vec3{{1, 2, 3}}, Vec3{1, 2, 3}, Vec3{1, 2, 3}, true},
		{"spread", []Vec3{{1, -2, 3}, {-1, 5, 0}, {0, 0, 9}}, Vec3{-1, -2, 0}, Vec3{1, 5, 9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := Bounds(tt.points)
			if ok != tt.ok || lo != tt.lo || hi != tt.hi {
				t.Errorf("Bounds() = %v, %v, %v; want %v, %v, %v", lo, hi, ok, tt.lo, tt.hi, tt.ok)
			}
		})
	}
}
