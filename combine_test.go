package surf

import (
	"math"
	"testing"
)

func TestMulAdd(t *testing.T) {
	// add 2, then multiply by 3.
	s := Mul(Add(Plain(), 2), 3)
	if got := s(Pt(0, 0)); got != 6 {
		t.Errorf("Mul(Add(Plain, 2), 3)(0 0) = %g, want 6", got)
	}

	// Order matters: multiply first, then add.
	s = Add(Mul(Plain(), 3), 2)
	if got := s(Pt(0, 0)); got != 2 {
		t.Errorf("Add(Mul(Plain, 3), 2)(0 0) = %g, want 2", got)
	}
}

func TestMinMax(t *testing.T) {
	a := Ellipse(2, 1)
	b := Rectangle(1, 2)

	union := Max(a, b)
	intersection := Min(a, b)

	tests := []struct {
		name      string
		p         Point
		wantUnion Real
		wantBoth  Real
	}{
		{"in both", Pt(0, 0), 1, 1},
		{"ellipse only", Pt(1.9, 0), 1, 0},
		{"rectangle only", Pt(0, 1.9), 1, 0},
		{"in neither", Pt(3, 3), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := union(tt.p); got != tt.wantUnion {
				t.Errorf("Max at %v = %g, want %g", tt.p, got, tt.wantUnion)
			}
			if got := intersection(tt.p); got != tt.wantBoth {
				t.Errorf("Min at %v = %g, want %g", tt.p, got, tt.wantBoth)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	s := Abs(Slope())
	for _, p := range samplePoints {
		if got, want := s(p), math.Abs(p.X); got != want {
			t.Errorf("Abs(Slope)(%v) = %g, want %g", p, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	s := Clamp(Slope(), -1, 1)
	tests := []struct {
		x    Real
		want Real
	}{
		{-5, -1}, {-1, -1}, {-0.5, -0.5}, {0, 0}, {0.5, 0.5}, {1, 1}, {5, 1},
	}
	for _, tt := range tests {
		if got := s(Pt(tt.x, 0)); got != tt.want {
			t.Errorf("Clamp(Slope, -1, 1)(%g 0) = %g, want %g", tt.x, got, tt.want)
		}
	}
}

func TestThreshold(t *testing.T) {
	s := Threshold(Slope(), 2)
	tests := []struct {
		x    Real
		want Real
	}{
		{1.9, 0}, {2, 1}, {2.1, 1}, {-4, 0},
	}
	for _, tt := range tests {
		if got := s(Pt(tt.x, 0)); got != tt.want {
			t.Errorf("Threshold(Slope, 2)(%g 0) = %g, want %g", tt.x, got, tt.want)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	s := Smoothstep(Slope(), 0, 1)

	if got := s(Pt(-0.5, 0)); got != 0 {
		t.Errorf("Smoothstep below lower edge = %g, want 0", got)
	}
	if got := s(Pt(1.5, 0)); got != 1 {
		t.Errorf("Smoothstep above upper edge = %g, want 1", got)
	}
	if got := s(Pt(0.5, 0)); !almostEqual(got, 0.5, 1e-12) {
		t.Errorf("Smoothstep midpoint = %g, want 0.5", got)
	}
	// Monotone across the transition.
	prev := Real(-1)
	for x := Real(0); x <= 1; x += 0.05 {
		v := s(Pt(x, 0))
		if v < prev {
			t.Fatalf("Smoothstep not monotone at x=%g: %g < %g", x, v, prev)
		}
		prev = v
	}
}

func TestLerp(t *testing.T) {
	f := Plain()
	g := Add(Plain(), 10)

	tests := []struct {
		t    Real
		want Real
	}{
		{0, 0}, {0.25, 2.5}, {0.5, 5}, {1, 10},
	}
	for _, tt := range tests {
		s := Lerp(f, g, tt.t)
		if got := s(Pt(1, 1)); !almostEqual(got, tt.want, 1e-12) {
			t.Errorf("Lerp(f, g, %g) = %g, want %g", tt.t, got, tt.want)
		}
	}
}
