package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: true,
		},
		{
			name: "contained",
			a:    NewRect(0, 0, 20, 20),
			b:    NewRect(5, 5, 2, 2),
			want: true,
		},
		{
			name: "separate",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(20, 20, 5, 5),
			want: false,
		},
		{
			name: "touching edges do not overlap",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 0, 10, 10),
			want: false,
		},
		{
			name: "touching corners do not overlap",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(10, 10, 10, 10),
			want: false,
		},
		{
			name: "vertical overlap only",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(15, 5, 10, 10),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestVec2Add(t *testing.T) {
	got := Vec2{X: 1, Y: 2}.Add(Vec2{X: 3, Y: -4})
	want := Vec2{X: 4, Y: -2}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}
