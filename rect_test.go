package casteljau

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(25, 40), true},
		{Pt(39.999, 59.999), true},
		{Pt(40, 40), false},
		{Pt(25, 60), false},
		{Pt(9.999, 40), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("%s.Contains(%s) = %t, want %t", r, tt.pt, got, tt.want)
		}
	}
}

func TestRectDegenerate(t *testing.T) {
	for _, r := range []Rect{
		NewRect(0, 0, 0, 10),
		NewRect(0, 0, 10, 0),
		{},
	} {
		if !r.IsEmpty() {
			t.Errorf("%s should be empty", r)
		}
		if r.Contains(r.Origin()) {
			t.Errorf("%s should not contain its origin", r)
		}
	}
}

func TestRectGeometry(t *testing.T) {
	r := NewRectFromOrigin(Pt(-10, 5), Sz(20, 10))
	diff(t, r, NewRect(-10, 5, 20, 10))
	diff(t, r.Origin(), Pt(-10, 5))
	if r.MaxX() != 10 || r.MaxY() != 15 {
		t.Errorf("got max (%v, %v), want (10, 15)", r.MaxX(), r.MaxY())
	}
	if a := r.Area(); a != 200 {
		t.Errorf("got area %v, want 200", a)
	}
	diff(t, r.Inset(2), NewRect(-8, 7, 16, 6))
}
