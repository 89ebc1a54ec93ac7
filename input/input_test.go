package input

import "testing"

func TestKeysHas(t *testing.T) {
	ks := KeyUp | KeyFast
	if !ks.Has(KeyUp) || !ks.Has(KeyFast) || !ks.Has(KeyUp|KeyFast) {
		t.Errorf("%b should contain KeyUp and KeyFast", ks)
	}
	if ks.Has(KeyDown) || ks.Has(KeyUp|KeyLeft) {
		t.Errorf("%b should not contain KeyDown or KeyLeft", ks)
	}
}

func TestButtonNext(t *testing.T) {
	var b Button
	steps := []struct {
		down bool
		want Button
	}{
		{false, Button{}},
		{true, Button{Down: true, Pressed: true}},
		{true, Button{Down: true}},
		{false, Button{Released: true}},
		{false, Button{}},
	}
	for i, s := range steps {
		b = b.Next(s.down)
		if b != s.want {
			t.Errorf("step %d: got %+v, want %+v", i, b, s.want)
		}
	}
}
