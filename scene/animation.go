package scene

// Animation drives the curve parameter t back and forth between 0 and 1.
type Animation struct {
	T       float64
	Forward bool
	// Speed is the change of t per second.
	Speed float64
	// Paused stops automatic advancement.
	Paused bool
	// Manual hands control of t to Set.
	Manual bool
}

func NewAnimation(speed float64) Animation {
	return Animation{Forward: true, Speed: speed}
}

// Advance moves t by Speed·dt in the current direction, unless paused or in
// manual mode. When t reaches 0 or 1 it is clamped and the direction flips.
func (a *Animation) Advance(dt float64) {
	if a.Paused || a.Manual {
		return
	}
	d := a.Speed * dt
	if a.Forward {
		a.T += d
		if a.T >= 1 {
			a.T = 1
			a.Forward = false
		}
	} else {
		a.T -= d
		if a.T <= 0 {
			a.T = 0
			a.Forward = true
		}
	}
}

// Set sets t directly, clamped to [0, 1].
func (a *Animation) Set(t float64) {
	a.T = min(max(t, 0), 1)
}
