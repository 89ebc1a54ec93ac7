package scene

const (
	// MoveAllInterval is the scaled time that has to accumulate between two
	// rotations.
	MoveAllInterval = 0.084
	// MoveAllAngle is the angle, in radians, of each rotation. The angle
	// counter restarts for every point on every frame, so it never advances
	// past its first increment.
	//
	// TODO: decide whether the angle should keep accumulating per point for a
	// continuous spin; that needs a persistent counter in ControlPoint.
	MoveAllAngle = 1.0
	// MoveAllDamping scales the frame time to get the interpolation factor
	// of the damped mode.
	MoveAllDamping = 25.0
)

// MoveAll rotates all control points about the world origin in one or both
// of two modes. The damped mode interpolates towards the rotated position,
// the direct mode jumps to it. Both share a single timer.
type MoveAll struct {
	Damped bool
	Direct bool
	Timer  float64
}

// Apply advances the timer once per point and mode, rotating the point
// whenever the timer reaches MoveAllInterval. scaled is the frame time scaled
// by the animation speed; dt is the raw frame time.
func (m *MoveAll) Apply(points []ControlPoint, scaled, dt float64) {
	if m.Damped {
		for i := range points {
			if m.tick(scaled) {
				p := &points[i]
				p.Pos = p.Pos.Lerp(p.Pos.RotateAboutOrigin(MoveAllAngle), MoveAllDamping*dt)
			}
		}
	}
	if m.Direct {
		for i := range points {
			if m.tick(scaled) {
				p := &points[i]
				p.Pos = p.Pos.RotateAboutOrigin(MoveAllAngle)
			}
		}
	}
}

func (m *MoveAll) tick(d float64) bool {
	m.Timer += d
	if m.Timer >= MoveAllInterval {
		m.Timer = 0
		return true
	}
	return false
}
