// Package animation holds the time-driven state of the render loop: the
// rotation clock and the model-view transform derived from it.
package animation

// FullTurn is the angle, in degrees, past which the accumulated rotation
// snaps back to zero.
const FullTurn = 360.0

// Clock accumulates rotation from host timestamps.
type Clock struct {
	// PreviousTimestamp is the last timestamp passed to Advance, in
	// seconds. It starts at 0, so the first delta is the first timestamp.
	PreviousTimestamp float64
	// AccumulatedAngle is the current rotation in degrees, in [0, 360].
	AccumulatedAngle float64
}

// Advance records timestamp, adds speed*delta degrees to the angle and
// returns the elapsed time. A timestamp earlier than the previous one
// counts as zero elapsed time.
func (c *Clock) Advance(timestamp, speed float64) (delta float64) {
	delta = timestamp - c.PreviousTimestamp
	if delta < 0 {
		delta = 0
	}
	c.PreviousTimestamp = timestamp

	c.AccumulatedAngle += speed * delta
	if c.AccumulatedAngle > FullTurn {
		c.AccumulatedAngle = 0
	}
	return delta
}
