package glint

// Tilt is the 3D tilt applied to a card under the pointer.
type Tilt struct {
	RotateX float64 // degrees
	RotateY float64 // degrees
	Scale   float64
}

// NeutralTilt is the resting pose.
var NeutralTilt = Tilt{Scale: 1}

const defaultTiltDivisor = 10

// ComputeTilt returns the tilt for a pointer at (px, py) over bounds. Both
// are in the same coordinate space. The pointer's offset from the center is
// divided by divisor: moving down tilts the top away (positive RotateX),
// moving right tilts the right side away (negative RotateY). A non-positive
// divisor uses 10.
func ComputeTilt(bounds Rect, px, py, divisor, scale float64) Tilt {
	if divisor <= 0 {
		divisor = defaultTiltDivisor
	}
	c := bounds.Center()
	return Tilt{
		RotateX: (py - c.Y) / divisor,
		RotateY: (c.X - px) / divisor,
		Scale:   scale,
	}
}

// props returns the tween properties that move a node to t.
func (t Tilt) props() map[string]Keyframes {
	return map[string]Keyframes{
		"rotateX": To(t.RotateX),
		"rotateY": To(t.RotateY),
		"scale":   To(t.Scale),
	}
}
