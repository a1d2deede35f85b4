package glint

import "time"

// RippleMode selects what spawns ripples on a node.
type RippleMode uint8

const (
	RippleOnClick RippleMode = iota // a ripple at the click point
	RippleOnHover                   // a ripple where the pointer enters
)

// Ripple is one expanding, fading square spawned on an origin node. Ripples
// are created, animated once and disposed; they are never reused.
type Ripple struct {
	Origin *Node
	Node   *Node
	// Center is the spawn point in the origin's local coordinates.
	Center Vec2
	// Size is the side of the square: max(origin width, origin height).
	Size float64
	// Born is the scene time at which the ripple was created.
	Born time.Duration

	scene  *Scene
	handle *Handle
}

// Age returns how long the ripple has existed.
func (r *Ripple) Age() time.Duration {
	return r.scene.Now() - r.Born
}

// Done reports whether the ripple node has been removed.
func (r *Ripple) Done() bool {
	return r.Node.disposed
}

// dispose stops the ripple's tween and removes its node.
func (r *Ripple) dispose() {
	if r.handle != nil {
		r.handle.Cancel()
	}
	if !r.Node.disposed {
		r.Node.Dispose()
	}
}

// spawnRipple creates the ripple node as a child of origin, centered on
// (x, y) in origin-local coordinates, and animates it with cfg.
func spawnRipple(s *Scene, origin *Node, x, y float64, cfg PointerConfig, onDone func(*Ripple)) *Ripple {
	size := max(origin.Width, origin.Height)
	n := NewBox("ripple", size, size, cfg.RippleColor)
	n.Interactable = false
	n.X = x - size/2
	n.Y = y - size/2
	n.ScaleX, n.ScaleY = 0, 0
	origin.AddChild(n)

	r := &Ripple{
		Origin: origin,
		Node:   n,
		Center: Vec2{X: x, Y: y},
		Size:   size,
		Born:   s.Now(),
		scene:  s,
	}
	r.handle = s.Animate(Tween{
		Targets: One(n),
		Props: map[string]Keyframes{
			"scale":   FromTo(0, 1),
			"opacity": FromTo(1, 0),
		},
		Duration: cfg.RippleDuration,
		Easing:   cfg.RippleEasing,
		OnComplete: func() { n.Dispose() },
	})
	// Runs on completion and also when the origin is disposed mid-animation.
	if onDone != nil {
		r.handle.onEnd = func() { onDone(r) }
	}
	return r
}
