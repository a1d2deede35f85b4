package glint

type injectKind uint8

const (
	injectMove injectKind = iota
	injectPress
	injectRelease
)

// syntheticPointerEvent represents a single injected pointer event.
// Viewport coordinates are used and converted to document coordinates
// through the viewport, identical to real mouse input.
type syntheticPointerEvent struct {
	kind             injectKind
	screenX, screenY float64
	button           MouseButton
}

// InjectMove queues a pointer move to the given viewport coordinates. The
// button state is left as it is. The event is consumed on the next tick.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{kind: injectMove, screenX: x, screenY: y})
}

// InjectPress queues a left-button press at the given viewport coordinates.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		kind: injectPress, screenX: x, screenY: y, button: MouseButtonLeft,
	})
}

// InjectRelease queues a left-button release at the given viewport coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		kind: injectRelease, screenX: x, screenY: y, button: MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same viewport coordinates. Consumes two ticks.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// PendingInput returns the number of injected events not yet consumed.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real mouse
// input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	pressed := s.pointer.down
	button := s.pointer.button
	switch evt.kind {
	case injectPress:
		pressed, button = true, evt.button
	case injectRelease:
		pressed = false
	}
	s.processPointer(evt.screenX, evt.screenY, pressed, button)
	return true
}
