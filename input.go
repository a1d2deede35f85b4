package glint

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultScrollStep is how many pixels one wheel notch scrolls the viewport.
const defaultScrollStep = 40.0

// --- Pointer state ---

// pointerState tracks the single mouse pointer between ticks.
type pointerState struct {
	seen             bool
	down             bool
	screenX, screenY float64
	hitNode          *Node       // node under the pointer at press time
	hover            []*Node     // hovered chain, outermost first
	button           MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

// handlerRegistry holds scene-level handlers, one list per pointer event type.
type handlerRegistry struct {
	lists  [EventTrigger][]pointerHandler
	nextID uint32
}

func (r *handlerRegistry) add(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	r.lists[event] = append(r.lists[event], pointerHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Safe to call from
// inside the callback itself.
func (h CallbackHandle) Remove() {
	if h.reg == nil || h.event >= EventTrigger {
		return
	}
	s := h.reg.lists[h.event]
	for i := range s {
		if s[i].id == h.id {
			h.reg.lists[h.event] = slices.Delete(s, i, i+1)
			return
		}
	}
}

// --- Scene-level event registration ---

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerUp, fn)
}

// OnPointerMove registers a scene-level callback for pointer move events.
// It fires once per move with ctx.Node set to the topmost node under the
// pointer (nil over empty space).
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerMove, fn)
}

// OnPointerEnter registers a scene-level callback for pointer enter events.
// It fires for every node the pointer enters, ancestors included, outermost
// first.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerEnter, fn)
}

// OnPointerLeave registers a scene-level callback for pointer leave events.
// It fires for every node the pointer leaves, innermost first. Moving from a
// node into one of its descendants does not leave the node.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerLeave, fn)
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventClick, fn)
}

// Hovered returns the topmost node under the pointer, or nil.
func (s *Scene) Hovered() *Node {
	if len(s.pointer.hover) == 0 {
		return nil
	}
	return s.pointer.hover[len(s.pointer.hover)-1]
}

// PointerPosition returns the last pointer position in viewport coordinates.
func (s *Scene) PointerPosition() (x, y float64) {
	return s.pointer.screenX, s.pointer.screenY
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's box.
// Nodes without a size are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.Width <= 0 || n.Height <= 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order, appending sized nodes
// to buf. Skips Visible=false and Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable || n.disposed {
		return buf
	}
	if n.Width > 0 && n.Height > 0 {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable document node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// hoverChain returns target and its ancestors below the scene root,
// outermost first.
func hoverChain(target *Node, buf []*Node) []*Node {
	buf = buf[:0]
	for n := target; n != nil && n.Parent != nil; n = n.Parent {
		buf = append(buf, n)
	}
	slices.Reverse(buf)
	return buf
}

// --- Input processing ---

// processMousePointer reads the mouse and wheel and feeds the pointer state
// machine.
func (s *Scene) processMousePointer() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		step := s.ScrollStep
		if step <= 0 {
			step = defaultScrollStep
		}
		s.viewport.ScrollBy(0, -wy*step)
	}

	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, keep the stored button so it cannot
	// change mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the pointer state machine. Coordinates are viewport
// coordinates; hit testing happens in document space.
func (s *Scene) processPointer(sx, sy float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	wx, wy := s.viewport.ScreenToWorld(sx, sy)
	target := s.hitTest(wx, wy)

	s.updateHover(target, wx, wy, sx, sy, button)

	if !ps.seen || sx != ps.screenX || sy != ps.screenY {
		ps.seen = true
		ps.screenX, ps.screenY = sx, sy
		if ps.down {
			button = ps.button
		}
		s.dispatch(EventPointerMove, target, wx, wy, sx, sy, button)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.dispatch(EventPointerDown, target, wx, wy, sx, sy, button)
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.dispatch(EventClick, target, wx, wy, sx, sy, ps.button)
		}
		s.dispatch(EventPointerUp, target, wx, wy, sx, sy, ps.button)
		ps.down = false
		ps.hitNode = nil
	}
}

// updateHover fires leave events for nodes no longer under the pointer
// (innermost first) and enter events for newly hovered ones (outermost first).
func (s *Scene) updateHover(target *Node, wx, wy, sx, sy float64, button MouseButton) {
	ps := &s.pointer
	next := hoverChain(target, nil)

	prefix := 0
	for prefix < len(ps.hover) && prefix < len(next) && ps.hover[prefix] == next[prefix] {
		prefix++
	}
	if prefix == len(ps.hover) && prefix == len(next) {
		return
	}

	prev := ps.hover
	ps.hover = next
	for i := len(prev) - 1; i >= prefix; i-- {
		s.fireHover(EventPointerLeave, prev[i], wx, wy, sx, sy, button)
	}
	for i := prefix; i < len(next); i++ {
		s.fireHover(EventPointerEnter, next[i], wx, wy, sx, sy, button)
	}
}

// --- Event dispatch ---

func (s *Scene) pointerContext(node *Node, wx, wy, sx, sy float64, button MouseButton) PointerContext {
	ctx := PointerContext{
		Node: node, GlobalX: wx, GlobalY: wy,
		ScreenX: sx, ScreenY: sy, Button: button,
	}
	if node != nil {
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(wx, wy)
	}
	return ctx
}

// nodeCallback returns the per-node callback for event.
func nodeCallback(n *Node, event EventType) func(PointerContext) {
	switch event {
	case EventPointerDown:
		return n.OnPointerDown
	case EventPointerUp:
		return n.OnPointerUp
	case EventPointerMove:
		return n.OnPointerMove
	case EventClick:
		return n.OnClick
	case EventPointerEnter:
		return n.OnPointerEnter
	case EventPointerLeave:
		return n.OnPointerLeave
	}
	return nil
}

// dispatch fires a bubbling event: scene-level handlers once, then the
// per-node callback of target and each of its ancestors. LocalX/LocalY are
// relative to the node receiving the callback.
func (s *Scene) dispatch(event EventType, target *Node, wx, wy, sx, sy float64, button MouseButton) {
	ctx := s.pointerContext(target, wx, wy, sx, sy, button)
	for _, h := range slices.Clone(s.handlers.lists[event]) {
		h.fn(ctx)
	}
	for n := target; n != nil; n = n.Parent {
		if fn := nodeCallback(n, event); fn != nil {
			c := ctx
			c.LocalX, c.LocalY = n.WorldToLocal(wx, wy)
			fn(c)
		}
	}
	s.emitInteractionEvent(event, target, ctx)
}

// fireHover fires a non-bubbling enter or leave event on one node.
func (s *Scene) fireHover(event EventType, node *Node, wx, wy, sx, sy float64, button MouseButton) {
	ctx := s.pointerContext(node, wx, wy, sx, sy, button)
	for _, h := range slices.Clone(s.handlers.lists[event]) {
		h.fn(ctx)
	}
	if fn := nodeCallback(node, event); fn != nil {
		fn(ctx)
	}
	s.emitInteractionEvent(event, node, ctx)
}

// emitInteractionEvent forwards an interaction to the ECS bridge when the
// node carries an entity ID.
func (s *Scene) emitInteractionEvent(event EventType, node *Node, ctx PointerContext) {
	if s.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:     event,
		EntityID: node.EntityID,
		GlobalX:  ctx.GlobalX,
		GlobalY:  ctx.GlobalY,
		LocalX:   ctx.LocalX,
		LocalY:   ctx.LocalY,
		Button:   ctx.Button,
	})
}
