package glint

import "testing"

// --- Hit testing ---

func TestHitTestTopmost(t *testing.T) {
	s := NewScene()
	back := NewElement("div", "back")
	back.SetSize(200, 200)
	front := NewElement("div", "front")
	front.SetPosition(50, 50)
	front.SetSize(50, 50)
	s.Root().AddChild(back)
	s.Root().AddChild(front)
	s.Tick(frame)

	tests := []struct {
		name string
		x, y float64
		want *Node
	}{
		{"front", 60, 60, front},
		{"back only", 10, 10, back},
		{"edge", 200, 200, back},
		{"empty", 500, 500, nil},
	}
	for _, tt := range tests {
		if got := s.hitTest(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: hitTest(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestHitTestSkips(t *testing.T) {
	s := NewScene()
	hidden := NewElement("div", "hidden")
	hidden.SetSize(100, 100)
	hidden.Visible = false
	inert := NewElement("div", "inert")
	inert.SetSize(100, 100)
	inert.Interactable = false
	child := NewElement("div", "child")
	child.SetSize(100, 100)
	inert.AddChild(child)
	unsized := NewElement("div", "unsized")
	s.Root().AddChild(hidden)
	s.Root().AddChild(inert)
	s.Root().AddChild(unsized)
	s.Tick(frame)

	if got := s.hitTest(50, 50); got != nil {
		t.Errorf("hitTest = %q, want nil", got.Name)
	}
}

func TestHitTestTransformed(t *testing.T) {
	s := NewScene()
	n := NewElement("div", "n")
	n.SetSize(100, 100)
	n.SetScale(2, 2) // around the center: covers (-50, -50) to (150, 150)
	s.Root().AddChild(n)
	s.Tick(frame)
	if s.hitTest(-40, -40) != n {
		t.Error("scaled node should be hit outside its layout box")
	}
}

func TestHitTestUsesScroll(t *testing.T) {
	s := NewScene()
	n := NewElement("div", "n")
	n.SetPosition(0, 1000)
	n.SetSize(100, 100)
	s.Root().AddChild(n)
	s.Viewport().ScrollBy(0, 950)

	s.InjectMove(50, 100) // document (50, 1050)
	s.Tick(frame)
	if s.Hovered() != n {
		t.Errorf("Hovered = %v, want n", s.Hovered())
	}
}

// --- Hover chain ---

func TestEnterLeaveOrder(t *testing.T) {
	s := NewScene()
	outer := NewElement("div", "outer")
	outer.SetSize(200, 200)
	inner := NewElement("div", "inner")
	inner.SetPosition(50, 50)
	inner.SetSize(50, 50)
	outer.AddChild(inner)
	other := NewElement("div", "other")
	other.SetPosition(300, 0)
	other.SetSize(100, 100)
	s.Root().AddChild(outer)
	s.Root().AddChild(other)

	var log []string
	s.OnPointerEnter(func(c PointerContext) { log = append(log, "enter "+c.Node.Name) })
	s.OnPointerLeave(func(c PointerContext) { log = append(log, "leave "+c.Node.Name) })

	s.InjectMove(60, 60) // into inner
	s.InjectMove(10, 10) // back to outer only
	s.InjectMove(60, 60) // inner again
	s.InjectMove(350, 50)
	tickFor(s, 4*frame, frame)

	want := []string{
		"enter outer", "enter inner",
		"leave inner",
		"enter inner",
		"leave inner", "leave outer", "enter other",
	}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestHoveredUpdatedBeforeEnterLeave(t *testing.T) {
	s := NewScene()
	a := NewElement("div", "a")
	a.SetSize(100, 100)
	s.Root().AddChild(a)

	var seen []*Node
	s.OnPointerEnter(func(PointerContext) { seen = append(seen, s.Hovered()) })
	s.OnPointerLeave(func(PointerContext) { seen = append(seen, s.Hovered()) })
	s.InjectMove(50, 50)
	s.InjectMove(500, 500)
	tickFor(s, 2*frame, frame)

	if len(seen) != 2 || seen[0] != a || seen[1] != nil {
		t.Errorf("Hovered during callbacks = %v, want [a nil]", seen)
	}
}

func TestNodeEnterLeaveCallbacks(t *testing.T) {
	s := NewScene()
	a := NewElement("div", "a")
	a.SetSize(100, 100)
	s.Root().AddChild(a)
	enters, leaves := 0, 0
	a.OnPointerEnter = func(PointerContext) { enters++ }
	a.OnPointerLeave = func(PointerContext) { leaves++ }

	s.InjectMove(10, 10)
	s.InjectMove(20, 20)
	s.InjectMove(500, 500)
	tickFor(s, 3*frame, frame)
	if enters != 1 || leaves != 1 {
		t.Errorf("enters = %d leaves = %d, want 1 1", enters, leaves)
	}
}

// --- Bubbling ---

func TestClickBubbles(t *testing.T) {
	s := NewScene()
	card := NewElement("article", "card")
	card.SetSize(200, 200)
	btn := NewElement("button", "btn")
	btn.SetPosition(10, 10)
	btn.SetSize(50, 20)
	card.AddChild(btn)
	s.Root().AddChild(card)

	var order []string
	var local PointerContext
	btn.OnClick = func(c PointerContext) { order = append(order, "btn") }
	card.OnClick = func(c PointerContext) {
		order = append(order, "card")
		local = c
	}
	sceneClicks := 0
	s.OnClick(func(c PointerContext) {
		sceneClicks++
		if c.Node != btn {
			t.Errorf("scene click target = %v, want btn", c.Node)
		}
	})

	s.InjectClick(30, 20)
	tickFor(s, 2*frame, frame)

	if len(order) != 2 || order[0] != "btn" || order[1] != "card" {
		t.Errorf("bubble order = %v, want [btn card]", order)
	}
	if sceneClicks != 1 {
		t.Errorf("scene click handlers ran %d times, want 1", sceneClicks)
	}
	if local.LocalX != 30 || local.LocalY != 20 {
		t.Errorf("card local = (%v, %v), want (30, 20)", local.LocalX, local.LocalY)
	}
}

func TestClickRequiresSameNode(t *testing.T) {
	s := NewScene()
	a := NewElement("div", "a")
	a.SetSize(100, 100)
	b := NewElement("div", "b")
	b.SetPosition(200, 0)
	b.SetSize(100, 100)
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	clicks := 0
	s.OnClick(func(PointerContext) { clicks++ })
	ups := 0
	s.OnPointerUp(func(PointerContext) { ups++ })

	s.InjectPress(50, 50)
	s.InjectMove(250, 50)
	s.InjectRelease(250, 50)
	tickFor(s, 3*frame, frame)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0 for press and release on different nodes", clicks)
	}
	if ups != 1 {
		t.Errorf("ups = %d, want 1", ups)
	}
}

func TestDownMoveUpSequence(t *testing.T) {
	s := NewScene()
	a := NewElement("div", "a")
	a.SetSize(100, 100)
	s.Root().AddChild(a)

	var events []EventType
	s.OnPointerDown(func(PointerContext) { events = append(events, EventPointerDown) })
	s.OnPointerMove(func(PointerContext) { events = append(events, EventPointerMove) })
	s.OnPointerUp(func(PointerContext) { events = append(events, EventPointerUp) })
	s.OnClick(func(PointerContext) { events = append(events, EventClick) })

	s.InjectClick(10, 10)
	tickFor(s, 2*frame, frame)

	want := []EventType{EventPointerMove, EventPointerDown, EventClick, EventPointerUp}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %d, want %d", i, events[i], want[i])
		}
	}
}

func TestMoveWithoutChangeDoesNotRefire(t *testing.T) {
	s := NewScene()
	moves := 0
	s.OnPointerMove(func(PointerContext) { moves++ })
	s.InjectMove(10, 10)
	s.InjectMove(10, 10)
	tickFor(s, 2*frame, frame)
	if moves != 1 {
		t.Errorf("moves = %d, want 1", moves)
	}
}

func TestMoveOverEmptySpaceHasNilNode(t *testing.T) {
	s := NewScene()
	var got PointerContext
	called := false
	s.OnPointerMove(func(c PointerContext) { got, called = c, true })
	s.Viewport().ScrollBy(0, 100)
	s.InjectMove(5, 7)
	s.Tick(frame)
	if !called || got.Node != nil {
		t.Fatalf("move ctx = %+v", got)
	}
	if got.ScreenX != 5 || got.ScreenY != 7 || got.GlobalX != 5 || got.GlobalY != 107 {
		t.Errorf("coords = screen (%v, %v) global (%v, %v)", got.ScreenX, got.ScreenY, got.GlobalX, got.GlobalY)
	}
}

// --- Handler registry ---

func TestCallbackHandleRemove(t *testing.T) {
	s := NewScene()
	a, b := 0, 0
	ha := s.OnPointerMove(func(PointerContext) { a++ })
	s.OnPointerMove(func(PointerContext) { b++ })
	s.InjectMove(1, 1)
	s.Tick(frame)
	ha.Remove()
	ha.Remove()
	s.InjectMove(2, 2)
	s.Tick(frame)
	if a != 1 || b != 2 {
		t.Errorf("a = %d b = %d, want 1 2", a, b)
	}
}

func TestCallbackRemoveInsideCallback(t *testing.T) {
	s := NewScene()
	calls := 0
	var h CallbackHandle
	h = s.OnPointerMove(func(PointerContext) {
		calls++
		h.Remove()
	})
	s.InjectMove(1, 1)
	s.InjectMove(2, 2)
	tickFor(s, 2*frame, frame)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestZeroCallbackHandleRemove(t *testing.T) {
	var h CallbackHandle
	h.Remove() // no panic
}

// --- ECS bridge ---

func TestInteractionEventForwarded(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)
	n := NewElement("button", "b")
	n.SetSize(100, 100)
	n.EntityID = 7
	s.Root().AddChild(n)
	plain := NewElement("div", "plain")
	plain.SetPosition(200, 0)
	plain.SetSize(100, 100)
	s.Root().AddChild(plain)

	s.InjectClick(50, 50)
	s.InjectMove(250, 50)
	tickFor(s, 3*frame, frame)

	var types []EventType
	for _, e := range store.events {
		if e.EntityID != 7 {
			t.Errorf("event for entity %d, want 7", e.EntityID)
		}
		types = append(types, e.Type)
	}
	want := []EventType{EventPointerEnter, EventPointerMove, EventPointerDown, EventClick, EventPointerUp, EventPointerLeave}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %d, want %d", i, types[i], want[i])
		}
	}
}
