package glint

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewBoxDefaults(t *testing.T) {
	c := Color{R: 1, A: 0.5}
	n := NewBox("box", 10, 20, c)
	assertNodeDefaults(t, n, "box", NodeTypeBox)
	if n.Width != 10 || n.Height != 20 {
		t.Errorf("size = %vx%v, want 10x20", n.Width, n.Height)
	}
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
}

func TestNewTextDefaults(t *testing.T) {
	n := NewText("label", "hello")
	assertNodeDefaults(t, n, "label", NodeTypeText)
	if n.Text != "hello" {
		t.Errorf("Text = %q", n.Text)
	}
}

func TestNewElement(t *testing.T) {
	n := NewElement("button", "cta", "cta-button", "primary")
	assertNodeDefaults(t, n, "cta", NodeTypeBox)
	if n.Tag != "button" {
		t.Errorf("Tag = %q, want button", n.Tag)
	}
	if !n.HasClass("cta-button") || !n.HasClass("primary") {
		t.Errorf("classes = %v", n.Classes())
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.ScaleX != 1 || n.ScaleY != 1 {
		t.Errorf("Scale = (%v, %v), want (1, 1)", n.ScaleX, n.ScaleY)
	}
	if n.OriginX != 0.5 || n.OriginY != 0.5 {
		t.Errorf("Origin = (%v, %v), want center", n.OriginX, n.OriginY)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible || !n.Interactable {
		t.Error("Visible and Interactable should default to true")
	}
	if n.Tag == "" {
		t.Error("Tag should default to div")
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := map[uint32]bool{}
	for i := 0; i < 100; i++ {
		n := NewContainer("n")
		if seen[n.ID] {
			t.Fatalf("duplicate ID %d", n.ID)
		}
		seen[n.ID] = true
	}
}

// --- Classes ---

func TestClasses(t *testing.T) {
	n := NewElement("div", "n")
	n.AddClass("a", "b", "a")
	if got := n.Classes(); len(got) != 2 {
		t.Errorf("Classes = %v, want [a b]", got)
	}
	n.RemoveClass("a")
	n.RemoveClass("missing")
	if n.HasClass("a") || !n.HasClass("b") {
		t.Errorf("Classes = %v, want [b]", n.Classes())
	}
}

func TestClosest(t *testing.T) {
	root := NewContainer("root")
	card := NewElement("article", "card", "card")
	icon := NewElement("span", "icon")
	card.AddChild(icon)
	root.AddChild(card)

	isCard := func(n *Node) bool { return n.HasClass("card") }
	if icon.Closest(isCard) != card {
		t.Error("Closest should find the ancestor card")
	}
	if card.Closest(isCard) != card {
		t.Error("Closest should include the node itself")
	}
	if root.Closest(isCard) != nil {
		t.Error("Closest should return nil when nothing matches")
	}
}

// --- Tree manipulation ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Error("parent should contain child")
	}
}

func TestAddChildReparent(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	b.AddChild(child)
	if a.NumChildren() != 0 {
		t.Errorf("old parent children = %d, want 0", a.NumChildren())
	}
	if child.Parent != b {
		t.Error("child should be reparented to b")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildNilPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child")
		}
	}()
	NewContainer("a").AddChild(nil)
}

func TestAddChildAt(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	p.AddChild(a)
	p.AddChild(c)
	p.AddChildAt(b, 1)
	for i, want := range []*Node{a, b, c} {
		if p.ChildAt(i) != want {
			t.Errorf("child %d = %q, want %q", i, p.ChildAt(i).Name, want.Name)
		}
	}
}

func TestRemoveChild(t *testing.T) {
	p := NewContainer("p")
	c := NewContainer("c")
	p.AddChild(c)
	p.RemoveChild(c)
	if c.Parent != nil || p.NumChildren() != 0 {
		t.Error("child not removed")
	}
	c.RemoveFromParent() // no-op
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p := NewContainer("p")
	c := NewContainer("c")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic removing a non-child")
		}
	}()
	p.RemoveChild(c)
}

// --- Disposal ---

func TestDispose(t *testing.T) {
	root := NewContainer("root")
	n := NewContainer("n")
	child := NewContainer("child")
	n.AddChild(child)
	root.AddChild(n)
	n.OnClick = func(PointerContext) {}

	n.Dispose()
	if !n.IsDisposed() || !child.IsDisposed() {
		t.Error("node and descendants should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed node should be removed from its parent")
	}
	if n.OnClick != nil || n.ID != 0 {
		t.Error("disposed node should drop callbacks and ID")
	}
	n.Dispose() // idempotent
}

func TestDebugAddChildDisposedPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	t.Cleanup(func() { s.SetDebugMode(false) })
	gone := NewContainer("gone")
	gone.Dispose()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding a disposed node in debug mode")
		}
	}()
	s.Root().AddChild(gone)
}
