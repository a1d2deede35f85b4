package glint

import "slices"

// PointerContext carries pointer event data.
type PointerContext struct {
	Node     *Node
	EntityID uint32
	UserData any
	// GlobalX and GlobalY are document coordinates (screen + scroll).
	GlobalX float64
	GlobalY float64
	// ScreenX and ScreenY are viewport coordinates.
	ScreenX float64
	ScreenY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// --- ID counter ---

// nodeIDCounter is a plain counter. glint is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the element every effect animates. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	// Tag is the element kind used by selectors and the interactive-surface
	// predicate ("button", "a", "div", ...).
	Tag     string
	Type    NodeType
	classes []string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout box, relative to the parent's box.
	X, Y          float64
	Width, Height float64

	// Transform, applied around the origin point.
	TranslateX, TranslateY float64
	ScaleX, ScaleY         float64
	Rotation               float64 // radians
	RotateX, RotateY       float64 // degrees, drawn as foreshortening
	// OriginX and OriginY locate the transform origin as a fraction of
	// Width/Height. Defaults to the center (0.5, 0.5).
	OriginX, OriginY float64

	// Computed, refreshed by updateWorldTransform.
	worldTransform [6]float64
	worldAlpha     float64

	// Visibility & interaction
	Alpha   float64
	Visible bool
	// Interactable makes the node and its subtree hit-testable. Decoration
	// nodes (cursor, trail, particles, ripples) turn it off.
	Interactable bool
	// Interactive flags the node as an interactive surface for the cursor
	// even when its Tag is not a button or link.
	Interactive bool

	Color Color
	Text  string
	// Font draws Text; nil uses DefaultFont.
	Font *Font

	// Metadata
	UserData any
	EntityID uint32

	// Per-node callbacks (nil by default; zero cost when unused)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnPointerMove  func(PointerContext)
	OnClick        func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.OriginX = 0.5
	n.OriginY = 0.5
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.Interactable = true
	if n.Tag == "" {
		n.Tag = "div"
	}
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a solid rectangle of the given size.
func NewBox(name string, width, height float64, color Color) *Node {
	n := &Node{Name: name, Type: NodeTypeBox, Width: width, Height: height}
	nodeDefaults(n)
	n.Color = color
	return n
}

// NewText creates a text node with the given content.
func NewText(name string, content string) *Node {
	n := &Node{Name: name, Type: NodeTypeText, Text: content}
	nodeDefaults(n)
	return n
}

// NewElement creates a box node with a tag and classes, the way page code
// declares its sections.
func NewElement(tag, name string, classes ...string) *Node {
	n := &Node{Name: name, Tag: tag, Type: NodeTypeBox}
	nodeDefaults(n)
	n.classes = append(n.classes, classes...)
	return n
}

// --- Classes ---

// AddClass adds each class that is not already present.
func (n *Node) AddClass(classes ...string) {
	for _, c := range classes {
		if !slices.Contains(n.classes, c) {
			n.classes = append(n.classes, c)
		}
	}
}

// RemoveClass removes a class if present.
func (n *Node) RemoveClass(class string) {
	if i := slices.Index(n.classes, class); i >= 0 {
		n.classes = slices.Delete(n.classes, i, i+1)
	}
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// Classes returns the class list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Classes() []string {
	return n.classes
}

// Closest returns the nearest node, starting at n and walking up through its
// ancestors, for which match returns true. Returns nil if none matches.
func (n *Node) Closest(match func(*Node) bool) *Node {
	for p := n; p != nil; p = p.Parent {
		if match(p) {
			return p
		}
	}
	return nil
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("glint: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("glint: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("glint: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("glint: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("glint: child index out of range")
	}
	child.Parent = n
	n.children = slices.Insert(n.children, index, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("glint: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Tweens, triggers and
// typewriters targeting a disposed node stop on their next tick.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnPointerMove = nil
	n.OnClick = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
