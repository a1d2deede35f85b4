package glint

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestLocalTransformTranslate(t *testing.T) {
	n := NewElement("div", "n")
	n.SetPosition(10, 20)
	n.TranslateX = 5
	n.TranslateY = -50
	assertMatrix(t, "local", computeLocalTransform(n), [6]float64{1, 0, 0, 1, 15, -30})
}

func TestLocalTransformScaleAboutCenter(t *testing.T) {
	n := NewElement("div", "n")
	n.SetSize(100, 40)
	n.SetScale(2, 2)
	m := computeLocalTransform(n)
	// The center stays put.
	cx, cy := transformPoint(m, 50, 20)
	assertNear(t, "cx", cx, 50)
	assertNear(t, "cy", cy, 20)
	x0, y0 := transformPoint(m, 0, 0)
	assertNear(t, "x0", x0, -50)
	assertNear(t, "y0", y0, -20)
}

func TestLocalTransformRotateAboutOrigin(t *testing.T) {
	n := NewElement("div", "n")
	n.SetSize(100, 100)
	n.OriginX, n.OriginY = 0, 0
	n.Rotation = math.Pi / 2
	x, y := transformPoint(computeLocalTransform(n), 10, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 10)
}

func TestMultiplyAndInvert(t *testing.T) {
	a := [6]float64{2, 0, 0, 3, 10, 20}
	inv := invertAffine(a)
	assertMatrix(t, "a*inv", multiplyAffine(a, inv), identityTransform)
	assertMatrix(t, "singular", invertAffine([6]float64{0, 0, 0, 0, 5, 5}), identityTransform)
}

func TestWorldTransformNested(t *testing.T) {
	root := NewContainer("root")
	parent := NewElement("div", "parent")
	parent.SetPosition(100, 200)
	parent.SetSize(300, 300)
	child := NewElement("div", "child")
	child.SetPosition(10, 20)
	child.SetSize(50, 50)
	parent.AddChild(child)
	root.AddChild(parent)
	parent.Alpha = 0.5
	child.Alpha = 0.5

	updateWorldTransform(root, identityTransform, 1)
	b := child.Bounds()
	assertNear(t, "X", b.X, 110)
	assertNear(t, "Y", b.Y, 220)
	assertNear(t, "W", b.Width, 50)
	assertNear(t, "H", b.Height, 50)
	assertNear(t, "alpha", child.WorldAlpha(), 0.25)
}

func TestBoundsScaledParent(t *testing.T) {
	root := NewContainer("root")
	parent := NewElement("div", "parent")
	parent.SetSize(100, 100)
	parent.SetScale(1.05, 1.05)
	root.AddChild(parent)
	updateWorldTransform(root, identityTransform, 1)

	b := parent.Bounds()
	assertNear(t, "X", b.X, -2.5)
	assertNear(t, "W", b.Width, 105)
	c := b.Center()
	assertNear(t, "cx", c.X, 50)
	assertNear(t, "cy", c.Y, 50)
}

func TestWorldToLocalRoundTrip(t *testing.T) {
	root := NewContainer("root")
	n := NewElement("div", "n")
	n.SetPosition(40, 60)
	n.SetSize(80, 80)
	n.SetScale(1.5, 0.5)
	n.Rotation = 0.3
	root.AddChild(n)
	updateWorldTransform(root, identityTransform, 1)

	lx, ly := n.WorldToLocal(75, 90)
	wx, wy := n.LocalToWorld(lx, ly)
	assertNear(t, "wx", wx, 75)
	assertNear(t, "wy", wy, 90)
}
