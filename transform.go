package glint

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// layout box and transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order, with (ox, oy) the origin in pixels:
//
//	Translate(-ox, -oy) -> Scale -> Rotate -> Translate(X+TranslateX+ox, Y+TranslateY+oy)
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY
	sin, cos := math.Sincos(n.Rotation)

	ox := n.OriginX * n.Width
	oy := n.OriginY * n.Height

	// After Scale * Translate(-origin):
	//   a=sx, b=0, c=0, d=sy, tx=-ox*sx, ty=-oy*sy
	preTx := -ox * sx
	preTy := -oy * sy

	// After Rotate:
	ra := cos * sx
	rb := sin * sx
	rc := -sin * sy
	rd := cos * sy
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	return [6]float64{
		ra, rb, rc, rd,
		rtx + ox + n.X + n.TranslateX,
		rty + oy + n.Y + n.TranslateY,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes worldTransform and worldAlpha for n and its
// subtree. Tweens write node fields directly, so the whole tree is refreshed
// every tick.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentAlpha float64) {
	n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
	n.worldAlpha = parentAlpha * n.Alpha
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha)
	}
}

// --- Transform property setters ---

// SetPosition sets the node's layout X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetSize sets the node's layout box size.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// SetScale sets the node's ScaleX and ScaleY.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
}

// --- Coordinate conversion ---

// WorldToLocal converts a document-space point to this node's local box space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(n.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to document space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.worldTransform, lx, ly)
}

// Bounds returns the document-space axis-aligned bounding box of the node's
// layout box after all transforms, as of the last transform refresh.
func (n *Node) Bounds() Rect {
	m := n.worldTransform
	x0, y0 := transformPoint(m, 0, 0)
	x1, y1 := transformPoint(m, n.Width, 0)
	x2, y2 := transformPoint(m, n.Width, n.Height)
	x3, y3 := transformPoint(m, 0, n.Height)
	minX := min(x0, x1, x2, x3)
	minY := min(y0, y1, y2, y3)
	maxX := max(x0, x1, x2, x3)
	maxY := max(y0, y1, y2, y3)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// WorldAlpha returns the node's alpha multiplied by all ancestor alphas.
func (n *Node) WorldAlpha() float64 {
	return n.worldAlpha
}
