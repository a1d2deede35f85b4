package glint

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// caretBlink is the half-period of the typing caret.
const caretBlink = 530 * time.Millisecond

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// renderer accumulates box quads between text draws so consecutive boxes go
// out in one DrawTriangles32 call.
type renderer struct {
	verts []ebiten.Vertex
	inds  []uint32
}

// Draw renders the document (scrolled by the viewport) and then the overlay.
// Call it from ebiten.Game.Draw.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.rgba())
	view := [6]float64{1, 0, 0, 1, -s.viewport.ScrollX, -s.viewport.ScrollY}
	s.drawNode(screen, s.root, view)
	s.drawNode(screen, s.overlay, identityTransform)
	s.flush(screen)
}

// drawNode walks the subtree in painter order. World transforms were
// refreshed by the last tick.
func (s *Scene) drawNode(dst *ebiten.Image, n *Node, view [6]float64) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}
	m := multiplyAffine(view, n.worldTransform)
	switch n.Type {
	case NodeTypeBox:
		s.appendQuad(n, m)
	case NodeTypeText:
		if n.Text != "" || n.HasClass(TypingClass) {
			s.flush(dst)
			f := n.Font
			if f == nil {
				f = DefaultFont()
			}
			str := n.Text
			if n.HasClass(TypingClass) && (s.clock.now/caretBlink)%2 == 0 {
				str += "|"
			}
			f.drawText(dst, str, m, n.Color, n.worldAlpha)
		}
	}
	for _, c := range n.children {
		s.drawNode(dst, c, view)
	}
}

// appendQuad adds the node's box. RotateX and RotateY have no true
// perspective here: they foreshorten the box around its origin.
func (s *Scene) appendQuad(n *Node, m [6]float64) {
	alpha := n.Color.A * n.worldAlpha
	if alpha <= 0 || n.Width <= 0 || n.Height <= 0 {
		return
	}
	fx := math.Abs(math.Cos(n.RotateY * math.Pi / 180))
	fy := math.Abs(math.Cos(n.RotateX * math.Pi / 180))
	ox := n.OriginX * n.Width
	oy := n.OriginY * n.Height
	x0, x1 := ox-ox*fx, ox+(n.Width-ox)*fx
	y0, y1 := oy-oy*fy, oy+(n.Height-oy)*fy

	// 4 local positions: TL, TR, BL, BR
	lx := [4]float64{x0, x1, x0, x1}
	ly := [4]float64{y0, y0, y1, y1}

	a := float32(alpha)
	cr := float32(n.Color.R) * a
	cg := float32(n.Color.G) * a
	cb := float32(n.Color.B) * a

	r := &s.render
	base := uint32(len(r.verts))
	for i := 0; i < 4; i++ {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(m[0]*lx[i] + m[2]*ly[i] + m[4]),
			DstY:   float32(m[1]*lx[i] + m[3]*ly[i] + m[5]),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: a,
		})
	}
	// Two triangles: TL-TR-BL, TR-BR-BL
	r.inds = append(r.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// flush submits accumulated quads as a single DrawTriangles32 call.
func (s *Scene) flush(dst *ebiten.Image) {
	r := &s.render
	if len(r.verts) == 0 {
		return
	}
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles32(r.verts, r.inds, ensureWhitePixel(), &op)
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

// rgba converts c to a premultiplied color.RGBA.
func (c Color) rgba() color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Round(min(1, max(0, v)) * 255))
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}
