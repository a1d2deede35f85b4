package glint

import (
	"time"

	"github.com/tanema/gween"
)

// scrollAnim holds active scroll-to tweens for the viewport X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is the visible window onto the document: a scroll offset and a
// size. Nodes under Scene.Root live in document coordinates; nodes under
// Scene.Overlay live in viewport (screen) coordinates.
type Viewport struct {
	// ScrollX and ScrollY are the document coordinates of the top-left corner.
	ScrollX, ScrollY float64
	Width, Height    float64

	// RootMargin adjusts the area used for visibility triggers. Negative
	// values shrink it, like an IntersectionObserver rootMargin of
	// "0px 0px -100px 0px" with Bottom: -100.
	RootMargin Insets

	// BoundsEnabled clamps scrolling so the viewport stays inside Document.
	BoundsEnabled bool
	Document      Rect

	scrollTween *scrollAnim
}

func newViewport(w, h float64) *Viewport {
	return &Viewport{Width: w, Height: h}
}

// ScrollTo animates the scroll offset to (x, y) over duration using easing.
// A non-positive duration jumps immediately.
func (v *Viewport) ScrollTo(x, y float64, duration time.Duration, easing Easing) {
	if duration <= 0 {
		v.scrollTween = nil
		v.ScrollX, v.ScrollY = x, y
		v.clamp()
		return
	}
	ms := float32(duration.Seconds() * 1000)
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.ScrollX), float32(x), ms, easing.Func()),
		tweenY: gween.New(float32(v.ScrollY), float32(y), ms, easing.Func()),
	}
}

// ScrollBy moves the scroll offset immediately.
func (v *Viewport) ScrollBy(dx, dy float64) {
	v.scrollTween = nil
	v.ScrollX += dx
	v.ScrollY += dy
	v.clamp()
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// update advances smooth scrolling. Called from Scene.Tick.
func (v *Viewport) update(dt time.Duration) {
	if v.scrollTween != nil {
		ms := float32(dt.Seconds() * 1000)
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(ms)
			v.ScrollX = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(ms)
			v.ScrollY = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
	}
	v.clamp()
}

// clamp restricts the scroll offset so the visible area stays within Document.
func (v *Viewport) clamp() {
	if !v.BoundsEnabled {
		return
	}
	maxX := v.Document.X + v.Document.Width - v.Width
	maxY := v.Document.Y + v.Document.Height - v.Height
	v.ScrollX = max(v.Document.X, min(v.ScrollX, maxX))
	v.ScrollY = max(v.Document.Y, min(v.ScrollY, maxY))
}

// VisibleBounds returns the visible area in document coordinates.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: v.ScrollX, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// ObservedBounds returns the visible area adjusted by RootMargin, the area
// visibility triggers measure against.
func (v *Viewport) ObservedBounds() Rect {
	return v.VisibleBounds().Inset(Insets{
		Top:    -v.RootMargin.Top,
		Right:  -v.RootMargin.Right,
		Bottom: -v.RootMargin.Bottom,
		Left:   -v.RootMargin.Left,
	})
}

// ScreenToWorld converts viewport coordinates to document coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx + v.ScrollX, sy + v.ScrollY
}

// WorldToScreen converts document coordinates to viewport coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx - v.ScrollX, wy - v.ScrollY
}

// VisibilityRatio returns the fraction of target's area that lies inside
// area, in [0, 1]. A zero-area target counts as fully visible when its
// position lies inside area.
func VisibilityRatio(target, area Rect) float64 {
	ta := target.Area()
	if ta <= 0 {
		if area.Contains(target.X, target.Y) {
			return 1
		}
		return 0
	}
	return min(1, target.Intersection(area).Area()/ta)
}
