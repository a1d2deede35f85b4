package glint

import (
	"math"
	"testing"
	"time"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestViewportScreenToWorld(t *testing.T) {
	v := newViewport(800, 600)
	v.ScrollBy(0, 250)
	wx, wy := v.ScreenToWorld(100, 100)
	if wx != 100 || wy != 350 {
		t.Errorf("ScreenToWorld = (%v, %v), want (100, 350)", wx, wy)
	}
	sx, sy := v.WorldToScreen(wx, wy)
	if sx != 100 || sy != 100 {
		t.Errorf("WorldToScreen = (%v, %v), want (100, 100)", sx, sy)
	}
}

func TestViewportObservedBounds(t *testing.T) {
	tests := []struct {
		name   string
		margin Insets
		want   Rect
	}{
		{"none", Insets{}, Rect{0, 100, 800, 600}},
		{"shrink bottom", Insets{Bottom: -100}, Rect{0, 100, 800, 500}},
		{"grow top", Insets{Top: 50}, Rect{0, 50, 800, 650}},
		{"shrink sides", Insets{Left: -10, Right: -20}, Rect{10, 100, 770, 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViewport(800, 600)
			v.ScrollY = 100
			v.RootMargin = tt.margin
			if got := v.ObservedBounds(); got != tt.want {
				t.Errorf("ObservedBounds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestViewportScrollToSmooth(t *testing.T) {
	v := newViewport(800, 600)
	v.ScrollTo(0, 1000, 500*time.Millisecond, EaseInOutSine)
	if !v.Scrolling() {
		t.Fatal("ScrollTo should start a scroll animation")
	}
	v.update(250 * time.Millisecond)
	if !approxEqual(v.ScrollY, 500, 1) {
		t.Errorf("mid ScrollY = %v, want ~500", v.ScrollY)
	}
	v.update(300 * time.Millisecond)
	if !approxEqual(v.ScrollY, 1000, 1e-3) {
		t.Errorf("ScrollY = %v, want 1000", v.ScrollY)
	}
	if v.Scrolling() {
		t.Error("scroll animation should have finished")
	}
}

func TestViewportScrollToImmediate(t *testing.T) {
	v := newViewport(800, 600)
	v.ScrollTo(30, 40, 0, Linear)
	if v.ScrollX != 30 || v.ScrollY != 40 || v.Scrolling() {
		t.Errorf("ScrollTo(0 duration) = (%v, %v, %v)", v.ScrollX, v.ScrollY, v.Scrolling())
	}
}

func TestViewportScrollByCancelsSmoothScroll(t *testing.T) {
	v := newViewport(800, 600)
	v.ScrollTo(0, 1000, time.Second, Linear)
	v.update(100 * time.Millisecond)
	v.ScrollBy(0, 10)
	if v.Scrolling() {
		t.Error("ScrollBy should cancel the scroll animation")
	}
}

func TestViewportClamp(t *testing.T) {
	v := newViewport(800, 600)
	v.BoundsEnabled = true
	v.Document = Rect{0, 0, 800, 2000}
	v.ScrollBy(0, 5000)
	if v.ScrollY != 1400 {
		t.Errorf("ScrollY = %v, want 1400", v.ScrollY)
	}
	v.ScrollBy(0, -9000)
	if v.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want 0", v.ScrollY)
	}
}

func TestVisibilityRatio(t *testing.T) {
	area := Rect{0, 0, 100, 100}
	tests := []struct {
		name   string
		target Rect
		want   float64
	}{
		{"inside", Rect{10, 10, 20, 20}, 1},
		{"outside", Rect{200, 200, 10, 10}, 0},
		{"half", Rect{50, 0, 100, 100}, 0.5},
		{"quarter", Rect{50, 50, 100, 100}, 0.25},
		{"touching edge", Rect{100, 0, 10, 10}, 0},
		{"zero area inside", Rect{50, 50, 0, 0}, 1},
		{"zero area outside", Rect{150, 50, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibilityRatio(tt.target, area); !approxEqual(got, tt.want, 1e-12) {
				t.Errorf("VisibilityRatio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	if c := r.Center(); c != (Vec2{60, 45}) {
		t.Errorf("Center = %v", c)
	}
	if !r.Contains(10, 20) || !r.Contains(110, 70) || r.Contains(111, 70) {
		t.Error("Contains edge handling wrong")
	}
	if !r.Intersects(Rect{110, 70, 5, 5}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if got := r.Inset(Insets{Top: 5, Bottom: 100}); got.Height != 0 {
		t.Errorf("over-inset height = %v, want 0", got.Height)
	}
}
