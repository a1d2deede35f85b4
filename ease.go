package glint

import "github.com/tanema/gween/ease"

// Easing names a timing curve. The zero value is linear.
type Easing string

// Named curves.
const (
	Linear         Easing = "linear"
	EaseOutExpo    Easing = "ease-out-expo"
	EaseOutBack    Easing = "ease-out-back"
	EaseInOutSine  Easing = "ease-in-out-sine"
	EaseOutQuad    Easing = "ease-out-quad"
	EaseOutElastic Easing = "ease-out-elastic"
)

var easeFuncs = map[Easing]ease.TweenFunc{
	Linear:         ease.Linear,
	EaseOutExpo:    ease.OutExpo,
	EaseOutBack:    ease.OutBack,
	EaseInOutSine:  ease.InOutSine,
	EaseOutQuad:    ease.OutQuad,
	EaseOutElastic: ease.OutElastic,
}

// Valid reports whether e names a known curve. The empty name is valid.
func (e Easing) Valid() bool {
	if e == "" {
		return true
	}
	_, ok := easeFuncs[e]
	return ok
}

// Func returns the gween easing function for e, falling back to linear for
// unknown names.
func (e Easing) Func() ease.TweenFunc {
	if fn, ok := easeFuncs[e]; ok {
		return fn
	}
	return ease.Linear
}

// Ease maps linear progress p in [0, 1] to eased progress. The endpoints are
// exact: Ease(0) == 0 and Ease(1) == 1. Overshooting curves (back, elastic)
// may leave [0, 1] in between.
func (e Easing) Ease(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return float64(e.Func()(float32(p), 0, 1, 1))
}
