package glint

import (
	"math"
	"time"

	"github.com/tanema/gween"
)

// LoopForever makes a tween repeat until its targets are disposed or the
// handle is cancelled.
const LoopForever = -1

// Direction controls how iterations play.
type Direction uint8

const (
	Forward   Direction = iota // every iteration plays from -> to
	Reverse                    // every iteration plays to -> from
	Alternate                  // even iterations forward, odd iterations reversed
)

// Keyframes is the value sequence one property moves through. One value
// means "to" (the start is read from the node when the tween is scheduled),
// two mean from/to, more are evenly spaced keyframes.
type Keyframes []float64

// To animates from the current value to v.
func To(v float64) Keyframes { return Keyframes{v} }

// FromTo animates from a to b.
func FromTo(a, b float64) Keyframes { return Keyframes{a, b} }

// Frames animates through the given values, evenly spaced in time.
func Frames(values ...float64) Keyframes { return Keyframes(values) }

// At samples the keyframes at progress p in [0, 1]. Easing applies to each
// segment between consecutive keyframes; values interpolate linearly in the
// eased parameter.
func (k Keyframes) At(p float64, e Easing) float64 {
	return newSampler(k, e).at(p)
}

// sampler interpolates keyframes through a gween tween. The tween runs over
// the eased parameter in [0, 1] rather than the values themselves, so
// keyframe values keep float64 precision and the endpoints stay exact.
type sampler struct {
	frames Keyframes
	curve  *gween.Tween
}

func newSampler(k Keyframes, e Easing) *sampler {
	return &sampler{frames: k, curve: gween.New(0, 1, 1, e.Func())}
}

func (s *sampler) at(p float64) float64 {
	k := s.frames
	switch len(k) {
	case 0:
		return 0
	case 1:
		return k[0]
	}
	segs := len(k) - 1
	p = math.Max(0, math.Min(1, p))
	pos := p * float64(segs)
	i := int(pos)
	if i >= segs {
		i = segs - 1
	}
	a, b := k[i], k[i+1]
	u, _ := s.curve.Set(float32(pos - float64(i)))
	return a + (b-a)*float64(u)
}

// Timing is the resolved schedule of one tween target.
type Timing struct {
	Delay     time.Duration
	Duration  time.Duration
	Loop      int
	Direction Direction
}

// Iterations returns the number of iterations, or -1 for infinite.
func (t Timing) Iterations() int {
	switch {
	case t.Loop < 0:
		return -1
	case t.Loop == 0:
		return 1
	}
	return t.Loop
}

// At maps elapsed time since scheduling to the current iteration and the
// keyframe progress to sample, after direction is applied. done is true once
// the final iteration of a finite timing has ended; progress then holds the
// final value's position.
func (t Timing) At(elapsed time.Duration) (iteration int, progress float64, done bool) {
	if t.Duration <= 0 {
		return 0, t.directed(0, 1), true
	}
	if elapsed < t.Delay {
		return 0, t.directed(0, 0), false
	}
	active := elapsed - t.Delay
	n := t.Iterations()
	if n > 0 && active >= time.Duration(n)*t.Duration {
		return n - 1, t.directed(n-1, 1), true
	}
	iteration = int(active / t.Duration)
	local := float64(active-time.Duration(iteration)*t.Duration) / float64(t.Duration)
	return iteration, t.directed(iteration, local), false
}

// End returns the total active time including the delay, or -1 if infinite.
func (t Timing) End() time.Duration {
	n := t.Iterations()
	if n < 0 {
		return -1
	}
	return t.Delay + time.Duration(n)*t.Duration
}

func (t Timing) directed(iteration int, local float64) float64 {
	switch t.Direction {
	case Reverse:
		return 1 - local
	case Alternate:
		if iteration%2 == 1 {
			return 1 - local
		}
	}
	return local
}
