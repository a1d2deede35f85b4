package glint

import (
	"math/rand/v2"
	"sort"
	"time"
)

// StaggerFunc maps a target's index (0-based, in resolution order) to an
// additional start delay.
type StaggerFunc func(index int) time.Duration

// Stagger returns a StaggerFunc yielding index*step.
func Stagger(step time.Duration) StaggerFunc {
	return StaggerFrom(0, step)
}

// StaggerFrom returns a StaggerFunc yielding start + index*step.
func StaggerFrom(start, step time.Duration) StaggerFunc {
	return func(i int) time.Duration {
		return start + time.Duration(i)*step
	}
}

// Tween describes a keyframed animation of one or more properties over a set
// of targets. Pass it to Scene.Animate.
type Tween struct {
	Targets Targets
	// Props maps property names (see PropertyNames) to keyframes. Two
	// properties on different axes interpolate independently.
	Props map[string]Keyframes

	Duration time.Duration
	// DurationRange, when set, replaces Duration with a per-target random
	// duration in [Min, Max), drawn once at schedule time.
	DurationRange DurationRange

	Delay time.Duration
	// DelayRange, when set, adds a per-target random delay in [Min, Max),
	// drawn once at schedule time.
	DelayRange DurationRange
	// Stagger adds stagger(index) to each target's delay.
	Stagger StaggerFunc

	Easing    Easing
	Loop      int // 0 or 1 plays once, n plays n iterations, LoopForever repeats
	Direction Direction

	// OnComplete fires once after the final iteration of every target of a
	// finite tween. It never fires for LoopForever tweens, for cancelled
	// handles, or when no target ran to completion.
	OnComplete func()
	// OnLoop fires at each iteration boundary of the first target.
	OnLoop func(iteration int)
}

// --- Handle ---

// Handle controls one Animate call.
type Handle struct {
	animator   *animator
	runs       []*run
	onComplete func()
	onLoop     func(int)
	// onEnd runs once when step finishes the handle, whether or not any
	// run completed. Cancel does not run it.
	onEnd    func()
	lastIter int
	done     bool
}

// run is one target's share of a Handle.
type run struct {
	node    *Node
	timing  Timing
	elapsed time.Duration
	tracks  []*track
	done    bool
	dropped bool // disposed or every track superseded
}

// track drives one property of one node.
type track struct {
	name       string
	prop       property
	sample     *sampler
	node       *Node
	superseded bool
}

// Done reports whether the handle has finished, been cancelled, or had
// nothing to animate.
func (h *Handle) Done() bool {
	return h.done
}

// Cancel stops the handle where it is. OnComplete does not fire. Safe to call
// more than once and on finished handles.
func (h *Handle) Cancel() {
	if h.done {
		return
	}
	h.done = true
	for _, r := range h.runs {
		r.done = true
		h.animator.release(r)
	}
}

// Targets returns the resolved target nodes in resolution order.
func (h *Handle) Targets() []*Node {
	nodes := make([]*Node, len(h.runs))
	for i, r := range h.runs {
		nodes[i] = r.node
	}
	return nodes
}

// Timing returns the resolved timing of the target at index i.
func (h *Handle) Timing(i int) Timing {
	return h.runs[i].timing
}

// Len returns the number of resolved targets.
func (h *Handle) Len() int {
	return len(h.runs)
}

// --- Animator ---

type channelKey struct {
	node    *Node
	channel string
}

// animator owns all live handles and the per-(node, property) ownership
// table. A new track on an owned channel overrides the previous owner.
type animator struct {
	handles []*Handle
	owners  map[channelKey]*track
	rng     *rand.Rand
	logf    func(format string, args ...any)
}

func newAnimator(rng *rand.Rand, logf func(string, ...any)) *animator {
	return &animator{
		owners: make(map[channelKey]*track),
		rng:    rng,
		logf:   logf,
	}
}

// animate schedules tw over the already-resolved nodes.
func (a *animator) animate(tw Tween, nodes []*Node) *Handle {
	h := &Handle{
		animator:   a,
		onComplete: tw.OnComplete,
		onLoop:     tw.OnLoop,
	}
	if len(nodes) == 0 {
		a.logf("animate: no targets resolved")
		h.done = true
		return h
	}
	if tw.Duration <= 0 && tw.DurationRange.Max <= 0 {
		a.logf("animate: rejected non-positive duration %v", tw.Duration)
		h.done = true
		return h
	}
	if !tw.Easing.Valid() {
		a.logf("animate: unknown easing %q, using linear", tw.Easing)
	}

	names := make([]string, 0, len(tw.Props))
	for name, kf := range tw.Props {
		if _, ok := properties[name]; !ok {
			a.logf("animate: unknown property %q ignored", name)
			continue
		}
		if len(kf) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for i, n := range nodes {
		timing := Timing{
			Delay:     tw.Delay,
			Duration:  tw.Duration,
			Loop:      tw.Loop,
			Direction: tw.Direction,
		}
		if !tw.DurationRange.IsZero() {
			timing.Duration = tw.DurationRange.Random(a.rng)
		}
		if !tw.DelayRange.IsZero() {
			timing.Delay += tw.DelayRange.Random(a.rng)
		}
		if tw.Stagger != nil {
			timing.Delay += tw.Stagger(i)
		}
		if timing.Duration <= 0 {
			a.logf("animate: target %q rejected, non-positive duration", n.Name)
			continue
		}

		r := &run{node: n, timing: timing}
		for _, name := range names {
			prop := properties[name]
			frames := tw.Props[name]
			if len(frames) == 1 {
				frames = Keyframes{prop.get(n), frames[0]}
			}
			tr := &track{name: name, prop: prop, sample: newSampler(frames, tw.Easing), node: n}
			a.claim(tr)
			r.tracks = append(r.tracks, tr)
		}
		h.runs = append(h.runs, r)
		h.apply(r)
	}
	if len(h.runs) == 0 {
		h.done = true
		return h
	}
	a.handles = append(a.handles, h)
	return h
}

// claim makes tr the owner of its channels, superseding earlier owners.
func (a *animator) claim(tr *track) {
	for _, ch := range tr.prop.channels {
		key := channelKey{tr.node, ch}
		if prev, ok := a.owners[key]; ok && prev != tr {
			prev.superseded = true
		}
		a.owners[key] = tr
	}
}

// release drops ownership held by r's tracks.
func (a *animator) release(r *run) {
	for _, tr := range r.tracks {
		for _, ch := range tr.prop.channels {
			key := channelKey{tr.node, ch}
			if a.owners[key] == tr {
				delete(a.owners, key)
			}
		}
	}
}

// update advances every live handle by dt. Handles scheduled from callbacks
// during the update start on the next update.
func (a *animator) update(dt time.Duration) {
	live := a.handles
	a.handles = nil
	kept := live[:0]
	for _, h := range live {
		if h.done {
			continue
		}
		h.step(dt)
		if !h.done {
			kept = append(kept, h)
		}
	}
	a.handles = append(kept, a.handles...)
}

// count returns the number of live handles.
func (a *animator) count() int {
	return len(a.handles)
}

// step advances each run of h and fires callbacks.
func (h *Handle) step(dt time.Duration) {
	allDone := true
	completed := false
	for i, r := range h.runs {
		if r.done {
			if !r.dropped {
				completed = true
			}
			continue
		}
		if r.node.disposed {
			r.done, r.dropped = true, true
			h.animator.release(r)
			continue
		}
		r.elapsed += dt
		iter, finished := h.apply(r)
		if r.dropped {
			r.done = true
			h.animator.release(r)
			continue
		}
		if i == 0 && h.onLoop != nil {
			for h.lastIter < iter {
				h.lastIter++
				h.onLoop(h.lastIter)
			}
		}
		if finished {
			r.done = true
			completed = true
			h.animator.release(r)
			continue
		}
		allDone = false
	}
	if !allDone || h.done {
		return
	}
	h.done = true
	if completed && h.onComplete != nil {
		h.onComplete()
	}
	if h.onEnd != nil {
		h.onEnd()
	}
}

// apply samples r at its elapsed time and writes every track it still owns.
// Marks r dropped when no track is left.
func (h *Handle) apply(r *run) (iteration int, finished bool) {
	iteration, p, finished := r.timing.At(r.elapsed)
	live := false
	for _, tr := range r.tracks {
		if tr.superseded {
			continue
		}
		live = true
		tr.prop.set(r.node, tr.sample.at(p))
	}
	if !live {
		r.dropped = true
	}
	return iteration, finished
}
