package glint

import "sort"

// Trigger is a one-shot action bound to a node's visibility. It fires the
// first time the node's visible ratio reaches its threshold, then stops
// observing. Triggers never re-arm.
type Trigger struct {
	target    *Node
	threshold float64
	action    func()
	queued    bool
	fired     bool
	disarmed  bool
	obs       *observer
}

// Fired reports whether the action has run. Once true it stays true.
func (t *Trigger) Fired() bool {
	return t != nil && t.fired
}

// Armed reports whether the trigger is still observing its target.
func (t *Trigger) Armed() bool {
	return t != nil && !t.queued && !t.fired && !t.disarmed
}

// Target returns the observed node.
func (t *Trigger) Target() *Node {
	return t.target
}

// Disarm stops observing. An unfired trigger never fires afterwards, even if
// its action was already queued this tick.
func (t *Trigger) Disarm() {
	if t == nil || t.disarmed {
		return
	}
	t.disarmed = true
	if t.obs != nil {
		t.obs.unobserve(t)
	}
}

// observer is one observation context: all triggers sharing a threshold.
type observer struct {
	mgr       *TriggerManager
	threshold float64
	entries   []*Trigger
}

func (o *observer) unobserve(t *Trigger) {
	for i, e := range o.entries {
		if e == t {
			copy(o.entries[i:], o.entries[i+1:])
			o.entries[len(o.entries)-1] = nil
			o.entries = o.entries[:len(o.entries)-1]
			break
		}
	}
	t.obs = nil
	if len(o.entries) == 0 {
		o.mgr.release(o)
	}
}

// TriggerManager owns the scene's visibility observers, one per distinct
// threshold. Sampling happens once per tick after transforms refresh;
// actions run at the end of the tick, never synchronously with scrolling.
type TriggerManager struct {
	scene     *Scene
	observers map[float64]*observer
	queue     []*Trigger
}

func newTriggerManager(s *Scene) *TriggerManager {
	return &TriggerManager{scene: s, observers: make(map[float64]*observer)}
}

// Arm observes target and runs action once, the first time at least
// threshold of its area is inside the viewport's observed bounds. A nil or
// disposed target, or a nil action, yields an inert trigger. Thresholds are
// clamped to [0, 1].
func (m *TriggerManager) Arm(target *Node, action func(), threshold float64) *Trigger {
	t := &Trigger{target: target, threshold: min(1, max(0, threshold)), action: action}
	if target == nil || target.disposed || action == nil {
		m.scene.debugf("arm: missing target or action, trigger inert")
		t.disarmed = true
		return t
	}
	o, ok := m.observers[t.threshold]
	if !ok {
		o = &observer{mgr: m, threshold: t.threshold}
		m.observers[t.threshold] = o
	}
	t.obs = o
	o.entries = append(o.entries, t)
	return t
}

// Observers returns the number of live observation contexts.
func (m *TriggerManager) Observers() int {
	return len(m.observers)
}

// Len returns the number of armed, unfired triggers.
func (m *TriggerManager) Len() int {
	n := 0
	for _, o := range m.observers {
		n += len(o.entries)
	}
	return n
}

// Dispose disarms every trigger and releases all observers.
func (m *TriggerManager) Dispose() {
	for _, o := range m.sortedObservers() {
		for len(o.entries) > 0 {
			o.entries[0].Disarm()
		}
	}
	for _, t := range m.queue {
		t.disarmed = true
	}
	m.queue = nil
}

func (m *TriggerManager) release(o *observer) {
	if m.observers[o.threshold] == o {
		delete(m.observers, o.threshold)
	}
}

// sortedObservers returns observers ordered by threshold so sampling is
// deterministic.
func (m *TriggerManager) sortedObservers() []*observer {
	obs := make([]*observer, 0, len(m.observers))
	for _, o := range m.observers {
		obs = append(obs, o)
	}
	sort.Slice(obs, func(i, j int) bool { return obs[i].threshold < obs[j].threshold })
	return obs
}

// sample measures every observed target against area and queues the triggers
// that crossed their threshold.
func (m *TriggerManager) sample(area Rect) {
	for _, o := range m.sortedObservers() {
		// Iterate over a copy: firing unobserves.
		entries := append([]*Trigger(nil), o.entries...)
		for _, t := range entries {
			if t.target.disposed {
				t.Disarm()
				continue
			}
			if t.queued || !crossed(VisibilityRatio(t.target.Bounds(), area), t.threshold) {
				continue
			}
			t.queued = true
			o.unobserve(t)
			m.queue = append(m.queue, t)
		}
	}
}

// deliver runs queued actions in firing order.
func (m *TriggerManager) deliver() {
	if len(m.queue) == 0 {
		return
	}
	queue := m.queue
	m.queue = nil
	for _, t := range queue {
		if t.disarmed || t.target.disposed {
			continue
		}
		t.fired = true
		t.action()
		m.scene.emitTriggerEvent(t.target)
	}
}

// crossed reports whether ratio satisfies threshold. A zero threshold still
// requires some part of the target to be visible.
func crossed(ratio, threshold float64) bool {
	if threshold <= 0 {
		return ratio > 0
	}
	return ratio >= threshold
}
