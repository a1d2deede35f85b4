package glint

import "time"

// Task is a cancellable timer scheduled on a Scene. Typewriters, cursor trail
// updates and Scene.After/Every return one.
type Task struct {
	due      time.Duration
	interval time.Duration // 0 for one-shot
	seq      uint64
	fn       func() bool // returns false to stop an interval
	onCancel func()
	done     bool
}

// Cancel stops the task. A one-shot task that has not fired never fires.
// Safe to call more than once.
func (t *Task) Cancel() {
	if t == nil || t.done {
		return
	}
	t.done = true
	if t.onCancel != nil {
		t.onCancel()
	}
}

// Done reports whether the task has fired (one-shot), stopped (interval) or
// been cancelled.
func (t *Task) Done() bool {
	return t == nil || t.done
}

// scheduler is the scene clock plus its pending tasks.
type scheduler struct {
	now     time.Duration
	nextSeq uint64
	tasks   []*Task
}

func (s *scheduler) after(d time.Duration, fn func()) *Task {
	return s.add(d, 0, func() bool { fn(); return false })
}

func (s *scheduler) every(interval time.Duration, fn func() bool) *Task {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return s.add(interval, interval, fn)
}

func (s *scheduler) add(d, interval time.Duration, fn func() bool) *Task {
	if d < 0 {
		d = 0
	}
	s.nextSeq++
	t := &Task{due: s.now + d, interval: interval, seq: s.nextSeq, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// advance moves the clock forward by dt and runs every task that comes due,
// in due-time order (ties by scheduling order). An interval task that falls
// several periods behind runs once per period. Tasks scheduled while advancing
// wait for the next advance.
func (s *scheduler) advance(dt time.Duration) {
	s.now += dt
	limit := s.nextSeq
	for {
		t := s.nextDue(limit)
		if t == nil {
			break
		}
		more := t.fn()
		if t.interval > 0 && more && !t.done {
			t.due += t.interval
			continue
		}
		t.done = true
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.done {
			kept = append(kept, t)
		}
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept
}

// nextDue returns the earliest due task scheduled at or before seq limit.
func (s *scheduler) nextDue(limit uint64) *Task {
	var best *Task
	for _, t := range s.tasks {
		if t.done || t.due > s.now || t.seq > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// pending returns the number of tasks not yet done.
func (s *scheduler) pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done {
			n++
		}
	}
	return n
}
