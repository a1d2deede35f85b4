package glint

import "time"

// TypingClass is added to a node once its typewriter has written every rune.
// The renderer draws a blinking caret after text carrying it.
const TypingClass = "typing"

const defaultTypeSpeed = 100 * time.Millisecond

// typeJob is one Scene.Type call.
type typeJob struct {
	node   *Node
	runes  []rune
	speed  time.Duration
	next   int
	handle *Task // returned to the caller
	ticker *Task // scheduler interval, nil until started
}

// typewriters serializes typewriter jobs per node: the head of each queue is
// running, the rest wait.
type typewriters struct {
	scene  *Scene
	speed  time.Duration
	queues map[*Node][]*typeJob
}

func newTypewriters(s *Scene) *typewriters {
	return &typewriters{scene: s, speed: defaultTypeSpeed, queues: make(map[*Node][]*typeJob)}
}

// Type reveals text in node one rune per speed interval. The node's text is
// cleared when the job starts; after the last rune the node gets class
// "typing". A second call on a node that is still typing is queued and
// starts when the first finishes or is cancelled. A non-positive speed uses
// the configured default (100ms).
//
// Cancelling the returned task stops the job where it is, or removes it from
// the queue if it has not started. Disposing the node cancels it.
func (s *Scene) Type(node *Node, text string, speed time.Duration) *Task {
	w := s.typing
	job := &typeJob{node: node, runes: []rune(text), speed: speed}
	job.handle = &Task{}
	if node == nil || node.disposed {
		s.debugf("type: missing target")
		job.handle.done = true
		return job.handle
	}
	if job.speed <= 0 {
		job.speed = w.speed
	}
	job.handle.onCancel = func() { w.cancel(job) }

	w.queues[node] = append(w.queues[node], job)
	if len(w.queues[node]) == 1 {
		w.start(job)
	}
	return job.handle
}

// SetTypeSpeed sets the default typewriter interval.
func (s *Scene) SetTypeSpeed(d time.Duration) {
	if d <= 0 {
		d = defaultTypeSpeed
	}
	s.typing.speed = d
}

// Typing reports whether node has a running or queued typewriter.
func (s *Scene) Typing(node *Node) bool {
	return len(s.typing.queues[node]) > 0
}

func (w *typewriters) start(job *typeJob) {
	job.node.Text = ""
	job.node.RemoveClass(TypingClass)
	job.ticker = w.scene.clock.every(job.speed, func() bool {
		if job.node.disposed {
			job.handle.Cancel()
			return false
		}
		if job.next < len(job.runes) {
			job.node.Text += string(job.runes[job.next])
			job.next++
		}
		if job.next < len(job.runes) {
			return true
		}
		job.node.AddClass(TypingClass)
		job.handle.done = true
		w.finish(job)
		return false
	})
}

// cancel runs from Task.Cancel on the caller's handle.
func (w *typewriters) cancel(job *typeJob) {
	if job.ticker != nil {
		job.ticker.Cancel()
	}
	w.finish(job)
}

// finish removes job from its node's queue and starts the next one.
func (w *typewriters) finish(job *typeJob) {
	q := w.queues[job.node]
	head := len(q) > 0 && q[0] == job
	for i, j := range q {
		if j == job {
			q = append(q[:i], q[i+1:]...)
			break
		}
	}
	if len(q) == 0 {
		delete(w.queues, job.node)
		return
	}
	if job.node.disposed {
		delete(w.queues, job.node)
		for _, j := range q {
			j.handle.Cancel()
		}
		return
	}
	w.queues[job.node] = q
	if head {
		w.start(q[0])
	}
}
