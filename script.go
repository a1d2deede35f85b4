package glint

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrEmptyScript is returned when a script has no steps.
var ErrEmptyScript = errors.New("script has no steps")

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	// MS is the wait time for "wait" and the scroll duration for "scroll".
	MS     int    `json:"ms,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Easing Easing `json:"easing,omitempty"`
}

// scriptFile is the top-level JSON structure for an input script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays pointer and scroll input across ticks. Demos use it for
// unattended runs; tests use it to drive scroll-reveal sequences. Attach it
// with Scene.SetScript.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitUntil time.Duration
	waitTicks int
	done      bool
}

// ParseScript parses a JSON input script:
//
//	{"steps": [
//	  {"action": "move", "x": 400, "y": 300},
//	  {"action": "click", "x": 400, "y": 300},
//	  {"action": "scroll", "y": 900, "ms": 800},
//	  {"action": "wait", "ms": 500}
//	]}
func ParseScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "move", "click", "scroll", "wait":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if !st.Easing.Valid() {
			return nil, fmt.Errorf("parse script: step %d: unknown easing %q", i, st.Easing)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScript reads and parses a JSON input script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return ParseScript(data)
}

// SetScript attaches a script to the scene. Its step method runs at the start
// of every tick. Pass nil to detach.
func (s *Scene) SetScript(sc *Script) {
	s.script = sc
}

// Done reports whether every step has executed and all injected input
// has drained.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one tick. Called from Scene.tick.
func (r *Script) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitTicks > 0 {
		r.waitTicks--
		return
	}
	if s.clock.now < r.waitUntil {
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		s.InjectMove(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "scroll":
		s.viewport.ScrollTo(st.X, st.Y, time.Duration(st.MS)*time.Millisecond, st.Easing)
	case "wait":
		r.waitUntil = s.clock.now + time.Duration(st.MS)*time.Millisecond
		if st.Frames > 0 {
			r.waitTicks = st.Frames - 1 // this tick counts as one
		}
	}
}
