package glint

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"invalid json", `{"steps": [`, "parse script"},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`, `unknown action "screenshot"`},
		{"unknown easing", `{"steps": [{"action": "scroll", "y": 10, "ms": 100, "easing": "zigzag"}]}`, "unknown easing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseScriptEmpty(t *testing.T) {
	_, err := ParseScript([]byte(`{"steps": []}`))
	if !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

func TestScriptDrivesScene(t *testing.T) {
	sc, err := ParseScript([]byte(`{"steps": [
		{"action": "move", "x": 50, "y": 50},
		{"action": "wait", "ms": 100},
		{"action": "scroll", "y": 500},
		{"action": "click", "x": 50, "y": 50}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	btn := NewElement("button", "below-fold")
	btn.SetPosition(0, 500)
	btn.SetSize(100, 100)
	s.Root().AddChild(btn)
	clicks := 0
	btn.OnClick = func(PointerContext) { clicks++ }
	s.SetScript(sc)

	s.Tick(frame)
	if x, y := s.PointerPosition(); x != 50 || y != 50 {
		t.Errorf("PointerPosition = (%v, %v), want (50, 50)", x, y)
	}
	tickFor(s, 50*frame, frame)
	if !sc.Done() {
		t.Fatal("script should be done")
	}
	if s.Viewport().ScrollY != 500 {
		t.Errorf("ScrollY = %v, want 500", s.Viewport().ScrollY)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestScriptWaitHoldsSteps(t *testing.T) {
	sc, err := ParseScript([]byte(`{"steps": [
		{"action": "wait", "ms": 100},
		{"action": "scroll", "y": 300}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.SetScript(sc)
	tickFor(s, 10*frame, frame)
	if s.Viewport().ScrollY != 0 {
		t.Errorf("scrolled during the wait: %v", s.Viewport().ScrollY)
	}
	s.Tick(frame)
	if s.Viewport().ScrollY != 300 {
		t.Errorf("ScrollY = %v, want 300 after the wait", s.Viewport().ScrollY)
	}
}

func TestScriptWaitFrames(t *testing.T) {
	sc, err := ParseScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "scroll", "y": 300}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.SetScript(sc)
	for i := 0; i < 3; i++ {
		s.Tick(frame)
	}
	if s.Viewport().ScrollY != 0 {
		t.Errorf("scrolled during a 3 frame wait: %v", s.Viewport().ScrollY)
	}
	s.Tick(frame)
	if s.Viewport().ScrollY != 300 {
		t.Errorf("ScrollY = %v, want 300", s.Viewport().ScrollY)
	}
}

func TestScriptSmoothScroll(t *testing.T) {
	sc, err := ParseScript([]byte(`{"steps": [{"action": "scroll", "y": 800, "ms": 400, "easing": "ease-in-out-sine"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	s.SetScript(sc)
	s.Tick(frame)
	if !s.Viewport().Scrolling() {
		t.Fatal("scroll step with ms should animate")
	}
	tickFor(s, 50*frame, frame)
	if !approxEqual(s.Viewport().ScrollY, 800, 1e-3) {
		t.Errorf("ScrollY = %v, want 800", s.Viewport().ScrollY)
	}
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tour.json")
	if err := os.WriteFile(path, []byte(`{"steps": [{"action": "wait", "ms": 10}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScript(path); err != nil {
		t.Errorf("LoadScript: %v", err)
	}
	if _, err := LoadScript(filepath.Join(dir, "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}
