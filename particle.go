package glint

import (
	"time"
)

// FieldConfig controls the ambient particle field.
type FieldConfig struct {
	// Count is the number of particles. Default 50.
	Count int
	// Size is the side of each particle box in pixels. Default 4.
	Size float64
	// Drift is how far a particle rises over one iteration. Default 100.
	Drift float64
	// StartAlpha is the opacity at the start of each iteration; it fades to 0.
	// Default 0.3.
	StartAlpha float64
	// Duration is the per-particle iteration time range. Default [3s, 6s).
	Duration DurationRange
	// Delay is the per-particle start delay range. Default [0, 3s).
	Delay DurationRange
	Color Color
}

// DefaultFieldConfig returns the stock particle field settings.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:      50,
		Size:       4,
		Drift:      100,
		StartAlpha: 0.3,
		Duration:   DurationRange{Min: 3 * time.Second, Max: 6 * time.Second},
		Delay:      DurationRange{Min: 0, Max: 3 * time.Second},
		Color:      Color{R: 0.39, G: 0.4, B: 0.95, A: 1},
	}
}

func (c FieldConfig) withDefaults() FieldConfig {
	d := DefaultFieldConfig()
	if c.Count <= 0 {
		c.Count = d.Count
	}
	if c.Size <= 0 {
		c.Size = d.Size
	}
	if c.Drift == 0 {
		c.Drift = d.Drift
	}
	if c.StartAlpha <= 0 {
		c.StartAlpha = d.StartAlpha
	}
	if c.Duration.Max <= 0 {
		c.Duration = d.Duration
	}
	if c.Delay.IsZero() {
		c.Delay = d.Delay
	}
	if c.Color == (Color{}) {
		c.Color = d.Color
	}
	return c
}

// Particle is one drifting dot of a field. Its timing is resolved once at
// creation and repeats unchanged on every iteration.
type Particle struct {
	Node *Node
	// Position is the spawn point as percentages of the container size,
	// each in [0, 100).
	Position   Vec2
	Drift      float64
	StartAlpha float64
	Duration   time.Duration
	Delay      time.Duration
}

// ParticleField owns a set of particles on a container and the single tween
// that animates them.
type ParticleField struct {
	container *Node
	particles []Particle
	handle    *Handle
	disposed  bool
}

// SetFieldConfig replaces the defaults CreateField uses. Zero fields fall
// back to DefaultFieldConfig.
func (s *Scene) SetFieldConfig(cfg FieldConfig) {
	s.fieldCfg = cfg
}

// CreateField spawns count particles on container (count <= 0 uses the
// configured default). Each particle rises and fades forever with a linear
// curve. Every call adds a new field: mounting the same container twice
// doubles its particles.
func (s *Scene) CreateField(container *Node, count int) *ParticleField {
	cfg := s.fieldCfg
	if count > 0 {
		cfg.Count = count
	}
	return s.CreateFieldWith(container, cfg)
}

// CreateFieldWith spawns a particle field with an explicit configuration.
// A nil or disposed container yields an empty field.
func (s *Scene) CreateFieldWith(container *Node, cfg FieldConfig) *ParticleField {
	f := &ParticleField{container: container}
	if container == nil || container.disposed {
		s.debugf("particles: missing container")
		f.disposed = true
		return f
	}
	cfg = cfg.withDefaults()

	spawn := Range{Min: 0, Max: 100}
	nodes := make([]*Node, cfg.Count)
	f.particles = make([]Particle, cfg.Count)
	for i := range nodes {
		px := spawn.Random(s.rng)
		py := spawn.Random(s.rng)
		n := NewBox("particle", cfg.Size, cfg.Size, cfg.Color)
		n.AddClass("particle")
		n.Interactable = false
		n.X = px / 100 * container.Width
		n.Y = py / 100 * container.Height
		container.AddChild(n)
		nodes[i] = n
		f.particles[i] = Particle{
			Node:       n,
			Position:   Vec2{X: px, Y: py},
			Drift:      cfg.Drift,
			StartAlpha: cfg.StartAlpha,
		}
	}

	f.handle = s.Animate(Tween{
		Targets: Many(nodes...),
		Props: map[string]Keyframes{
			"translateY": FromTo(0, -cfg.Drift),
			"opacity":    FromTo(cfg.StartAlpha, 0),
		},
		DurationRange: cfg.Duration,
		DelayRange:    cfg.Delay,
		Easing:        Linear,
		Loop:          LoopForever,
	})
	for i := range f.particles {
		t := f.handle.Timing(i)
		f.particles[i].Duration = t.Duration
		f.particles[i].Delay = t.Delay
	}
	return f
}

// Particles returns the field's particles. The returned slice MUST NOT be
// mutated by the caller.
func (f *ParticleField) Particles() []Particle {
	return f.particles
}

// Len returns the number of particles still alive.
func (f *ParticleField) Len() int {
	if f.Disposed() {
		return 0
	}
	n := 0
	for _, p := range f.particles {
		if !p.Node.disposed {
			n++
		}
	}
	return n
}

// Container returns the node the field lives on.
func (f *ParticleField) Container() *Node {
	return f.container
}

// Disposed reports whether the field was disposed, directly or through its
// container.
func (f *ParticleField) Disposed() bool {
	return f.disposed || f.container == nil || f.container.disposed
}

// Dispose stops the field's tween and removes every particle node.
func (f *ParticleField) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	if f.handle != nil {
		f.handle.Cancel()
	}
	for _, p := range f.particles {
		p.Node.Dispose()
	}
}
