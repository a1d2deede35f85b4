package glint

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-loadable effect configuration. Zero fields fall back to
// the defaults from DefaultConfig.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Cursor     CursorConfig     `yaml:"cursor"`
	Tilt       TiltConfig       `yaml:"tilt"`
	Ripple     RippleConfig     `yaml:"ripple"`
	Typewriter TypewriterConfig `yaml:"typewriter"`
	Reveal     RevealConfig     `yaml:"reveal"`
	Debug      bool             `yaml:"debug"`
}

// WindowConfig sizes the host window and the scene viewport.
type WindowConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Title      string  `yaml:"title"`
	TPS        int     `yaml:"tps"`
	ScrollStep float64 `yaml:"scroll_step"`
	Background string  `yaml:"background"`
}

// ParticlesConfig configures CreateField.
type ParticlesConfig struct {
	Count      int           `yaml:"count"`
	Size       float64       `yaml:"size"`
	Drift      float64       `yaml:"drift"`
	StartAlpha float64       `yaml:"start_alpha"`
	Duration   DurationRange `yaml:"duration"`
	Delay      DurationRange `yaml:"delay"`
	Color      string        `yaml:"color"`
}

// CursorConfig configures the custom cursor and its trail.
type CursorConfig struct {
	Size          float64       `yaml:"size"`
	Offset        float64       `yaml:"offset"`
	Color         string        `yaml:"color"`
	TrailSize     float64       `yaml:"trail_size"`
	TrailOffset   float64       `yaml:"trail_offset"`
	TrailColor    string        `yaml:"trail_color"`
	TrailDelay    time.Duration `yaml:"trail_delay"`
	HoverScale    float64       `yaml:"hover_scale"`
	HoverDuration time.Duration `yaml:"hover_duration"`
	HoverEasing   Easing        `yaml:"hover_easing"`
}

// TiltConfig configures card tilt.
type TiltConfig struct {
	Divisor  float64       `yaml:"divisor"`
	Scale    float64       `yaml:"scale"`
	Duration time.Duration `yaml:"duration"`
	Easing   Easing        `yaml:"easing"`
}

// RippleConfig configures ripples.
type RippleConfig struct {
	Duration time.Duration `yaml:"duration"`
	Easing   Easing        `yaml:"easing"`
	Color    string        `yaml:"color"`
	Max      int           `yaml:"max"`
}

// TypewriterConfig configures Scene.Type.
type TypewriterConfig struct {
	Speed time.Duration `yaml:"speed"`
}

// RevealConfig configures RevealOnScroll.
type RevealConfig struct {
	Threshold float64 `yaml:"threshold"`
	// RootMargin adjusts the observed viewport area; negative shrinks it.
	RootMargin Insets        `yaml:"root_margin"`
	Duration   time.Duration `yaml:"duration"`
	Stagger    time.Duration `yaml:"stagger"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses YAML configuration data, fills defaults and validates
// the result.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	w := &c.Window
	if w.Width == 0 {
		w.Width = defaultViewportW
	}
	if w.Height == 0 {
		w.Height = defaultViewportH
	}
	if w.Title == "" {
		w.Title = "glint"
	}
	if w.TPS == 0 {
		w.TPS = 60
	}
	if w.ScrollStep == 0 {
		w.ScrollStep = defaultScrollStep
	}
	if w.Background == "" {
		w.Background = "#0f172a"
	}

	fd := DefaultFieldConfig()
	p := &c.Particles
	if p.Count == 0 {
		p.Count = fd.Count
	}
	if p.Size == 0 {
		p.Size = fd.Size
	}
	if p.Drift == 0 {
		p.Drift = fd.Drift
	}
	if p.StartAlpha == 0 {
		p.StartAlpha = fd.StartAlpha
	}
	if p.Duration.IsZero() {
		p.Duration = fd.Duration
	}
	if p.Delay.IsZero() {
		p.Delay = fd.Delay
	}
	if p.Color == "" {
		p.Color = "#6366f1"
	}

	pd := DefaultPointerConfig()
	cu := &c.Cursor
	if cu.Size == 0 {
		cu.Size = pd.CursorSize
	}
	if cu.Offset == 0 {
		cu.Offset = pd.CursorOffset
	}
	if cu.Color == "" {
		cu.Color = "#6366f1cc"
	}
	if cu.TrailSize == 0 {
		cu.TrailSize = pd.TrailSize
	}
	if cu.TrailOffset == 0 {
		cu.TrailOffset = pd.TrailOffset
	}
	if cu.TrailColor == "" {
		cu.TrailColor = "#6366f166"
	}
	if cu.TrailDelay == 0 {
		cu.TrailDelay = pd.TrailDelay
	}
	if cu.HoverScale == 0 {
		cu.HoverScale = pd.HoverScale
	}
	if cu.HoverDuration == 0 {
		cu.HoverDuration = pd.HoverDuration
	}
	if cu.HoverEasing == "" {
		cu.HoverEasing = pd.HoverEasing
	}

	t := &c.Tilt
	if t.Divisor == 0 {
		t.Divisor = pd.TiltDivisor
	}
	if t.Scale == 0 {
		t.Scale = pd.TiltScale
	}
	if t.Duration == 0 {
		t.Duration = pd.TiltDuration
	}
	if t.Easing == "" {
		t.Easing = pd.TiltEasing
	}

	r := &c.Ripple
	if r.Duration == 0 {
		r.Duration = pd.RippleDuration
	}
	if r.Easing == "" {
		r.Easing = pd.RippleEasing
	}
	if r.Color == "" {
		r.Color = "#ffffff4d"
	}
	if r.Max == 0 {
		r.Max = pd.MaxRipples
	}

	if c.Typewriter.Speed == 0 {
		c.Typewriter.Speed = defaultTypeSpeed
	}

	rv := &c.Reveal
	if rv.Threshold == 0 {
		rv.Threshold = 0.1
	}
	if rv.RootMargin == (Insets{}) {
		rv.RootMargin = Insets{Bottom: -100}
	}
	if rv.Duration == 0 {
		rv.Duration = 1000 * time.Millisecond
	}
	if rv.Stagger == 0 {
		rv.Stagger = 200 * time.Millisecond
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window: negative size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Particles.Count < 0 {
		return fmt.Errorf("particles: negative count %d", c.Particles.Count)
	}
	if c.Particles.Duration.Max < c.Particles.Duration.Min {
		return fmt.Errorf("particles: duration max %v below min %v", c.Particles.Duration.Max, c.Particles.Duration.Min)
	}
	if c.Particles.Delay.Max < c.Particles.Delay.Min {
		return fmt.Errorf("particles: delay max %v below min %v", c.Particles.Delay.Max, c.Particles.Delay.Min)
	}
	if c.Reveal.Threshold < 0 || c.Reveal.Threshold > 1 {
		return fmt.Errorf("reveal: threshold %v outside [0, 1]", c.Reveal.Threshold)
	}
	for name, e := range map[string]Easing{
		"cursor.hover_easing": c.Cursor.HoverEasing,
		"tilt.easing":         c.Tilt.Easing,
		"ripple.easing":       c.Ripple.Easing,
	} {
		if !e.Valid() {
			return fmt.Errorf("%s: unknown easing %q", name, e)
		}
	}
	for name, s := range map[string]string{
		"window.background":  c.Window.Background,
		"particles.color":    c.Particles.Color,
		"cursor.color":       c.Cursor.Color,
		"cursor.trail_color": c.Cursor.TrailColor,
		"ripple.color":       c.Ripple.Color,
	} {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// FieldConfig returns the particle field settings.
func (c *Config) FieldConfig() FieldConfig {
	return FieldConfig{
		Count:      c.Particles.Count,
		Size:       c.Particles.Size,
		Drift:      c.Particles.Drift,
		StartAlpha: c.Particles.StartAlpha,
		Duration:   c.Particles.Duration,
		Delay:      c.Particles.Delay,
		Color:      colorOr(c.Particles.Color, ColorWhite),
	}
}

// PointerConfig returns the cursor, tilt and ripple settings.
func (c *Config) PointerConfig() PointerConfig {
	return PointerConfig{
		CursorSize:     c.Cursor.Size,
		CursorOffset:   c.Cursor.Offset,
		CursorColor:    colorOr(c.Cursor.Color, ColorWhite),
		TrailSize:      c.Cursor.TrailSize,
		TrailOffset:    c.Cursor.TrailOffset,
		TrailColor:     colorOr(c.Cursor.TrailColor, ColorWhite),
		TrailDelay:     c.Cursor.TrailDelay,
		HoverScale:     c.Cursor.HoverScale,
		HoverDuration:  c.Cursor.HoverDuration,
		HoverEasing:    c.Cursor.HoverEasing,
		TiltDivisor:    c.Tilt.Divisor,
		TiltScale:      c.Tilt.Scale,
		TiltDuration:   c.Tilt.Duration,
		TiltEasing:     c.Tilt.Easing,
		RippleDuration: c.Ripple.Duration,
		RippleEasing:   c.Ripple.Easing,
		RippleColor:    colorOr(c.Ripple.Color, ColorWhite),
		MaxRipples:     c.Ripple.Max,
	}
}

// Apply configures s: viewport size and root margin, scroll step,
// background, particle and typewriter defaults, and debug mode.
func (c *Config) Apply(s *Scene) {
	s.viewport.Width = float64(c.Window.Width)
	s.viewport.Height = float64(c.Window.Height)
	s.viewport.RootMargin = c.Reveal.RootMargin
	s.ScrollStep = c.Window.ScrollStep
	s.ClearColor = colorOr(c.Window.Background, ColorWhite)
	s.SetFieldConfig(c.FieldConfig())
	s.SetTypeSpeed(c.Typewriter.Speed)
	s.SetDebugMode(c.Debug)
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// colorOr parses s, returning fallback when it is not a valid color.
// Validate rejects invalid colors, so the fallback only covers configs
// built in code without validation.
func colorOr(s string, fallback Color) Color {
	col, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return col
}
