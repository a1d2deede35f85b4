package glint

import (
	"time"
)

// TrailLength is the number of trail nodes following the cursor.
const TrailLength = 5

// PointerConfig tunes the pointer interaction controller. Zero fields fall
// back to DefaultPointerConfig values in NewPointerController.
type PointerConfig struct {
	CursorSize   float64
	CursorOffset float64 // cursor is drawn at (x-offset, y-offset)
	CursorColor  Color
	TrailSize    float64
	TrailOffset  float64
	TrailColor   Color
	// TrailDelay is the per-index lag: trail i follows after i*TrailDelay.
	TrailDelay time.Duration

	HoverScale    float64
	HoverDuration time.Duration
	HoverEasing   Easing

	TiltDivisor  float64
	TiltScale    float64
	TiltDuration time.Duration
	TiltEasing   Easing

	RippleDuration time.Duration
	RippleEasing   Easing
	RippleColor    Color
	// MaxRipples bounds live ripples per origin node. The oldest is disposed
	// early when a new one would exceed it.
	MaxRipples int
}

// DefaultPointerConfig returns the stock cursor, tilt and ripple settings.
func DefaultPointerConfig() PointerConfig {
	return PointerConfig{
		CursorSize:     20,
		CursorOffset:   10,
		CursorColor:    Color{R: 0.39, G: 0.4, B: 0.95, A: 0.8},
		TrailSize:      8,
		TrailOffset:    4,
		TrailColor:     Color{R: 0.39, G: 0.4, B: 0.95, A: 0.4},
		TrailDelay:     50 * time.Millisecond,
		HoverScale:     1.5,
		HoverDuration:  200 * time.Millisecond,
		HoverEasing:    EaseOutElastic,
		TiltDivisor:    10,
		TiltScale:      1.05,
		TiltDuration:   200 * time.Millisecond,
		TiltEasing:     EaseOutQuad,
		RippleDuration: 600 * time.Millisecond,
		RippleEasing:   EaseOutExpo,
		RippleColor:    Color{R: 1, G: 1, B: 1, A: 0.3},
		MaxRipples:     8,
	}
}

// withDefaults fills zero fields from DefaultPointerConfig.
func (c PointerConfig) withDefaults() PointerConfig {
	d := DefaultPointerConfig()
	if c.CursorSize <= 0 {
		c.CursorSize = d.CursorSize
	}
	if c.CursorOffset == 0 {
		c.CursorOffset = d.CursorOffset
	}
	if c.CursorColor == (Color{}) {
		c.CursorColor = d.CursorColor
	}
	if c.TrailSize <= 0 {
		c.TrailSize = d.TrailSize
	}
	if c.TrailOffset == 0 {
		c.TrailOffset = d.TrailOffset
	}
	if c.TrailColor == (Color{}) {
		c.TrailColor = d.TrailColor
	}
	if c.TrailDelay <= 0 {
		c.TrailDelay = d.TrailDelay
	}
	if c.HoverScale <= 0 {
		c.HoverScale = d.HoverScale
	}
	if c.HoverDuration <= 0 {
		c.HoverDuration = d.HoverDuration
	}
	if c.HoverEasing == "" {
		c.HoverEasing = d.HoverEasing
	}
	if c.TiltDivisor <= 0 {
		c.TiltDivisor = d.TiltDivisor
	}
	if c.TiltScale <= 0 {
		c.TiltScale = d.TiltScale
	}
	if c.TiltDuration <= 0 {
		c.TiltDuration = d.TiltDuration
	}
	if c.TiltEasing == "" {
		c.TiltEasing = d.TiltEasing
	}
	if c.RippleDuration <= 0 {
		c.RippleDuration = d.RippleDuration
	}
	if c.RippleEasing == "" {
		c.RippleEasing = d.RippleEasing
	}
	if c.RippleColor == (Color{}) {
		c.RippleColor = d.RippleColor
	}
	if c.MaxRipples <= 0 {
		c.MaxRipples = d.MaxRipples
	}
	return c
}

// CursorState is a snapshot of the custom cursor.
type CursorState struct {
	// Position is the cursor node's top-left corner in viewport coordinates.
	Position Vec2
	// Trail holds the trail nodes' top-left corners; index 0 is nearest.
	Trail [TrailLength]Vec2
	// HoverScale is the cursor's current scale: 1 at rest, up to
	// PointerConfig.HoverScale over interactive surfaces.
	HoverScale float64
	// Hovering reports whether the pointer is over an interactive surface.
	Hovering bool
}

// PointerController drives the custom cursor, its trail, card tilt and
// ripples for one scene. Create it with NewPointerController, then Install.
type PointerController struct {
	scene *Scene
	cfg   PointerConfig

	cursor *Node
	trail  [TrailLength]*Node

	installed bool
	hovering  bool
	hoverAnim *Handle

	handles []CallbackHandle
	pending []*Task

	tilted  map[*Node]*Handle
	rippled map[*Node]RippleMode
	live    map[*Node][]*Ripple
}

// NewPointerController returns a controller for s. Nothing is created or
// registered until Install.
func NewPointerController(s *Scene, cfg PointerConfig) *PointerController {
	return &PointerController{
		scene:   s,
		cfg:     cfg.withDefaults(),
		tilted:  make(map[*Node]*Handle),
		rippled: make(map[*Node]RippleMode),
		live:    make(map[*Node][]*Ripple),
	}
}

// Config returns the effective configuration.
func (p *PointerController) Config() PointerConfig {
	return p.cfg
}

// Install creates the cursor and trail nodes in the scene overlay and
// registers the pointer listeners. Calling it twice has no effect.
func (p *PointerController) Install() {
	if p.installed {
		return
	}
	p.installed = true

	for i := range p.trail {
		t := NewBox("cursor-trail", p.cfg.TrailSize, p.cfg.TrailSize, p.cfg.TrailColor)
		t.Interactable = false
		t.AddClass("cursor-trail")
		p.scene.overlay.AddChild(t)
		p.trail[i] = t
	}
	p.cursor = NewBox("cursor", p.cfg.CursorSize, p.cfg.CursorSize, p.cfg.CursorColor)
	p.cursor.Interactable = false
	p.cursor.AddClass("cursor")
	p.scene.overlay.AddChild(p.cursor)

	p.handles = append(p.handles,
		p.scene.OnPointerMove(p.onMove),
		p.scene.OnPointerEnter(p.onEnter),
		p.scene.OnPointerLeave(p.onLeave),
		p.scene.OnClick(p.onClick),
	)
	p.scene.debugf("pointer: controller installed")
}

// Dispose unregisters every listener, cancels pending trail updates, and
// removes the cursor, trail and live ripples. Tilted nodes are returned to
// neutral immediately.
func (p *PointerController) Dispose() {
	if !p.installed {
		return
	}
	p.installed = false
	for _, h := range p.handles {
		h.Remove()
	}
	p.handles = nil
	for _, t := range p.pending {
		t.Cancel()
	}
	p.pending = nil
	if p.hoverAnim != nil {
		p.hoverAnim.Cancel()
		p.hoverAnim = nil
	}
	p.cursor.Dispose()
	for i, t := range p.trail {
		t.Dispose()
		p.trail[i] = nil
	}
	for n, h := range p.tilted {
		if h != nil {
			h.Cancel()
		}
		if !n.disposed {
			n.RotateX, n.RotateY = 0, 0
			n.ScaleX, n.ScaleY = 1, 1
		}
	}
	clear(p.tilted)
	clear(p.rippled)
	for _, rs := range p.live {
		for _, r := range rs {
			r.dispose()
		}
	}
	clear(p.live)
	p.hovering = false
}

// Installed reports whether the controller is active.
func (p *PointerController) Installed() bool {
	return p.installed
}

// State returns a snapshot of the cursor. The zero value is returned when
// the controller is not installed.
func (p *PointerController) State() CursorState {
	if !p.installed {
		return CursorState{}
	}
	st := CursorState{
		Position:   Vec2{X: p.cursor.X, Y: p.cursor.Y},
		HoverScale: p.cursor.ScaleX,
		Hovering:   p.hovering,
	}
	for i, t := range p.trail {
		st.Trail[i] = Vec2{X: t.X, Y: t.Y}
	}
	return st
}

// PendingTrailUpdates returns the number of trail updates not yet applied.
func (p *PointerController) PendingTrailUpdates() int {
	n := 0
	for _, t := range p.pending {
		if !t.Done() {
			n++
		}
	}
	return n
}

// IsInteractiveSurface reports whether n or one of its ancestors is a
// button, a link, carries class "cursor-hover" or has Interactive set.
func IsInteractiveSurface(n *Node) bool {
	return n != nil && n.Closest(interactiveSurface) != nil
}

func interactiveSurface(n *Node) bool {
	return n.Interactive || n.Tag == "button" || n.Tag == "a" || n.HasClass("cursor-hover")
}

// --- Cursor ---

func (p *PointerController) onMove(ctx PointerContext) {
	p.sweep()
	x, y := ctx.ScreenX, ctx.ScreenY
	p.cursor.X = x - p.cfg.CursorOffset
	p.cursor.Y = y - p.cfg.CursorOffset

	p.prunePending()
	tx, ty := x-p.cfg.TrailOffset, y-p.cfg.TrailOffset
	for i, t := range p.trail {
		if i == 0 {
			t.X, t.Y = tx, ty
			continue
		}
		p.pending = append(p.pending, p.scene.After(time.Duration(i)*p.cfg.TrailDelay, func() {
			t.X, t.Y = tx, ty
		}))
	}

	if ctx.Node == nil {
		return
	}
	if card := ctx.Node.Closest(p.isTilted); card != nil {
		p.tilt(card, ComputeTilt(card.Bounds(), ctx.GlobalX, ctx.GlobalY, p.cfg.TiltDivisor, p.cfg.TiltScale))
	}
}

func (p *PointerController) prunePending() {
	kept := p.pending[:0]
	for _, t := range p.pending {
		if !t.Done() {
			kept = append(kept, t)
		}
	}
	clear(p.pending[len(kept):])
	p.pending = kept
}

func (p *PointerController) onEnter(ctx PointerContext) {
	p.sweep()
	p.refreshHover()
	if mode, ok := p.rippled[ctx.Node]; ok && mode == RippleOnHover {
		p.Ripple(ctx.Node, ctx.LocalX, ctx.LocalY)
	}
}

func (p *PointerController) onLeave(ctx PointerContext) {
	p.sweep()
	p.refreshHover()
	if _, ok := p.tilted[ctx.Node]; ok {
		p.tilt(ctx.Node, NeutralTilt)
	}
}

// sweep drops tilt, ripple and live-ripple entries whose nodes were
// disposed without being unbound.
func (p *PointerController) sweep() {
	for n := range p.tilted {
		if n.disposed {
			delete(p.tilted, n)
		}
	}
	for n := range p.rippled {
		if n.disposed {
			delete(p.rippled, n)
		}
	}
	for origin, rs := range p.live {
		if !origin.disposed {
			continue
		}
		for _, r := range rs {
			r.dispose()
		}
		delete(p.live, origin)
	}
}

// refreshHover scales the cursor when the pointer moves on or off an
// interactive surface. Enter and leave handlers run after the hovered chain
// has been updated, so Hovered is already the new target.
func (p *PointerController) refreshHover() {
	over := IsInteractiveSurface(p.scene.Hovered())
	if over == p.hovering {
		return
	}
	p.hovering = over
	scale := 1.0
	if over {
		scale = p.cfg.HoverScale
	}
	p.hoverAnim = p.scene.Animate(Tween{
		Targets:  One(p.cursor),
		Props:    map[string]Keyframes{"scale": To(scale)},
		Duration: p.cfg.HoverDuration,
		Easing:   p.cfg.HoverEasing,
	})
}

// --- Tilt ---

// EnableTilt makes n tilt toward the pointer while hovered and settle back
// to neutral on leave. The returned func disables it again.
func (p *PointerController) EnableTilt(n *Node) func() {
	if n == nil || n.disposed {
		p.scene.debugf("tilt: missing target")
		return func() {}
	}
	p.sweep()
	if _, ok := p.tilted[n]; !ok {
		p.tilted[n] = nil
	}
	return func() {
		if _, ok := p.tilted[n]; !ok {
			return
		}
		delete(p.tilted, n)
		if !n.disposed && (n.RotateX != 0 || n.RotateY != 0 || n.ScaleX != 1 || n.ScaleY != 1) {
			p.tilt(n, NeutralTilt)
		}
	}
}

func (p *PointerController) isTilted(n *Node) bool {
	_, ok := p.tilted[n]
	return ok
}

func (p *PointerController) tilt(n *Node, t Tilt) {
	h := p.scene.Animate(Tween{
		Targets:  One(n),
		Props:    t.props(),
		Duration: p.cfg.TiltDuration,
		Easing:   p.cfg.TiltEasing,
	})
	if _, ok := p.tilted[n]; ok && !n.disposed {
		p.tilted[n] = h
	}
}

// --- Ripple ---

// EnableRipple spawns ripples on n per mode. The returned func disables it.
func (p *PointerController) EnableRipple(n *Node, mode RippleMode) func() {
	if n == nil || n.disposed {
		p.scene.debugf("ripple: missing target")
		return func() {}
	}
	p.sweep()
	p.rippled[n] = mode
	return func() {
		if m, ok := p.rippled[n]; ok && m == mode {
			delete(p.rippled, n)
		}
	}
}

func (p *PointerController) onClick(ctx PointerContext) {
	p.sweep()
	if ctx.Node == nil {
		return
	}
	origin := ctx.Node.Closest(func(n *Node) bool {
		mode, ok := p.rippled[n]
		return ok && mode == RippleOnClick
	})
	if origin == nil {
		return
	}
	lx, ly := origin.WorldToLocal(ctx.GlobalX, ctx.GlobalY)
	p.Ripple(origin, lx, ly)
}

// Ripple spawns a ripple on origin centered at (x, y) in origin-local
// coordinates. Returns nil when origin is missing or disposed.
func (p *PointerController) Ripple(origin *Node, x, y float64) *Ripple {
	if origin == nil || origin.disposed {
		p.scene.debugf("ripple: missing origin")
		return nil
	}
	rs := p.live[origin][:0]
	for _, r := range p.live[origin] {
		if !r.Done() {
			rs = append(rs, r)
		}
	}
	for len(rs) >= p.cfg.MaxRipples {
		rs[0].dispose()
		rs = rs[1:]
	}
	r := spawnRipple(p.scene, origin, x, y, p.cfg, p.forget)
	p.live[origin] = append(rs, r)
	return r
}

// LiveRipples returns the number of ripples on origin that have not finished.
func (p *PointerController) LiveRipples(origin *Node) int {
	n := 0
	for _, r := range p.live[origin] {
		if !r.Done() {
			n++
		}
	}
	return n
}

// forget drops a finished ripple from the live set.
func (p *PointerController) forget(r *Ripple) {
	rs := p.live[r.Origin]
	for i, x := range rs {
		if x == r {
			rs = append(rs[:i], rs[i+1:]...)
			break
		}
	}
	if len(rs) == 0 {
		delete(p.live, r.Origin)
		return
	}
	p.live[r.Origin] = rs
}
