package glint

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction and trigger events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

const (
	defaultViewportW = 1280
	defaultViewportH = 720
)

// Scene owns the node tree, the viewport, the clock and every effect
// subsystem. It is not safe for concurrent use: all calls happen on the
// goroutine that runs Update/Tick.
type Scene struct {
	root     *Node
	overlay  *Node
	viewport *Viewport
	store    EntityStore
	debug    bool

	// ClearColor fills the screen before drawing.
	ClearColor Color
	// ScrollStep is the number of pixels one mouse wheel notch scrolls.
	ScrollStep float64

	clock    scheduler
	anim     *animator
	triggers *TriggerManager
	typing   *typewriters
	fieldCfg FieldConfig
	rng      *rand.Rand

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent
	script      *Script

	render renderer

	stats      debugStats
	statsSince time.Duration
}

// NewScene creates a new scene with a document root, a screen-space overlay
// root and a 1280x720 viewport.
func NewScene() *Scene {
	s := &Scene{
		root:     NewContainer("root"),
		overlay:  NewContainer("overlay"),
		viewport: newViewport(defaultViewportW, defaultViewportH),
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
	}
	s.root.Tag = "body"
	s.overlay.Tag = "overlay"
	s.overlay.Interactable = false
	s.anim = newAnimator(s.rng, s.debugf)
	s.triggers = newTriggerManager(s)
	s.typing = newTypewriters(s)
	return s
}

// Root returns the document root. Children live in document coordinates and
// scroll with the viewport.
func (s *Scene) Root() *Node {
	return s.root
}

// Overlay returns the screen-space root drawn above the document without
// scrolling. The custom cursor lives here.
func (s *Scene) Overlay() *Node {
	return s.overlay
}

// Viewport returns the scene's viewport.
func (s *Scene) Viewport() *Viewport {
	return s.viewport
}

// Triggers returns the scene's visibility trigger manager.
func (s *Scene) Triggers() *TriggerManager {
	return s.triggers
}

// Now returns the scene clock: total time passed to Tick/Update.
func (s *Scene) Now() time.Duration {
	return s.clock.now
}

// Seed replaces the scene's random source with a deterministic one.
func (s *Scene) Seed(seed uint64) {
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s.anim.rng = s.rng
}

// Rand returns the scene's random source.
func (s *Scene) Rand() *rand.Rand {
	return s.rng
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, missing
// targets and rejected tweens are reported, and pool stats are logged to
// stderr once per second of scene time.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// --- Loop ---

// Update advances the scene by one Ebitengine tick and reads the mouse.
// Call it from ebiten.Game.Update.
func (s *Scene) Update() {
	s.tick(tickInterval(ebiten.TPS(), ebiten.ActualTPS()), true)
}

// tickInterval returns the duration of one tick. Under ebiten.SyncWithFPS
// the TPS is negative, so the measured rate is used, or 60 before any
// measurement exists.
func tickInterval(tps int, actual float64) time.Duration {
	switch {
	case tps > 0:
		return time.Second / time.Duration(tps)
	case actual > 0:
		return time.Duration(float64(time.Second) / actual)
	}
	return time.Second / 60
}

// Tick advances the scene by dt without reading any input device. Injected
// pointer events are still processed. Tests and headless hosts drive the
// scene with Tick.
func (s *Scene) Tick(dt time.Duration) {
	s.tick(dt, false)
}

func (s *Scene) tick(dt time.Duration, readDevice bool) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.script != nil {
		s.script.step(s)
	}
	s.clock.advance(dt)
	s.viewport.update(dt)
	s.anim.update(dt)
	s.refreshTransforms()

	if !s.processInjectedInput() && readDevice {
		s.processMousePointer()
	}

	s.triggers.sample(s.viewport.ObservedBounds())
	s.triggers.deliver()

	if s.debug {
		s.stats.ticks++
		s.stats.tickTime += time.Since(t0)
		if s.clock.now-s.statsSince >= debugStatsInterval {
			s.stats.handles = s.anim.count()
			s.stats.tasks = s.clock.pending()
			s.stats.triggers = s.triggers.Len()
			s.stats.nodes = countNodes(s.root) + countNodes(s.overlay)
			s.debugLog(s.stats)
			s.stats = debugStats{}
			s.statsSince = s.clock.now
		}
	}
}

// refreshTransforms recomputes world transforms for both roots. The overlay
// is screen space; the document root is in document space.
func (s *Scene) refreshTransforms() {
	updateWorldTransform(s.root, identityTransform, 1)
	updateWorldTransform(s.overlay, identityTransform, 1)
}

// --- Timers ---

// After runs fn once, d from now on the scene clock.
func (s *Scene) After(d time.Duration, fn func()) *Task {
	return s.clock.after(d, fn)
}

// Every runs fn every interval until it returns false or the task is
// cancelled.
func (s *Scene) Every(interval time.Duration, fn func() bool) *Task {
	return s.clock.every(interval, fn)
}

// --- Effects ---

// Resolve returns the nodes t names, in resolution order. Selectors search
// the document root, then the overlay.
func (s *Scene) Resolve(t Targets) []*Node {
	nodes := t.resolve(s.root)
	if t.selector != "" {
		nodes = dedupe(append(nodes, Query(s.overlay, t.selector)...))
	}
	return nodes
}

// Animate schedules tw and returns its handle. A tween whose targets resolve
// to nothing, or whose duration is not positive, is a no-op: the returned
// handle is already done and OnComplete never fires.
func (s *Scene) Animate(tw Tween) *Handle {
	return s.anim.animate(tw, s.Resolve(tw.Targets))
}

// Arm registers a one-shot visibility trigger. See TriggerManager.Arm.
func (s *Scene) Arm(target *Node, action func(), threshold float64) *Trigger {
	return s.triggers.Arm(target, action, threshold)
}

// ActiveTweens returns the number of live tween handles.
func (s *Scene) ActiveTweens() int {
	return s.anim.count()
}

// PendingTasks returns the number of scheduled timers not yet done.
func (s *Scene) PendingTasks() int {
	return s.clock.pending()
}

// --- ECS bridge ---

func (s *Scene) emitTriggerEvent(n *Node) {
	if s.store == nil || n.EntityID == 0 {
		return
	}
	b := n.Bounds()
	s.store.EmitEvent(InteractionEvent{
		Type:     EventTrigger,
		EntityID: n.EntityID,
		GlobalX:  b.X,
		GlobalY:  b.Y,
	})
}
