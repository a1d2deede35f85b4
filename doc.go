// Package glint is a retained-mode visual-effects runtime for [Ebitengine].
//
// glint animates a tree of boxes and text in response to time, viewport
// visibility and pointer input: keyframed tweens with easing, stagger, loops
// and alternate direction; one-shot scroll-reveal triggers; ambient particle
// fields; a custom cursor with a trail; card tilt; click ripples; and a
// typewriter for text.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := glint.NewScene()
//	// ... add nodes ...
//	glint.Run(scene, glint.RunConfig{
//		Title: "My Page", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly:
//
//	type Game struct{ scene *glint.Scene }
//
//	func (g *Game) Update() error         { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return 1280, 720 }
//
// # Element tree
//
// Every element is a [Node] with a tag, classes, a layout box and transform
// properties. Nodes form a tree rooted at [Scene.Root], in document
// coordinates; the [Viewport] scrolls over it. [Scene.Overlay] is a second
// root in screen coordinates for decoration such as the cursor.
//
//	card := glint.NewElement("article", "card", "project-card")
//	card.SetPosition(80, 900)
//	card.SetSize(320, 280)
//	scene.Root().AddChild(card)
//
// # Tweens
//
// [Scene.Animate] takes a [Tween] and returns a [Handle]. Targets are a
// selector ([Select]), a node ([One]) or a list ([Many]):
//
//	scene.Animate(glint.Tween{
//		Targets:  glint.Select(".hero-text"),
//		Props:    map[string]glint.Keyframes{"translateY": glint.FromTo(50, 0), "opacity": glint.FromTo(0, 1)},
//		Duration: time.Second,
//		Stagger:  glint.Stagger(200 * time.Millisecond),
//		Easing:   glint.EaseOutExpo,
//	})
//
// One tween owns each (node, property) at a time: a newer tween on the same
// property takes over and the older one stops writing it.
//
// # Time
//
// Scene time advances only through [Scene.Update] (one Ebitengine tick) or
// [Scene.Tick]. Timers ([Scene.After], [Scene.Every], [Scene.Type]) return a
// cancellable [Task]. Within a tick: timers fire, tweens sample, transforms
// refresh, one pointer event is processed, visibility is sampled and
// trigger actions run.
//
// # Effects
//
//   - [Scene.Arm] and [RevealOnScroll]: visibility triggers.
//   - [Scene.CreateField]: ambient particles.
//   - [NewPointerController]: cursor, trail, tilt and ripples.
//   - [Scene.Type]: typewriter text.
//
// Effects are configured with [Config], loadable from YAML with
// [LoadConfig]. [Scene.SetDebugMode] prints diagnostics to stderr.
//
// The scene is not safe for concurrent use.
//
// [Ebitengine]: https://ebitengine.org
package glint
