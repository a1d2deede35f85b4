package glint

import "time"

// Class names the page presets look for.
const (
	ClassHeroText        = "hero-text"
	ClassFloatingShape   = "floating-shape"
	ClassCTAButton       = "cta-button"
	ClassSkillIcon       = "skill-icon"
	ClassAnimateOnScroll = "animate-on-scroll"
	ClassStaggerOnScroll = "stagger-on-scroll"
)

// FadeInUp rises targets 50px into place while fading them in.
func FadeInUp(targets Targets, delay time.Duration) Tween {
	return Tween{
		Targets: targets,
		Props: map[string]Keyframes{
			"translateY": FromTo(50, 0),
			"opacity":    FromTo(0, 1),
		},
		Duration: 1000 * time.Millisecond,
		Delay:    delay,
		Easing:   EaseOutExpo,
	}
}

// StaggerCards rises, fades and grows targets into place one after another,
// 200ms apart, the first starting after delay.
func StaggerCards(targets Targets, delay time.Duration) Tween {
	return Tween{
		Targets: targets,
		Props: map[string]Keyframes{
			"translateY": FromTo(100, 0),
			"opacity":    FromTo(0, 1),
			"scale":      FromTo(0.8, 1),
		},
		Duration: 800 * time.Millisecond,
		Stagger:  StaggerFrom(delay, 200*time.Millisecond),
		Easing:   EaseOutBack,
	}
}

// HeroEntrance fades the hero text lines up in sequence.
func HeroEntrance() Tween {
	tw := FadeInUp(Select("."+ClassHeroText), 0)
	tw.Stagger = Stagger(200 * time.Millisecond)
	return tw
}

// FloatingShapes returns the two endless tweens of the hero backdrop: a slow
// full turn on both 3D axes and a staggered vertical bob.
func FloatingShapes() []Tween {
	shapes := Select("." + ClassFloatingShape)
	return []Tween{
		{
			Targets: shapes,
			Props: map[string]Keyframes{
				"rotateX": To(360),
				"rotateY": To(360),
			},
			Duration: 20 * time.Second,
			Loop:     LoopForever,
			Easing:   Linear,
		},
		{
			Targets:   shapes,
			Props:     map[string]Keyframes{"translateY": FromTo(-20, 20)},
			Duration:  4 * time.Second,
			Direction: Alternate,
			Loop:      LoopForever,
			Easing:    EaseInOutSine,
			Stagger:   Stagger(500 * time.Millisecond),
		},
	}
}

// CTAButtons pops the call-to-action buttons in.
func CTAButtons() Tween {
	return Tween{
		Targets: Select("." + ClassCTAButton),
		Props: map[string]Keyframes{
			"scale":   FromTo(0, 1),
			"opacity": FromTo(0, 1),
		},
		Duration: 800 * time.Millisecond,
		Stagger:  Stagger(200 * time.Millisecond),
		Easing:   EaseOutBack,
	}
}

// SkillIcons rocks the skill icons through a full turn and back, forever.
func SkillIcons() Tween {
	return Tween{
		Targets:   Select("." + ClassSkillIcon),
		Props:     map[string]Keyframes{"rotate": To(360)},
		Duration:  2 * time.Second,
		Loop:      LoopForever,
		Direction: Alternate,
		Easing:    EaseInOutSine,
		Stagger:   Stagger(100 * time.Millisecond),
	}
}

// RevealOnScroll arms a visibility trigger on every node under root with
// class "animate-on-scroll" (fade in up) or "stagger-on-scroll" (stagger its
// children). Each fires once. Targets start hidden so nothing flashes before
// its trigger fires. Returns the armed triggers in document order.
func RevealOnScroll(s *Scene, root *Node, cfg RevealConfig) []*Trigger {
	if cfg.Threshold <= 0 {
		cfg.Threshold = 0.1
	}
	var triggers []*Trigger
	for _, n := range Query(root, "."+ClassAnimateOnScroll+", ."+ClassStaggerOnScroll) {
		if n.HasClass(ClassAnimateOnScroll) {
			n.Alpha = 0
			triggers = append(triggers, s.Arm(n, func() {
				tw := FadeInUp(One(n), 0)
				if cfg.Duration > 0 {
					tw.Duration = cfg.Duration
				}
				s.Animate(tw)
			}, cfg.Threshold))
			continue
		}
		for _, c := range n.children {
			c.Alpha = 0
		}
		triggers = append(triggers, s.Arm(n, func() {
			tw := StaggerCards(ChildrenOf(n), 0)
			if cfg.Stagger > 0 {
				tw.Stagger = StaggerFrom(0, cfg.Stagger)
			}
			s.Animate(tw)
		}, cfg.Threshold))
	}
	return triggers
}
