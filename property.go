package glint

import (
	"math"
	"sort"
)

// property reads and writes one animatable value on a Node. channels names
// the underlying fields the property writes, for ownership tracking.
type property struct {
	get      func(*Node) float64
	set      func(*Node, float64)
	channels []string
}

var properties = map[string]property{
	"x": {
		get:      func(n *Node) float64 { return n.X },
		set:      func(n *Node, v float64) { n.X = v },
		channels: []string{"x"},
	},
	"y": {
		get:      func(n *Node) float64 { return n.Y },
		set:      func(n *Node, v float64) { n.Y = v },
		channels: []string{"y"},
	},
	"width": {
		get:      func(n *Node) float64 { return n.Width },
		set:      func(n *Node, v float64) { n.Width = v },
		channels: []string{"width"},
	},
	"height": {
		get:      func(n *Node) float64 { return n.Height },
		set:      func(n *Node, v float64) { n.Height = v },
		channels: []string{"height"},
	},
	"translateX": {
		get:      func(n *Node) float64 { return n.TranslateX },
		set:      func(n *Node, v float64) { n.TranslateX = v },
		channels: []string{"translateX"},
	},
	"translateY": {
		get:      func(n *Node) float64 { return n.TranslateY },
		set:      func(n *Node, v float64) { n.TranslateY = v },
		channels: []string{"translateY"},
	},
	"scale": {
		get:      func(n *Node) float64 { return n.ScaleX },
		set:      func(n *Node, v float64) { n.ScaleX, n.ScaleY = v, v },
		channels: []string{"scaleX", "scaleY"},
	},
	"scaleX": {
		get:      func(n *Node) float64 { return n.ScaleX },
		set:      func(n *Node, v float64) { n.ScaleX = v },
		channels: []string{"scaleX"},
	},
	"scaleY": {
		get:      func(n *Node) float64 { return n.ScaleY },
		set:      func(n *Node, v float64) { n.ScaleY = v },
		channels: []string{"scaleY"},
	},
	// rotate is in degrees; Node.Rotation is stored in radians.
	"rotate": {
		get:      func(n *Node) float64 { return n.Rotation * 180 / math.Pi },
		set:      func(n *Node, v float64) { n.Rotation = v * math.Pi / 180 },
		channels: []string{"rotate"},
	},
	"rotateX": {
		get:      func(n *Node) float64 { return n.RotateX },
		set:      func(n *Node, v float64) { n.RotateX = v },
		channels: []string{"rotateX"},
	},
	"rotateY": {
		get:      func(n *Node) float64 { return n.RotateY },
		set:      func(n *Node, v float64) { n.RotateY = v },
		channels: []string{"rotateY"},
	},
	"opacity": {
		get:      func(n *Node) float64 { return n.Alpha },
		set:      func(n *Node, v float64) { n.Alpha = v },
		channels: []string{"opacity"},
	},
}

// PropertyNames returns the animatable property names, sorted.
func PropertyNames() []string {
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetProperty reads a named property from n. ok is false for unknown names.
func GetProperty(n *Node, name string) (v float64, ok bool) {
	p, ok := properties[name]
	if !ok {
		return 0, false
	}
	return p.get(n), true
}

// SetProperty writes a named property on n. Unknown names are ignored and
// reported as false.
func SetProperty(n *Node, name string, v float64) bool {
	p, ok := properties[name]
	if !ok {
		return false
	}
	p.set(n, v)
	return true
}
