package glint

import "strings"

// Targets names the nodes a tween or query applies to. Build one with
// Select, One or Many.
type Targets struct {
	selector string
	nodes    []*Node
}

// Select targets every node under the scene root matching selector.
// Supported forms: "tag", ".class", "#name", "tag.class" and
// comma-separated lists of those.
func Select(selector string) Targets {
	return Targets{selector: selector}
}

// One targets a single node.
func One(n *Node) Targets {
	return Targets{nodes: []*Node{n}}
}

// Many targets an explicit list of nodes, in the given order.
func Many(nodes ...*Node) Targets {
	return Targets{nodes: nodes}
}

// ChildrenOf targets the current children of n, in order.
func ChildrenOf(n *Node) Targets {
	if n == nil {
		return Targets{}
	}
	return Targets{nodes: append([]*Node(nil), n.children...)}
}

// IsZero reports whether no selector or node was given.
func (t Targets) IsZero() bool {
	return t.selector == "" && len(t.nodes) == 0
}

// resolve returns the concrete ordered target list. Selector matches are in
// document order (depth-first pre-order). Nil, disposed and duplicate nodes
// are dropped.
func (t Targets) resolve(root *Node) []*Node {
	var out []*Node
	if t.selector != "" {
		out = Query(root, t.selector)
	}
	for _, n := range t.nodes {
		if n == nil || n.disposed {
			continue
		}
		out = append(out, n)
	}
	return dedupe(out)
}

func dedupe(nodes []*Node) []*Node {
	if len(nodes) < 2 {
		return nodes
	}
	seen := make(map[*Node]struct{}, len(nodes))
	out := nodes[:0]
	for _, n := range nodes {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Query returns all descendants of root (root included) matching selector,
// in document order.
func Query(root *Node, selector string) []*Node {
	if root == nil || root.disposed {
		return nil
	}
	var parts []simpleSelector
	for _, s := range strings.Split(selector, ",") {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, parseSelector(s))
		}
	}
	if len(parts) == 0 {
		return nil
	}
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, p := range parts {
			if p.matches(n) {
				out = append(out, n)
				break
			}
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
	return out
}

// Matches reports whether n matches selector.
func (n *Node) Matches(selector string) bool {
	for _, s := range strings.Split(selector, ",") {
		if s = strings.TrimSpace(s); s != "" && parseSelector(s).matches(n) {
			return true
		}
	}
	return false
}

// simpleSelector is a parsed "tag#name.class1.class2" compound.
type simpleSelector struct {
	tag     string
	name    string
	classes []string
	// none is set when parsing found no tag, name or class; it matches nothing.
	none bool
}

func parseSelector(s string) simpleSelector {
	var sel simpleSelector
	// Split on '.' and '#' while remembering which marker preceded each part.
	marker := byte(0)
	start := 0
	flush := func(end int) {
		part := s[start:end]
		if part == "" {
			return
		}
		switch marker {
		case '.':
			sel.classes = append(sel.classes, part)
		case '#':
			sel.name = part
		default:
			sel.tag = part
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == '#' {
			flush(i)
			marker = s[i]
			start = i + 1
		}
	}
	flush(len(s))
	sel.none = sel.tag == "" && sel.name == "" && len(sel.classes) == 0
	return sel
}

func (s simpleSelector) matches(n *Node) bool {
	if s.none {
		return false
	}
	if s.tag != "" && s.tag != "*" && n.Tag != s.tag {
		return false
	}
	if s.name != "" && n.Name != s.name {
		return false
	}
	for _, c := range s.classes {
		if !n.HasClass(c) {
			return false
		}
	}
	return true
}
