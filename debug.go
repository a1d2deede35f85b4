package glint

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut is where debug diagnostics go. Tests swap it.
var debugOut io.Writer = os.Stderr

// debugStats holds per-interval counters. Only populated when Scene.debug is true.
type debugStats struct {
	ticks    int
	tickTime time.Duration
	handles  int
	tasks    int
	triggers int
	nodes    int
}

// debugStatsInterval is how much scene time passes between stats lines.
const debugStatsInterval = time.Second

// debugf prints a diagnostic line to stderr when debug mode is on.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[glint] "+format+"\n", args...)
}

// debugLog prints timing and pool stats.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	avg := time.Duration(0)
	if stats.ticks > 0 {
		avg = stats.tickTime / time.Duration(stats.ticks)
	}
	_, _ = fmt.Fprintf(debugOut,
		"[glint] ticks: %d | avg tick: %v | tweens: %d | timers: %d | triggers: %d | nodes: %d\n",
		stats.ticks, avg, stats.handles, stats.tasks, stats.triggers, stats.nodes)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("glint debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[glint] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
// Repeated particle fields on one container show up here first.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[glint] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// countNodes returns the number of nodes in the subtree rooted at n.
func countNodes(n *Node) int {
	count := 1
	for _, c := range n.children {
		count += countNodes(c)
	}
	return count
}
