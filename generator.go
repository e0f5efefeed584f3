package coollex

import (
	"iter"
	"strings"
)

// Generator is the stateful cool-lex machine over a chain of binary markers,
// one marker per element, selected markers forming the current combination.
// The chain lives in an arena: marker i's successor is next[i], and the
// reserved id term (one past the arena) closes the chain. Advancing relocates
// exactly one marker, so a transition rewrites two successor ids and nothing
// else.
//
// The zero value is not usable; build one with NewGenerator.
type Generator struct {
	selected []bool
	next     []int

	head  int // marker treated as position 0 of the traversal
	pivot int // marker driving the next transition
	term  int // reserved successor id marking the chain end
}

// NewGenerator builds a chain of ones selected markers followed by zeros
// unselected ones. That layout is the first combination in cool-lex order,
// so the generator starts already positioned on it. ones must be at least 1;
// Combinations screens out k = 0 before getting here.
func NewGenerator(zeros, ones int) *Generator {
	n := zeros + ones
	g := &Generator{
		selected: make([]bool, n),
		next:     make([]int, n),
		pivot:    ones - 1,
		term:     n,
	}
	for i := 0; i < ones; i++ {
		g.selected[i] = true
	}
	for i := 0; i < n; i++ {
		g.next[i] = i + 1
	}
	return g
}

// HasMore reports whether Advance may be called again.
func (g *Generator) HasMore() bool {
	return g.next[g.pivot] != g.term
}

// Advance moves to the next combination in cool-lex order: the pivot's
// successor is spliced out of the chain and relinked as the new head, then
// the pivot follows it there when the new head is unselected and the head's
// successor selected. The caller must check HasMore first; advancing an
// exhausted generator is a caller error and faults.
func (g *Generator) Advance() {
	y := g.next[g.pivot]
	g.next[g.pivot] = g.next[y]
	g.next[y] = g.head
	g.head = y

	if !g.selected[g.head] && g.selected[g.next[g.head]] {
		g.pivot = g.next[g.head]
	}
}

// SelectedIndices returns a lazy view of the positions currently selected, in
// ascending traversal order from the head, numbering positions from 0. The
// view reads the live chain: consume it before the next Advance, or derive a
// fresh one after.
func (g *Generator) SelectedIndices() iter.Seq[int] {
	return func(yield func(int) bool) {
		i := 0
		for curr := g.head; curr != g.term; curr = g.next[curr] {
			if g.selected[curr] && !yield(i) {
				return
			}
			i++
		}
	}
}

// String renders the current state as '0'/'1' characters in traversal order
// from the head, one per marker.
func (g *Generator) String() string {
	var b strings.Builder
	b.Grow(len(g.selected))
	for curr := g.head; curr != g.term; curr = g.next[curr] {
		if g.selected[curr] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
