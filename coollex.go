// Package coollex generates k-combinations of n elements in cool-lex order,
// the minimal-change ordering of Ruskey and Williams where each combination
// is reached from the previous one by relocating a single element.
//
// See http://webhome.cs.uvic.ca/~ruskey/Publications/Coollex/CoolComb.html,
// section 3.2, Iterative Algorithms.
package coollex

import (
	"fmt"
	"iter"
)

// Combinations returns the k-combinations of {0, ..., n-1} in cool-lex order,
// each as a lazy ascending sequence of indices. Panics if n < k. For k = 0
// the sequence is empty: this generator does not enumerate the empty
// combination.
//
// Each inner sequence is a single-pass view of the generator's current state
// and must be consumed before the outer sequence is pulled again. Stopping
// the outer iteration early is always safe.
func Combinations(n, k int) iter.Seq[iter.Seq[int]] {
	if n < k {
		panic(fmt.Sprintf("coollex: cannot combine %d of %d elements", k, n))
	}
	return func(yield func(iter.Seq[int]) bool) {
		if k == 0 {
			return
		}
		it := combIter{gen: NewGenerator(n-k, k)}
		for it.next() {
			if !yield(it.gen.SelectedIndices()) {
				return
			}
		}
	}
}

// combIter adapts the generator, which is constructed already positioned at
// the first combination, to pull-based iteration: the first pull yields the
// initial state without advancing, later pulls advance first.
type combIter struct {
	gen     *Generator
	started bool
}

func (it *combIter) next() bool {
	if !it.started {
		it.started = true
		return true
	}
	if !it.gen.HasMore() {
		return false
	}
	it.gen.Advance()
	return true
}

// Choose yields each k-combination of elems as a freshly allocated slice, in
// cool-lex order. Same contract as Combinations: panics if k exceeds
// len(elems), yields nothing for k = 0.
func Choose[T any](elems []T, k int) iter.Seq[[]T] {
	combs := Combinations(len(elems), k)
	return func(yield func([]T) bool) {
		for comb := range combs {
			picked := make([]T, 0, k)
			for i := range comb {
				picked = append(picked, elems[i])
			}
			if !yield(picked) {
				return
			}
		}
	}
}
