package coollex

import (
	"slices"
	"testing"
)

func TestInitialState(t *testing.T) {
	samples := []struct {
		zeros, ones int
		want        string
	}{
		{3, 2, "11000"},
		{0, 9, "111111111"},
		{3, 1, "1000"},
		{0, 1, "1"},
	}
	for _, sample := range samples {
		g := NewGenerator(sample.zeros, sample.ones)
		if s := g.String(); s != sample.want {
			t.Errorf("initial state for zeros=%d ones=%d: got %s, want %s",
				sample.zeros, sample.ones, s, sample.want)
		}
	}
}

func TestAdvanceTrajectory(t *testing.T) {
	want := []string{
		"11000", "01100", "10100", "01010", "00110",
		"10010", "01001", "00101", "00011", "10001",
	}
	g := NewGenerator(3, 2)
	for i, s := range want {
		if got := g.String(); got != s {
			t.Errorf("state %d: got %s, want %s", i, got, s)
		}
		if i+1 < len(want) {
			if !g.HasMore() {
				t.Fatalf("exhausted after %d states, want %d", i+1, len(want))
			}
			g.Advance()
		}
	}
	if g.HasMore() {
		t.Error("generator still has more after the last combination")
	}
}

func TestSelectedIndicesView(t *testing.T) {
	g := NewGenerator(3, 2)
	if got := slices.Collect(g.SelectedIndices()); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("initial indices: got %v, want [0 1]", got)
	}
	g.Advance()
	if got := slices.Collect(g.SelectedIndices()); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("indices after one advance: got %v, want [1 2]", got)
	}
}

// Each advance relocates exactly one marker to the front of the traversal:
// the new state is the old one with a single character deleted and prepended.
func TestAdvanceRelocatesOneMarker(t *testing.T) {
	samples := [][2]int{
		{3, 2}, {6, 4}, {9, 3},
	}
	for _, sample := range samples {
		zeros, ones := sample[0], sample[1]
		g := NewGenerator(zeros, ones)
		prev := g.String()
		for g.HasMore() {
			g.Advance()
			curr := g.String()
			if !isSingleRelocation(prev, curr) {
				t.Fatalf("advance %s -> %s is not a single marker relocation", prev, curr)
			}
			prev = curr
		}
	}
}

func isSingleRelocation(s, t string) bool {
	for j := 0; j < len(s); j++ {
		if t == s[j:j+1]+s[:j]+s[j+1:] {
			return true
		}
	}
	return false
}

func TestSingleElementChain(t *testing.T) {
	g := NewGenerator(0, 1)
	if g.HasMore() {
		t.Error("chain of a single selected marker should be exhausted at once")
	}
	if got := slices.Collect(g.SelectedIndices()); !slices.Equal(got, []int{0}) {
		t.Errorf("indices: got %v, want [0]", got)
	}
}
