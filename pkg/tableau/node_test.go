package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitrdm/gotableaux/pkg/lex"
)

func TestNodeSentenceDesignatedWorld(t *testing.T) {
	n := NewNode(map[string]any{
		PropSentence:   lex.Atomic{Idx: 0},
		PropDesignated: true,
		PropWorld:      2,
	})
	s, ok := n.Sentence()
	assert.True(t, ok)
	assert.True(t, lex.Equal(s, lex.Atomic{Idx: 0}))

	d, ok := n.Designated()
	assert.True(t, ok)
	assert.True(t, d)

	w, ok := n.World()
	assert.True(t, ok)
	assert.Equal(t, 2, w)
}

func TestNodeCloneOverridesOnlyGivenKeys(t *testing.T) {
	n := NewNode(map[string]any{
		PropSentence:   lex.Atomic{Idx: 0},
		PropDesignated: true,
	})
	cloned := n.CloneProps(map[string]any{PropSentence: lex.Atomic{Idx: 1}})
	s := cloned[PropSentence].(lex.Sentence)
	assert.True(t, lex.Equal(s, lex.Atomic{Idx: 1}))
	assert.Equal(t, true, cloned[PropDesignated])

	// The original node's props are untouched.
	orig, _ := n.Sentence()
	assert.True(t, lex.Equal(orig, lex.Atomic{Idx: 0}))
}

func TestNodeIsAccessNode(t *testing.T) {
	n := NewNode(map[string]any{PropWorld1: 0, PropWorld2: 1})
	assert.True(t, n.IsAccessNode())

	n2 := NewNode(map[string]any{PropSentence: lex.Atomic{Idx: 0}})
	assert.False(t, n2.IsAccessNode())
}

func TestNodeWorldsUnion(t *testing.T) {
	n := NewNode(map[string]any{PropWorld: 0, PropWorld1: 1, PropWorld2: 2})
	assert.ElementsMatch(t, []int{0, 1, 2}, n.Worlds())
}

func TestNodeHasMatchesSentenceEquality(t *testing.T) {
	n := NewNode(map[string]any{PropSentence: lex.Atomic{Idx: 0}})
	assert.True(t, n.Has(map[string]any{PropSentence: lex.Atomic{Idx: 0}}))
	assert.False(t, n.Has(map[string]any{PropSentence: lex.Atomic{Idx: 1}}))
}
