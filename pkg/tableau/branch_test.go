package tableau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
)

func TestBranchAppendUpdatesCaches(t *testing.T) {
	b := NewBranch(nil)
	pred := lex.NewPredicate(0, 0, 1)
	c := lex.Constant{Idx: 0}
	s, err := lex.NewPredicated(pred, c)
	require.NoError(t, err)

	b.Append(map[string]any{PropSentence: s})
	assert.Len(t, b.Constants(), 1)
	assert.Len(t, b.Predicates(), 1)
	assert.Equal(t, 1, b.Len())
}

func TestBranchTickIsIdempotent(t *testing.T) {
	b := NewBranch(nil)
	n := b.Append(map[string]any{PropSentence: lex.Atomic{Idx: 0}})
	assert.False(t, b.IsTicked(n))
	b.Tick(n)
	b.Tick(n)
	assert.True(t, b.IsTicked(n))
	assert.Equal(t, 0, n.TickedStep())
}

func TestBranchCloseAppendsFlagNode(t *testing.T) {
	b := NewBranch(nil)
	b.Append(map[string]any{PropSentence: lex.Atomic{Idx: 0}})
	b.Close(1)
	assert.True(t, b.Closed())
	assert.Equal(t, 1, b.ClosedStep())
	last := b.Nodes()[len(b.Nodes())-1]
	flag, _ := last.Props[PropIsFlag].(bool)
	assert.True(t, flag)

	// Closing twice is a no-op.
	b.Close(2)
	assert.Equal(t, 1, b.ClosedStep())
}

func TestBranchNewWorldIncrements(t *testing.T) {
	b := NewBranch(nil)
	assert.Equal(t, 0, b.NewWorld())
	b.Append(map[string]any{PropSentence: lex.Atomic{Idx: 0}, PropWorld: 0})
	assert.Equal(t, 1, b.NewWorld())
}

func TestBranchNewConstantAvoidsExisting(t *testing.T) {
	b := NewBranch(nil)
	pred := lex.NewPredicate(0, 0, 1)
	s, err := lex.NewPredicated(pred, lex.Constant{Idx: 0})
	require.NoError(t, err)
	b.Append(map[string]any{PropSentence: s})

	c := b.NewConstant(5)
	assert.NotEqual(t, lex.Constant{Idx: 0}, c)
}

func TestBranchCopyIsIndependent(t *testing.T) {
	b := NewBranch(nil)
	b.Append(map[string]any{PropSentence: lex.Atomic{Idx: 0}})
	cp := b.Copy()

	cp.Append(map[string]any{PropSentence: lex.Atomic{Idx: 1}})
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, 2, cp.Len())
	assert.Same(t, b, cp.Parent())
	assert.Same(t, b.Origin(), cp.Origin())
}

func TestBranchFindHonoursTickedFilter(t *testing.T) {
	b := NewBranch(nil)
	n := b.Append(map[string]any{PropSentence: lex.Atomic{Idx: 0}})
	ticked := false
	assert.NotNil(t, b.Find(map[string]any{PropSentence: lex.Atomic{Idx: 0}}, &ticked))
	b.Tick(n)
	assert.Nil(t, b.Find(map[string]any{PropSentence: lex.Atomic{Idx: 0}}, &ticked))
}

func TestBranchHasAccess(t *testing.T) {
	b := NewBranch(nil)
	assert.False(t, b.HasAccess(0, 1))
	b.Append(map[string]any{PropWorld1: 0, PropWorld2: 1})
	assert.True(t, b.HasAccess(0, 1))
}
