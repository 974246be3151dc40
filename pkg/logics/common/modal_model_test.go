package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func TestKripkeModelReadsValuationsAndAccess(t *testing.T) {
	b := tableau.NewBranch(nil)
	a := lex.Atomic{Idx: 0}
	b.Append(WorldNode(a, 0))
	b.Append(AccessNode(0, 1))
	b.Append(WorldNode(lex.Negate(a), 1))

	m := NewKripkeModel()
	require.NoError(t, m.ReadBranch(b))

	assert.True(t, m.Value(0, a))
	assert.False(t, m.Value(1, a))
	assert.True(t, m.Access[0][1])
}

func TestKripkeModelNecessityQuantifiesOverAccessible(t *testing.T) {
	b := tableau.NewBranch(nil)
	a := lex.Atomic{Idx: 0}
	b.Append(AccessNode(0, 1))
	b.Append(WorldNode(a, 1))

	m := NewKripkeModel()
	require.NoError(t, m.ReadBranch(b))

	nec := lex.MustOperated(lex.Necessity, a)
	assert.True(t, m.Value(0, nec))
}

func TestKripkeModelNecessityFailsWhenSomeSuccessorFalsifies(t *testing.T) {
	b := tableau.NewBranch(nil)
	a := lex.Atomic{Idx: 0}
	b.Append(AccessNode(0, 1))
	b.Append(AccessNode(0, 2))
	b.Append(WorldNode(a, 1))
	// world 2 leaves a unasserted: unseen atomics default false.

	m := NewKripkeModel()
	require.NoError(t, m.ReadBranch(b))

	nec := lex.MustOperated(lex.Necessity, a)
	assert.False(t, m.Value(0, nec))
}

func TestKripkeModelIsCountermodelToChecksWorldZero(t *testing.T) {
	b := tableau.NewBranch(nil)
	a := lex.Atomic{Idx: 0}
	bAtom := lex.Atomic{Idx: 1}
	b.Append(WorldNode(a, 0))
	b.Append(WorldNode(lex.Negate(bAtom), 0))

	m := NewKripkeModel()
	require.NoError(t, m.ReadBranch(b))

	arg := lex.NewArgument(bAtom, []lex.Sentence{a}, "")
	assert.True(t, m.IsCountermodelTo(arg))
}
