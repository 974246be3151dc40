package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func TestNecessityPropagatesToVisibleWorlds(t *testing.T) {
	b := tableau.NewBranch(nil)
	a := lex.Atomic{Idx: 0}
	nec := lex.MustOperated(lex.Necessity, a)
	b.Append(WorldNode(nec, 0))
	b.Append(AccessNode(0, 1))

	r := NewNecessity()
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	last := b.Nodes()[len(b.Nodes())-1]
	s, _ := last.Sentence()
	w, _ := last.World()
	assert.True(t, lex.Equal(s, a))
	assert.Equal(t, 1, w)

	// Re-scanning does not propose the same (node, world) pair again.
	assert.Empty(t, r.GetTargets(nil, b))
}

func TestNegatedPossibilityRewritesToNecessityOfNegation(t *testing.T) {
	b := tableau.NewBranch(nil)
	a := lex.Atomic{Idx: 0}
	poss := lex.MustOperated(lex.Possibility, a)
	b.Append(WorldNode(lex.Negate(poss), 0))

	r := NewNegatedPossibility()
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	last := b.Nodes()[len(b.Nodes())-1]
	s, _ := last.Sentence()
	op, ok := s.(lex.Operated)
	require.True(t, ok)
	assert.Equal(t, lex.Necessity, op.Op)
}

func TestNegatedNecessityRewritesToPossibilityOfNegation(t *testing.T) {
	b := tableau.NewBranch(nil)
	a := lex.Atomic{Idx: 0}
	nec := lex.MustOperated(lex.Necessity, a)
	b.Append(WorldNode(lex.Negate(nec), 0))

	r := NewNegatedNecessity()
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	last := b.Nodes()[len(b.Nodes())-1]
	s, _ := last.Sentence()
	op, ok := s.(lex.Operated)
	require.True(t, ok)
	assert.Equal(t, lex.Possibility, op.Op)
}

func TestPossibilityWitnessesFreshWorldAndTicks(t *testing.T) {
	tab := tableau.New(tableau.LogicDef{Name: "T"}, lex.Argument{}, tableau.Options{}, nil)
	b := tableau.NewBranch(tab)
	a := lex.Atomic{Idx: 0}
	poss := lex.MustOperated(lex.Possibility, a)
	n := b.Append(WorldNode(poss, 0))

	r := NewPossibility()
	targets := r.GetTargets(tab, b)
	require.Len(t, targets, 1)
	r.Apply(tab, targets[0])

	assert.True(t, b.IsTicked(n))
	assert.True(t, b.HasAccess(0, 1))
}

func TestReflexivityAddsSelfAccessForEveryWorld(t *testing.T) {
	b := tableau.NewBranch(nil)
	b.Append(WorldNode(lex.Atomic{Idx: 0}, 0))
	b.Append(WorldNode(lex.Atomic{Idx: 1}, 1))

	r := NewReflexivity()
	targets := r.GetTargets(nil, b)
	assert.Len(t, targets, 2)
	for _, target := range targets {
		r.Apply(nil, target)
	}
	assert.True(t, b.HasAccess(0, 0))
	assert.True(t, b.HasAccess(1, 1))
	assert.Empty(t, r.GetTargets(nil, b))
}

func TestSymmetryMirrorsAccessEdges(t *testing.T) {
	b := tableau.NewBranch(nil)
	b.Append(AccessNode(0, 1))

	r := NewSymmetry()
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])
	assert.True(t, b.HasAccess(1, 0))
}

func TestTransitivityClosesTwoHopPaths(t *testing.T) {
	b := tableau.NewBranch(nil)
	b.Append(AccessNode(0, 1))
	b.Append(AccessNode(1, 2))

	r := NewTransitivity()
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])
	assert.True(t, b.HasAccess(0, 2))
}

func TestSerialGivesEveryWorldAnOutgoingEdge(t *testing.T) {
	b := tableau.NewBranch(nil)
	b.Append(WorldNode(lex.Atomic{Idx: 0}, 0))

	r := NewSerial()
	targets := r.GetTargets(nil, b)
	require.Len(t, targets, 1)
	r.Apply(nil, targets[0])

	assert.NotEmpty(t, tableau.VisibleWorlds(b, 0))
	assert.Empty(t, tableau.UnserialWorlds(b))
}
