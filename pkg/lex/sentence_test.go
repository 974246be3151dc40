package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegateNegative(t *testing.T) {
	a := Atomic{Idx: 0}
	na := Negate(a)
	require.True(t, na.IsNegated())
	assert.True(t, Equal(Negative(a), na))
	assert.True(t, Equal(Negative(na), a))
}

func TestOperatedArityMismatch(t *testing.T) {
	_, err := NewOperated(Conjunction, Atomic{Idx: 0})
	assert.Error(t, err)

	_, err = NewOperated(Negation, Atomic{Idx: 0}, Atomic{Idx: 1})
	assert.Error(t, err)
}

func TestSubstituteNoCapture(t *testing.T) {
	x := Variable{Idx: 0}
	c := Constant{Idx: 0}
	pred := NewPredicate(0, 0, 1)
	body, err := NewPredicated(pred, x)
	require.NoError(t, err)
	q := NewQuantified(Universal, x, body)

	// Substituting the bound variable x leaves the quantified sentence
	// unchanged (no capture).
	out := q.Substitute(c, x)
	assert.True(t, Equal(out, q))
}

func TestDedupAcrossOperands(t *testing.T) {
	a := Atomic{Idx: 0}
	s := MustOperated(Conjunction, a, a)
	atomics := s.Atomics()
	assert.Len(t, atomics, 1)
}

func TestSortTupleOrdersByRank(t *testing.T) {
	pred := NewPredicate(0, 0, 1)
	c := Constant{Idx: 0}
	v := Variable{Idx: 0}
	atomic := Atomic{Idx: 0}
	predicated, err := NewPredicated(pred, c)
	require.NoError(t, err)
	quantified := NewQuantified(Existential, v, predicated)
	operated := MustOperated(Negation, atomic)

	items := []Item{pred, c, v, atomic, predicated, quantified, operated}
	for i := 0; i < len(items)-1; i++ {
		assert.Negative(t, Compare(items[i], items[i+1]), "rank %d should sort before rank %d", i, i+1)
	}
}

func TestKeyStableAcrossEqualItems(t *testing.T) {
	a1 := Atomic{Idx: 1, Sub: 2}
	a2 := Atomic{Idx: 1, Sub: 2}
	assert.Equal(t, Key(a1), Key(a2))
	assert.Equal(t, Hash(a1), Hash(a2))
}

func TestAtomicString(t *testing.T) {
	assert.Equal(t, "A", Atomic{Idx: 0}.String())
	assert.Equal(t, "B3", Atomic{Idx: 1, Sub: 3}.String())
}
