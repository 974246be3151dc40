package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentEqualIgnoresTitle(t *testing.T) {
	a := NewArgument(Atomic{Idx: 1}, []Sentence{Atomic{Idx: 0}}, "modus ponens")
	b := NewArgument(Atomic{Idx: 1}, []Sentence{Atomic{Idx: 0}}, "")
	assert.True(t, a.Equal(b))

	c := NewArgument(Atomic{Idx: 2}, []Sentence{Atomic{Idx: 0}}, "modus ponens")
	assert.False(t, a.Equal(c))
}

func TestArgumentEqualChecksPremiseCount(t *testing.T) {
	a := NewArgument(Atomic{Idx: 0}, []Sentence{Atomic{Idx: 1}}, "")
	b := NewArgument(Atomic{Idx: 0}, []Sentence{Atomic{Idx: 1}, Atomic{Idx: 2}}, "")
	assert.False(t, a.Equal(b))
}

func TestKeystrRoundTripsAtomic(t *testing.T) {
	arg := NewArgument(Atomic{Idx: 1}, []Sentence{Atomic{Idx: 0}}, "title is not part of the key")
	key := arg.Keystr()

	back, err := ArgumentFromKeystr(key)
	require.NoError(t, err)
	assert.True(t, arg.Equal(back))
	assert.Empty(t, back.Title)
}

func TestKeystrRoundTripsPredicatedAndQuantified(t *testing.T) {
	pred := NewPredicate(0, 0, 1)
	c := Constant{Idx: 0}
	v := Variable{Idx: 0}
	body, err := NewPredicated(pred, v)
	require.NoError(t, err)
	quantified := NewQuantified(Existential, v, body)

	premise, err := NewPredicated(pred, c)
	require.NoError(t, err)

	arg := NewArgument(quantified, []Sentence{premise}, "")
	key := arg.Keystr()

	back, err := ArgumentFromKeystr(key)
	require.NoError(t, err)
	assert.True(t, arg.Equal(back))
}

func TestKeystrRoundTripsOperated(t *testing.T) {
	conj := MustOperated(Conjunction, Atomic{Idx: 0}, Atomic{Idx: 1})
	arg := NewArgument(conj, nil, "")
	key := arg.Keystr()

	back, err := ArgumentFromKeystr(key)
	require.NoError(t, err)
	assert.True(t, arg.Equal(back))
	assert.Empty(t, back.Premises)
}

func TestArgumentFromKeystrRejectsMalformedInput(t *testing.T) {
	_, err := ArgumentFromKeystr("not-a-keystr")
	assert.Error(t, err)

	_, err = ArgumentFromKeystr("ARG[no-separator-here")
	assert.Error(t, err)
}

func TestNewArgumentCopiesPremisesSlice(t *testing.T) {
	premises := []Sentence{Atomic{Idx: 0}}
	arg := NewArgument(Atomic{Idx: 1}, premises, "")
	premises[0] = Atomic{Idx: 9}
	assert.True(t, Equal(arg.Premises[0], Atomic{Idx: 0}))
}
