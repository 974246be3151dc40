package k_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/internal/examplesdata"
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/logics/k"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func TestDAxiomFixtureIsNotValidWithoutFrameConstraints(t *testing.T) {
	f, err := examplesdata.Get("k_d_axiom_not_valid")
	require.NoError(t, err)
	arg, _, wantValid, err := examplesdata.Argument("k_d_axiom_not_valid")
	require.NoError(t, err)
	assert.False(t, wantValid)

	tab := tableau.New(k.Def, arg, tableau.Options{MaxSteps: f.MaxSteps}, nil)
	require.NoError(t, tab.Build(context.Background()))
	assert.Equal(t, tableau.ResultInvalid, tab.Result())
}

func TestDistributionAxiomIsValid(t *testing.T) {
	// □(a⊃b), □a ⊢ □b: the K axiom, provable with no frame constraints at
	// all since Necessity alone propagates both premises into any world
	// the conclusion's negation forces open.
	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	cond := lex.MustOperated(lex.MaterialConditional, a, b)
	premises := []lex.Sentence{
		lex.MustOperated(lex.Necessity, cond),
		lex.MustOperated(lex.Necessity, a),
	}
	conclusion := lex.MustOperated(lex.Necessity, b)
	arg := lex.NewArgument(conclusion, premises, "")

	tab := tableau.New(k.Def, arg, tableau.Options{MaxSteps: 200}, nil)
	require.NoError(t, tab.Build(context.Background()))
	assert.Equal(t, tableau.ResultValid, tab.Result())
}

func TestUnrelatedAtomsLeaveBranchOpenWithModel(t *testing.T) {
	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	arg := lex.NewArgument(b, []lex.Sentence{a}, "")

	tab := tableau.New(k.Def, arg, tableau.Options{BuildModels: true}, nil)
	require.NoError(t, tab.Build(context.Background()))

	require.Equal(t, tableau.ResultInvalid, tab.Result())
	require.Len(t, tab.Models(), 1)
	for _, m := range tab.Models() {
		assert.True(t, m.IsCountermodelTo(arg))
	}
}
