package s4_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/logics/s4"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func TestFourAxiomIsValidUnderTransitivity(t *testing.T) {
	// □a⊃□□a is the 4 axiom: needs Transitivity to fold a two-hop access
	// path back into a direct edge so Necessity can push □a all the way
	// out to the world that denies □a.
	a := lex.Atomic{Idx: 0}
	nec := lex.MustOperated(lex.Necessity, a)
	conclusion := lex.MustOperated(lex.MaterialConditional, nec, lex.MustOperated(lex.Necessity, nec))
	arg := lex.NewArgument(conclusion, nil, "")

	tab := tableau.New(s4.Def, arg, tableau.Options{MaxSteps: 500}, nil)
	require.NoError(t, tab.Build(context.Background()))
	assert.Equal(t, tableau.ResultValid, tab.Result())
}

func TestUnrelatedAtomsLeaveBranchOpenWithModel(t *testing.T) {
	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	arg := lex.NewArgument(b, []lex.Sentence{a}, "")

	tab := tableau.New(s4.Def, arg, tableau.Options{BuildModels: true}, nil)
	require.NoError(t, tab.Build(context.Background()))

	require.Equal(t, tableau.ResultInvalid, tab.Result())
	require.Len(t, tab.Models(), 1)
	for _, m := range tab.Models() {
		assert.True(t, m.IsCountermodelTo(arg))
	}
}
