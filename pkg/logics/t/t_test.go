package t_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/logics/t"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func TestTAxiomIsValidUnderReflexivity(t2 *testing.T) {
	// □a⊃a is the T axiom: needs Reflexivity to give w0 access to itself
	// so Necessity can feed □a back into a at the very world that denies
	// a.
	a := lex.Atomic{Idx: 0}
	conclusion := lex.MustOperated(lex.MaterialConditional, lex.MustOperated(lex.Necessity, a), a)
	arg := lex.NewArgument(conclusion, nil, "")

	tab := tableau.New(t.Def, arg, tableau.Options{MaxSteps: 200}, nil)
	require.NoError(t2, tab.Build(context.Background()))
	assert.Equal(t2, tableau.ResultValid, tab.Result())
}

func TestUnrelatedAtomsLeaveBranchOpenWithModel(t2 *testing.T) {
	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	arg := lex.NewArgument(b, []lex.Sentence{a}, "")

	tab := tableau.New(t.Def, arg, tableau.Options{BuildModels: true}, nil)
	require.NoError(t2, tab.Build(context.Background()))

	require.Equal(t2, tableau.ResultInvalid, tab.Result())
	require.Len(t2, tab.Models(), 1)
	for _, m := range tab.Models() {
		assert.True(t2, m.IsCountermodelTo(arg))
	}
}
