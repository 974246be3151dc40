package k3_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/internal/examplesdata"
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/logics/k3"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

func TestExcludedMiddleFixtureMatchesEngineSemantics(t *testing.T) {
	// Genuine K3 rejects excluded middle: a gap value (a=N) leaves the
	// disjunction undesignated. See the fixture comment in arguments.yaml.
	f, err := examplesdata.Get("k3_law_of_excluded_middle")
	require.NoError(t, err)
	arg, _, wantValid, err := examplesdata.Argument("k3_law_of_excluded_middle")
	require.NoError(t, err)
	assert.False(t, wantValid)

	tab := tableau.New(k3.Def, arg, tableau.Options{MaxSteps: f.MaxSteps, BuildModels: true}, nil)
	require.NoError(t, tab.Build(context.Background()))

	require.Equal(t, tableau.ResultInvalid, tab.Result())
	require.Len(t, tab.Models(), 1)
	for _, m := range tab.Models() {
		assert.True(t, m.IsCountermodelTo(arg))
	}
}

func TestDisjunctiveSyllogismIsValidUnderGlutClosure(t *testing.T) {
	// Unlike FDE/LP, K3 has no B value: the b-branch of the disjunction
	// split (b designated alongside the premise's ¬b designated) is a
	// genuine contradiction here, so GlutClosure closes it and disjunctive
	// syllogism holds — matching original_source's k3.py
	// example_validities.
	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	premise := lex.Disjoin(a, b)
	arg := lex.NewArgument(a, []lex.Sentence{premise, lex.Negate(b)}, "")

	tab := tableau.New(k3.Def, arg, tableau.Options{MaxSteps: 200}, nil)
	require.NoError(t, tab.Build(context.Background()))
	assert.Equal(t, tableau.ResultValid, tab.Result())
}

func TestUnrelatedAtomsLeaveBranchOpenWithModel(t *testing.T) {
	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	arg := lex.NewArgument(b, []lex.Sentence{a}, "")

	tab := tableau.New(k3.Def, arg, tableau.Options{BuildModels: true}, nil)
	require.NoError(t, tab.Build(context.Background()))

	require.Equal(t, tableau.ResultInvalid, tab.Result())
	require.Len(t, tab.Models(), 1)
	for _, m := range tab.Models() {
		assert.True(t, m.IsCountermodelTo(arg))
	}
}
