package tableau

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
)

func TestTreeEmptyTableau(t *testing.T) {
	tab := New(trivialLogic(), lex.Argument{}, Options{}, nil)
	tree := tab.Tree()
	assert.True(t, tree.Leaf)
	assert.True(t, tree.Open)
}

func TestTreeSharesCommonPrefixAcrossBranches(t *testing.T) {
	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	arg := lex.NewArgument(b, []lex.Sentence{a}, "")
	tab := New(trivialLogic(), arg, Options{}, nil)
	require.NoError(t, tab.Build(context.Background()))

	tree := tab.Tree()
	assert.Equal(t, 1, len(tree.Children))
	assert.GreaterOrEqual(t, tree.Width, 1)
}
