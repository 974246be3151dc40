package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
)

func TestPolishParseModusPonens(t *testing.T) {
	p := NewParser(Polish, nil, true)
	arg, err := p.Argument("b", []string{"Cab", "a"}, "modus ponens")
	require.NoError(t, err)
	assert.Len(t, arg.Premises, 2)
	assert.True(t, lex.Equal(arg.Conclusion, lex.Atomic{Idx: 1}))

	first, ok := arg.Premises[0].(lex.Operated)
	require.True(t, ok)
	assert.Equal(t, lex.MaterialConditional, first.Op)
}

func TestPolishParsePredicateAutoDeclare(t *testing.T) {
	p := NewParser(Polish, nil, true)
	s, err := p.Parse("Fm")
	require.NoError(t, err)
	pred, ok := s.(lex.Predicated)
	require.True(t, ok)
	assert.Equal(t, 1, pred.Pred.Arity)
}

func TestPolishParseQuantifier(t *testing.T) {
	p := NewParser(Polish, nil, true)
	s, err := p.Parse("SxFx")
	require.NoError(t, err)
	q, ok := s.(lex.Quantified)
	require.True(t, ok)
	assert.Equal(t, lex.Universal, q.Quant)
}

func TestPolishParseRejectsUnboundVariable(t *testing.T) {
	p := NewParser(Polish, nil, true)
	_, err := p.Parse("SxFy")
	assert.Error(t, err)
}

func TestPolishParseRejectsTrailingInput(t *testing.T) {
	p := NewParser(Polish, nil, true)
	_, err := p.Parse("ab")
	assert.Error(t, err)
}

func TestStandardParseInfix(t *testing.T) {
	p := NewParser(Standard, nil, true)
	s, err := p.Parse("(p>q)")
	require.NoError(t, err)
	op, ok := s.(lex.Operated)
	require.True(t, ok)
	assert.Equal(t, lex.MaterialConditional, op.Op)
}

func TestWriterRoundTripPolishToUnicode(t *testing.T) {
	p := NewParser(Polish, nil, true)
	s, err := p.Parse("Cab")
	require.NoError(t, err)

	w := NewWriter(Polish, Unicode)
	rendered := w.Write(s)
	assert.Contains(t, rendered, "⊃")
}

func TestWriterStandardInfixParens(t *testing.T) {
	p := NewParser(Standard, nil, true)
	s, err := p.Parse("p&q")
	require.NoError(t, err)

	w := NewWriter(Standard, ASCII)
	assert.Equal(t, "(p&q)", w.Write(s))
}
