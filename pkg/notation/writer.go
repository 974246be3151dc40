package notation

import (
	"fmt"
	"strings"

	"github.com/gitrdm/gotableaux/pkg/lex"
)

// Format is the output glyph set a Writer renders with — independent of
// Notation, which governs grammar (prefix-only vs infix-capable).
type Format string

const (
	ASCII   Format = "ascii"
	Unicode Format = "unicode"
	HTML    Format = "html"
	LaTeX   Format = "latex"
)

// Writer renders a lex.Sentence back to a string for a given
// notation/format pair. A logic may override Symbols/Quantifiers with its
// own strings-table.
type Writer struct {
	Notation   Name
	Format     Format
	Table      *Table
	Symbols    map[lex.Operator]string
	Quantifier map[lex.Quantifier]string
}

// NewWriter builds a Writer with the default per-format symbol tables.
func NewWriter(notation Name, format Format) *Writer {
	var table *Table
	switch notation {
	case Polish:
		table = PolishTable()
	default:
		table = StandardTable()
	}
	w := &Writer{Notation: notation, Format: format, Table: table}
	w.Symbols = defaultOperatorSymbols(format, table)
	w.Quantifier = defaultQuantifierSymbols(format, table)
	return w
}

func defaultOperatorSymbols(format Format, table *Table) map[lex.Operator]string {
	switch format {
	case Unicode, HTML:
		return map[lex.Operator]string{
			lex.Assertion:             "∘",
			lex.Negation:              "¬",
			lex.Conjunction:           "∧",
			lex.Disjunction:           "∨",
			lex.MaterialConditional:   "⊃",
			lex.MaterialBiconditional: "≡",
			lex.Conditional:           "→",
			lex.Biconditional:         "↔",
			lex.Possibility:           "◇",
			lex.Necessity:             "□",
		}
	case LaTeX:
		return map[lex.Operator]string{
			lex.Assertion:             `\circ `,
			lex.Negation:              `\neg `,
			lex.Conjunction:           `\wedge `,
			lex.Disjunction:           `\vee `,
			lex.MaterialConditional:   `\supset `,
			lex.MaterialBiconditional: `\equiv `,
			lex.Conditional:           `\rightarrow `,
			lex.Biconditional:         `\leftrightarrow `,
			lex.Possibility:           `\Diamond `,
			lex.Necessity:             `\Box `,
		}
	default: // ASCII
		out := make(map[lex.Operator]string, len(table.OperatorTokens))
		for op, tok := range table.OperatorTokens {
			out[lex.Operator(op)] = tok
		}
		return out
	}
}

func defaultQuantifierSymbols(format Format, table *Table) map[lex.Quantifier]string {
	switch format {
	case Unicode, HTML:
		return map[lex.Quantifier]string{lex.Existential: "∃", lex.Universal: "∀"}
	case LaTeX:
		return map[lex.Quantifier]string{lex.Existential: `\exists `, lex.Universal: `\forall `}
	default:
		out := make(map[lex.Quantifier]string, len(table.QuantifierTokens))
		for q, tok := range table.QuantifierTokens {
			out[lex.Quantifier(q)] = tok
		}
		return out
	}
}

// Write renders s to a string.
func (w *Writer) Write(s lex.Sentence) string {
	var b strings.Builder
	w.write(&b, s)
	return b.String()
}

func (w *Writer) write(b *strings.Builder, s lex.Sentence) {
	switch v := s.(type) {
	case lex.Atomic:
		b.WriteString(w.letterFor(w.Table.AtomicLetters, v.Idx))
		b.WriteString(w.subscript(v.Sub))
	case lex.Predicated:
		w.writePredicated(b, v)
	case lex.Quantified:
		b.WriteString(w.Quantifier[v.Quant])
		b.WriteString(w.writeParameter(v.Var))
		w.write(b, v.Body)
	case lex.Operated:
		w.writeOperated(b, v)
	}
}

func (w *Writer) writeOperated(b *strings.Builder, o lex.Operated) {
	// Negated Identity special case in unicode/html: "a ≠ b".
	if o.Op == lex.Negation {
		if p, ok := o.Operands[0].(lex.Predicated); ok && p.Pred.Idx == lex.Identity.Idx {
			if w.Format == Unicode || w.Format == HTML {
				b.WriteString(w.writeParameter(p.Params[0]))
				b.WriteString("≠")
				b.WriteString(w.writeParameter(p.Params[1]))
				return
			}
		}
	}

	infix := w.Notation == Standard && w.Table.Infix[int(o.Op)]
	if infix {
		b.WriteString("(")
		w.write(b, o.Operands[0])
		b.WriteString(w.Symbols[o.Op])
		w.write(b, o.Operands[1])
		b.WriteString(")")
		return
	}
	b.WriteString(w.Symbols[o.Op])
	for _, operand := range o.Operands {
		w.write(b, operand)
	}
}

func (w *Writer) writePredicated(b *strings.Builder, p lex.Predicated) {
	if w.Notation == Standard && p.Pred.Arity == 2 {
		b.WriteString(w.writeParameter(p.Params[0]))
		b.WriteString(w.predicateToken(p.Pred))
		b.WriteString(w.writeParameter(p.Params[1]))
		return
	}
	b.WriteString(w.predicateToken(p.Pred))
	for _, param := range p.Params {
		b.WriteString(w.writeParameter(param))
	}
}

func (w *Writer) predicateToken(p lex.Predicate) string {
	if p.Idx == lex.Identity.Idx {
		if w.Notation == Standard {
			return "="
		}
		return "I"
	}
	if p.Idx == lex.Existence.Idx {
		if w.Notation == Standard {
			return p.Name
		}
		return "J"
	}
	return w.letterFor(w.Table.PredicateLetters, p.Idx) + w.subscript(p.Sub)
}

func (w *Writer) writeParameter(p lex.Parameter) string {
	switch v := p.(type) {
	case lex.Constant:
		return w.letterFor(w.Table.ConstantLetters, v.Idx) + w.subscript(v.Sub)
	case lex.Variable:
		return w.letterFor(w.Table.VariableLetters, v.Idx) + w.subscript(v.Sub)
	default:
		return fmt.Sprintf("%v", p)
	}
}

func (w *Writer) letterFor(letters []rune, index int) string {
	if index < 0 || index >= len(letters) {
		return fmt.Sprintf("?%d", index)
	}
	return string(letters[index])
}

func (w *Writer) subscript(n int) string {
	if n == 0 {
		return ""
	}
	switch w.Format {
	case HTML:
		return fmt.Sprintf("<sub>%d</sub>", n)
	default:
		return fmt.Sprintf("%d", n)
	}
}
