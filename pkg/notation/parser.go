package notation

import (
	"unicode"

	"github.com/gitrdm/gotableaux/pkg/errs"
	"github.com/gitrdm/gotableaux/pkg/lex"
)

// Parser is a one-shot stateful reader: each call to Parse consumes the
// whole input string against a fixed notation/vocabulary and must not be
// reused concurrently with another in-flight parse.
type Parser struct {
	Notation   Name
	Table      *Table
	Vocabulary *lex.Vocabulary
	AutoPreds  bool

	input []rune
	pos   int
	bound map[string]bool // active bound-variable keys, for Bound/UnboundVariableError
}

// NewParser builds a Parser for the given notation, defaulting Vocabulary
// to a fresh one if nil.
func NewParser(notation Name, vocab *lex.Vocabulary, autoPreds bool) *Parser {
	var table *Table
	switch notation {
	case Polish:
		table = PolishTable()
	default:
		table = StandardTable()
	}
	if vocab == nil {
		vocab = lex.NewVocabulary()
	}
	return &Parser{Notation: notation, Table: table, Vocabulary: vocab, AutoPreds: autoPreds}
}

// Parse consumes the entire string as a single sentence.
func (p *Parser) Parse(s string) (lex.Sentence, error) {
	if len(s) == 0 {
		return nil, errs.ParseError("empty input")
	}
	p.input = []rune(s)
	p.pos = 0
	p.bound = make(map[string]bool)

	sent, err := p.parseSentence()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos != len(p.input) {
		return nil, errs.ParseError("unexpected trailing input", "position", p.pos, "input", s)
	}
	return sent, nil
}

// Argument parses a conclusion and ordered premises into a lex.Argument.
func (p *Parser) Argument(conclusion string, premises []string, title string) (lex.Argument, error) {
	concl, err := p.Parse(conclusion)
	if err != nil {
		return lex.Argument{}, err
	}
	prems := make([]lex.Sentence, len(premises))
	for i, s := range premises {
		sent, err := p.Parse(s)
		if err != nil {
			return lex.Argument{}, err
		}
		prems[i] = sent
	}
	return lex.NewArgument(concl, prems, title), nil
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) {
		r := p.input[p.pos]
		if e, ok := p.Table.Entries[r]; ok && e.Category == CatWhitespace {
			p.pos++
			continue
		}
		if unicode.IsSpace(r) {
			p.pos++
			continue
		}
		break
	}
}

func (p *Parser) peek() (rune, Entry, bool) {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		return 0, Entry{}, false
	}
	r := p.input[p.pos]
	e, ok := p.Table.Entries[r]
	if !ok {
		return r, Entry{}, false
	}
	return r, e, true
}

func (p *Parser) readDigits() int {
	start := p.pos
	for p.pos < len(p.input) {
		r := p.input[p.pos]
		if e, ok := p.Table.Entries[r]; ok && e.Category == CatDigit {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		return 0
	}
	n := 0
	for _, d := range p.input[start:p.pos] {
		n = n*10 + int(d-'0')
	}
	return n
}

// parseSentence parses a primary, then greedily extends it with infix
// binary operators (standard notation only — polish's Infix table is
// empty, so parsePrimary already consumed any binary operator prefix-
// style).
func (p *Parser) parseSentence() (lex.Sentence, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		r, e, ok := p.peek()
		if !ok || e.Category != CatOperator {
			return left, nil
		}
		op := e.Payload.(lex.Operator)
		if !p.Table.Infix[int(op)] {
			return left, nil
		}
		p.pos++ // consume operator rune(s); our tokens are single runes
		_ = r
		right, err := p.parseSentence()
		if err != nil {
			return nil, err
		}
		left, err = lex.NewOperated(op, left, right)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parsePrimary() (lex.Sentence, error) {
	r, e, ok := p.peek()
	if !ok {
		return nil, errs.ParseError("unexpected end of input")
	}

	switch e.Category {
	case CatParenOpen:
		p.pos++
		inner, err := p.parseSentence()
		if err != nil {
			return nil, err
		}
		r2, e2, ok2 := p.peek()
		if !ok2 || e2.Category != CatParenClose {
			return nil, errs.ParseError("unterminated parenthesis", "position", p.pos)
		}
		_ = r2
		p.pos++
		return inner, nil

	case CatAtomic:
		p.pos++
		index := e.Payload.(int)
		sub := p.readDigits()
		return lex.Atomic{Idx: index, Sub: sub}, nil

	case CatOperator:
		op := e.Payload.(lex.Operator)
		p.pos++
		operands := make([]lex.Sentence, op.Arity())
		for i := 0; i < op.Arity(); i++ {
			operand, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			operands[i] = operand
		}
		return lex.NewOperated(op, operands...)

	case CatQuantifier:
		quant := e.Payload.(lex.Quantifier)
		p.pos++
		vr, e2, ok2 := p.peek()
		if !ok2 || e2.Category != CatVariable {
			return nil, errs.ParseError("expected variable after quantifier", "position", p.pos)
		}
		_ = vr
		varIndex := e2.Payload.(int)
		p.pos++
		varSub := p.readDigits()
		v := lex.Variable{Idx: varIndex, Sub: varSub}
		key := lex.Key(v)
		if p.bound[key] {
			return nil, errs.BoundVariableError(v.String())
		}
		p.bound[key] = true
		body, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		delete(p.bound, key)
		found := false
		for _, fv := range body.Variables() {
			if lex.Equal(fv, v) {
				found = true
				break
			}
		}
		if !found {
			return nil, errs.UnboundVariableError(v.String())
		}
		return lex.NewQuantified(quant, v, body), nil

	case CatPredicateUser, CatPredicateSystem:
		pred, err := p.readPredicateToken(e)
		if err != nil {
			return nil, err
		}
		params, err := p.readParameters(pred.Arity)
		if err != nil {
			return nil, err
		}
		return lex.NewPredicated(pred, params...)

	case CatConstant, CatVariable:
		// Infix predication: first parameter, then predicate symbol, then
		// remaining parameters.
		first, err := p.readParameter()
		if err != nil {
			return nil, err
		}
		_, e2, ok2 := p.peek()
		if !ok2 || (e2.Category != CatPredicateUser && e2.Category != CatPredicateSystem) {
			return nil, errs.ParseError("expected infix predicate symbol", "position", p.pos)
		}
		pred, err := p.readPredicateToken(e2)
		if err != nil {
			return nil, err
		}
		rest, err := p.readParameters(pred.Arity - 1)
		if err != nil {
			return nil, err
		}
		params := append([]lex.Parameter{first}, rest...)
		return lex.NewPredicated(pred, params...)

	default:
		_ = r
		return nil, errs.ParseError("unexpected token", "position", p.pos)
	}
}

func (p *Parser) readPredicateToken(e Entry) (lex.Predicate, error) {
	if e.Category == CatPredicateSystem {
		p.pos++
		return e.Payload.(lex.Predicate), nil
	}
	index := e.Payload.(int)
	p.pos++
	sub := p.readDigits()
	if pred, ok := p.Vocabulary.GetByCoord(index, sub); ok {
		return pred, nil
	}
	if !p.AutoPreds {
		return lex.Predicate{}, errs.NoSuchPredicateError(string(rune('F' + index)))
	}
	// Auto-declare: read the run of parameter tokens that follows to infer
	// arity, without consuming them, then rewind.
	save := p.pos
	arity := p.countParameterRun()
	p.pos = save
	pred := lex.NewPredicate(index, sub, arity)
	if err := p.Vocabulary.DeclarePredicate(pred); err != nil {
		return lex.Predicate{}, err
	}
	return pred, nil
}

// countParameterRun counts how many consecutive constant/variable tokens
// follow the current position, without consuming them permanently (caller
// restores p.pos).
func (p *Parser) countParameterRun() int {
	n := 0
	for {
		_, e, ok := p.peek()
		if !ok || (e.Category != CatConstant && e.Category != CatVariable) {
			return n
		}
		p.pos++
		p.readDigits()
		n++
	}
}

func (p *Parser) readParameters(n int) ([]lex.Parameter, error) {
	out := make([]lex.Parameter, n)
	for i := 0; i < n; i++ {
		param, err := p.readParameter()
		if err != nil {
			return nil, err
		}
		out[i] = param
	}
	return out, nil
}

func (p *Parser) readParameter() (lex.Parameter, error) {
	_, e, ok := p.peek()
	if !ok {
		return nil, errs.ParseError("expected parameter, got end of input")
	}
	switch e.Category {
	case CatConstant:
		index := e.Payload.(int)
		p.pos++
		sub := p.readDigits()
		return lex.Constant{Idx: index, Sub: sub}, nil
	case CatVariable:
		index := e.Payload.(int)
		p.pos++
		sub := p.readDigits()
		return lex.Variable{Idx: index, Sub: sub}, nil
	default:
		return nil, errs.ParseError("expected parameter", "position", p.pos)
	}
}
