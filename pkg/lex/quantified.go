package lex

// Quantified is a sentence binding a Variable over a body Sentence.
type Quantified struct {
	Quant Quantifier
	Var   Variable
	Body  Sentence
}

// NewQuantified constructs a Quantified sentence. It does not itself
// enforce that Var occurs free in Body — the parser enforces that via
// UnboundVariableError at parse time; programmatic construction trusts the
// caller, matching pytableaux's lexicals module.
func NewQuantified(q Quantifier, v Variable, body Sentence) Quantified {
	return Quantified{Quant: q, Var: v, Body: body}
}

func (q Quantified) SortTuple() []int64 {
	tup := []int64{int64(rankQuantified), int64(q.Quant)}
	tup = append(tup, q.Var.SortTuple()...)
	tup = append(tup, q.Body.SortTuple()...)
	return tup
}

func (q Quantified) String() string {
	return q.Quant.String() + q.Var.String() + q.Body.String()
}

func (q Quantified) IsAtomic() bool     { return false }
func (q Quantified) IsPredicated() bool { return false }
func (q Quantified) IsQuantified() bool { return true }
func (q Quantified) IsOperated() bool   { return false }
func (q Quantified) IsLiteral() bool    { return false }
func (q Quantified) IsNegated() bool    { return false }

// Substitute leaves the quantifier untouched when old is this quantifier's
// own bound variable (no capture), otherwise recurses into the body.
func (q Quantified) Substitute(newP, oldP Parameter) Sentence {
	if Equal(q.Var, oldP) {
		return q
	}
	return Quantified{Quant: q.Quant, Var: q.Var, Body: q.Body.Substitute(newP, oldP)}
}

func (q Quantified) Constants() []Constant { return q.Body.Constants() }

func (q Quantified) Variables() []Variable {
	return dedupVariables(append([]Variable{q.Var}, q.Body.Variables()...))
}

func (q Quantified) Atomics() []Atomic                 { return q.Body.Atomics() }
func (q Quantified) SentPredicates() []Predicate       { return q.Body.SentPredicates() }
func (q Quantified) Operators() []Operator             { return q.Body.Operators() }
func (q Quantified) Quantifiers() []Quantifier {
	return dedupQuantifiers(append([]Quantifier{q.Quant}, q.Body.Quantifiers()...))
}
