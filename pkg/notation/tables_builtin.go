package notation

import "github.com/gitrdm/gotableaux/pkg/lex"

var operatorLetters = map[lex.Operator]rune{
	lex.Assertion:             'T',
	lex.Negation:              'N',
	lex.Conjunction:           'K',
	lex.Disjunction:           'A',
	lex.MaterialConditional:   'C',
	lex.MaterialBiconditional: 'E',
	lex.Conditional:           'U',
	lex.Biconditional:         'B',
	lex.Possibility:           'M',
	lex.Necessity:             'L',
}

var quantifierLettersPolish = map[lex.Quantifier]rune{
	lex.Existential: 'X',
	lex.Universal:   'S',
}

// PolishTable is the prefix-only notation: atomics a-e, variables v-z,
// constants m-s, the fixed operator letters above, quantifiers X/S.
func PolishTable() *Table {
	t := &Table{Name: Polish, Entries: make(map[rune]Entry)}
	t.AtomicLetters = lettersFrom('a', 5)
	t.VariableLetters = lettersFrom('v', 5)
	t.ConstantLetters = lettersFrom('m', 7)
	t.PredicateLetters = lettersFrom('F', 3)

	for i, r := range t.AtomicLetters {
		t.set(r, CatAtomic, i)
	}
	for i, r := range t.VariableLetters {
		t.set(r, CatVariable, i)
	}
	for i, r := range t.ConstantLetters {
		t.set(r, CatConstant, i)
	}
	for i, r := range t.PredicateLetters {
		t.set(r, CatPredicateUser, i)
	}
	for op, r := range operatorLetters {
		t.set(r, CatOperator, op)
	}
	for q, r := range quantifierLettersPolish {
		t.set(r, CatQuantifier, q)
	}
	t.set('I', CatPredicateSystem, lex.Identity)
	t.set('J', CatPredicateSystem, lex.Existence)
	t.set('(', CatParenOpen, nil)
	t.set(')', CatParenClose, nil)
	t.set(' ', CatWhitespace, nil)
	for d := '0'; d <= '9'; d++ {
		t.set(d, CatDigit, nil)
	}

	t.OperatorTokens = map[int]string{}
	for op, r := range operatorLetters {
		t.OperatorTokens[int(op)] = string(r)
	}
	t.QuantifierTokens = map[int]string{}
	for q, r := range quantifierLettersPolish {
		t.QuantifierTokens[int(q)] = string(r)
	}
	t.Infix = map[int]bool{} // polish is always prefix
	return t
}

var operatorTokensStandard = map[lex.Operator]string{
	lex.Negation:              "~",
	lex.Assertion:             "*",
	lex.Conjunction:           "&",
	lex.Disjunction:           "V",
	lex.MaterialConditional:   ">",
	lex.MaterialBiconditional: "%",
	lex.Conditional:           "$",
	lex.Biconditional:         "#",
	lex.Possibility:           "P",
	lex.Necessity:             "L",
}

var operatorInfixStandard = map[lex.Operator]bool{
	lex.Conjunction:           true,
	lex.Disjunction:           true,
	lex.MaterialConditional:   true,
	lex.MaterialBiconditional: true,
	lex.Conditional:           true,
	lex.Biconditional:         true,
}

var quantifierTokensStandard = map[lex.Quantifier]string{
	lex.Existential: "E",
	lex.Universal:   "A",
}

// StandardTable is the infix-capable notation: atomics p-t, constants a-e,
// variables x-z, predicates F-J, ascii operator tokens above, quantifiers
// E (existential) / A (universal).
func StandardTable() *Table {
	t := &Table{Name: Standard, Entries: make(map[rune]Entry)}
	t.AtomicLetters = lettersFrom('p', 5)
	t.ConstantLetters = lettersFrom('a', 5)
	t.VariableLetters = lettersFrom('x', 3)
	t.PredicateLetters = lettersFrom('F', 5)

	for i, r := range t.AtomicLetters {
		t.set(r, CatAtomic, i)
	}
	for i, r := range t.ConstantLetters {
		t.set(r, CatConstant, i)
	}
	for i, r := range t.VariableLetters {
		t.set(r, CatVariable, i)
	}
	for i, r := range t.PredicateLetters {
		t.set(r, CatPredicateUser, i)
	}
	for op, tok := range operatorTokensStandard {
		for _, r := range tok {
			t.set(r, CatOperator, op)
		}
	}
	for q, tok := range quantifierTokensStandard {
		for _, r := range tok {
			t.set(r, CatQuantifier, q)
		}
	}
	t.set('(', CatParenOpen, nil)
	t.set(')', CatParenClose, nil)
	t.set(' ', CatWhitespace, nil)
	for d := '0'; d <= '9'; d++ {
		t.set(d, CatDigit, nil)
	}
	t.set('=', CatPredicateSystem, lex.Identity)

	t.OperatorTokens = map[int]string{}
	for op, tok := range operatorTokensStandard {
		t.OperatorTokens[int(op)] = tok
	}
	t.QuantifierTokens = map[int]string{}
	for q, tok := range quantifierTokensStandard {
		t.QuantifierTokens[int(q)] = tok
	}
	t.Infix = map[int]bool{}
	for op, v := range operatorInfixStandard {
		t.Infix[int(op)] = v
	}
	return t
}
