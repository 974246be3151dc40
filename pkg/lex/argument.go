package lex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gitrdm/gotableaux/pkg/errs"
)

// Argument is premises plus a conclusion; equality and hashing depend only
// on (conclusion, premises) — title is metadata.
type Argument struct {
	Conclusion Sentence
	Premises   []Sentence
	Title      string
}

func NewArgument(conclusion Sentence, premises []Sentence, title string) Argument {
	return Argument{Conclusion: conclusion, Premises: append([]Sentence(nil), premises...), Title: title}
}

// Equal compares by (conclusion, premises) only, ignoring Title.
func (a Argument) Equal(b Argument) bool {
	if !Equal(a.Conclusion, b.Conclusion) {
		return false
	}
	if len(a.Premises) != len(b.Premises) {
		return false
	}
	for i := range a.Premises {
		if !Equal(a.Premises[i], b.Premises[i]) {
			return false
		}
	}
	return true
}

// Keystr renders a canonical, version-stable encoding from which
// ArgumentFromKeystr reconstructs an identical (conclusion, premises)
// argument. This is a private wire format internal to gotableaux, not tied
// to any display notation.
func (a Argument) Keystr() string {
	parts := make([]string, len(a.Premises))
	for i, p := range a.Premises {
		parts[i] = encodeSentence(p)
	}
	return fmt.Sprintf("ARG[%s]=>%s", strings.Join(parts, "|"), encodeSentence(a.Conclusion))
}

// ArgumentFromKeystr parses the output of Keystr back into an Argument
// (Title is not recoverable from the key-string and is left empty).
func ArgumentFromKeystr(s string) (Argument, error) {
	if !strings.HasPrefix(s, "ARG[") {
		return Argument{}, errs.ParseError("keystr missing ARG[ prefix", "input", s)
	}
	rest := s[len("ARG["):]
	closeIdx := strings.Index(rest, "]=>")
	if closeIdx < 0 {
		return Argument{}, errs.ParseError("keystr missing ]=> separator", "input", s)
	}
	premisesStr := rest[:closeIdx]
	conclusionStr := rest[closeIdx+len("]=>"):]

	var premises []Sentence
	if premisesStr != "" {
		for _, chunk := range splitTopLevel(premisesStr, '|') {
			sent, _, err := decodeSentence(chunk)
			if err != nil {
				return Argument{}, err
			}
			premises = append(premises, sent)
		}
	}
	conclusion, _, err := decodeSentence(conclusionStr)
	if err != nil {
		return Argument{}, err
	}
	return Argument{Conclusion: conclusion, Premises: premises}, nil
}

// --- internal encoding, independent of any display notation ---

func encodeSentence(s Sentence) string {
	switch v := s.(type) {
	case Atomic:
		return fmt.Sprintf("A%d.%d", v.Idx, v.Sub)
	case Predicated:
		params := make([]string, len(v.Params))
		for i, p := range v.Params {
			params[i] = encodeParameter(p)
		}
		return fmt.Sprintf("R%d.%d.%d(%s)", v.Pred.Idx, v.Pred.Sub, v.Pred.Arity, strings.Join(params, ","))
	case Quantified:
		return fmt.Sprintf("Q%d:%d.%d:%s", int(v.Quant), v.Var.Idx, v.Var.Sub, encodeSentence(v.Body))
	case Operated:
		operands := make([]string, len(v.Operands))
		for i, op := range v.Operands {
			operands[i] = encodeSentence(op)
		}
		return fmt.Sprintf("O%d(%s)", int(v.Op), strings.Join(operands, ","))
	default:
		panic(fmt.Sprintf("unknown sentence arm %T", s))
	}
}

func encodeParameter(p Parameter) string {
	switch v := p.(type) {
	case Constant:
		return fmt.Sprintf("c%d.%d", v.Idx, v.Sub)
	case Variable:
		return fmt.Sprintf("v%d.%d", v.Idx, v.Sub)
	default:
		panic(fmt.Sprintf("unknown parameter kind %T", p))
	}
}

func decodeSentence(s string) (Sentence, string, error) {
	if s == "" {
		return nil, "", errs.ParseError("empty sentence encoding")
	}
	switch s[0] {
	case 'A':
		idx, sub, rest, err := readTwoInts(s[1:], '.')
		if err != nil {
			return nil, "", err
		}
		return Atomic{Idx: idx, Sub: sub}, rest, nil
	case 'R':
		idx, sub, rest, err := readTwoInts(s[1:], '.')
		if err != nil {
			return nil, "", err
		}
		if len(rest) == 0 || rest[0] != '.' {
			return nil, "", errs.ParseError("expected '.' before arity in predicated encoding", "input", s)
		}
		arity, rest2, err := readIntUntil(rest[1:], '(')
		if err != nil {
			return nil, "", err
		}
		body, rest3, err := readParen(rest2)
		if err != nil {
			return nil, "", err
		}
		var params []Parameter
		if body != "" {
			for _, chunk := range splitTopLevel(body, ',') {
				p, err := decodeParameter(chunk)
				if err != nil {
					return nil, "", err
				}
				params = append(params, p)
			}
		}
		pred := Predicate{Idx: idx, Sub: sub, Arity: arity}
		sent, err := NewPredicated(pred, params...)
		if err != nil {
			return nil, "", err
		}
		return sent, rest3, nil
	case 'Q':
		quant, rest, err := readIntUntil(s[1:], ':')
		if err != nil {
			return nil, "", err
		}
		if len(rest) == 0 || rest[0] != ':' {
			return nil, "", errs.ParseError("expected ':' after quantifier in quantified encoding", "input", s)
		}
		idx, sub, rest2, err := readTwoInts(rest[1:], '.')
		if err != nil {
			return nil, "", err
		}
		if len(rest2) == 0 || rest2[0] != ':' {
			return nil, "", errs.ParseError("expected ':' in quantified encoding", "input", s)
		}
		body, remaining, err := decodeSentence(rest2[1:])
		if err != nil {
			return nil, "", err
		}
		return Quantified{Quant: Quantifier(quant), Var: Variable{Idx: idx, Sub: sub}, Body: body}, remaining, nil
	case 'O':
		op, rest, err := readIntUntil(s[1:], '(')
		if err != nil {
			return nil, "", err
		}
		body, remaining, err := readParen(rest)
		if err != nil {
			return nil, "", err
		}
		var operands []Sentence
		if body != "" {
			for _, chunk := range splitTopLevel(body, ',') {
				operand, _, err := decodeSentence(chunk)
				if err != nil {
					return nil, "", err
				}
				operands = append(operands, operand)
			}
		}
		sent, err := NewOperated(Operator(op), operands...)
		if err != nil {
			return nil, "", err
		}
		return sent, remaining, nil
	default:
		return nil, "", errs.ParseError("unknown sentence tag", "tag", string(s[0]))
	}
}

func decodeParameter(s string) (Parameter, error) {
	if s == "" {
		return nil, errs.ParseError("empty parameter encoding")
	}
	idx, sub, _, err := readTwoInts(s[1:], '.')
	if err != nil {
		return nil, err
	}
	switch s[0] {
	case 'c':
		return Constant{Idx: idx, Sub: sub}, nil
	case 'v':
		return Variable{Idx: idx, Sub: sub}, nil
	default:
		return nil, errs.ParseError("unknown parameter tag", "tag", string(s[0]))
	}
}

// readTwoInts reads "<int><sep><int>" and returns both plus the remainder.
func readTwoInts(s string, sep byte) (int, int, string, error) {
	i := 0
	for i < len(s) && (s[i] == '-' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	first, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, 0, "", errs.ParseError("expected integer", "input", s)
	}
	if i >= len(s) || s[i] != sep {
		return 0, 0, "", errs.ParseError("expected separator", "want", string(sep), "input", s)
	}
	rest := s[i+1:]
	j := 0
	for j < len(rest) && (rest[j] == '-' || (rest[j] >= '0' && rest[j] <= '9')) {
		j++
	}
	second, err := strconv.Atoi(rest[:j])
	if err != nil {
		return 0, 0, "", errs.ParseError("expected integer", "input", rest)
	}
	return first, second, rest[j:], nil
}

func readIntUntil(s string, stop byte) (int, string, error) {
	i := 0
	for i < len(s) && s[i] != stop {
		i++
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, "", errs.ParseError("expected integer", "input", s)
	}
	return n, s[i:], nil
}

// readParen expects s to start with '(' and returns the parenthesised body
// plus whatever follows the matching ')'.
func readParen(s string) (string, string, error) {
	if len(s) == 0 || s[0] != '(' {
		return "", "", errs.ParseError("expected '('", "input", s)
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[1:i], s[i+1:], nil
			}
		}
	}
	return "", "", errs.ParseError("unterminated parenthesis", "input", s)
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// parentheses.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}
