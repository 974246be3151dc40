// Package errs defines the error taxonomy shared by the lexicon, notation,
// and tableau packages. Every error is built with samber/oops so callers
// get a stable machine code, structured context, and an unbroken chain for
// errors.Is/As, instead of ad-hoc fmt.Errorf strings.
package errs

import (
	"github.com/samber/oops"
)

// Code identifies an error kind for programmatic matching, independent of
// the human-readable message.
type Code string

const (
	CodeParse                     Code = "parse_error"
	CodeUnboundVariable           Code = "unbound_variable"
	CodeBoundVariable             Code = "bound_variable"
	CodePredicateArityMismatch    Code = "predicate_arity_mismatch"
	CodePredicateAlreadyDeclared  Code = "predicate_already_declared"
	CodeNoSuchPredicate           Code = "no_such_predicate"
	CodeModelValue                Code = "model_value"
	CodeDenotation                Code = "denotation"
	CodeIllegalState              Code = "illegal_state"
	CodeTimeout                   Code = "timeout"
	CodeDuplicateValue            Code = "duplicate_value"
	CodeMissingValue               Code = "missing_value"
	CodeNotImplemented             Code = "not_implemented"
)

func ParseError(msg string, kv ...any) error {
	return oops.Code(string(CodeParse)).With(kv...).Errorf("%s", msg)
}

func UnboundVariableError(name string) error {
	return oops.Code(string(CodeUnboundVariable)).With("variable", name).Errorf("variable %q is not bound in its quantifier body", name)
}

func BoundVariableError(name string) error {
	return oops.Code(string(CodeBoundVariable)).With("variable", name).Errorf("variable %q is already bound by an enclosing quantifier", name)
}

func PredicateArityMismatchError(name string, want, got int) error {
	return oops.Code(string(CodePredicateArityMismatch)).With("predicate", name, "want_arity", want, "got_arity", got).
		Errorf("predicate %q redeclared with arity %d, previously %d", name, got, want)
}

func PredicateAlreadyDeclaredError(name string) error {
	return oops.Code(string(CodePredicateAlreadyDeclared)).With("predicate", name).Errorf("predicate %q already declared", name)
}

func NoSuchPredicateError(ref string) error {
	return oops.Code(string(CodeNoSuchPredicate)).With("ref", ref).Errorf("no such predicate %q", ref)
}

func ModelValueError(msg string, kv ...any) error {
	return oops.Code(string(CodeModelValue)).With(kv...).Errorf("%s", msg)
}

func DenotationError(term string) error {
	return oops.Code(string(CodeDenotation)).With("term", term).Errorf("denotation of %q has not been set", term)
}

func IllegalStateError(msg string, kv ...any) error {
	return oops.Code(string(CodeIllegalState)).With(kv...).Errorf("%s", msg)
}

func TimeoutError(buildMS int64) error {
	return oops.Code(string(CodeTimeout)).With("build_timeout_ms", buildMS).Errorf("tableau build exceeded timeout of %dms", buildMS)
}

func DuplicateValueError(msg string, kv ...any) error {
	return oops.Code(string(CodeDuplicateValue)).With(kv...).Errorf("%s", msg)
}

func MissingValueError(msg string, kv ...any) error {
	return oops.Code(string(CodeMissingValue)).With(kv...).Errorf("%s", msg)
}

// NotImplementedError always signals a programmer bug: an abstract method
// was invoked without a concrete override.
func NotImplementedError(what string) error {
	return oops.Code(string(CodeNotImplemented)).With("what", what).Errorf("%s is not implemented", what)
}
