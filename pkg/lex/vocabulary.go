package lex

import (
	"fmt"

	"github.com/gitrdm/gotableaux/pkg/errs"
)

// Vocabulary indexes user predicates by (index, subscript) and by name, with
// the two system predicates (Identity, Existence) pre-registered. It is the
// Predicates container named in the data model: lookup accepts a name or an
// "idx_sub" string (GetPredicate) or an (index, subscript) pair
// (GetByCoord); there is no lookup by an existing Predicate value.
type Vocabulary struct {
	byCoord map[[2]int]Predicate
	byName  map[string]Predicate
	order   []Predicate
}

// NewVocabulary returns a Predicates table with the system predicates
// already declared.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{
		byCoord: make(map[[2]int]Predicate),
		byName:  make(map[string]Predicate),
	}
	v.register(Identity)
	v.register(Existence)
	return v
}

func (v *Vocabulary) register(p Predicate) {
	v.byCoord[[2]int{p.Idx, p.Sub}] = p
	if p.Name != "" {
		v.byName[p.Name] = p
	}
	v.order = append(v.order, p)
}

// DeclarePredicate adds a user predicate. Re-declaring an existing
// (index,subscript) with the same arity is idempotent; a different arity is
// a PredicateArityMismatchError. A name already bound to a different
// (index,subscript) is a PredicateAlreadyDeclaredError.
func (v *Vocabulary) DeclarePredicate(p Predicate) error {
	coord := [2]int{p.Idx, p.Sub}
	if existing, ok := v.byCoord[coord]; ok {
		if existing.Arity != p.Arity {
			return errs.PredicateArityMismatchError(p.String(), existing.Arity, p.Arity)
		}
		return nil
	}
	if p.Name != "" {
		if existing, ok := v.byName[p.Name]; ok && (existing.Idx != p.Idx || existing.Sub != p.Sub) {
			return errs.PredicateAlreadyDeclaredError(p.Name)
		}
	}
	v.register(p)
	return nil
}

// GetPredicate resolves a predicate by name or by an "idx_sub" string
// (GetByCoord below takes the pair directly). ref is matched first against
// a registered name, then parsed as "idx_sub".
func (v *Vocabulary) GetPredicate(ref string) (Predicate, error) {
	if p, ok := v.byName[ref]; ok {
		return p, nil
	}
	var idx, sub int
	if _, err := fmt.Sscanf(ref, "%d_%d", &idx, &sub); err == nil {
		if p, ok := v.byCoord[[2]int{idx, sub}]; ok {
			return p, nil
		}
	}
	return Predicate{}, errs.NoSuchPredicateError(ref)
}

// GetByCoord resolves a predicate by (index, subscript).
func (v *Vocabulary) GetByCoord(index, subscript int) (Predicate, bool) {
	p, ok := v.byCoord[[2]int{index, subscript}]
	return p, ok
}

// ListPredicates returns all registered predicates (system and user) in
// declaration order.
func (v *Vocabulary) ListPredicates() []Predicate {
	out := make([]Predicate, len(v.order))
	copy(out, v.order)
	return out
}
