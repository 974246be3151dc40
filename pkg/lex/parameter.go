package lex

import "fmt"

// Parameter is either a Constant or a Variable — the two kinds of term that
// may appear as a Predicated sentence's arguments.
type Parameter interface {
	Item
	isParameter()
	Index() int
	Subscript() int
}

// Constant is a denoting term, identified by (index, subscript).
type Constant struct {
	Idx int
	Sub int
}

func NewConstant(index, subscript int) Constant { return Constant{Idx: index, Sub: subscript} }

func (c Constant) isParameter()  {}
func (c Constant) Index() int    { return c.Idx }
func (c Constant) Subscript() int { return c.Sub }

func (c Constant) SortTuple() []int64 {
	return []int64{int64(rankConstant), int64(c.Idx), int64(c.Sub)}
}

func (c Constant) String() string {
	return paramString('m', c.Idx, c.Sub)
}

// Variable is a non-denoting term bound by a Quantified sentence.
type Variable struct {
	Idx int
	Sub int
}

func NewVariable(index, subscript int) Variable { return Variable{Idx: index, Sub: subscript} }

func (v Variable) isParameter()   {}
func (v Variable) Index() int     { return v.Idx }
func (v Variable) Subscript() int { return v.Sub }

func (v Variable) SortTuple() []int64 {
	return []int64{int64(rankVariable), int64(v.Idx), int64(v.Sub)}
}

func (v Variable) String() string {
	return paramString('v', v.Idx, v.Sub)
}

// paramString renders a parameter's base letter offset by index, with a
// trailing subscript when non-zero. index is always within the notation's
// letter-alphabet size; once exhausted, callers advance subscript instead
// (see Branch.NewConstant), so no separate "wrap" digit is needed.
func paramString(base byte, index, subscript int) string {
	letter := base + byte(index)
	s := string(letter)
	if subscript != 0 {
		s += fmt.Sprintf("%d", subscript)
	}
	return s
}

// ParametersEqual reports whether p equals the (index,subscript) of q and
// they are both the same Parameter kind (Constant vs Variable).
func ParametersEqual(p, q Parameter) bool {
	return Equal(p, q)
}
