package tableau

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/gotableaux/pkg/lex"
)

type stubModel struct{ atomics map[string]bool }

func (m *stubModel) ReadBranch(b *Branch) error {
	m.atomics = make(map[string]bool)
	for _, n := range b.Nodes() {
		if s, ok := n.Sentence(); ok {
			if a, ok := s.(lex.Atomic); ok {
				m.atomics[a.String()] = true
			}
		}
	}
	return nil
}

func (m *stubModel) IsCountermodelTo(arg lex.Argument) bool { return true }
func (m *stubModel) String() string                        { return "" }

func TestBuildModelsPopulatesOpenBranches(t *testing.T) {
	logic := trivialLogic()
	logic.NewModel = func() Model { return &stubModel{} }

	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	arg := lex.NewArgument(b, []lex.Sentence{a}, "")
	tab := New(logic, arg, Options{BuildModels: true}, nil)
	require.NoError(t, tab.Build(context.Background()))

	assert.Equal(t, ResultInvalid, tab.Result())
	require.Len(t, tab.Models(), 1)
	for _, m := range tab.Models() {
		sm := m.(*stubModel)
		assert.True(t, sm.atomics["A"])
	}
}

func TestBuildModelsAggregatesPerBranchErrorsWithoutStoppingOthers(t *testing.T) {
	logic := trivialLogic()
	calls := 0
	var mu sync.Mutex
	logic.NewModel = func() Model {
		mu.Lock()
		calls++
		first := calls == 1
		mu.Unlock()
		if first {
			return &erroringModel{}
		}
		return &stubModel{}
	}

	tab := New(logic, lex.Argument{}, Options{BuildModels: true}, nil)
	root := NewBranch(tab)
	tab.addBranch(root)
	child := tab.NewChildBranch(root)
	tab.openBranches = []*Branch{root, child}

	err := tab.buildModels(context.Background())
	assert.Error(t, err)
	assert.Len(t, tab.Models(), 1)
}

type erroringModel struct{}

func (m *erroringModel) ReadBranch(b *Branch) error           { return assert.AnError }
func (m *erroringModel) IsCountermodelTo(a lex.Argument) bool { return false }
func (m *erroringModel) String() string                       { return "" }

func TestBuildModelsSkippedWithoutNewModel(t *testing.T) {
	a := lex.Atomic{Idx: 0}
	b := lex.Atomic{Idx: 1}
	arg := lex.NewArgument(b, []lex.Sentence{a}, "")
	tab := New(trivialLogic(), arg, Options{BuildModels: true}, nil)
	require.NoError(t, tab.Build(context.Background()))
	assert.Empty(t, tab.Models())
}
