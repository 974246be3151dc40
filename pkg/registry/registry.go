// Package registry resolves a logic's name (as a user or config file
// would spell it — "CPL", "K3", "S5", ...) to its full LogicDef bundle.
package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/gitrdm/gotableaux/pkg/errs"
	"github.com/gitrdm/gotableaux/pkg/logics/cfol"
	"github.com/gitrdm/gotableaux/pkg/logics/cpl"
	"github.com/gitrdm/gotableaux/pkg/logics/d"
	"github.com/gitrdm/gotableaux/pkg/logics/fde"
	"github.com/gitrdm/gotableaux/pkg/logics/k"
	"github.com/gitrdm/gotableaux/pkg/logics/k3"
	"github.com/gitrdm/gotableaux/pkg/logics/lp"
	"github.com/gitrdm/gotableaux/pkg/logics/s4"
	"github.com/gitrdm/gotableaux/pkg/logics/s5"
	"github.com/gitrdm/gotableaux/pkg/logics/t"
	"github.com/gitrdm/gotableaux/pkg/tableau"
)

var (
	mu       sync.RWMutex
	registry = map[string]tableau.LogicDef{
		"CPL":  cpl.Def,
		"CFOL": cfol.Def,
		"FDE":  fde.Def,
		"K3":   k3.Def,
		"LP":   lp.Def,
		"K":    k.Def,
		"D":    d.Def,
		"T":    t.Def,
		"S4":   s4.Def,
		"S5":   s5.Def,
	}
)

// Get resolves name (case-insensitive) to its LogicDef.
func Get(name string) (tableau.LogicDef, error) {
	mu.RLock()
	defer mu.RUnlock()
	def, ok := registry[strings.ToUpper(name)]
	if !ok {
		return tableau.LogicDef{}, errs.MissingValueError("no such logic", "name", name)
	}
	return def, nil
}

// Register adds or overrides a logic under name, for callers embedding
// this module who want to plug in their own logic definitions.
func Register(name string, def tableau.LogicDef) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToUpper(name)] = def
}

// Names returns every registered logic name, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
