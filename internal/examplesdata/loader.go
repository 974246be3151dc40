// Package examplesdata embeds the named argument fixtures used by tests and
// by demo/CLI code that wants a quick, well-known argument without typing
// Polish notation by hand.
package examplesdata

import (
	_ "embed"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/gotableaux/pkg/errs"
	"github.com/gitrdm/gotableaux/pkg/lex"
	"github.com/gitrdm/gotableaux/pkg/notation"
)

//go:embed arguments.yaml
var raw []byte

// Fixture is one named argument, as stored in arguments.yaml.
type Fixture struct {
	Name       string   `yaml:"name"`
	Logic      string   `yaml:"logic"`
	Premises   []string `yaml:"premises"`
	Conclusion string   `yaml:"conclusion"`
	Valid      bool     `yaml:"valid"`
	MaxSteps   int      `yaml:"max_steps"`
}

var byName map[string]Fixture
var names []string

func init() {
	var fixtures []Fixture
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		panic(err)
	}
	byName = make(map[string]Fixture, len(fixtures))
	names = make([]string, 0, len(fixtures))
	for _, f := range fixtures {
		byName[f.Name] = f
		names = append(names, f.Name)
	}
	sort.Strings(names)
}

// Names lists every fixture name, sorted.
func Names() []string {
	return append([]string(nil), names...)
}

// Get looks up a fixture by name, without parsing its sentences.
func Get(name string) (Fixture, error) {
	f, ok := byName[name]
	if !ok {
		return Fixture{}, errs.MissingValueError("no such example argument", "name", name)
	}
	return f, nil
}

// Argument parses the named fixture's premises and conclusion (Polish
// notation, auto-declaring predicates) and returns the resulting
// lex.Argument along with the logic it's meant to run under and whether it
// is expected to come out valid.
func Argument(name string) (arg lex.Argument, logicName string, wantValid bool, err error) {
	f, err := Get(name)
	if err != nil {
		return lex.Argument{}, "", false, err
	}
	p := notation.NewParser(notation.Polish, nil, true)
	arg, err = p.Argument(f.Conclusion, f.Premises, f.Name)
	if err != nil {
		return lex.Argument{}, "", false, err
	}
	return arg, f.Logic, f.Valid, nil
}
