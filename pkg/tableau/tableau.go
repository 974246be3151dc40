package tableau

import (
	"context"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gitrdm/gotableaux/pkg/errs"
	"github.com/gitrdm/gotableaux/pkg/lex"
)

// Event is a lifecycle signal emitted during a tableau build.
type Event string

const (
	EventBeforeTrunkBuild Event = "before_trunk_build"
	EventAfterTrunkBuild  Event = "after_trunk_build"
	EventAfterBranchAdd   Event = "after_branch_add"
	EventAfterBranchClose Event = "after_branch_close"
	EventAfterNodeAdd     Event = "after_node_add"
	EventAfterNodeTick    Event = "after_node_tick"
)

// EventHandler receives lifecycle signals. node is nil for
// branch-scoped events.
type EventHandler func(tab *Tableau, branch *Branch, node *Node)

// Options configures a Tableau build. Zero value is usable: no step/time
// limit, models not built.
type Options struct {
	MaxSteps     int           `mapstructure:"max_steps"`
	Timeout      time.Duration `mapstructure:"timeout"`
	BuildModels  bool          `mapstructure:"build_models"`
	AlphabetSize int           `mapstructure:"alphabet_size"`
}

// DecodeOptions decodes a loosely-typed option bag (as arrives from a CLI
// flag set or a config file) into an Options value.
func DecodeOptions(raw map[string]any) (Options, error) {
	var opts Options
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Options{}, errs.IllegalStateError("building options decoder", "cause", err.Error())
	}
	if err := dec.Decode(raw); err != nil {
		return Options{}, errs.IllegalStateError("decoding tableau options", "cause", err.Error())
	}
	return opts, nil
}

// Result is the terminal verdict of a finished build.
type Result string

const (
	ResultUnfinished Result = "unfinished"
	ResultValid      Result = "valid"
	ResultInvalid    Result = "invalid"
)

// Tableau drives proof search for a single argument under a single logic.
// The search loop (Build/Step) is strictly single-threaded per branch
// scheduling invariant; only the post-finish model-building phase (see
// model_build.go) parallelises, and only over already-closed-off open
// branches.
type Tableau struct {
	id     string
	logic  LogicDef
	arg    lex.Argument
	opts   Options
	logger *zap.Logger

	branches     []*Branch
	openBranches []*Branch

	handlers map[Event][]EventHandler

	step   int
	result Result

	models map[int]Model // open branch id -> countermodel, populated by finish via buildModels

	timers       map[string]time.Duration
	ruleDurations map[string]time.Duration

	startedAt time.Time
	finishedAt time.Time
}

// New constructs a Tableau for arg under logic. opts is copied; a nil
// logger falls back to zap.NewNop().
func New(logic LogicDef, arg lex.Argument, opts Options, logger *zap.Logger) *Tableau {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.AlphabetSize <= 0 {
		opts.AlphabetSize = 5
	}
	return &Tableau{
		id:            uuid.NewString(),
		logic:         logic,
		arg:           arg,
		opts:          opts,
		logger:        logger,
		handlers:      make(map[Event][]EventHandler),
		result:        ResultUnfinished,
		models:        make(map[int]Model),
		timers:        make(map[string]time.Duration),
		ruleDurations: make(map[string]time.Duration),
	}
}

// ID is this run's process-unique identifier, surfaced in Stats().
func (t *Tableau) ID() string { return t.id }

// On registers a handler for ev, called synchronously in registration
// order whenever the event fires.
func (t *Tableau) On(ev Event, h EventHandler) {
	t.handlers[ev] = append(t.handlers[ev], h)
}

func (t *Tableau) emit(ev Event, b *Branch, n *Node) {
	for _, h := range t.handlers[ev] {
		h(t, b, n)
	}
}

// Branches returns every branch (open and closed) created so far.
func (t *Tableau) Branches() []*Branch { return t.branches }

// OpenBranches returns the currently-open branches.
func (t *Tableau) OpenBranches() []*Branch { return t.openBranches }

// Step returns the number of rule applications performed so far.
func (t *Tableau) Step() int { return t.step }

// Result is the terminal verdict, or ResultUnfinished mid-build.
func (t *Tableau) Result() Result { return t.result }

// NewChildBranch copies parent's current state into a new branch, adds it
// to this tableau's branch set, and returns it. Used by branching
// ("beta") rules: one disjunct continues on parent itself, the other
// continues on the returned copy.
func (t *Tableau) NewChildBranch(parent *Branch) *Branch {
	nb := parent.Copy()
	t.addBranch(nb)
	return nb
}

func (t *Tableau) addBranch(b *Branch) {
	t.branches = append(t.branches, b)
	t.openBranches = append(t.openBranches, b)
	t.emit(EventAfterBranchAdd, b, nil)
}

func (t *Tableau) closeBranch(b *Branch, step int) {
	b.Close(step)
	for i, ob := range t.openBranches {
		if ob == b {
			t.openBranches = append(t.openBranches[:i], t.openBranches[i+1:]...)
			break
		}
	}
}

// Build runs the trunk builder then steps until the tableau either
// exhausts applicable rules (finished) or hits MaxSteps/Timeout.
func (t *Tableau) Build(ctx context.Context) error {
	t.startedAt = time.Now()
	t.logger.Debug("building trunk", zap.String("tableau_id", t.id), zap.String("logic", t.logic.Name))

	root := NewBranch(t)
	t.addBranch(root)

	t.emit(EventBeforeTrunkBuild, root, nil)
	trunkStart := time.Now()
	t.logic.System.BuildTrunk(t, root, t.arg)
	t.timers["trunk"] = time.Since(trunkStart)
	t.emit(EventAfterTrunkBuild, root, nil)

	rulesStart := time.Now()
	for {
		select {
		case <-ctx.Done():
			return errs.TimeoutError(time.Since(t.startedAt).Milliseconds())
		default:
		}
		if t.opts.Timeout > 0 && time.Since(t.startedAt) > t.opts.Timeout {
			return errs.TimeoutError(time.Since(t.startedAt).Milliseconds())
		}
		if t.opts.MaxSteps > 0 && t.step >= t.opts.MaxSteps {
			break
		}
		progressed, err := t.next()
		if err != nil {
			return err
		}
		if !progressed {
			break
		}
	}
	t.timers["rules"] = time.Since(rulesStart)

	return t.finish()
}

// next finds and applies the single best-scored target across the first
// rule group (in registration order) that has any candidate, consistent
// with group_score/candidate_score as described for the driver: within a
// group the highest ScoreKey wins; ties keep the first candidate found,
// which is the first rule in group order against the first branch in
// branch order — i.e., first-registered-rule-wins.
func (t *Tableau) next() (bool, error) {
	for _, group := range t.logic.RuleGroups {
		var best *Target
		for _, rule := range group.Rules {
			for _, b := range t.openBranches {
				start := time.Now()
				targets := rule.GetTargets(t, b)
				t.ruleDurations[rule.Name()] += time.Since(start)
				for _, cand := range targets {
					cand.Rule = rule
					if best == nil || cand.ScoreKey > best.ScoreKey {
						best = cand
					}
				}
			}
		}
		if best == nil {
			continue
		}
		t.apply(best)
		return true, nil
	}
	return false, nil
}

func (t *Tableau) apply(target *Target) {
	start := time.Now()
	target.Rule.Apply(t, target)
	t.ruleDurations[target.Rule.Name()] += time.Since(start)
	t.step++

	if target.Flag == "closure" && target.Branch != nil && !target.Branch.Closed() {
		t.closeBranch(target.Branch, t.step)
	}
}

// finish stamps the terminal result and, if requested, builds
// countermodels for every open branch (see model_build.go).
func (t *Tableau) finish() error {
	t.finishedAt = time.Now()
	if len(t.openBranches) == 0 {
		t.result = ResultValid
	} else {
		t.result = ResultInvalid
	}
	t.logger.Info("tableau finished",
		zap.String("tableau_id", t.id),
		zap.String("result", string(t.result)),
		zap.Int("branches", len(t.branches)),
		zap.Int("open_branches", len(t.openBranches)),
		zap.Int("steps", t.step),
	)
	if t.opts.BuildModels && t.result == ResultInvalid {
		return t.buildModels(context.Background())
	}
	return nil
}

// Logic returns the logic bundle this tableau was built with.
func (t *Tableau) Logic() LogicDef { return t.logic }

// Argument returns the argument this tableau is proving or refuting.
func (t *Tableau) Argument() lex.Argument { return t.arg }

// AlphabetSize returns the configured constant-letter alphabet size, used
// by Branch.NewConstant and the all-constants rule family.
func (t *Tableau) AlphabetSize() int { return t.opts.AlphabetSize }

// Models returns the countermodels built for each open branch, keyed by
// branch id. Empty unless Options.BuildModels was set and Result is
// ResultInvalid.
func (t *Tableau) Models() map[int]Model { return t.models }
