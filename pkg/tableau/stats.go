package tableau

// RuleStat is one rule's cumulative timing, keyed by name in Stats.Rules.
type RuleStat struct {
	Name       string `json:"name"`
	DurationMS int64  `json:"duration_ms"`
}

// Stats is the wire-format summary of a finished (or in-progress) build.
type Stats struct {
	ID      string `json:"id"`
	Logic   string `json:"logic"`
	Result  string `json:"result"`
	Steps   int    `json:"steps"`

	Branches       int `json:"branches"`
	OpenBranches   int `json:"open_branches"`
	ClosedBranches int `json:"closed_branches"`
	DistinctNodes  int `json:"distinct_nodes"`

	TrunkDurationMS  int64 `json:"trunk_duration_ms"`
	RulesDurationMS  int64 `json:"rules_duration_ms"`
	TreeDurationMS   int64 `json:"tree_duration_ms"`
	ModelsDurationMS int64 `json:"models_duration_ms"`
	BuildDurationMS  int64 `json:"build_duration_ms"`

	Rules []RuleStat `json:"rules"`
}

// Stats renders the current build state as a wire-format summary. Valid
// to call before Build finishes (Result will read "unfinished").
func (t *Tableau) Stats() Stats {
	distinct := make(map[int64]bool)
	closed := 0
	for _, b := range t.branches {
		if b.Closed() {
			closed++
		}
		for _, n := range b.Nodes() {
			distinct[n.ID()] = true
		}
	}

	var buildMS int64
	if !t.finishedAt.IsZero() {
		buildMS = t.finishedAt.Sub(t.startedAt).Milliseconds()
	}

	rules := make([]RuleStat, 0, len(t.ruleDurations))
	for name, d := range t.ruleDurations {
		rules = append(rules, RuleStat{Name: name, DurationMS: d.Milliseconds()})
	}

	return Stats{
		ID:               t.id,
		Logic:            t.logic.Name,
		Result:           string(t.result),
		Steps:            t.step,
		Branches:         len(t.branches),
		OpenBranches:     len(t.openBranches),
		ClosedBranches:   closed,
		DistinctNodes:    len(distinct),
		TrunkDurationMS:  t.timers["trunk"].Milliseconds(),
		RulesDurationMS:  t.timers["rules"].Milliseconds(),
		TreeDurationMS:   t.timers["tree"].Milliseconds(),
		ModelsDurationMS: t.timers["models"].Milliseconds(),
		BuildDurationMS:  buildMS,
		Rules:            rules,
	}
}
