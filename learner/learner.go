package learner

import (
	"github.com/arnegreen/mealylearn/closer"
	"github.com/arnegreen/mealylearn/equivalence"
	"github.com/arnegreen/mealylearn/hypothesis"
	"github.com/arnegreen/mealylearn/mealy"
	"github.com/arnegreen/mealylearn/minimizer"
	"github.com/arnegreen/mealylearn/oracle"
	"github.com/arnegreen/mealylearn/symbol"
	"github.com/arnegreen/mealylearn/table"
)

/*
Learn

Description:
  Learn runs the L* fixed point of spec §4.6 to convergence: STABILIZING
  (closer.Close repairs the observation table), HYPOTHESIZING
  (hypothesis.Build folds it into a candidate machine), EQUIV_CHECK
  (an equivalence.Oracle samples the candidate against the live SUT). A
  counterexample's every suffix is added to E — guaranteeing E grows by
  at least one entry per round (spec §8 scenario 6) — and the loop
  returns to STABILIZING. When EQUIV_CHECK finds nothing, the final
  hypothesis is minimized (minimizer.Minimize) and returned.

  Learn never calls the oracle directly; all membership queries flow
  through the Table built from it, and all equivalence queries flow
  through the equivalence.Oracle built from it — the learner's
  algorithmic core stays decoupled from how queries are actually served.
*/

// Learn infers the minimal Mealy machine consistent with sut over
// alphabet, returning the machine, progress statistics, and an error if
// alphabet or sut is invalid, or if the fixed point fails to converge
// within Config.maxRounds rounds.
func Learn(alphabet []symbol.Symbol, sut oracle.Oracle, opts ...Option) (*mealy.Machine, *Stats, error) {
	if len(alphabet) == 0 {
		return nil, nil, ErrEmptyAlphabet
	}
	if sut == nil {
		return nil, nil, ErrNilOracle
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	eqOracle, err := equivalence.New(alphabet, sut, cfg.equivOpts...)
	if err != nil {
		return nil, nil, err
	}

	tbl := table.New(sut)
	stats := &Stats{}

	for round := 1; round <= cfg.maxRounds; round++ {
		rep := closer.Close(tbl, alphabet)
		stats.ClosednessRepairs += rep.ClosednessRepairs
		stats.ConsistencyRepairs += rep.ConsistencyRepairs

		hyp := hypothesis.Build(tbl, alphabet)
		cfg.logger.Debug("hypothesis built",
			"round", round,
			"states", len(hyp.States()),
			"closedness_repairs", rep.ClosednessRepairs,
			"consistency_repairs", rep.ConsistencyRepairs,
		)

		ce, found := eqOracle.FindCounterexample(hyp)
		if !found {
			min := minimizer.Minimize(hyp, alphabet)
			stats.Rounds = round
			stats.States = len(min.States())
			cfg.logger.Info("learning converged",
				"rounds", stats.Rounds,
				"states", stats.States,
			)
			return min, stats, nil
		}

		cfg.logger.Debug("counterexample found", "round", round, "word", ce.String())
		for _, suffix := range ce.Suffixes() {
			tbl.AddSuffix(suffix)
		}
	}

	return nil, stats, ErrMaxRoundsExceeded
}
