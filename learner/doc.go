// Package learner drives the outer L* fixed point of spec §4.6: build an
// observation table, close and repair it (package closer), fold it into
// a hypothesis (package hypothesis), test the hypothesis against the
// system under test (package equivalence), and on a counterexample add
// every suffix of it to E before looping. The loop terminates when an
// equivalence round finds no counterexample; the returned machine is
// then minimized (package minimizer).
//
// Learn logs its progress through log/slog at Debug (per-round hypothesis
// size and repairs, each counterexample) and Info (once, on convergence:
// round count and final state count) level, using the
// *slog.Logger configured on Config (default: slog.Default()).
//
//	go get github.com/arnegreen/mealylearn/learner
package learner
