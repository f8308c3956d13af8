// Package mealylearn infers the minimal Mealy machine consistent with a
// black-box reactive system using Angluin's L* algorithm, adapted for
// systems under test that can die mid-session and answer OFF forever
// after.
//
// Everything is organized under single-purpose subpackages:
//
//	symbol/      — Symbol, Output, and the immutable Word sequence type
//	mealy/       — the Mealy machine and its simulator
//	oracle/      — the membership-query boundary and its adapters (Func, Replay, Socket)
//	table/       — the observation table (S, E, memoized responses)
//	closer/      — closedness/consistency repair
//	hypothesis/  — folding a closed table into a candidate machine
//	equivalence/ — randomized conformance testing of a hypothesis
//	minimizer/   — partition-refinement minimization
//	learner/     — the outer driver wiring all of the above together
//
//	go get github.com/arnegreen/mealylearn
package mealylearn
