// Package table implements the observation table at the heart of the
// learner: the access-string set S, the distinguishing-suffix set E, and
// the memoized oracle-response map T, plus the Row/Entry derivations
// spec §3 defines over them.
//
// Table owns its oracle: every Entry call that misses the memoization
// map issues exactly one membership query and caches the result, so the
// Monotone Memoization property (spec §8 — "the oracle is invoked at
// most once per distinct word per session") holds regardless of how many
// times Row or Entry is called afterwards.
//
// Table is guarded by an internal mutex, making shared mutable state safe
// by construction even though the Learner Driver only ever calls a Table
// from one goroutine.
//
//	go get github.com/arnegreen/mealylearn/table
package table
