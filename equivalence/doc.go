// Package equivalence implements the randomized equivalence oracle of
// spec §4.5: sampling K random words of length 1..L_max from the
// learning alphabet and comparing the hypothesis's simulated output
// against a live membership query, returning the first word where they
// disagree as a counterexample.
//
// Every Oracle carries its own deterministic RNG stream, a math/rand
// source seeded directly with a caller-supplied seed, so that two Oracles
// built from the same seed sample the identical sequence of test words
// (spec §8 scenario 5 — random-seed reproducibility).
//
//	go get github.com/arnegreen/mealylearn/equivalence
package equivalence
