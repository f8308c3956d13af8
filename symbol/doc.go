// Package symbol defines the opaque alphabet and sequence types shared by
// every other package in this module: Symbol (one input token), Word (an
// ordered, immutable sequence of symbols), and Output (one reply token,
// including the reserved OFF and INIT sentinels).
//
// Words are values, not pointer webs: concatenation never mutates or
// aliases an existing Word's backing array, so a Word is safe to use as
// a map key (via Key) and safe to share across the observation table,
// the hypothesis builder, and the equivalence oracle without defensive
// copying at every call site.
//
//	go get github.com/arnegreen/mealylearn/symbol
package symbol
