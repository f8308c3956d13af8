// Package mealy implements the learned output type of this module: a
// deterministic Mealy machine over dense integer state ids, plus its
// symbol-by-symbol simulator.
//
// A Machine is total over its alphabet by construction: querying an
// undefined transition does not panic or error, it enters the OFF sink —
// the same absorbing behavior a membership oracle exhibits once the
// underlying session has died (see package symbol). This lets the
// hypothesis builder, the equivalence oracle, and the minimizer all treat
// "no transition defined yet" and "SUL disconnected" identically.
//
//	go get github.com/arnegreen/mealylearn/mealy
package mealy
