// Package closer implements the Closedness and Consistency fixed point
// of spec §4.3: repeatedly finding a witness for whichever check fails
// and repairing the table (appending to S for a closedness witness,
// appending to E for a consistency witness) until both checks pass in
// the same pass.
//
// Closedness is re-checked after any E growth, since extending E changes
// every row vector and can unmask a closedness violation that did not
// exist before (spec §4.3). Termination follows from the monotone growth
// of S, bounded by the number of distinct rows (itself bounded by
// |Γ|^|E|), and of E, bounded by the target machine's Myhill–Nerode
// class count.
//
//	go get github.com/arnegreen/mealylearn/closer
package closer
