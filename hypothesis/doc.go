// Package hypothesis folds a closed, consistent observation table into a
// conjectured Mealy machine (spec §4.4): one state per distinct row, one
// representative access string per state, transitions read directly off
// the table's entries.
//
// Build assumes its table argument is already closed and consistent
// (closer.Close's postcondition); it performs no repair of its own.
//
//	go get github.com/arnegreen/mealylearn/hypothesis
package hypothesis
