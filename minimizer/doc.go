// Package minimizer collapses a hypothesized Mealy machine down to its
// unique minimal form (spec §4.7): states start partitioned by their
// one-step output signature, then the partition is refined by each
// state's block-index signature until a pass changes nothing, in the
// style of Hopcroft/Moore partition refinement.
//
//	go get github.com/arnegreen/mealylearn/minimizer
package minimizer
