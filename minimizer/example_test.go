package minimizer_test

import (
	"fmt"

	"github.com/arnegreen/mealylearn/mealy"
	"github.com/arnegreen/mealylearn/minimizer"
	"github.com/arnegreen/mealylearn/symbol"
)

// ExampleMinimize collapses two states that are behaviorally identical
// into one.
func ExampleMinimize() {
	alphabet := []symbol.Symbol{"A"}

	m := mealy.New(0)
	m.AddTransition(0, "A", 1, "x")
	m.AddTransition(1, "A", 0, "x")

	min := minimizer.Minimize(m, alphabet)
	fmt.Println(len(min.States()))

	// Output:
	// 1
}
