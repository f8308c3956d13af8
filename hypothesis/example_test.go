package hypothesis_test

import (
	"fmt"

	"github.com/arnegreen/mealylearn/closer"
	"github.com/arnegreen/mealylearn/hypothesis"
	"github.com/arnegreen/mealylearn/oracle"
	"github.com/arnegreen/mealylearn/symbol"
	"github.com/arnegreen/mealylearn/table"
)

// ExampleBuild closes a table over a trivially dead SUL and folds it into
// a two-state machine: the initial state (whose row holds INIT) and the
// OFF sink it leads into.
func ExampleBuild() {
	alphabet := []symbol.Symbol{"QUIT"}
	sul := oracle.Func(func(w symbol.Word) symbol.OutputSeq {
		out := make(symbol.OutputSeq, w.Len())
		for i := range out {
			out[i] = symbol.OFF
		}
		return out
	})

	tbl := table.New(sul)
	closer.Close(tbl, alphabet)
	m := hypothesis.Build(tbl, alphabet)

	fmt.Println(len(m.States()))
	fmt.Println(m.Simulate(symbol.New("QUIT", "QUIT")))

	// Output:
	// 2
	// [OFF OFF]
}
