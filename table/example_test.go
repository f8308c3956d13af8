package table_test

import (
	"fmt"

	"github.com/arnegreen/mealylearn/oracle"
	"github.com/arnegreen/mealylearn/symbol"
	"github.com/arnegreen/mealylearn/table"
)

// ExampleTable_Row shows how growing E changes a row's length while the
// underlying memoized responses are reused.
func ExampleTable_Row() {
	replay := oracle.NewReplay().
		Record(symbol.New("USER"), symbol.OutputSeq{"331"}).
		Record(symbol.New("USER", "PASS"), symbol.OutputSeq{"331", "230"})

	tbl := table.New(replay)
	s := symbol.New("USER")

	fmt.Println(tbl.Row(s)) // E == {ε}: one cell, the last output of USER

	tbl.AddSuffix(symbol.New("PASS"))
	fmt.Println(tbl.Row(s)) // E == {ε, PASS}: second cell from USER·PASS

	// Output:
	// [331]
	// [331 230]
}
