package matrix_test

import (
	"fmt"

	"github.com/ifryed/makespan/matrix"
)

// ExampleNewDenseFrom ingests a literal cost table and prints it.
func ExampleNewDenseFrom() {
	m, err := matrix.NewDenseFrom([][]float64{
		{1, 2, 5},
		{2, 2, 1},
	})
	if err != nil {
		fmt.Println("ingestion failed:", err)

		return
	}

	fmt.Printf("%dx%d\n", m.Rows(), m.Cols())
	fmt.Print(m)
	// Output:
	// 2x3
	// [1, 2, 5]
	// [2, 2, 1]
}
