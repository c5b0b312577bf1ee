package schedule_test

import (
	"fmt"

	"github.com/ifryed/makespan/matrix"
	"github.com/ifryed/makespan/schedule"
)

// ExampleSchedule walks the full state lifecycle: build, assign, inspect.
func ExampleSchedule() {
	costs, _ := matrix.NewDenseFrom([][]float64{
		{1, 1},
		{1, 1},
	})
	s, _ := schedule.New(costs)

	_ = s.Assign(0, 0)
	_ = s.Assign(1, 1)

	fmt.Println("makespan:", s.Makespan())
	fmt.Println("pairs:", s.Pairs())
	// Output:
	// makespan: 1
	// pairs: [{0 0} {1 1}]
}

// ExamplePairsExtractor renders the explicit assignment mapping.
func ExamplePairsExtractor() {
	costs, _ := matrix.NewDenseFrom([][]float64{
		{2, 3},
		{3, 2},
	})
	s, _ := schedule.New(costs)
	_ = s.Assign(0, 0)
	_ = s.Assign(1, 1)

	res := schedule.PairsExtractor{}.Extract(s)
	fmt.Println(res.Pairs)
	// Output:
	// [{0 0} {1 1}]
}
