package makespan_test

import (
	"fmt"

	makespan "github.com/ifryed/makespan"
	"github.com/ifryed/makespan/matrix"
	"github.com/ifryed/makespan/schedule"
)

// ExampleSolve runs the greedy solver and extracts the scalar makespan.
func ExampleSolve() {
	costs, _ := matrix.NewDenseFrom([][]float64{
		{1, 2, 5},
		{2, 2, 1},
		{2, 3, 5},
	})

	res, err := makespan.Solve(costs, schedule.MakespanExtractor{}, makespan.DefaultOptions())
	if err != nil {
		fmt.Println("solve failed:", err)

		return
	}
	fmt.Println("makespan:", res.Makespan)
	// Output:
	// makespan: 3
}

// ExampleSolve_pairs extracts the explicit assignment mapping instead.
func ExampleSolve_pairs() {
	costs, _ := matrix.NewDenseFrom([][]float64{
		{1, 2, 5},
		{2, 2, 1},
		{2, 3, 5},
	})

	res, _ := makespan.Solve(costs, schedule.PairsExtractor{}, makespan.DefaultOptions())
	for _, p := range res.Pairs {
		fmt.Printf("machine %d <- job %d\n", p.Machine, p.Job)
	}
	// Output:
	// machine 0 <- job 0
	// machine 1 <- job 1
	// machine 1 <- job 2
}

// ExampleGreedy operates directly on a caller-owned schedule.
func ExampleGreedy() {
	costs, _ := matrix.NewDenseFrom([][]float64{
		{1, 2, 1},
		{4, 2, 4},
		{2, 3, 2},
	})
	s, _ := schedule.New(costs)

	if err := makespan.Greedy(s, makespan.DefaultOptions()); err != nil {
		fmt.Println("greedy failed:", err)

		return
	}
	fmt.Println("makespan:", s.Makespan())
	// Output:
	// makespan: 2
}
