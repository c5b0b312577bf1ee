package instance_test

import (
	"fmt"

	"github.com/ifryed/makespan/instance"
)

// ExampleRandom samples a reproducible instance and reports its shape.
// Values themselves depend on the seed, so the example prints only the
// structure.
func ExampleRandom() {
	in, err := instance.Random(3, 4,
		instance.WithSeed(1),
		instance.WithAgentCapacityBounds(2, 2),
	)
	if err != nil {
		fmt.Println("generation failed:", err)

		return
	}

	fmt.Println("agents:", in.Agents())
	fmt.Println("items:", in.Items())
	fmt.Println("agent capacity:", in.AgentCapacities[0])
	// Output:
	// agents: 3
	// items: 4
	// agent capacity: 2
}
