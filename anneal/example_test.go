package anneal_test

import (
	"fmt"

	"github.com/katalvlaran/qanneal/anneal"
	"github.com/katalvlaran/qanneal/ising"
	"github.com/katalvlaran/qanneal/schedule"
)

// ExampleAnnealer anneals the two-spin model h=[1,-1], J01=0.5 to its ground state.
func ExampleAnnealer() {
	m, err := ising.NewDense([]float64{1, -1}, []float64{0, 0.5, 0.5, 0}, 2, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	sched, err := schedule.Linear(0.1, 5, 20)
	if err != nil {
		fmt.Println(err)
		return
	}

	a, err := anneal.New(m, sched, anneal.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := a.Run(4, nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.BestState.Ints(), res.BestEnergy)
	// Output: [-1 1] -2.5
}
