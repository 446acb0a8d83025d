package minconv_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tropical/minconv"
)

// ExampleMinConvIndex splits a budget between two activities. cost1[x] and
// cost2[y] are the costs of giving x and y units; C[k] is the cheapest way
// to spend k units in total and I[k] the units that go to the first activity.
func ExampleMinConvIndex() {
	cost1 := []int{9, 6, 4, 3}
	cost2 := []int{8, 4, 3}

	c, idx, err := minconv.MinConvIndex(cost1, cost2, len(cost1)+len(cost2)-1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	fmt.Println(idx)
	// Output:
	// [17 13 10 8 7 6]
	// [0 0 1 2 2 3]
}

// ExampleArgMinSum queries a single diagonal.
func ExampleArgMinSum() {
	v, i, j, err := minconv.ArgMinSum([]float64{1, 3}, []float64{2, 5}, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("min=%v at (%d,%d)\n", v, i, j)
	// Output: min=5 at (1,0)
}

// ExampleBatch convolves several pairs concurrently.
func ExampleBatch() {
	jobs := []minconv.Job[int]{
		{A: []int{1, 3}, B: []int{2, 5}},
		{A: []int{0, 0, 0}, B: []int{1, 2}, ResultSize: 2},
	}
	res, err := minconv.Batch(context.Background(), jobs, minconv.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range res {
		fmt.Println(r.C)
	}
	// Output:
	// [3 5 8]
	// [1 1]
}
