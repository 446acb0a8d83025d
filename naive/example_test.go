package naive_test

import (
	"fmt"

	"github.com/katalvlaran/tropical/naive"
)

// ExampleConvolveIndex convolves two short sequences and reports, per slot,
// which element of a realizes the minimum.
func ExampleConvolveIndex() {
	a := []float64{1, 3}
	b := []float64{2, 5}

	c, idx, err := naive.ConvolveIndex(a, b, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c, idx)
	// Output: [3 5 8] [0 1 1]
}

// ExampleConvolve_truncated asks for the first two slots only.
func ExampleConvolve_truncated() {
	c, err := naive.Convolve([]int{4, 1, 7}, []int{0, 2}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output: [4 1]
}
