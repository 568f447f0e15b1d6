package interval_test

import (
	"fmt"

	"github.com/grailbio/intervals/interval"
)

func Example() {
	set, err := interval.FromStrings("0-2", "1-3", "5-6")
	if err != nil {
		panic(err)
	}
	merged := set.MergeIntersecting()
	fmt.Println(merged)

	bins := interval.FromEdges([]float64{0, 1, 2, 3})
	for _, value := range []float64{-5, 1.5, 10} {
		idx, err := bins.ContainingBin(value)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%g -> bin %d\n", value, idx)
	}

	// Output:
	// 0.000000-3.000000,5.000000-6.000000
	// -5 -> bin 0
	// 1.5 -> bin 1
	// 10 -> bin 2
}
