package kmap_test

import (
	"fmt"

	"github.com/db47h/kmap"
)

func ExampleMinimize() {
	g, err := kmap.ParseGrid("m(0, 2) + d(8, 10)")
	if err != nil {
		panic(err)
	}
	fmt.Print(g)

	r := kmap.Minimize(g)
	fmt.Println(r.Equation)
	for _, t := range r.Terms {
		fmt.Println(t.Literals, t.CellIndices)
	}

	// Output:
	// AB\CD  00  01  11  10
	//    00   1   0   0   1
	//    01   0   0   0   0
	//    11   0   0   0   0
	//    10   X   0   0   X
	// B'D'
	// B'D' [0 2 8 10]
}

func ExampleMinimizeExact() {
	g, err := kmap.ParseGrid("m(3, 4, 5, 7, 9, 13, 14, 15)")
	if err != nil {
		panic(err)
	}
	greedy := kmap.Minimize(g)
	exact, err := kmap.MinimizeExact(g)
	if err != nil {
		panic(err)
	}
	fmt.Println(greedy.Equation)
	fmt.Println(exact.Equation)

	// Output:
	// BD + A'CD + A'BC' + AC'D + ABC
	// A'CD + A'BC' + AC'D + ABC
}

func ExampleVerify() {
	g, err := kmap.ParseGrid("m(1, 3)")
	if err != nil {
		panic(err)
	}
	r := kmap.Minimize(g)
	fmt.Println(r.Equation, kmap.Verify(g, r))

	// tamper with the result
	r.Terms = r.Terms[:0]
	fmt.Println(kmap.Verify(g, r))

	// Output:
	// A'B'D <nil>
	// A'B'D is false for true minterm 1
}
