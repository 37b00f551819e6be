package vertex_test

import (
	"fmt"
	"math/big"

	"github.com/arclimit/veva/lieconf"
	"github.com/arclimit/veva/vertex"
)

// ExampleAlgebra_FindSingular locates the Ising null vector: build the
// Virasoro vacuum algebra at c = 1/2 and search degree 6.
func ExampleAlgebra_FindSingular() {
	v, err := vertex.New(lieconf.Virasoro(), map[string]*big.Rat{"C": big.NewRat(1, 2)})
	if err != nil {
		panic(err)
	}

	sing, err := v.FindSingular(big.NewRat(6, 1))
	if err != nil {
		panic(err)
	}
	for _, s := range sing {
		fmt.Println(s)
	}
	// Output:
	// L_-2L_-2L_-2|0> + 93/64*L_-3L_-3|0> - 33/8*L_-4L_-2|0> - 27/16*L_-6|0>
}

// ExampleElement_Bracket prints the operator product expansion of the
// conformal vector with itself.
func ExampleElement_Bracket() {
	v, err := vertex.New(lieconf.Virasoro(), map[string]*big.Rat{"C": big.NewRat(1, 2)})
	if err != nil {
		panic(err)
	}
	l := v.Gen(0)

	br := l.Bracket(l)
	for n := 0; n <= 3; n++ {
		if e, ok := br[n]; ok {
			fmt.Printf("pole %d: %s\n", n, e)
		}
	}
	// Output:
	// pole 0: L_-3|0>
	// pole 1: 2*L_-2|0>
	// pole 3: 1/4*|0>
}

// ExampleElement_Mul shows quasi-associativity of the normal-ordered
// product.
func ExampleElement_Mul() {
	v, err := vertex.New(lieconf.Virasoro(), map[string]*big.Rat{"C": big.NewRat(1, 2)})
	if err != nil {
		panic(err)
	}
	l := v.Gen(0)

	fmt.Println(l.Mul(l.Mul(l)))
	fmt.Println(l.Mul(l).Mul(l))
	// Output:
	// L_-2L_-2L_-2|0>
	// L_-2L_-2L_-2|0> + 2*L_-3L_-3|0> + 4*L_-4L_-2|0> + 1/2*L_-6|0>
}
