// File: subsetsum/example_test.go
package subsetsum_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/sumset/subsetsum"
	"github.com/katalvlaran/sumset/weighted"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Find
////////////////////////////////////////////////////////////////////////////////

// ExampleFind looks for subsets of {1,2,3,4} that add up to 5.
// The finder is best-effort: here it happens to report both answers.
func ExampleFind() {
	c, _ := weighted.New([]int{4, 3, 2, 1}, func(x int) int { return x }, cmp.Compare[int])

	for comb := range subsetsum.Find(c, 5).All() {
		fmt.Println(comb)
	}

	// Output:
	// [2 3]
	// [1 4]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Combinations with consume
////////////////////////////////////////////////////////////////////////////////

// invoice is a payable amount; two invoices with equal amounts are
// interchangeable for matching purposes.
type invoice struct {
	ID     string
	Amount int
}

// ExampleCombinations packs invoices into payments of at most 100, largest
// groups first, consuming each packed group so no invoice is paid twice.
func ExampleCombinations() {
	invoices := []invoice{
		{"inv-1", 40}, {"inv-2", 70}, {"inv-3", 30}, {"inv-4", 60}, {"inv-5", 30},
	}
	c, _ := weighted.New(invoices,
		func(i invoice) int { return i.Amount },
		func(a, b invoice) int { return cmp.Compare(a.Amount, b.Amount) },
		weighted.WithThreshold(100),
	)

	it := subsetsum.Combinations(c)
	for it.Next() {
		group := it.Combination()
		fmt.Print("pay:")
		for _, inv := range group {
			fmt.Print(" ", inv.ID)
		}
		fmt.Println()
		_ = it.Remove()
	}
	fmt.Println("left:", c.Size(), "quantity:", c.Quantity())

	// Output:
	// pay: inv-3 inv-5 inv-1
	// pay: inv-4
	// pay: inv-2
	// left: 0 quantity: 0
}
