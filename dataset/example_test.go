package dataset_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/divconq/closestpair"
	"github.com/katalvlaran/divconq/dataset"
)

// ExampleWritePoints shows the points file layout.
func ExampleWritePoints() {
	pts := []closestpair.Point{{X: 2, Y: 3}, {X: -0.5, Y: 1e3}}
	_ = dataset.WritePoints(os.Stdout, pts)
	// Output:
	// 2
	// 2.000000 3.000000
	// -0.500000 1000.000000
}

// ExampleReadIntegers parses an operand file and reports a malformed one.
func ExampleReadIntegers() {
	x, y, _ := dataset.ReadIntegers(strings.NewReader("1234\n5678\n"))
	fmt.Println(x, y)

	_, _, err := dataset.ReadIntegers(strings.NewReader("1234\n56x8\n"))
	fmt.Println(err)
	// Output:
	// 1234 5678
	// dataset: malformed input: line 2: "56x8" is not a decimal integer
}
