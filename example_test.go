package mobius_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mobius"
)

// ExampleNew demonstrates constructing a strip and querying the two
// geometric estimates. The scalars depend on the resolution, so the example
// prints grid facts and sign checks rather than raw floats.
func ExampleNew() {
	strip, err := mobius.New(3.0, 1.0, 100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("resolution:", strip.Resolution())
	fmt.Println("area positive:", strip.SurfaceArea() > 0)
	fmt.Println("edge positive:", strip.EdgeLength() > 0)
	// Output:
	// resolution: 100
	// area positive: true
	// edge positive: true
}

// ExampleNew_invalid shows the single validation error kind in action.
func ExampleNew_invalid() {
	_, err := mobius.New(-3.0, 1.0, 100)
	fmt.Println(errors.Is(err, mobius.ErrInvalidParameter))
	// Output:
	// true
}

// ExampleStrip_EdgeIndex shows the overlay indices a renderer consumes:
// the boundary row nearest +w/2 and the centerline row nearest 0.
func ExampleStrip_EdgeIndex() {
	strip, _ := mobius.New(3.0, 1.0, 5)

	fmt.Println("edge row:", strip.EdgeIndex())
	fmt.Println("centerline row:", strip.CenterlineIndex())
	fmt.Printf("v at edge row: %.2f\n", strip.VValues()[strip.EdgeIndex()])
	// Output:
	// edge row: 4
	// centerline row: 2
	// v at edge row: 0.50
}

// ExampleNearestIndex demonstrates the reusable closest-value lookup.
func ExampleNearestIndex() {
	values := []float64{-0.5, -0.25, 0, 0.25, 0.5}

	fmt.Println(mobius.NearestIndex(values, 0.4))
	fmt.Println(mobius.NearestIndex(values, -1))
	fmt.Println(mobius.NearestIndex(nil, 0))
	// Output:
	// 4
	// 0
	// -1
}
