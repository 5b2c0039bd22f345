package verify_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hexcube/cube"
	"github.com/katalvlaran/hexcube/verify"
)

// ExampleVerify certifies the canonical construction: the audit passes
// with no violations.
func ExampleVerify() {
	vs, err := verify.Verify(cube.New(), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("violations:", len(vs))
	// Output: violations: 0
}

// ExampleVerify_collectAll audits a deliberately corrupted grid and
// classifies the outcome with errors.Is.
func ExampleVerify_collectAll() {
	g := solvedTamperGrid()
	g.cells[0][0][1] = 0 // duplicate the origin symbol into (0,1,0)

	opts := verify.DefaultOptions()
	opts.CollectAll = true

	vs, err := verify.Verify(g, &opts)
	fmt.Println("violation:", errors.Is(err, verify.ErrViolation))
	fmt.Println("framings:", len(vs))
	fmt.Println("first:", vs[0].Error())
	// Output:
	// violation: true
	// framings: 10
	// first: verify: beam (row=0, col=1): symbol 0 repeats at (0,1,5)
}
