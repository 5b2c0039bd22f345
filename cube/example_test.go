package cube_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hexcube/cube"
)

// ExampleValue demonstrates the closed-form cell rule: single cells are
// readable without materializing a cube.
func ExampleValue() {
	fmt.Println(cube.Value(0, 0, 0), cube.Value(0, 15, 0), cube.Value(15, 15, 15))
	// Output: 0 f 3
}

// ExampleCube_WriteLayer renders the first layer of the solved cube with
// block dividers.
func ExampleCube_WriteLayer() {
	c := cube.New()
	if err := c.WriteLayer(os.Stdout, 0); err != nil {
		fmt.Println("error:", err)

		return
	}
	// Output:
	// z = 0
	// 0 1 2 3 | 4 5 6 7 | 8 9 a b | c d e f
	// 4 5 6 7 | 0 1 2 3 | c d e f | 8 9 a b
	// 8 9 a b | c d e f | 0 1 2 3 | 4 5 6 7
	// c d e f | 8 9 a b | 4 5 6 7 | 0 1 2 3
	// -----------+-----------+-----------+-----------
	// 1 0 3 2 | 5 4 7 6 | 9 8 b a | d c f e
	// 5 4 7 6 | 1 0 3 2 | d c f e | 9 8 b a
	// 9 8 b a | d c f e | 1 0 3 2 | 5 4 7 6
	// d c f e | 9 8 b a | 5 4 7 6 | 1 0 3 2
	// -----------+-----------+-----------+-----------
	// 2 3 0 1 | 6 7 4 5 | a b 8 9 | e f c d
	// 6 7 4 5 | 2 3 0 1 | e f c d | a b 8 9
	// a b 8 9 | e f c d | 2 3 0 1 | 6 7 4 5
	// e f c d | a b 8 9 | 6 7 4 5 | 2 3 0 1
	// -----------+-----------+-----------+-----------
	// 3 2 1 0 | 7 6 5 4 | b a 9 8 | f e d c
	// 7 6 5 4 | 3 2 1 0 | f e d c | b a 9 8
	// b a 9 8 | f e d c | 3 2 1 0 | 7 6 5 4
	// f e d c | b a 9 8 | 7 6 5 4 | 3 2 1 0
}

// ExampleParseSymbol parses user-facing hexadecimal digits back into
// symbols.
func ExampleParseSymbol() {
	s, err := cube.ParseSymbol('B')
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output: b
}
