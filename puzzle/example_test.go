package puzzle_test

import (
	"fmt"

	"github.com/katalvlaran/hexcube/puzzle"
)

// ExampleParseDifficulty normalizes user-supplied labels into grades.
func ExampleParseDifficulty() {
	d, err := puzzle.ParseDifficulty(" Medium ")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d, d.GivenCount())
	// Output: medium 2048
}

// ExampleDifficulty_GivenCount lists the revealed-cell budget of every
// grade.
func ExampleDifficulty_GivenCount() {
	for _, d := range puzzle.Difficulties() {
		fmt.Printf("%s: %d given / %d empty\n", d, d.GivenCount(), d.EmptyCount())
	}
	// Output:
	// easy: 2867 given / 1229 empty
	// medium: 2048 given / 2048 empty
	// hard: 1228 given / 2868 empty
}
