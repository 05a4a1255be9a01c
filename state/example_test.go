package state_test

import (
	"fmt"

	"github.com/katalvlaran/ninefold/state"
)

// ExampleEncode shows a part "small, large, small" and its complement.
func ExampleEncode() {
	s := state.Encode(1, 0, 1)
	c := state.Complement(s)
	fmt.Printf("state=%d complement=%d pairs=%v\n", s, c, state.Pairs(s, c))
	// Output:
	// state=3 complement=6 pairs=true
}
