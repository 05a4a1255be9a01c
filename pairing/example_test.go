package pairing_test

import (
	"fmt"

	"github.com/katalvlaran/ninefold/digits"
	"github.com/katalvlaran/ninefold/pairing"
	"github.com/katalvlaran/ninefold/track"
)

func ExampleGlobalPairs() {
	nineSum := track.Reference().Get(track.Track2)
	g := pairing.GlobalPairs(nineSum, digits.MustNew(1, 8, 8, 2, 7, 7, 0))

	fmt.Printf("valid=%d total=%d ratio=%.3f\n", g.Valid, g.Total, g.Ratio)
	for _, tc := range g.Types {
		fmt.Printf("%s %s %d\n", tc.Type, tc.Polarity, tc.Count)
	}
	fmt.Println(g.Unpaired)
	// Output:
	// valid=2 total=3 ratio=0.667
	// A yang 1
	// B yin 1
	// map[0:1 7:1 8:1]
}
