package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-pcm/pcm/sample"
	"github.com/cwbudde/algo-pcm/pcm/signal"
)

func ExampleSaw() {
	rate, _ := signal.NewRate(4)
	saw := signal.Saw(rate.ConstHz(1).Phase())

	for range 4 {
		fmt.Println(saw.Next())
	}

	// Output:
	// [1]
	// [0.5]
	// [0]
	// [-0.5]
}

func ExampleFromInterleaved() {
	src, _ := signal.FromInterleaved([]sample.F64{0.1, 0.2, -0.1, -0.2}, 2)
	for !src.Exhausted() {
		fmt.Println(src.Next())
	}

	// Output:
	// [0.1 0.2]
	// [-0.1 -0.2]
}
