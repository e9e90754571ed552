package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-lazy-collections/arr"
)

func ExampleRotate() {
	fmt.Println(arr.Rotate([]int{1, 2, 3, 4, 5}, 2))
	// Output: [4 5 1 2 3]
}

func ExampleSliceStep() {
	fmt.Println(arr.SliceStep([]int{0, 1, 2, 3, 4}, 4, arr.Unbounded, -2))
	// Output: [4 2 0]
}

func ExampleChunk() {
	for _, c := range arr.Chunk([]int{1, 2, 3, 4, 5}, 2) {
		fmt.Println(c)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleGet() {
	m := map[string]any{"user": map[string]any{"name": "Alice"}}
	fmt.Println(arr.Get(m, "user.name"))
	// Output: Alice true
}
