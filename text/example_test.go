package text_test

import (
	"fmt"

	"github.com/hasbyte1/go-lazy-collections/collections"
	"github.com/hasbyte1/go-lazy-collections/text"
)

func ExampleKeep() {
	c := collections.New("abc", "a1", "xyz")
	fmt.Println(text.Keep(c, text.IsAlpha, true).All())
	// Output: [a1]
}

func ExampleSub() {
	out, _ := text.Sub(collections.New("2024-01-31"), `(\d+)-(\d+)-(\d+)`, "$3/$2/$1", 0)
	fmt.Println(out.All())
	// Output: [31/01/2024]
}

func ExampleCenter() {
	fmt.Println(text.Center(collections.New("go"), 6, '*').All())
	// Output: [**go**]
}
