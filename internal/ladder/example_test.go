package ladder_test

import (
	"fmt"

	"github.com/pfrederiksen/wordladder/internal/ladder"
)

func ExampleShortestLadders() {
	dict, err := ladder.NewDictionary([]string{"cat", "cot", "cog", "dot", "dog", "can", "con"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ladders, err := ladder.ShortestLadders(dict, "cat", "dog")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, l := range ladders {
		fmt.Println(l)
	}
	// Output:
	// cat cot cog dog
	// cat cot dot dog
}

func ExampleNeighbors() {
	dict, _ := ladder.NewDictionary([]string{"cat", "cot", "rat", "can", "con", "dog"})
	fmt.Println(ladder.Neighbors("cat", dict))
	fmt.Println(len(ladder.Neighbors("zzz", dict)))
	// Output:
	// [can cot rat]
	// 0
}
