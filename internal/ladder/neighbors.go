package ladder

import "sort"

// Neighbors returns the dictionary words reachable from word by changing
// exactly one position to another letter of the a-z alphabet. The result is
// sorted and never contains word itself. Words whose length differs from the
// dictionary's have no neighbors.
func Neighbors(word string, dict Lookup) []string {
	return neighbors(word, dict, []byte(DefaultAlphabet))
}

// NeighborsIn is Neighbors over a custom alphabet. An empty alphabet yields
// no neighbors.
func NeighborsIn(word string, dict Lookup, alphabet string) []string {
	return neighbors(word, dict, []byte(alphabet))
}

func neighbors(word string, dict Lookup, alphabet []byte) []string {
	if word == "" || dict == nil {
		return nil
	}

	found := make(map[string]struct{})
	candidate := []byte(word)
	for i := 0; i < len(candidate); i++ {
		orig := candidate[i]
		for _, c := range alphabet {
			if c == orig {
				continue
			}
			candidate[i] = c
			if next := string(candidate); dict.Contains(next) {
				found[next] = struct{}{}
			}
		}
		candidate[i] = orig
	}

	if len(found) == 0 {
		return nil
	}
	result := make([]string, 0, len(found))
	for w := range found {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}
