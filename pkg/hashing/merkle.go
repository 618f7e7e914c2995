package hashing

// Reduce collapses an ordered sequence of hex digests into a single
// root digest by repeated pairwise hashing. Each round groups the
// sequence into adjacent pairs and hashes the concatenation of the two
// hex strings (the strings themselves, not the decoded bytes). A
// trailing unpaired element is hashed alone - it is NOT paired with a
// copy of itself. The network's existing transaction hashes depend on
// this exact odd-element rule, so it must never be changed to the more
// common duplicate-the-last-leaf scheme.
//
// A sequence of one element is returned unchanged. The returned slice
// always has length one for any non-empty input.
func Reduce(leaves []string) []string {
	round := leaves
	for len(round) > 1 {
		next := make([]string, 0, (len(round)+1)/2)
		for i := 0; i < len(round); i += 2 {
			if i+1 < len(round) {
				next = append(next, SumString(round[i]+round[i+1]))
			} else {
				next = append(next, SumString(round[i]))
			}
		}
		round = next
	}

	return round
}

// Root reduces leaves and returns the single root digest.
// It returns the empty string for an empty sequence.
func Root(leaves []string) string {
	reduced := Reduce(leaves)
	if len(reduced) == 0 {
		return ""
	}

	return reduced[0]
}
