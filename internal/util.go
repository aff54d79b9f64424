package internal

// ReconstructPath walks parent handles from leaf back to the root, the node
// whose parent is negative, and returns the locations in root-to-leaf order.
func ReconstructPath[Loc any](
	leaf int,
	parentOf func(int) int,
	locOf func(int) Loc,
) []Loc {
	path := []Loc{locOf(leaf)}
	for current := parentOf(leaf); current >= 0; current = parentOf(current) {
		path = append(path, locOf(current))
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
