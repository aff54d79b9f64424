package tilepath

// expandNeighbors appends the valid 8-connected neighbours of the node at
// handle to buf. Orthogonal cells come first (left, right, up, down), then the
// diagonals (up-left, up-right, down-left, down-right); the order feeds the
// frontier's tie-break and must stay fixed.
//
// A diagonal is only considered when both orthogonal cells flanking it were
// valid, so no step cuts a blocked corner. Bounds are always checked before
// the grid's walkability predicate is consulted.
func expandNeighbors(g Grid, width, height int, current searchNode, handle int, goal Point, buf []searchNode) []searchNode {
	x, y := current.loc.X, current.loc.Y
	open := func(cx, cy int) bool {
		return cx >= 0 && cx < width && cy >= 0 && cy < height && g.IsWalkable(cx, cy)
	}
	add := func(dx, dy, step int) {
		buf = append(buf, newNode(&current, handle, &goal, current.loc.Add(dx, dy), step))
	}

	upLeft, upRight, downLeft, downRight := true, true, true, true

	if open(x-1, y) {
		add(-1, 0, CostStraight)
	} else {
		upLeft, downLeft = false, false
	}
	if open(x+1, y) {
		add(1, 0, CostStraight)
	} else {
		upRight, downRight = false, false
	}
	if open(x, y-1) {
		add(0, -1, CostStraight)
	} else {
		upLeft, upRight = false, false
	}
	if open(x, y+1) {
		add(0, 1, CostStraight)
	} else {
		downLeft, downRight = false, false
	}

	// Flanking cells were in bounds, so the diagonal is too.
	if upLeft && g.IsWalkable(x-1, y-1) {
		add(-1, -1, CostDiagonal)
	}
	if upRight && g.IsWalkable(x+1, y-1) {
		add(1, -1, CostDiagonal)
	}
	if downLeft && g.IsWalkable(x-1, y+1) {
		add(-1, 1, CostDiagonal)
	}
	if downRight && g.IsWalkable(x+1, y+1) {
		add(1, 1, CostDiagonal)
	}
	return buf
}
