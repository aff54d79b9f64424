package tilepath

type cellStatus uint8

const (
	unvisited cellStatus = iota
	statusOpen
	statusClosed
)

// visitedIndex records per cell whether it is open or closed, and the best
// known total cost for open cells. Cells are packed as y*width+x.
type visitedIndex struct {
	status []cellStatus
	cost   []int
}

func newVisitedIndex(cells int) *visitedIndex {
	return &visitedIndex{
		status: make([]cellStatus, cells),
		cost:   make([]int, cells),
	}
}

func (v *visitedIndex) recordOpen(cell, totalCost int) {
	v.status[cell] = statusOpen
	v.cost[cell] = totalCost
}

// forgetCost drops the stored cost of an open cell about to be expanded.
func (v *visitedIndex) forgetCost(cell int) { v.cost[cell] = 0 }

// close marks cell closed. Closed cells are never reopened, so no cost is kept.
func (v *visitedIndex) close(cell int) {
	v.status[cell] = statusClosed
	v.cost[cell] = 0
}

func (v *visitedIndex) statusOf(cell int) cellStatus { return v.status[cell] }

// bestOpenCost is only meaningful while statusOf(cell) is statusOpen.
func (v *visitedIndex) bestOpenCost(cell int) int { return v.cost[cell] }

// cellsWith lists cells in the given status in ascending cell order.
func (v *visitedIndex) cellsWith(status cellStatus) []int {
	var cells []int
	for cell, s := range v.status {
		if s == status {
			cells = append(cells, cell)
		}
	}
	return cells
}
