package tilepath

import "fmt"

// Step costs. Diagonal is 10·√2 rounded to keep all costs integral.
const (
	CostStraight = 10
	CostDiagonal = 15
)

// Point is an integer cell coordinate. Column X grows right, row Y grows down.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Octile returns the cost of the cheapest obstacle-free route between two cells.
// It never overestimates, which keeps A* optimal with the 10/15 step costs.
func Octile(from, to Point) int {
	dx := abs(from.X - to.X)
	dy := abs(from.Y - to.Y)
	if dx < dy {
		dx, dy = dy, dx
	}
	return CostStraight*dx + (CostDiagonal-CostStraight)*dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

const noParent int = -1

// searchNode is a candidate cell with its cost breakdown. parent is a handle
// into the nodeArena of the search that created it.
type searchNode struct {
	loc       Point
	parent    int
	direct    int
	heuristic int
}

// newNode builds a node reached from parent with the given step cost. A nil
// goal yields a zero heuristic, which is how the goal node itself is built.
func newNode(parent *searchNode, parentHandle int, goal *Point, loc Point, step int) searchNode {
	node := searchNode{loc: loc, parent: noParent}
	if parent != nil {
		node.parent = parentHandle
		node.direct = parent.direct + step
	}
	if goal != nil {
		node.heuristic = Octile(loc, *goal)
	}
	return node
}

func (n searchNode) total() int { return n.direct + n.heuristic }

// sameCell reports node identity, which is defined by location alone.
func (n searchNode) sameCell(other searchNode) bool { return n.loc == other.loc }

// nodeArena owns every node a single search keeps.
type nodeArena []searchNode

func (a *nodeArena) add(node searchNode) int {
	*a = append(*a, node)
	return len(*a) - 1
}

func (a nodeArena) parentOf(handle int) int { return a[handle].parent }

func (a nodeArena) locOf(handle int) Point { return a[handle].loc }
