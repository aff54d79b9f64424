package tilepath

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func neighborsOf(g Grid, at Point) []searchNode {
	current := newNode(nil, noParent, nil, at, 0)
	return expandNeighbors(g, g.Width(), g.Height(), current, 0, Point{0, 0}, nil)
}

func locations(nodes []searchNode) []Point {
	points := make([]Point, len(nodes))
	for i, n := range nodes {
		points[i] = n.loc
	}
	return points
}

func TestExpandNeighbors(t *testing.T) {
	Convey("Given an open 3x3 grid", t, func() {
		g := openGrid(3, 3)

		Convey("The centre has eight neighbours in fixed order", func() {
			nodes := neighborsOf(g, Point{1, 1})
			So(locations(nodes), ShouldResemble, []Point{
				{0, 1}, {2, 1}, {1, 0}, {1, 2},
				{0, 0}, {2, 0}, {0, 2}, {2, 2},
			})
			for _, n := range nodes[:4] {
				So(n.direct, ShouldEqual, CostStraight)
			}
			for _, n := range nodes[4:] {
				So(n.direct, ShouldEqual, CostDiagonal)
			}
		})

		Convey("A corner only sees cells inside the grid", func() {
			So(locations(neighborsOf(g, Point{0, 0})), ShouldResemble, []Point{{1, 0}, {0, 1}, {1, 1}})
			So(locations(neighborsOf(g, Point{2, 2})), ShouldResemble, []Point{{1, 2}, {2, 1}, {1, 1}})
		})
	})

	Convey("Given a blocked cell left of the centre", t, func() {
		g := gridOf(
			"...",
			"#..",
			"...",
		)

		Convey("Neither left diagonal is offered", func() {
			So(locations(neighborsOf(g, Point{1, 1})), ShouldResemble, []Point{
				{2, 1}, {1, 0}, {1, 2}, {2, 0}, {2, 2},
			})
		})
	})

	Convey("Given a blocked diagonal with open flanks", t, func() {
		g := gridOf(
			"#..",
			"...",
			"...",
		)

		Convey("Only that diagonal is missing", func() {
			So(locations(neighborsOf(g, Point{1, 1})), ShouldNotContain, Point{0, 0})
			So(neighborsOf(g, Point{1, 1}), ShouldHaveLength, 7)
		})
	})

	Convey("Given a dead end", t, func() {
		g := gridOf(
			"###",
			"#.#",
			"###",
		)

		Convey("There are no neighbours", func() {
			So(neighborsOf(g, Point{1, 1}), ShouldBeEmpty)
		})
	})
}
