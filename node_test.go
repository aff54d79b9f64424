package tilepath

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOctile(t *testing.T) {
	Convey("Octile distance mixes straight and diagonal steps", t, func() {
		So(Octile(Point{0, 0}, Point{0, 0}), ShouldEqual, 0)
		So(Octile(Point{0, 0}, Point{3, 0}), ShouldEqual, 30)
		So(Octile(Point{0, 0}, Point{4, 4}), ShouldEqual, 60)
		So(Octile(Point{4, 1}, Point{0, 0}), ShouldEqual, 45)
		So(Octile(Point{1, 4}, Point{0, 0}), ShouldEqual, Octile(Point{0, 0}, Point{1, 4}))
	})
}

func TestNewNode(t *testing.T) {
	Convey("Given a goal at (3,0)", t, func() {
		goal := Point{3, 0}

		Convey("The goal node has no heuristic and no cost", func() {
			node := newNode(nil, noParent, nil, goal, 0)
			So(node.total(), ShouldEqual, 0)
			So(node.parent, ShouldEqual, noParent)
		})

		Convey("A start node carries only the estimate", func() {
			start := newNode(nil, noParent, &goal, Point{0, 0}, 0)
			So(start.direct, ShouldEqual, 0)
			So(start.heuristic, ShouldEqual, 30)

			Convey("Its child accumulates the step cost", func() {
				child := newNode(&start, 0, &goal, Point{1, 1}, CostDiagonal)
				So(child.parent, ShouldEqual, 0)
				So(child.direct, ShouldEqual, 15)
				So(child.heuristic, ShouldEqual, 25)
				So(child.total(), ShouldEqual, 40)
			})
		})

		Convey("Nodes are equal by location only", func() {
			a := newNode(nil, noParent, &goal, Point{1, 2}, 0)
			b := searchNode{loc: Point{1, 2}, direct: 99, parent: 4}
			So(a.sameCell(b), ShouldBeTrue)
		})
	})
}
