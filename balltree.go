package balltree

import (
	"fmt"
	"math"
	"sort"
)

// RootLabel is the label given to the root node by Build.
const RootLabel = "root"

// Node is a ball tree node. A leaf holds exactly one point. An internal
// node holds two or more points, bounded by the ball (centroid, radius),
// and owns exactly two children built from the lower and upper halves of
// its points sorted along the axis of greatest spread.
type Node struct {
	label  string
	points []Point

	centroid   Point
	radius     float64
	splitAxis  int
	splitPoint Point

	child0, child1 *Node
}

// Build constructs a ball tree over points and labels its root "root".
// points is not modified. It returns ErrEmptyInput for an empty set,
// ErrDimensionMismatch if the points differ in dimension, and
// ErrIndexOutOfRange if they are zero-dimensional.
func Build(points []Point) (*Node, error) {
	return BuildLabeled(points, RootLabel)
}

// BuildLabeled is like Build but names the root node label. Children are
// labeled label+"-0" and label+"-1", recursively.
func BuildLabeled(points []Point, label string) (*Node, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	dims := points[0].Dimension()
	for i, p := range points[1:] {
		if p.Dimension() != dims {
			return nil, fmt.Errorf("%w: point %d has dimension %d, want %d", ErrDimensionMismatch, i+1, p.Dimension(), dims)
		}
	}
	if dims == 0 {
		return nil, fmt.Errorf("%w: points have no axis to split on", ErrIndexOutOfRange)
	}

	own := make([]Point, len(points))
	copy(own, points)
	return construct(own, label)
}

// construct builds the subtree for points, which it takes ownership of and
// reorders.
func construct(points []Point, label string) (*Node, error) {
	n := &Node{label: label, points: points}
	if len(points) == 1 {
		return n, nil
	}

	centroid, err := computeCentroid(points)
	if err != nil {
		return nil, err
	}
	n.centroid = centroid

	// Radius: max distance from the centroid to any point in this node.
	var maxSq float64
	for _, p := range points {
		sq, err := SquaredDistance(p, centroid)
		if err != nil {
			return nil, err
		}
		maxSq = math.Max(maxSq, sq)
	}
	n.radius = math.Sqrt(maxSq)

	n.splitAxis = findSpreadAxis(points)
	sortByAxis(points, n.splitAxis)

	c0 := (len(points) - 1) / 2
	c1 := len(points) / 2
	if n.splitPoint, err = Midpoint(points[c0], points[c1]); err != nil {
		return nil, err
	}

	// For odd counts c0 == c1 and the median point goes to both children.
	if n.child0, err = construct(cloneRange(points[:c0+1]), label+"-0"); err != nil {
		return nil, err
	}
	if n.child1, err = construct(cloneRange(points[c1:]), label+"-1"); err != nil {
		return nil, err
	}
	return n, nil
}

// computeCentroid returns the arithmetic mean of points.
func computeCentroid(points []Point) (Point, error) {
	sum := ConstantPoint(points[0].Dimension(), 0)
	var err error
	for _, p := range points {
		if sum, err = Add(sum, p); err != nil {
			return Point{}, err
		}
	}
	return Scale(sum, float64(len(points)))
}

// findSpreadAxis returns the axis with the greatest spread (max - min).
// An axis whose spread equals the best so far replaces it, so on ties the
// last such axis wins.
func findSpreadAxis(points []Point) int {
	bestAxis := 0
	bestSpread := 0.0
	for axis := 0; axis < points[0].Dimension(); axis++ {
		minVal := math.Inf(1)
		maxVal := math.Inf(-1)
		for _, p := range points {
			v := p.coords[axis]
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		if spread := maxVal - minVal; spread >= bestSpread {
			bestSpread = spread
			bestAxis = axis
		}
	}
	return bestAxis
}

// sortByAxis stably sorts points by their coordinate on axis.
func sortByAxis(points []Point, axis int) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].coords[axis] < points[j].coords[axis]
	})
}

// cloneRange copies a sub-slice. Children sort in place and may share the
// median point.
func cloneRange(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)
	return out
}

// Label returns the node's path label, e.g. "root-0-1".
func (n *Node) Label() string { return n.label }

// IsLeaf reports whether the node holds exactly one point.
func (n *Node) IsLeaf() bool { return n.child0 == nil && n.child1 == nil }

// Point returns the single point held by a leaf. ok is false for internal
// nodes.
func (n *Node) Point() (p Point, ok bool) {
	if !n.IsLeaf() {
		return Point{}, false
	}
	return n.points[0], true
}

// Points returns the points owned by the node. For internal nodes they are
// sorted along SplitAxis. The returned slice must not be modified.
func (n *Node) Points() []Point { return n.points }

// Centroid returns the mean of the node's points. ok is false for leaves.
func (n *Node) Centroid() (c Point, ok bool) {
	if n.IsLeaf() {
		return Point{}, false
	}
	return n.centroid, true
}

// Radius returns the distance from the centroid to the farthest point in
// the node. It is 0 for leaves.
func (n *Node) Radius() float64 { return n.radius }

// SplitAxis returns the axis the node's points were partitioned on, or -1
// for leaves.
func (n *Node) SplitAxis() int {
	if n.IsLeaf() {
		return -1
	}
	return n.splitAxis
}

// SplitPoint returns the midpoint of the two median points along the split
// axis. It is diagnostic only; partitioning is by index. ok is false for
// leaves.
func (n *Node) SplitPoint() (p Point, ok bool) {
	if n.IsLeaf() {
		return Point{}, false
	}
	return n.splitPoint, true
}

// Children returns the two subtrees of an internal node, or nil, nil for a
// leaf.
func (n *Node) Children() (child0, child1 *Node) { return n.child0, n.child1 }

// Walk visits the subtree rooted at n in pre-order, passing each node and
// its depth relative to n. Walk stops as soon as fn returns false and
// reports whether it ran to completion.
func (n *Node) Walk(fn func(node *Node, depth int) bool) bool {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) bool {
	if !fn(n, depth) {
		return false
	}
	if n.IsLeaf() {
		return true
	}
	return n.child0.walk(fn, depth+1) && n.child1.walk(fn, depth+1)
}

// Leaves returns the leaf points of the subtree in pre-order. A point that
// was the median of an odd-sized node appears once per leaf holding it.
func (n *Node) Leaves() []Point {
	var out []Point
	n.Walk(func(node *Node, _ int) bool {
		if p, ok := node.Point(); ok {
			out = append(out, p)
		}
		return true
	})
	return out
}
