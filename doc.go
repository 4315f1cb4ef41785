// Package balltree builds ball trees: binary space-partitioning trees over
// points in R^d where every internal node is bounded by the smallest ball
// centered on its centroid that contains all of its points.
//
// Construction splits a point set along the axis of greatest spread. The
// points are sorted on that axis and divided by index into a lower and an
// upper half; when the set has an odd size the median point belongs to
// both halves. Leaves hold exactly one point.
//
// Basic usage:
//
//	points, err := balltree.GeneratePoints(21, 100, -10, 10, rand.NewPCG(1, 1))
//	root, err := balltree.Build(points)
//	for line := range balltree.Dump(root, 0) {
//		fmt.Println(line)
//	}
//
// Trees are built once and never modified. There is no insertion,
// deletion or rebalancing.
package balltree
