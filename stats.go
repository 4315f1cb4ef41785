package balltree

// TreeStats summarizes the shape of a tree.
type TreeStats struct {
	Nodes    int // internal + leaf
	Leaves   int
	MaxDepth int // root is depth 0
}

// Stats walks the tree rooted at node and counts its nodes.
func Stats(node *Node) TreeStats {
	var s TreeStats
	node.Walk(func(n *Node, depth int) bool {
		s.Nodes++
		if n.IsLeaf() {
			s.Leaves++
		}
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		return true
	})
	return s
}

// ExpectedLeaves returns the number of leaves Build produces for n points.
// It exceeds n whenever an odd-sized node shares its median with both
// children.
func ExpectedLeaves(n int) int {
	if n <= 1 {
		return n
	}
	return ExpectedLeaves((n-1)/2+1) + ExpectedLeaves(n-n/2)
}
