package balltree

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Dump returns the lines of a depth-first, pre-order listing of the tree.
// Each line is depth "|" markers, a "-", the node label and, for leaves,
// the point identifier in parentheses:
//
//	-root
//	|-root-0 (3)
//	|-root-1 (7)
//
// The sequence is lazy and can be ranged over any number of times.
func Dump(node *Node, depth int) iter.Seq[string] {
	return func(yield func(string) bool) {
		node.Walk(func(n *Node, d int) bool {
			return yield(dumpLine(n, depth+d))
		})
	}
}

func dumpLine(n *Node, depth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("|", depth))
	sb.WriteByte('-')
	sb.WriteString(n.label)
	if p, ok := n.Point(); ok {
		sb.WriteString(" (")
		if id, ok := p.ID(); ok {
			sb.WriteString(strconv.Itoa(id))
		} else {
			sb.WriteByte('-')
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// WriteTo writes the Dump of node, one line per node, to w.
func WriteTo(w io.Writer, node *Node) error {
	for line := range Dump(node, 0) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
