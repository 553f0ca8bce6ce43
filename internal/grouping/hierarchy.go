package grouping

// Node is one entry of a projected hierarchy. Children appear in input order.
type Node[T any] struct {
	Item     T
	Children []*Node[T]
}

// Hierarchy is the result of projecting flat parent-referencing records into
// a forest. Records whose parent reference does not resolve within the input
// set land in Orphans rather than being dropped.
type Hierarchy[T any] struct {
	Roots   []*Node[T]
	Orphans []*Node[T]
}

// BuildHierarchy assembles an N-level forest from flat records. idFn yields
// the record's own identifier; parentFn yields the parent reference, empty
// for roots. A record pointing at an id absent from items becomes an orphan;
// its own children still attach beneath it. Parent cycles are broken at
// their first record in input order, which becomes an orphan carrying the
// rest of the cycle beneath it.
func BuildHierarchy[T any](items []T, idFn func(T) string, parentFn func(T) string) Hierarchy[T] {
	nodes := make(map[string]*Node[T], len(items))
	ordered := make([]*Node[T], 0, len(items))
	for _, item := range items {
		node := &Node[T]{Item: item}
		nodes[idFn(item)] = node
		ordered = append(ordered, node)
	}

	detached := make(map[*Node[T]]bool)
	closesCycle := func(node, parent *Node[T]) bool {
		cur := parent
		for steps := 0; cur != nil && steps < len(ordered); steps++ {
			if cur == node {
				return true
			}
			if detached[cur] {
				return false
			}
			parentID := parentFn(cur.Item)
			if parentID == "" {
				return false
			}
			cur = nodes[parentID]
		}
		return false
	}

	var h Hierarchy[T]
	for _, node := range ordered {
		parentID := parentFn(node.Item)
		if parentID == "" {
			h.Roots = append(h.Roots, node)
			continue
		}
		parent, ok := nodes[parentID]
		if !ok || closesCycle(node, parent) {
			detached[node] = true
			h.Orphans = append(h.Orphans, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}
	return h
}

// Walk visits every node of the hierarchy depth-first, roots before orphans.
func (h Hierarchy[T]) Walk(visit func(node *Node[T], depth int)) {
	var walk func(n *Node[T], depth int)
	walk = func(n *Node[T], depth int) {
		visit(n, depth)
		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	for _, root := range h.Roots {
		walk(root, 0)
	}
	for _, orphan := range h.Orphans {
		walk(orphan, 0)
	}
}

// Count returns the total number of nodes reachable from roots and orphans.
func (h Hierarchy[T]) Count() int {
	total := 0
	h.Walk(func(*Node[T], int) { total++ })
	return total
}
