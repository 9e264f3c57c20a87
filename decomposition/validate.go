package decomposition

// IsValidTree checks all six properties a tree decomposition must satisfy
// against its reference graph: connected, acyclic, bag sizes within budget,
// vertex coverage, edge coverage, and the running-intersection property.
// Complexity: O(bags^2 + n*bags) dominated by running-intersection, which
// re-walks the bag tree once per graph vertex.
func (t *Tree) IsValidTree() bool {
	return t.isConnected() &&
		t.noCycles() &&
		t.validBagSizes() &&
		t.noMissingVertex() &&
		t.noMissingEdge() &&
		t.satisfiesConnectivity()
}

func (t *Tree) isConnected() bool {
	ids := t.Bags()
	if len(ids) == 0 {
		return true
	}
	visited := t.reachableFrom(ids[0])

	return len(visited) == len(ids)
}

// reachableFrom runs an iterative BFS over the bag adjacency starting at
// root, returning the set of reached bag ids.
func (t *Tree) reachableFrom(root int) map[int]bool {
	visited := map[int]bool{root: true}
	queue := []int{root}
	for len(queue) > 0 {
		bag := queue[0]
		queue = queue[1:]
		for _, next := range t.Neighbours(bag) {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return visited
}

// noCycles walks the bag tree with an explicit stack, tracking each bag's
// parent; a back edge to an already-visited non-parent bag means a cycle.
func (t *Tree) noCycles() bool {
	ids := t.Bags()
	if len(ids) == 0 {
		return true
	}

	type frame struct{ bag, parent int }
	visited := map[int]bool{}
	stack := []frame{{ids[0], -1}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.bag] {
			return false
		}
		visited[f.bag] = true
		for _, next := range t.Neighbours(f.bag) {
			if next == f.parent {
				continue
			}
			if visited[next] {
				return false
			}
			stack = append(stack, frame{next, f.bag})
		}
	}

	return true
}

func (t *Tree) validBagSizes() bool {
	for _, id := range t.Bags() {
		if t.bags[id].Len() > t.k+1 {
			return false
		}
	}

	return true
}

func (t *Tree) noMissingVertex() bool {
	for _, v := range t.graph.Vertices() {
		found := false
		for _, id := range t.Bags() {
			if t.bags[id].Contains(v) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func (t *Tree) noMissingEdge() bool {
	for _, e := range t.graph.Edges() {
		found := false
		for _, id := range t.Bags() {
			if t.bags[id].Contains(e.U) && t.bags[id].Contains(e.V) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// satisfiesConnectivity checks, for every graph vertex, that the bags
// containing it form a connected subtree: a recursive DFS restricted to
// bags containing v, starting from any one of them, must reach every bag
// that contains v and no bag that doesn't.
func (t *Tree) satisfiesConnectivity() bool {
	for _, v := range t.graph.Vertices() {
		var start int
		has := false
		for _, id := range t.Bags() {
			if t.bags[id].Contains(v) {
				start = id
				has = true
				break
			}
		}
		if !has {
			continue
		}

		visited := map[int]bool{}
		t.visitBagsWithVertex(v, start, visited)

		for _, id := range t.Bags() {
			if visited[id] != t.bags[id].Contains(v) {
				return false
			}
		}
	}

	return true
}

func (t *Tree) visitBagsWithVertex(v, bag int, visited map[int]bool) {
	if visited[bag] {
		return
	}
	visited[bag] = true
	for _, next := range t.Neighbours(bag) {
		if t.bags[next].Contains(v) {
			t.visitBagsWithVertex(v, next, visited)
		}
	}
}
