package contour

// node is one edge crossing in the arena. nbr[:deg] lists the crossings it
// still shares an unconsumed segment with, oldest first.
type node struct {
	nbr [2]int
	deg uint8
}

// edgeGraph is an arena-indexed adjacency table over the flat edge index
// range. It is rebuilt for each threshold and consumed by walk.
type edgeGraph struct {
	nodes []node
}

// reset sizes the arena for n indices and clears every node.
func (g *edgeGraph) reset(n int) {
	if cap(g.nodes) < n {
		g.nodes = make([]node, n)
		return
	}
	g.nodes = g.nodes[:n]
	clear(g.nodes)
}

// link records the segment u–v. A node already holding two segments makes
// the graph unusable; the offending node is returned in a *TopologyError.
func (g *edgeGraph) link(u, v int) error {
	for _, k := range [2]int{u, v} {
		if g.nodes[k].deg == 2 {
			return &TopologyError{Node: k}
		}
	}
	g.push(u, v)
	g.push(v, u)

	return nil
}

func (g *edgeGraph) push(u, v int) {
	n := &g.nodes[u]
	n.nbr[n.deg] = v
	n.deg++
}

// unlink removes one occurrence of v from u's neighbours.
func (g *edgeGraph) unlink(u, v int) {
	n := &g.nodes[u]
	for k := 0; k < int(n.deg); k++ {
		if n.nbr[k] == v {
			n.nbr[k] = n.nbr[n.deg-1]
			n.deg--
			return
		}
	}
}

// walk starts at u and follows unconsumed segments, always taking the most
// recently attached one, until it reaches a node with none left. Every
// traversed segment is removed from both endpoints.
func (g *edgeGraph) walk(u int) []int {
	path := []int{u}
	for g.nodes[u].deg > 0 {
		n := &g.nodes[u]
		next := n.nbr[n.deg-1]
		n.deg--
		g.unlink(next, u)
		path = append(path, next)
		u = next
	}

	return path
}

// decompose consumes the whole graph into maximal paths. Degree-1 nodes
// are taken as starts first so that open polylines are never split; only
// closed loops remain afterwards, and each is entered at its smallest index.
func (g *edgeGraph) decompose() [][]int {
	var paths [][]int
	for want := uint8(1); want <= 2; want++ {
		for u := range g.nodes {
			if g.nodes[u].deg == want {
				paths = append(paths, g.walk(u))
			}
		}
	}

	return paths
}

// assemble links all segments into g and decomposes it.
func (g *edgeGraph) assemble(n int, segs []Segment) ([][]int, error) {
	g.reset(n)
	for _, s := range segs {
		if err := g.link(s.A, s.B); err != nil {
			return nil, err
		}
	}

	return g.decompose(), nil
}
