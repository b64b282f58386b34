package graph

// PermanentGraph is the compact, read-only commit graph produced by Build.
//
// Nodes are the input commits in input order. A node flagged simple has a
// single implied down-edge to the next node; every other edge is stored in
// links. An edge between u < v means u is a child of v: from u's side it is
// a down-edge, from v's side an up-edge.
//
// Thread Safety:
// PermanentGraph is never mutated after Build returns, so any number of
// goroutines may query it concurrently.
type PermanentGraph struct {
	hashes    []int
	simple    *Flags
	edgeStart []int
	links     []int32

	// nodeByHash maps a hash index to the first node carrying it
	nodeByHash map[int]int
}

func newPermanentGraph(hashes []int, simple *Flags, edgeStart []int, links []int32) *PermanentGraph {
	nodeByHash := make(map[int]int, len(hashes))
	for i, h := range hashes {
		if _, ok := nodeByHash[h]; !ok {
			nodeByHash[h] = i
		}
	}

	return &PermanentGraph{
		hashes:     hashes,
		simple:     simple,
		edgeStart:  edgeStart,
		links:      links,
		nodeByHash: nodeByHash,
	}
}

// NodesCount returns the number of nodes
func (g *PermanentGraph) NodesCount() int {
	return len(g.hashes)
}

// HashIndex returns the commit hash index of a node. The virtual node at
// NodesCount() stands for the not-loaded commit and yields NotLoadedHash.
func (g *PermanentGraph) HashIndex(node int) int {
	if node == len(g.hashes) {
		return NotLoadedHash
	}
	g.check(node)
	return g.hashes[node]
}

// NodeIndex returns the node carrying the given hash index
func (g *PermanentGraph) NodeIndex(hash int) (int, bool) {
	node, ok := g.nodeByHash[hash]
	return node, ok
}

// IsSimple reports whether the node's only parent is the next node
func (g *PermanentGraph) IsSimple(node int) bool {
	g.check(node)
	return g.simple.Get(node)
}

// UpNodes returns the children of a node: the nodes that name it as a parent
func (g *PermanentGraph) UpNodes(node int) []int {
	g.check(node)

	var result []int
	if node > 0 && g.simple.Get(node-1) {
		result = append(result, node-1)
	}

	for i := g.edgeStart[node]; i < g.edgeStart[node+1]; i++ {
		if adj := g.links[i]; adj >= 0 && int(adj) < node {
			result = append(result, int(adj))
		}
	}

	return result
}

// DownNodes returns the loaded parents of a node in parent order
func (g *PermanentGraph) DownNodes(node int) []int {
	g.check(node)

	if g.simple.Get(node) {
		return []int{node + 1}
	}

	var result []int
	for i := g.edgeStart[node]; i < g.edgeStart[node+1]; i++ {
		if adj := g.links[i]; adj >= 0 && int(adj) > node {
			result = append(result, int(adj))
		}
	}

	return result
}

// DownEdges returns every down-edge of a node, including edges to parents
// that were never loaded
func (g *PermanentGraph) DownEdges(node int) []EdgeTarget {
	g.check(node)

	if g.simple.Get(node) {
		return []EdgeTarget{{Kind: EdgeResolved, Node: node + 1}}
	}

	var result []EdgeTarget
	for i := g.edgeStart[node]; i < g.edgeStart[node+1]; i++ {
		target := decodeSlot(g.links[i])
		if target.Kind == EdgeResolved && target.Node < node {
			continue
		}
		result = append(result, target)
	}

	return result
}

// LongEdgesCount returns the number of allocated edge slots
func (g *PermanentGraph) LongEdgesCount() int {
	return len(g.links)
}

func (g *PermanentGraph) check(node int) {
	if node < 0 || node >= len(g.hashes) {
		panic(newIndexError("node", node, len(g.hashes)))
	}
}
