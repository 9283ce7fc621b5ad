package relation

import "github.com/agenthands/lexigraph/internal/core/model"

// DefaultMaxDepth bounds the tree walk independently of whatever depth
// the store was asked for. A hostile or misconfigured depth must not
// translate into unbounded work here.
const DefaultMaxDepth = 32

type halfEdge struct {
	to      int
	synonym bool
}

// Graph is the flat signed adjacency structure built from one relation
// tree: a node arena with index-based adjacency plus an id→label
// table. It is owned by the search that built it and dropped after.
type Graph struct {
	index  map[string]int
	ids    []string
	adj    [][]halfEdge
	labels map[string]model.Label
}

func newGraph() *Graph {
	return &Graph{
		index:  make(map[string]int),
		labels: make(map[string]model.Label),
	}
}

func (g *Graph) intern(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.ids)
	g.index[id] = i
	g.ids = append(g.ids, id)
	g.adj = append(g.adj, nil)
	return i
}

// addEdge inserts the relation in both directions; the traversal is
// direction-agnostic regardless of how the store oriented it.
func (g *Graph) addEdge(a, b string, synonym bool) {
	ai := g.intern(a)
	bi := g.intern(b)
	g.adj[ai] = append(g.adj[ai], halfEdge{to: bi, synonym: synonym})
	g.adj[bi] = append(g.adj[bi], halfEdge{to: ai, synonym: synonym})
}

func (g *Graph) recordLabel(id string, label model.Label) {
	if label.IsZero() {
		return
	}
	if _, ok := g.labels[id]; !ok {
		g.labels[id] = label
	}
}

// Label returns the label recorded for id, defaulting to the id itself.
func (g *Graph) Label(id string) model.Label {
	if l, ok := g.labels[id]; ok {
		return l
	}
	return model.Label{id}
}

// NodeCount reports how many distinct nodes the tree contributed.
func (g *Graph) NodeCount() int { return len(g.ids) }

type frame struct {
	node  *model.RelationNode
	depth int
}

// BuildGraph flattens a relation tree into a Graph. Fragments missing
// an id are skipped together with their subtree; relation lists that
// are absent are simply not walked. The walk is iterative and stops
// descending past maxDepth even if the store's response nests deeper.
func BuildGraph(root *model.RelationNode, maxDepth int) *Graph {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	g := newGraph()
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := f.node
		if n == nil || n.ID == "" || f.depth > maxDepth {
			continue
		}
		g.recordLabel(n.ID, n.Label)

		for _, kind := range []struct {
			children []*model.RelationNode
			synonym  bool
		}{
			{n.Synonyms, true},
			{n.SynonymsOf, true},
			{n.Antonyms, false},
			{n.AntonymsOf, false},
		} {
			for _, child := range kind.children {
				if child == nil || child.ID == "" {
					continue
				}
				g.recordLabel(child.ID, child.Label)
				g.addEdge(n.ID, child.ID, kind.synonym)
				stack = append(stack, frame{node: child, depth: f.depth + 1})
			}
		}
	}

	return g
}
