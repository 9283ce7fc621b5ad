package relation

import (
	"sort"

	"github.com/agenthands/lexigraph/internal/core/model"
)

// SignSet is the set of sign values achievable at a node's minimal
// distance from the root. true means synonym-equivalent, false
// antonym-equivalent.
type SignSet struct {
	Synonym bool
	Antonym bool
}

// add reports whether the sign was newly inserted.
func (s *SignSet) add(sign bool) bool {
	if sign {
		if s.Synonym {
			return false
		}
		s.Synonym = true
		return true
	}
	if s.Antonym {
		return false
	}
	s.Antonym = true
	return true
}

func (s SignSet) Has(sign bool) bool {
	if sign {
		return s.Synonym
	}
	return s.Antonym
}

// Visit records the minimal hop distance found for a node and every
// sign achievable via some shortest path. Signs from longer paths are
// never mixed in.
type Visit struct {
	Distance int
	Signs    SignSet
}

type queueItem struct {
	node int
	dist int
	sign bool
}

// Search walks breadth-first from root up to targetDistance hops.
// Traversing a synonym edge preserves the sign, an antonym edge flips
// it (antonym of antonym is synonym). A node may be reachable at its
// minimal distance under both signs; both are kept and both propagate,
// since they yield different sign sets one hop later. Each (node,
// sign) pair is enqueued at most once, so the walk is O(V+E) at most
// doubled.
func Search(g *Graph, root string, targetDistance int) map[string]*Visit {
	visited := map[string]*Visit{
		root: {Distance: 0, Signs: SignSet{Synonym: true}},
	}

	ri, ok := g.index[root]
	if !ok {
		return visited
	}

	queue := []queueItem{{node: ri, dist: 0, sign: true}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if it.dist >= targetDistance {
			continue
		}

		for _, e := range g.adj[it.node] {
			sign := it.sign == e.synonym
			id := g.ids[e.to]

			v, seen := visited[id]
			switch {
			case !seen:
				v = &Visit{Distance: it.dist + 1}
				v.Signs.add(sign)
				visited[id] = v
				queue = append(queue, queueItem{node: e.to, dist: it.dist + 1, sign: sign})
			case v.Distance == it.dist+1:
				if v.Signs.add(sign) {
					queue = append(queue, queueItem{node: e.to, dist: it.dist + 1, sign: sign})
				}
			}
			// A strictly smaller recorded distance is final; this
			// longer rediscovery cannot contribute.
		}
	}

	return visited
}

// Filter emits the nodes recorded at exactly targetDistance whose sign
// set contains wantSign, excluding the root itself. Labels default to
// the id when the tree never named one. Results are ordered by id.
func Filter(visited map[string]*Visit, g *Graph, targetDistance int, root string, wantSign bool) []model.NodeRef {
	results := []model.NodeRef{}
	for id, v := range visited {
		if v.Distance != targetDistance || id == root {
			continue
		}
		if v.Signs.Has(wantSign) {
			results = append(results, model.Ref(id, g.Label(id)))
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results
}
