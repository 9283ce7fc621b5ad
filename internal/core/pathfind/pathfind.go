// Package pathfind implements a bidirectional breadth-first shortest
// path search over a graph that is never fully materialized: neighbor
// sets are fetched from the store on demand, one frontier level at a
// time.
package pathfind

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/agenthands/lexigraph/internal/core/model"
)

// Store is the single operation the finder needs from the graph store.
type Store interface {
	UndirectedNeighbors(ctx context.Context, id string) ([]model.NodeRef, error)
}

// Finder expands two frontiers, one from each endpoint, and stops as
// soon as no unexplored level can beat the best meeting point found.
type Finder struct {
	store    Store
	parallel int
}

// New returns a Finder that issues up to parallel neighbor fetches
// concurrently per frontier level.
func New(store Store, parallel int) *Finder {
	if parallel < 1 {
		parallel = 1
	}
	return &Finder{store: store, parallel: parallel}
}

// frontier is one direction's BFS state. Each node appears at most
// once, at the distance it was first discovered from this direction;
// the root's parent is the empty string.
type frontier struct {
	queue    []string
	parent   map[string]string
	distance map[string]int
}

func newFrontier(root string) *frontier {
	return &frontier{
		queue:    []string{root},
		parent:   map[string]string{root: ""},
		distance: map[string]int{root: 0},
	}
}

func (f *frontier) seen(id string) bool {
	_, ok := f.distance[id]
	return ok
}

// ShortestPath returns the node sequence id1 … id2, or an empty slice
// when no path exists. Both ids are assumed to exist in the store; the
// caller checks that beforehand. Any store failure aborts the search.
func (f *Finder) ShortestPath(ctx context.Context, id1, id2 string) ([]model.NodeRef, error) {
	if id1 == id2 {
		return []model.NodeRef{{ID: id1, Label: model.Label{id1}}}, nil
	}

	fwd := newFrontier(id1)
	bwd := newFrontier(id2)
	labels := make(map[string]model.Label)

	bestLen := math.MaxInt
	bestMeet := ""

	for len(fwd.queue) > 0 || len(bwd.queue) > 0 {
		if len(fwd.queue) > 0 {
			meet, err := f.processLevel(ctx, fwd, bwd, labels)
			if err != nil {
				return nil, err
			}
			if meet != "" {
				if l := fwd.distance[meet] + bwd.distance[meet]; l < bestLen {
					bestLen = l
					bestMeet = meet
				}
			}
		}

		if len(bwd.queue) > 0 {
			meet, err := f.processLevel(ctx, bwd, fwd, labels)
			if err != nil {
				return nil, err
			}
			if meet != "" {
				if l := fwd.distance[meet] + bwd.distance[meet]; l < bestLen {
					bestLen = l
					bestMeet = meet
				}
			}
		}

		if bestMeet != "" {
			// Lower bound on any path still discoverable: the two
			// shallowest unexplored nodes joined end to end.
			if len(fwd.queue) == 0 || len(bwd.queue) == 0 {
				break
			}
			if fwd.distance[fwd.queue[0]]+bwd.distance[bwd.queue[0]] >= bestLen {
				break
			}
		}
	}

	if bestMeet == "" {
		return []model.NodeRef{}, nil
	}
	return reconstruct(fwd, bwd, bestMeet, labels), nil
}

// processLevel expands every node currently queued for one direction.
// Neighbor fetches for the level run concurrently; all frontier
// mutations happen afterward in a single merge pass so each node keeps
// exactly one minimal distance per direction. It returns the best
// meeting point seen while processing the level, or "".
func (f *Finder) processLevel(ctx context.Context, cur, opp *frontier, labels map[string]model.Label) (string, error) {
	level := cur.queue
	cur.queue = nil

	bestMeet := ""
	bestLen := math.MaxInt
	for _, id := range level {
		if opp.seen(id) {
			if l := cur.distance[id] + opp.distance[id]; l < bestLen {
				bestLen = l
				bestMeet = id
			}
		}
	}

	fetched := make([][]model.NodeRef, len(level))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.parallel)
	for i, id := range level {
		i, id := i, id
		g.Go(func() error {
			refs, err := f.store.UndirectedNeighbors(gctx, id)
			if err != nil {
				return fmt.Errorf("expanding frontier at %s: %w", id, err)
			}
			fetched[i] = refs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	for i, id := range level {
		for _, ref := range fetched[i] {
			if ref.ID == "" {
				continue
			}
			if _, ok := labels[ref.ID]; !ok && !ref.Label.IsZero() {
				labels[ref.ID] = ref.Label
			}
			if !cur.seen(ref.ID) {
				cur.parent[ref.ID] = id
				cur.distance[ref.ID] = cur.distance[id] + 1
				cur.queue = append(cur.queue, ref.ID)
			}
		}
	}

	return bestMeet, nil
}

// reconstruct walks the forward parents from the meeting point back to
// the start, then the backward parents out to the target.
func reconstruct(fwd, bwd *frontier, meet string, labels map[string]model.Label) []model.NodeRef {
	var head []model.NodeRef
	for cur := meet; cur != ""; cur = fwd.parent[cur] {
		head = append(head, model.Ref(cur, labels[cur]))
	}
	for i, j := 0, len(head)-1; i < j; i, j = i+1, j-1 {
		head[i], head[j] = head[j], head[i]
	}

	for cur := bwd.parent[meet]; cur != ""; cur = bwd.parent[cur] {
		head = append(head, model.Ref(cur, labels[cur]))
	}
	return head
}
