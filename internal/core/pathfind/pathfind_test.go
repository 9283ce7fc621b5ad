package pathfind

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/lexigraph/internal/core/model"
)

// mapStore serves neighbor queries from an in-memory undirected
// adjacency map. Safe for the finder's concurrent fetch phase.
type mapStore struct {
	mu    sync.Mutex
	adj   map[string][]string
	label map[string]string
	calls int
	err   error
}

func newMapStore() *mapStore {
	return &mapStore{adj: make(map[string][]string), label: make(map[string]string)}
}

func (m *mapStore) edge(a, b string) {
	m.adj[a] = append(m.adj[a], b)
	m.adj[b] = append(m.adj[b], a)
}

func (m *mapStore) UndirectedNeighbors(ctx context.Context, id string) ([]model.NodeRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	refs := make([]model.NodeRef, 0, len(m.adj[id]))
	for _, n := range m.adj[id] {
		refs = append(refs, model.Ref(n, model.LabelOf(m.label[n])))
	}
	return refs, nil
}

// referenceBFS is the plain unidirectional shortest-path length, -1
// when disconnected.
func referenceBFS(adj map[string][]string, from, to string) int {
	if from == to {
		return 0
	}
	dist := map[string]int{from: 0}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adj[cur] {
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = dist[cur] + 1
			if n == to {
				return dist[n]
			}
			queue = append(queue, n)
		}
	}
	return -1
}

func pathIDs(path []model.NodeRef) []string {
	out := []string{}
	for _, r := range path {
		out = append(out, r.ID)
	}
	return out
}

func TestSameNodeTrivialPath(t *testing.T) {
	f := New(newMapStore(), 1)
	path, err := f.ShortestPath(context.Background(), "a", "a")
	require.NoError(t, err)
	assert.Equal(t, []model.NodeRef{{ID: "a", Label: model.Label{"a"}}}, path)
}

func TestStraightLine(t *testing.T) {
	store := newMapStore()
	store.edge("a", "b")
	store.edge("b", "c")
	store.edge("c", "d")

	f := New(store, 1)
	path, err := f.ShortestPath(context.Background(), "a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, pathIDs(path))
}

func TestShorterOfTwoRoutes(t *testing.T) {
	store := newMapStore()
	// Long way around plus a shortcut.
	store.edge("a", "x")
	store.edge("x", "y")
	store.edge("y", "z")
	store.edge("z", "b")
	store.edge("a", "m")
	store.edge("m", "b")

	f := New(store, 1)
	path, err := f.ShortestPath(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "m", "b"}, pathIDs(path))
}

func TestDisconnectedReturnsEmpty(t *testing.T) {
	store := newMapStore()
	store.edge("a", "b")
	store.edge("x", "y")

	f := New(store, 1)
	path, err := f.ShortestPath(context.Background(), "a", "y")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestLabelsCapturedFromQueries(t *testing.T) {
	store := newMapStore()
	store.edge("a", "b")
	store.label["b"] = "middle"
	store.edge("b", "c")

	f := New(store, 1)
	path, err := f.ShortestPath(context.Background(), "a", "c")
	require.NoError(t, err)
	require.Len(t, path, 3)
	// Endpoints fall back to their ids, interior nodes keep fetched
	// labels.
	assert.Equal(t, model.Label{"a"}, path[0].Label)
	assert.Equal(t, model.Label{"middle"}, path[1].Label)
	assert.Equal(t, model.Label{"c"}, path[2].Label)
}

func TestStoreFailureAborts(t *testing.T) {
	store := newMapStore()
	store.edge("a", "b")
	store.err = errors.New("bolt connection reset")

	f := New(store, 1)
	_, err := f.ShortestPath(context.Background(), "a", "b")
	assert.ErrorContains(t, err, "bolt connection reset")
}

func TestMatchesReferenceBFSOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 30; trial++ {
		store := newMapStore()
		n := 12 + rng.Intn(20)
		nodes := make([]string, n)
		for i := range nodes {
			nodes[i] = fmt.Sprintf("n%02d", i)
		}
		// Random edges; some trials end up disconnected, which is part
		// of the point.
		edges := n + rng.Intn(2*n)
		for i := 0; i < edges; i++ {
			a := nodes[rng.Intn(n)]
			b := nodes[rng.Intn(n)]
			if a != b {
				store.edge(a, b)
			}
		}

		from := nodes[rng.Intn(n)]
		to := nodes[rng.Intn(n)]
		want := referenceBFS(store.adj, from, to)

		for _, parallel := range []int{1, 4} {
			f := New(store, parallel)
			path, err := f.ShortestPath(context.Background(), from, to)
			require.NoError(t, err)

			if want < 0 {
				assert.Empty(t, path, "trial %d: expected no path %s->%s", trial, from, to)
				continue
			}
			require.NotEmpty(t, path, "trial %d: expected a path %s->%s", trial, from, to)
			assert.Equal(t, want+1, len(path), "trial %d: %s->%s", trial, from, to)
			assert.Equal(t, from, path[0].ID)
			assert.Equal(t, to, path[len(path)-1].ID)
			// Every consecutive pair must actually be adjacent.
			for i := 0; i+1 < len(path); i++ {
				assert.Contains(t, store.adj[path[i].ID], path[i+1].ID)
			}
		}
	}
}

func TestPruningStillFindsMinimum(t *testing.T) {
	store := newMapStore()
	// Two meeting points at different depths; the prune must keep the
	// better one.
	store.edge("a", "p")
	store.edge("p", "q")
	store.edge("q", "r")
	store.edge("r", "b")
	store.edge("a", "s")
	store.edge("s", "b")

	f := New(store, 2)
	path, err := f.ShortestPath(context.Background(), "a", "b")
	require.NoError(t, err)
	assert.Len(t, path, 3)
}
