package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agenthands/lexigraph/internal/core"
	"github.com/agenthands/lexigraph/internal/core/model"
)

// stubStore is a fixed-answer GraphStore backing the handler tests.
type stubStore struct {
	existing  map[string]bool
	tree      *model.RelationNode
	adjacency map[string][]model.NodeRef
}

func (s *stubStore) Exists(ctx context.Context, id string) (bool, error) {
	return s.existing[id], nil
}

func (s *stubStore) UndirectedNeighbors(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.adjacency[id], nil
}

func (s *stubStore) RelationTree(ctx context.Context, id string, maxDepth int) (*model.RelationNode, error) {
	return s.tree, nil
}

func (s *stubStore) TwoHopNeighborhood(ctx context.Context, id string) (*model.Neighborhood, error) {
	return &model.Neighborhood{ID: id}, nil
}

func (s *stubStore) Successors(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.adjacency[id], nil
}

func (s *stubStore) Predecessors(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.adjacency[id], nil
}

func (s *stubStore) Grandchildren(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.adjacency[id], nil
}

func (s *stubStore) Grandparents(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.adjacency[id], nil
}

func (s *stubStore) CountNodes(ctx context.Context) (int64, error)             { return 10, nil }
func (s *stubStore) CountWithoutSuccessors(ctx context.Context) (int64, error) { return 2, nil }
func (s *stubStore) CountWithoutPredecessors(ctx context.Context) (int64, error) {
	return 1, nil
}

func (s *stubStore) MostConnected(ctx context.Context) ([]model.DegreeRef, error) {
	return []model.DegreeRef{{ID: "hub", Label: model.Label{"hub"}, Neighbors: 5}}, nil
}

func (s *stubStore) EnsureIndexes(ctx context.Context) error { return nil }
func (s *stubStore) Close(ctx context.Context) error         { return nil }

func testRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := core.NewService(store, zap.NewNop(), core.Options{})
	return New(svc, zap.NewNop()).SetupRouter()
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	w := get(t, testRouter(&stubStore{}), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestRequestIDHeader(t *testing.T) {
	router := testRouter(&stubStore{})

	w := get(t, router, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "trace-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get("X-Request-ID"))
}

func TestDistantSynonyms(t *testing.T) {
	b := &model.RelationNode{ID: "B", Label: model.Label{"beta"}}
	store := &stubStore{
		existing: map[string]bool{"A": true},
		tree:     &model.RelationNode{ID: "A", Synonyms: []*model.RelationNode{b}},
	}

	w := get(t, testRouter(store), "/nodes/A/distant-synonyms?distance=1")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, "B", first["id"])
	assert.Equal(t, "beta", first["label"])
}

func TestDistantSynonymsBadDistance(t *testing.T) {
	store := &stubStore{existing: map[string]bool{"A": true}}

	for _, q := range []string{"distance=abc", "distance=-3"} {
		w := get(t, testRouter(store), "/nodes/A/distant-synonyms?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestUnknownNodeIs404(t *testing.T) {
	router := testRouter(&stubStore{existing: map[string]bool{}})

	for _, path := range []string{
		"/nodes/ghost/distant-synonyms",
		"/nodes/ghost/distant-antonyms",
		"/nodes/ghost/similar",
		"/nodes/ghost/neighbors",
		"/nodes/ghost/successors",
	} {
		w := get(t, router, path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestShortestPath(t *testing.T) {
	store := &stubStore{
		existing: map[string]bool{"a": true, "c": true},
		adjacency: map[string][]model.NodeRef{
			"a": {model.Ref("b", nil)},
			"b": {model.Ref("a", nil), model.Ref("c", nil)},
			"c": {model.Ref("b", nil)},
		},
	}

	w := get(t, testRouter(store), "/path?from=a&to=c")
	require.Equal(t, http.StatusOK, w.Code)

	path, ok := decode(t, w)["path"].([]any)
	require.True(t, ok)
	assert.Len(t, path, 3)
}

func TestShortestPathMissingParams(t *testing.T) {
	w := get(t, testRouter(&stubStore{}), "/path?from=a")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNeighbors(t *testing.T) {
	store := &stubStore{
		existing: map[string]bool{"a": true},
		adjacency: map[string][]model.NodeRef{
			"a": {model.Ref("b", model.Label{"bee"})},
		},
	}

	w := get(t, testRouter(store), "/nodes/a/neighbors")
	require.Equal(t, http.StatusOK, w.Code)

	results := decode(t, w)["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "b", results[0].(map[string]any)["id"])
}

func TestStats(t *testing.T) {
	w := get(t, testRouter(&stubStore{}), "/stats")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, float64(10), body["total_nodes"])
	assert.Equal(t, float64(2), body["without_successors"])
	assert.Equal(t, float64(1), body["without_predecessors"])
	most := body["most_connected"].([]any)
	require.Len(t, most, 1)
	assert.Equal(t, "hub", most[0].(map[string]any)["id"])
}
