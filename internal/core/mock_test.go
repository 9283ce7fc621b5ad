package core

import (
	"context"

	"github.com/agenthands/lexigraph/internal/core/model"
)

// MockStore is a hand-rolled GraphStore for unit tests. Set Err to
// fail every operation.
type MockStore struct {
	Existing     map[string]bool
	Tree         *model.RelationNode
	Neighborhood *model.Neighborhood
	Adjacency    map[string][]model.NodeRef

	NodeCount     int64
	NoSuccessors  int64
	NoPredecessor int64
	TopNodes      []model.DegreeRef

	Err error

	TreeDepthAsked int
}

func (m *MockStore) Exists(ctx context.Context, id string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	return m.Existing[id], nil
}

func (m *MockStore) UndirectedNeighbors(ctx context.Context, id string) ([]model.NodeRef, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Adjacency[id], nil
}

func (m *MockStore) RelationTree(ctx context.Context, id string, maxDepth int) (*model.RelationNode, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.TreeDepthAsked = maxDepth
	return m.Tree, nil
}

func (m *MockStore) TwoHopNeighborhood(ctx context.Context, id string) (*model.Neighborhood, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Neighborhood, nil
}

func (m *MockStore) Successors(ctx context.Context, id string) ([]model.NodeRef, error) {
	return m.UndirectedNeighbors(ctx, id)
}

func (m *MockStore) Predecessors(ctx context.Context, id string) ([]model.NodeRef, error) {
	return m.UndirectedNeighbors(ctx, id)
}

func (m *MockStore) Grandchildren(ctx context.Context, id string) ([]model.NodeRef, error) {
	return m.UndirectedNeighbors(ctx, id)
}

func (m *MockStore) Grandparents(ctx context.Context, id string) ([]model.NodeRef, error) {
	return m.UndirectedNeighbors(ctx, id)
}

func (m *MockStore) CountNodes(ctx context.Context) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.NodeCount, nil
}

func (m *MockStore) CountWithoutSuccessors(ctx context.Context) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.NoSuccessors, nil
}

func (m *MockStore) CountWithoutPredecessors(ctx context.Context) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.NoPredecessor, nil
}

func (m *MockStore) MostConnected(ctx context.Context) ([]model.DegreeRef, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.TopNodes, nil
}

func (m *MockStore) EnsureIndexes(ctx context.Context) error { return nil }

func (m *MockStore) Close(ctx context.Context) error { return nil }
