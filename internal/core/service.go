package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/lexigraph/internal/core/model"
	"github.com/agenthands/lexigraph/internal/core/pathfind"
	"github.com/agenthands/lexigraph/internal/core/relation"
	"github.com/agenthands/lexigraph/internal/core/similar"
	"github.com/agenthands/lexigraph/internal/driver"
)

// ErrNotFound marks a caller-supplied id that does not exist in the
// store. It is checked up front, before any traversal runs, and is
// distinct from an empty-but-successful result.
var ErrNotFound = errors.New("node not found")

// Options tune the traversal service.
type Options struct {
	// MaxTreeDepth guards the relation-tree walk independently of the
	// store's own depth bound.
	MaxTreeDepth int
	// FrontierFetch caps concurrent neighbor fetches per BFS level.
	FrontierFetch int
}

// Service runs the relationship queries against a graph store.
type Service struct {
	store        driver.GraphStore
	finder       *pathfind.Finder
	log          *zap.Logger
	maxTreeDepth int
}

func NewService(store driver.GraphStore, logger *zap.Logger, opts Options) *Service {
	if opts.MaxTreeDepth <= 0 {
		opts.MaxTreeDepth = relation.DefaultMaxDepth
	}
	return &Service{
		store:        store,
		finder:       pathfind.New(store, opts.FrontierFetch),
		log:          logger,
		maxTreeDepth: opts.MaxTreeDepth,
	}
}

// DistantSynonyms returns the nodes at exactly distance hops from id
// that are synonym-equivalent to it.
func (s *Service) DistantSynonyms(ctx context.Context, id string, distance int) ([]model.NodeRef, error) {
	return s.distantRelations(ctx, id, distance, true)
}

// DistantAntonyms returns the nodes at exactly distance hops from id
// that are antonym-equivalent to it.
func (s *Service) DistantAntonyms(ctx context.Context, id string, distance int) ([]model.NodeRef, error) {
	return s.distantRelations(ctx, id, distance, false)
}

func (s *Service) distantRelations(ctx context.Context, id string, distance int, wantSynonyms bool) ([]model.NodeRef, error) {
	if distance < 0 {
		return nil, fmt.Errorf("distance must be non-negative, got %d", distance)
	}
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	tree, err := s.store.RelationTree(ctx, id, distance+1)
	if err != nil {
		return nil, fmt.Errorf("fetching relation tree for %s: %w", id, err)
	}

	g := relation.BuildGraph(tree, s.maxTreeDepth)
	visited := relation.Search(g, id, distance)
	refs := relation.Filter(visited, g, distance, id, wantSynonyms)

	s.log.Debug("distance search done",
		zap.String("id", id),
		zap.Int("distance", distance),
		zap.Bool("synonyms", wantSynonyms),
		zap.Int("graph_nodes", g.NodeCount()),
		zap.Int("results", len(refs)))
	return refs, nil
}

// ShortestPath returns the node sequence from id1 to id2, an empty
// slice when the two are disconnected, and a one-element path when the
// ids are equal.
func (s *Service) ShortestPath(ctx context.Context, id1, id2 string) ([]model.NodeRef, error) {
	if id1 == id2 {
		return s.finder.ShortestPath(ctx, id1, id2)
	}
	if err := s.ensureExists(ctx, id1); err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, id2); err != nil {
		return nil, err
	}

	path, err := s.finder.ShortestPath(ctx, id1, id2)
	if err != nil {
		return nil, err
	}
	s.log.Debug("shortest path done",
		zap.String("from", id1),
		zap.String("to", id2),
		zap.Int("length", len(path)))
	return path, nil
}

// SimilarNodes returns, per similar node, its label and the full list
// of two-hop coincidences connecting it to id.
func (s *Service) SimilarNodes(ctx context.Context, id string) (map[string]*model.SimilarNode, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	nb, err := s.store.TwoHopNeighborhood(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching neighborhood for %s: %w", id, err)
	}

	found := similar.Match(nb)
	s.log.Debug("similarity scan done",
		zap.String("id", id),
		zap.Int("results", len(found)))
	return found, nil
}

func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	return s.store.Exists(ctx, id)
}

func (s *Service) Neighbors(ctx context.Context, id string) ([]model.NodeRef, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	return s.store.UndirectedNeighbors(ctx, id)
}

func (s *Service) Successors(ctx context.Context, id string) ([]model.NodeRef, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	return s.store.Successors(ctx, id)
}

func (s *Service) Predecessors(ctx context.Context, id string) ([]model.NodeRef, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	return s.store.Predecessors(ctx, id)
}

func (s *Service) Grandchildren(ctx context.Context, id string) ([]model.NodeRef, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	return s.store.Grandchildren(ctx, id)
}

func (s *Service) Grandparents(ctx context.Context, id string) ([]model.NodeRef, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	return s.store.Grandparents(ctx, id)
}

// Stats is the aggregate of the whole-graph statistics reads.
type Stats struct {
	TotalNodes          int64             `json:"total_nodes"`
	WithoutSuccessors   int64             `json:"without_successors"`
	WithoutPredecessors int64             `json:"without_predecessors"`
	MostConnected       []model.DegreeRef `json:"most_connected"`
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	total, err := s.store.CountNodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting nodes: %w", err)
	}
	noSucc, err := s.store.CountWithoutSuccessors(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting nodes without successors: %w", err)
	}
	noPred, err := s.store.CountWithoutPredecessors(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting nodes without predecessors: %w", err)
	}
	most, err := s.store.MostConnected(ctx)
	if err != nil {
		return nil, fmt.Errorf("finding most connected nodes: %w", err)
	}
	return &Stats{
		TotalNodes:          total,
		WithoutSuccessors:   noSucc,
		WithoutPredecessors: noPred,
		MostConnected:       most,
	}, nil
}

func (s *Service) ensureExists(ctx context.Context, id string) error {
	ok, err := s.store.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("checking node %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("node %s: %w", id, ErrNotFound)
	}
	return nil
}
