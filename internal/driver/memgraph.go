package driver

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/agenthands/lexigraph/internal/core/model"
)

// maxTreeDepth caps the variable-length expansion of the relation-tree
// query regardless of what the caller asked for.
const maxTreeDepth = 32

// MemgraphStore implements GraphStore against a Memgraph instance over
// the Bolt protocol.
type MemgraphStore struct {
	driver neo4j.DriverWithContext
	log    *zap.Logger
}

func NewMemgraphStore(uri, username, password string, logger *zap.Logger) (*MemgraphStore, error) {
	d, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}
	if err := d.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}
	logger.Info("connected to memgraph", zap.String("uri", uri))
	return &MemgraphStore{driver: d, log: logger}, nil
}

func (s *MemgraphStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *MemgraphStore) run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return result, nil
}

func (s *MemgraphStore) EnsureIndexes(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Term(id);",
		"CREATE INDEX ON :Term(label);",
	}
	for _, q := range queries {
		if _, err := s.run(ctx, q, nil); err != nil {
			// The index may already exist.
			s.log.Warn("index creation failed", zap.String("query", q), zap.Error(err))
		}
	}
	return nil
}

func (s *MemgraphStore) Exists(ctx context.Context, id string) (bool, error) {
	res, err := s.run(ctx, ExistsQuery, map[string]any{"id": id})
	if err != nil {
		return false, err
	}
	return countFrom(res) > 0, nil
}

func (s *MemgraphStore) UndirectedNeighbors(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.refQuery(ctx, NeighborsQuery, id)
}

func (s *MemgraphStore) Successors(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.refQuery(ctx, SuccessorsQuery, id)
}

func (s *MemgraphStore) Predecessors(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.refQuery(ctx, PredecessorsQuery, id)
}

func (s *MemgraphStore) Grandchildren(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.refQuery(ctx, GrandchildrenQuery, id)
}

func (s *MemgraphStore) Grandparents(ctx context.Context, id string) ([]model.NodeRef, error) {
	return s.refQuery(ctx, GrandparentsQuery, id)
}

func (s *MemgraphStore) refQuery(ctx context.Context, query, id string) ([]model.NodeRef, error) {
	res, err := s.run(ctx, query, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return nodeRefs(res.Records), nil
}

func (s *MemgraphStore) CountNodes(ctx context.Context) (int64, error) {
	return s.countQuery(ctx, CountNodesQuery)
}

func (s *MemgraphStore) CountWithoutSuccessors(ctx context.Context) (int64, error) {
	return s.countQuery(ctx, CountWithoutSuccessorsQuery)
}

func (s *MemgraphStore) CountWithoutPredecessors(ctx context.Context) (int64, error) {
	return s.countQuery(ctx, CountWithoutPredecessorsQuery)
}

func (s *MemgraphStore) countQuery(ctx context.Context, query string) (int64, error) {
	res, err := s.run(ctx, query, nil)
	if err != nil {
		return 0, err
	}
	return countFrom(res), nil
}

func (s *MemgraphStore) MostConnected(ctx context.Context) ([]model.DegreeRef, error) {
	res, err := s.run(ctx, MostConnectedQuery, nil)
	if err != nil {
		return nil, err
	}
	return degreeRefs(res.Records), nil
}

// RelationTree fetches the synonym/antonym edge set reachable from id
// within maxDepth hops and reassembles it into the nested tree shape
// the distance search consumes.
func (s *MemgraphStore) RelationTree(ctx context.Context, id string, maxDepth int) (*model.RelationNode, error) {
	depth := maxDepth
	if depth < 1 {
		depth = 1
	}
	if depth > maxTreeDepth {
		depth = maxTreeDepth
	}

	res, err := s.run(ctx, fmt.Sprintf(RelationTreeQueryTpl, depth), map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	return assembleRelationTree(id, res.Records, depth), nil
}

// TwoHopNeighborhood fetches the node's successors with their own
// predecessors, and its predecessors with their own successors, each
// link carrying its edge type.
func (s *MemgraphStore) TwoHopNeighborhood(ctx context.Context, id string) (*model.Neighborhood, error) {
	nb := &model.Neighborhood{ID: id}

	res, err := s.run(ctx, NodeLabelQuery, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	if len(res.Records) > 0 {
		nb.Label = model.LabelOf(stringValue(res.Records[0], "label"))
	}

	succ, err := s.run(ctx, SuccessorTwoHopQuery, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	nb.Successors = neighborLinks(succ.Records)

	pred, err := s.run(ctx, PredecessorTwoHopQuery, map[string]any{"id": id})
	if err != nil {
		return nil, err
	}
	nb.Predecessors = neighborLinks(pred.Records)

	return nb, nil
}
