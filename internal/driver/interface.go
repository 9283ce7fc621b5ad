package driver

import (
	"context"

	"github.com/agenthands/lexigraph/internal/core/model"
)

// GraphStore is the read surface the traversal core consumes. The
// first four operations back the searches; the rest are the statistics
// reads exposed by the CLI and HTTP API.
type GraphStore interface {
	Exists(ctx context.Context, id string) (bool, error)
	UndirectedNeighbors(ctx context.Context, id string) ([]model.NodeRef, error)
	RelationTree(ctx context.Context, id string, maxDepth int) (*model.RelationNode, error)
	TwoHopNeighborhood(ctx context.Context, id string) (*model.Neighborhood, error)

	Successors(ctx context.Context, id string) ([]model.NodeRef, error)
	Predecessors(ctx context.Context, id string) ([]model.NodeRef, error)
	Grandchildren(ctx context.Context, id string) ([]model.NodeRef, error)
	Grandparents(ctx context.Context, id string) ([]model.NodeRef, error)
	CountNodes(ctx context.Context) (int64, error)
	CountWithoutSuccessors(ctx context.Context) (int64, error)
	CountWithoutPredecessors(ctx context.Context) (int64, error)
	MostConnected(ctx context.Context) ([]model.DegreeRef, error)

	EnsureIndexes(ctx context.Context) error
	Close(ctx context.Context) error
}
