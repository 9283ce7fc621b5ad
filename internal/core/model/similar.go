package model

// How a two-hop coincidence connects a similar node to the root.
const (
	RelationCommonParent = "common_parent"
	RelationCommonChild  = "common_child"
)

// Evidence records one two-hop coincidence supporting a similarity.
type Evidence struct {
	ViaNode  string   `json:"via_node"`
	EdgeType EdgeType `json:"edge_type"`
	Relation string   `json:"relation"`
}

// SimilarNode aggregates every coincidence found for one node.
// Repeated identical evidence is kept on purpose: the count of entries
// is a strength signal.
type SimilarNode struct {
	ID                string     `json:"id"`
	Label             Label      `json:"label"`
	SharedConnections []Evidence `json:"shared_connections"`
}
