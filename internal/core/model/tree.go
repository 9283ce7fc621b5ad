package model

// RelationNode is one level of the relation tree returned by the store
// for the distance-bounded search: the node itself plus its typed
// relation children, nested recursively up to the requested depth.
// Forward and reverse lists are kept apart only to mirror the store's
// response shape; the traversal treats every relation as undirected.
type RelationNode struct {
	ID         string          `json:"id"`
	Label      Label           `json:"label"`
	Synonyms   []*RelationNode `json:"synonyms,omitempty"`
	SynonymsOf []*RelationNode `json:"synonyms_of,omitempty"`
	Antonyms   []*RelationNode `json:"antonyms,omitempty"`
	AntonymsOf []*RelationNode `json:"antonyms_of,omitempty"`
}

// NeighborLink is a directly connected node together with the edge
// type connecting it, and that node's own links on the far side: a
// successor carries its predecessors, a predecessor its successors.
type NeighborLink struct {
	ID       string         `json:"id"`
	Label    Label          `json:"label"`
	EdgeType EdgeType       `json:"edge_type"`
	Links    []NeighborLink `json:"links,omitempty"`
}

// Neighborhood is the shaped two-hop view around one node.
type Neighborhood struct {
	ID           string         `json:"id"`
	Label        Label          `json:"label"`
	Successors   []NeighborLink `json:"successors"`
	Predecessors []NeighborLink `json:"predecessors"`
}
