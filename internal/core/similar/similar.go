// Package similar finds nodes connected to a root through matching
// edge types two hops away: nodes sharing a parent that reaches both
// through the same kind of edge, or sharing a child likewise.
package similar

import "github.com/agenthands/lexigraph/internal/core/model"

// Match scans the shaped two-hop neighborhood for edge-type
// coincidences. Every coincidence appends one evidence entry; repeats
// are kept as a strength signal. The result is empty when the root has
// no coincidences at all.
func Match(nb *model.Neighborhood) map[string]*model.SimilarNode {
	found := make(map[string]*model.SimilarNode)
	if nb == nil {
		return found
	}

	// The root and the candidate both point at the same successor via
	// matching edge types.
	for _, succ := range nb.Successors {
		if succ.ID == "" || succ.ID == nb.ID {
			continue
		}
		for _, pred := range succ.Links {
			if pred.ID == "" || pred.ID == nb.ID {
				continue
			}
			if succ.EdgeType.Matches(pred.EdgeType) {
				record(found, pred.ID, pred.Label, model.Evidence{
					ViaNode:  succ.ID,
					EdgeType: succ.EdgeType,
					Relation: model.RelationCommonParent,
				})
			}
		}
	}

	// The same predecessor points at both the root and the candidate
	// via matching edge types.
	for _, pred := range nb.Predecessors {
		if pred.ID == "" || pred.ID == nb.ID {
			continue
		}
		for _, succ := range pred.Links {
			if succ.ID == "" || succ.ID == nb.ID {
				continue
			}
			if pred.EdgeType.Matches(succ.EdgeType) {
				record(found, succ.ID, succ.Label, model.Evidence{
					ViaNode:  pred.ID,
					EdgeType: pred.EdgeType,
					Relation: model.RelationCommonChild,
				})
			}
		}
	}

	return found
}

func record(found map[string]*model.SimilarNode, id string, label model.Label, ev model.Evidence) {
	node, ok := found[id]
	if !ok {
		if label.IsZero() {
			label = model.Label{id}
		}
		node = &model.SimilarNode{ID: id, Label: label}
		found[id] = node
	}
	node.SharedConnections = append(node.SharedConnections, ev)
}
