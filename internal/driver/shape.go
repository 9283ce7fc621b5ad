package driver

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/agenthands/lexigraph/internal/core/model"
)

// Record shaping. Fragments missing required fields are skipped, never
// reported: a partially malformed response still yields every usable
// row.

func stringValue(rec *neo4j.Record, key string) string {
	v, ok := rec.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func intValue(rec *neo4j.Record, key string) int64 {
	v, ok := rec.Get(key)
	if !ok {
		return 0
	}
	n, _ := v.(int64)
	return n
}

func countFrom(res *neo4j.EagerResult) int64 {
	if res == nil || len(res.Records) == 0 {
		return 0
	}
	return intValue(res.Records[0], "count")
}

func nodeRefs(records []*neo4j.Record) []model.NodeRef {
	refs := make([]model.NodeRef, 0, len(records))
	for _, rec := range records {
		id := stringValue(rec, "id")
		if id == "" {
			continue
		}
		refs = append(refs, model.Ref(id, model.LabelOf(stringValue(rec, "label"))))
	}
	return refs
}

func degreeRefs(records []*neo4j.Record) []model.DegreeRef {
	refs := make([]model.DegreeRef, 0, len(records))
	for _, rec := range records {
		id := stringValue(rec, "id")
		if id == "" {
			continue
		}
		refs = append(refs, model.DegreeRef{
			ID:        id,
			Label:     model.LabelOf(stringValue(rec, "label")),
			Neighbors: intValue(rec, "neighbors"),
		})
	}
	return refs
}

// neighborLinks groups two-hop rows by first-hop node and edge. Each
// row names the first hop (hop_*) and at most one far-side node
// (far_*); rows with no far side still register the first hop.
func neighborLinks(records []*neo4j.Record) []model.NeighborLink {
	links := []model.NeighborLink{}
	index := make(map[string]int)

	for _, rec := range records {
		hopID := stringValue(rec, "hop_id")
		if hopID == "" {
			continue
		}
		hopEdge := stringValue(rec, "hop_edge")

		key := hopID + "\x00" + hopEdge
		i, ok := index[key]
		if !ok {
			i = len(links)
			index[key] = i
			links = append(links, model.NeighborLink{
				ID:       hopID,
				Label:    model.LabelOf(stringValue(rec, "hop_label")),
				EdgeType: model.EdgeTypeOf(hopEdge),
			})
		}

		farID := stringValue(rec, "far_id")
		if farID == "" {
			continue
		}
		links[i].Links = append(links[i].Links, model.NeighborLink{
			ID:       farID,
			Label:    model.LabelOf(stringValue(rec, "far_label")),
			EdgeType: model.EdgeTypeOf(stringValue(rec, "far_edge")),
		})
	}

	return links
}

type treeLink struct {
	other   string
	synonym bool
	forward bool
}

// assembleRelationTree rebuilds the nested tree shape from the flat
// edge rows of the relation-tree query: breadth-first from the root,
// each node expanded once. An edge back to an already expanded node is
// attached as a leaf reference so the relation stays visible without
// turning the tree into a graph.
func assembleRelationTree(rootID string, records []*neo4j.Record, maxDepth int) *model.RelationNode {
	labels := make(map[string]model.Label)
	adj := make(map[string][]treeLink)

	for _, rec := range records {
		src := stringValue(rec, "source_id")
		dst := stringValue(rec, "target_id")
		if src == "" || dst == "" {
			continue
		}
		if l := model.LabelOf(stringValue(rec, "source_label")); !l.IsZero() {
			if _, ok := labels[src]; !ok {
				labels[src] = l
			}
		}
		if l := model.LabelOf(stringValue(rec, "target_label")); !l.IsZero() {
			if _, ok := labels[dst]; !ok {
				labels[dst] = l
			}
		}

		synonym := stringValue(rec, "kind") == "SYNONYM"
		adj[src] = append(adj[src], treeLink{other: dst, synonym: synonym, forward: true})
		adj[dst] = append(adj[dst], treeLink{other: src, synonym: synonym, forward: false})
	}

	mk := func(id string) *model.RelationNode {
		return &model.RelationNode{ID: id, Label: labels[id]}
	}

	root := mk(rootID)
	expanded := map[string]*model.RelationNode{rootID: root}
	level := []*model.RelationNode{root}

	for depth := 1; depth < maxDepth && len(level) > 0; depth++ {
		var next []*model.RelationNode
		for _, n := range level {
			for _, ln := range adj[n.ID] {
				child, seen := expanded[ln.other]
				ref := child
				if seen {
					ref = &model.RelationNode{ID: child.ID, Label: child.Label}
				} else {
					child = mk(ln.other)
					expanded[ln.other] = child
					next = append(next, child)
					ref = child
				}
				attach(n, ref, ln)
			}
		}
		level = next
	}

	return root
}

func attach(parent, child *model.RelationNode, ln treeLink) {
	switch {
	case ln.synonym && ln.forward:
		parent.Synonyms = append(parent.Synonyms, child)
	case ln.synonym:
		parent.SynonymsOf = append(parent.SynonymsOf, child)
	case ln.forward:
		parent.Antonyms = append(parent.Antonyms, child)
	default:
		parent.AntonymsOf = append(parent.AntonymsOf, child)
	}
}
