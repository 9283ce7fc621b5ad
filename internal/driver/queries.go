package driver

// Graph model: (:Term {id, label}) nodes; [:TO {rel_id}] carries the
// general relation used by neighbors, two-hop and statistics reads;
// [:SYNONYM] and [:ANTONYM] carry the thesaurus relation families used
// by the distance-bounded search.
const (
	ExistsQuery = `
		MATCH (n:Term {id: $id})
		RETURN count(n) AS count
	`

	NeighborsQuery = `
		MATCH (n:Term {id: $id})-[:TO]-(m:Term)
		RETURN DISTINCT m.id AS id, m.label AS label
	`

	SuccessorsQuery = `
		MATCH (n:Term {id: $id})-[:TO]->(m:Term)
		RETURN DISTINCT m.id AS id, m.label AS label
	`

	PredecessorsQuery = `
		MATCH (m:Term)-[:TO]->(n:Term {id: $id})
		RETURN DISTINCT m.id AS id, m.label AS label
	`

	GrandchildrenQuery = `
		MATCH (n:Term {id: $id})-[:TO]->(:Term)-[:TO]->(m:Term)
		RETURN DISTINCT m.id AS id, m.label AS label
	`

	GrandparentsQuery = `
		MATCH (m:Term)-[:TO]->(:Term)-[:TO]->(n:Term {id: $id})
		RETURN DISTINCT m.id AS id, m.label AS label
	`

	CountNodesQuery = `
		MATCH (n:Term)
		RETURN count(n) AS count
	`

	CountWithoutSuccessorsQuery = `
		MATCH (n:Term)
		WHERE NOT (n)-[:TO]->(:Term)
		RETURN count(n) AS count
	`

	CountWithoutPredecessorsQuery = `
		MATCH (n:Term)
		WHERE NOT (:Term)-[:TO]->(n)
		RETURN count(n) AS count
	`

	MostConnectedQuery = `
		MATCH (n:Term)-[:TO]-(m:Term)
		WITH n, count(DISTINCT m) AS degree
		WITH max(degree) AS max_degree,
		     collect({id: n.id, label: n.label, degree: degree}) AS rows
		UNWIND rows AS row
		WITH row WHERE row.degree = max_degree
		RETURN row.id AS id, row.label AS label, row.degree AS neighbors
	`

	NodeLabelQuery = `
		MATCH (n:Term {id: $id})
		RETURN n.id AS id, n.label AS label
	`

	SuccessorTwoHopQuery = `
		MATCH (n:Term {id: $id})-[r:TO]->(s:Term)
		OPTIONAL MATCH (p:Term)-[r2:TO]->(s)
		RETURN s.id AS hop_id, s.label AS hop_label, r.rel_id AS hop_edge,
		       p.id AS far_id, p.label AS far_label, r2.rel_id AS far_edge
	`

	PredecessorTwoHopQuery = `
		MATCH (p:Term)-[r:TO]->(n:Term {id: $id})
		OPTIONAL MATCH (p)-[r2:TO]->(s:Term)
		RETURN p.id AS hop_id, p.label AS hop_label, r.rel_id AS hop_edge,
		       s.id AS far_id, s.label AS far_label, r2.rel_id AS far_edge
	`

	// Variable-length bounds cannot be bolt parameters; the depth is
	// clamped and interpolated into the query text.
	RelationTreeQueryTpl = `
		MATCH path = (root:Term {id: $id})-[:SYNONYM|ANTONYM*1..%d]-(:Term)
		UNWIND relationships(path) AS rel
		WITH DISTINCT rel
		RETURN startNode(rel).id AS source_id, startNode(rel).label AS source_label,
		       endNode(rel).id AS target_id, endNode(rel).label AS target_label,
		       type(rel) AS kind
	`
)
