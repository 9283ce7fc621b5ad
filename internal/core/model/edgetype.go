package model

// EdgeType is the relation identifier attached to an edge. Like Label
// it carries one value or a merged list, and marshals accordingly.
type EdgeType []string

// EdgeTypeOf parses a raw edge-type value, splitting merged values.
func EdgeTypeOf(s string) EdgeType {
	if s == "" {
		return nil
	}
	return EdgeType(SplitCombined(s))
}

// Matches reports whether two edge types denote the same kind of
// connection: equal scalars, lists sharing at least one element, or a
// scalar contained in the other's list. Empty types match nothing.
func (t EdgeType) Matches(other EdgeType) bool {
	for _, a := range t {
		for _, b := range other {
			if a == b {
				return true
			}
		}
	}
	return false
}

func (t EdgeType) MarshalJSON() ([]byte, error) {
	return marshalScalarOrList([]string(t))
}

func (t *EdgeType) UnmarshalJSON(data []byte) error {
	vals, err := unmarshalScalarOrList(data)
	if err != nil {
		return err
	}
	*t = EdgeType(vals)
	return nil
}
