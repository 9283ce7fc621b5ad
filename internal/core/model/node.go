package model

// Label is a node's display label: a single value, or an ordered list
// when several were merged upstream. One value marshals as a JSON
// scalar, several as an array.
type Label []string

// LabelOf parses a raw label value, splitting merged values.
func LabelOf(s string) Label {
	if s == "" {
		return nil
	}
	return Label(SplitCombined(s))
}

func (l Label) IsZero() bool { return len(l) == 0 }

// String renders the first value; multi-valued labels keep their full
// form only in JSON.
func (l Label) String() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

func (l Label) MarshalJSON() ([]byte, error) {
	return marshalScalarOrList([]string(l))
}

func (l *Label) UnmarshalJSON(data []byte) error {
	vals, err := unmarshalScalarOrList(data)
	if err != nil {
		return err
	}
	*l = Label(vals)
	return nil
}

// NodeRef identifies a node together with its label.
type NodeRef struct {
	ID    string `json:"id"`
	Label Label  `json:"label"`
}

// Ref builds a NodeRef, falling back to the id when no label is known.
func Ref(id string, label Label) NodeRef {
	if label.IsZero() {
		label = Label{id}
	}
	return NodeRef{ID: id, Label: label}
}

// DegreeRef is a NodeRef plus the node's undirected neighbor count.
type DegreeRef struct {
	ID        string `json:"id"`
	Label     Label  `json:"label"`
	Neighbors int64  `json:"neighbors"`
}
