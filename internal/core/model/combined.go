package model

import (
	"encoding/json"
	"strings"
)

// Upstream ingestion merges duplicate rows by joining their values with
// this separator, so ids, labels and edge types may carry several
// values in one string.
const combinedSeparator = "<;>"

// SplitCombined splits a possibly merged value into its parts. A plain
// value comes back as a one-element slice.
func SplitCombined(s string) []string {
	if strings.Contains(s, combinedSeparator) {
		return strings.Split(s, combinedSeparator)
	}
	return []string{s}
}

func marshalScalarOrList(vals []string) ([]byte, error) {
	switch len(vals) {
	case 0:
		return []byte("null"), nil
	case 1:
		return json.Marshal(vals[0])
	default:
		return json.Marshal(vals)
	}
}

func unmarshalScalarOrList(data []byte) ([]string, error) {
	if string(data) == "null" {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return []string{s}, nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}
