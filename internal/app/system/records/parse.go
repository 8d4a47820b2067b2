package records

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotArray is returned when a document parses but is not a JSON array.
var ErrNotArray = errors.New("document is not an array of records")

// Parse decodes content as a JSON array. Object elements become Records;
// any other element (null, number, string, nested array) becomes a nil Record
// so it is rejected by validation instead of failing the whole document.
func Parse(content []byte) ([]Record, error) {
	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	out := make([]Record, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			out = append(out, nil)
			continue
		}
		out = append(out, Record(obj))
	}
	return out, nil
}
