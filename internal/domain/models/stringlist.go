package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings that the backend stores as a
// JSON-encoded string. It decodes from either a JSON array or such a string.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*l = nil
		return nil
	}
	if b[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		parsed, err := ParseStringList(raw)
		if err != nil {
			return err
		}
		*l = parsed
		return nil
	}
	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("string list: %w", err)
	}
	*l = items
	return nil
}

// Encode serializes the list into the JSON string form the backend stores.
func (l StringList) Encode() string {
	items := []string(l)
	if items == nil {
		items = []string{}
	}
	b, _ := json.Marshal(items)
	return string(b)
}

// ParseStringList decodes the stored form. An empty string is an empty list.
func ParseStringList(raw string) (StringList, error) {
	raw = string(bytes.TrimSpace([]byte(raw)))
	if raw == "" {
		return StringList{}, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("string list %q: %w", raw, err)
	}
	return StringList(items), nil
}
