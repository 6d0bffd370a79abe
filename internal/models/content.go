package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ContentItem keeps the raw document so type-specific attributes survive
// untouched; only id and type are interpreted.
type ContentItem struct {
	ID   string
	Type string
	raw  json.RawMessage
}

func (c ContentItem) RecordID() string { return c.ID }

func (c ContentItem) Field(name string) (string, bool) {
	switch name {
	case "id":
		return c.ID, true
	case "type":
		return c.Type, true
	}
	return "", false
}

// Attributes decodes the full document, type-specific fields included.
func (c ContentItem) Attributes() (map[string]any, error) {
	out := map[string]any{}
	if len(c.raw) == 0 {
		out["id"] = c.ID
		out["type"] = c.Type
		return out, nil
	}
	if err := json.Unmarshal(c.raw, &out); err != nil {
		return nil, fmt.Errorf("decode content %s: %w", c.ID, err)
	}
	return out, nil
}

func (c *ContentItem) UnmarshalJSON(b []byte) error {
	var head struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	c.ID = head.ID
	c.Type = head.Type
	c.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (c ContentItem) MarshalJSON() ([]byte, error) {
	if len(c.raw) > 0 {
		return c.raw, nil
	}
	return json.Marshal(struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}{c.ID, c.Type})
}
