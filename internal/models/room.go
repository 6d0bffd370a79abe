package models

import "github.com/goccy/go-json"

// Room is read through its typed fields; the decoded document is re-emitted
// as is, so attributes with no field here are served unchanged.
type Room struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`

	raw json.RawMessage
}

type roomFields Room

func (r Room) RecordID() string { return r.ID }

func (r Room) Field(name string) (string, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "name":
		return r.Name, true
	}
	return "", false
}

func (r *Room) UnmarshalJSON(b []byte) error {
	var f roomFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*r = Room(f)
	r.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (r Room) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	return json.Marshal(roomFields(r))
}
