package models

import "github.com/goccy/go-json"

// Exhibit carries open display metadata: only the fields below are
// interpreted, the rest of the document rides along in raw.
type Exhibit struct {
	ID          string   `json:"id"`
	RoomID      string   `json:"roomId"` // weak reference to Room.ID, not enforced
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Facts       []string `json:"facts,omitempty"`

	raw json.RawMessage
}

type exhibitFields Exhibit

func (e Exhibit) RecordID() string { return e.ID }

func (e Exhibit) Field(name string) (string, bool) {
	switch name {
	case "id":
		return e.ID, true
	case "roomId":
		return e.RoomID, true
	case "title":
		return e.Title, true
	}
	return "", false
}

func (e *Exhibit) UnmarshalJSON(b []byte) error {
	var f exhibitFields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*e = Exhibit(f)
	e.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (e Exhibit) MarshalJSON() ([]byte, error) {
	if len(e.raw) > 0 {
		return e.raw, nil
	}
	return json.Marshal(exhibitFields(e))
}
