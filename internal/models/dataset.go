package models

// Snapshot is the Static Dataset as loaded at startup. It is never mutated
// after load.
type Snapshot struct {
	Rooms    []Room
	Exhibits []Exhibit
	Content  []ContentItem
}
