package model

import "time"

// TypeGroup is one named reference-data list (degree types, states, ...).
// Groups are replaced wholesale by the catalog refresh and CRUD-able
// individually otherwise.
type TypeGroup struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Version     int        `json:"version"`
	Data        []TypeItem `json:"data"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// DocumentID implements store.Document.
func (g TypeGroup) DocumentID() string { return g.ID }

// MarkUpdated stamps the last-updated time (UTC).
func (g *TypeGroup) MarkUpdated() {
	now := time.Now().UTC()
	g.LastUpdated = &now
}

// TypeItem is one selectable value within a group.
type TypeItem struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}
