package entity

import "encoding/json"

type Note struct {
	ID        int64          `json:"id"`
	EntityID  int64          `json:"entity_id"`
	NoteType  string         `json:"note_type"`
	CreatedAt int64          `json:"created_at"`
	Params    map[string]any `json:"params"`
}

// Link returns params.link when the note carries one.
func (n Note) Link() (string, bool) {
	if n.Params == nil {
		return "", false
	}

	link, ok := n.Params["link"].(string)
	if !ok || link == "" {
		return "", false
	}

	return link, true
}

type NotesPage struct {
	Embedded struct {
		Notes []Note `json:"notes"`
	} `json:"_embedded"`

	Raw json.RawMessage `json:"-"`
}

func (p NotesPage) Notes() []Note {
	return p.Embedded.Notes
}
