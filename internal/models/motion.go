package models

import (
	"encoding/json"
	"time"
)

// Theme groups motions by topic.
type Theme struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Motion is one debate motion in the catalogue. The backend serializes the
// theme either as a nested object or as a bare name string depending on the
// endpoint, so Theme has a custom unmarshaller.
type Motion struct {
	ID              int       `json:"id"`
	Theme           Theme     `json:"theme"`
	Text            string    `json:"text"`
	CompetitionType string    `json:"competition_type"`
	CreatedAt       time.Time `json:"created_at"`
}

func (t *Theme) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		t.ID = 0
		t.Name = name
		t.Description = ""
		return nil
	}

	type themeAlias Theme
	var obj themeAlias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*t = Theme(obj)
	return nil
}
