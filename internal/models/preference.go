package models

import "time"

// Preference is a content category that blogs can be tagged with.
type Preference struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatePreferenceInput struct {
	Name string `json:"name"`
}

type UpdatePreferenceInput struct {
	Name Optional[string] `json:"name"`
}
