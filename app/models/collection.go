package models

type BlueprintCollection struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Slug            string                `json:"slug"`
	Description     string                `json:"description"`
	Status          string                `json:"status"`
	Creator         *Creator              `json:"creator"`
	Blueprints      []CollectionBlueprint `json:"blueprints,omitempty"`
	BlueprintsCount int                   `json:"blueprints_count,omitempty"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}

// CollectionBlueprint is the trimmed blueprint embedded in a collection
// response.
type CollectionBlueprint struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	Code  string `json:"code"`
}
