package models

type Item struct {
	ID                       string `json:"id"`
	Slug                     string `json:"slug"`
	Name                     string `json:"name"`
	Icon                     string `json:"icon"`
	Type                     string `json:"type,omitempty"`
	TypeDisplay              string `json:"type_display,omitempty"`
	Description              string `json:"description"`
	OutputFacilityCraftTable string `json:"output_facility_craft_table"`
	CreatedAt                string `json:"created_at"`
	UpdatedAt                string `json:"updated_at"`
}
