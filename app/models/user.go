package models

type User struct {
	ID              string                `json:"id"`
	Username        string                `json:"username"`
	Email           string                `json:"email"`
	EmailVerifiedAt string                `json:"email_verified_at,omitempty"`
	Locale          string                `json:"locale"`
	Collections     []BlueprintCollection `json:"collections"`
	CreatedAt       string                `json:"created_at"`
	UpdatedAt       string                `json:"updated_at"`
}
