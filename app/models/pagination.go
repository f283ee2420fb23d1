package models

// PaginationMeta mirrors the pagination block returned by every list
// endpoint. The server is authoritative: clients must adopt CurrentPage
// from the response even when it disagrees with their local state.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page"`
	From        *int `json:"from"`
	LastPage    int  `json:"last_page"`
	PerPage     int  `json:"per_page"`
	To          *int `json:"to"`
	Total       int  `json:"total"`
}

// List is the envelope shared by all list endpoints. Meta is nil for
// unpaginated lookup endpoints (facilities, items, tags).
type List[T any] struct {
	Data []T             `json:"data"`
	Meta *PaginationMeta `json:"meta,omitempty"`
}
