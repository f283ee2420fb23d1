package models

type Comment struct {
	ID           string         `json:"id"`
	Comment      string         `json:"comment"`
	IsApproved   bool           `json:"is_approved"`
	IsEdited     bool           `json:"is_edited"`
	User         *CommentAuthor `json:"user"`
	Commentable  CommentableRef `json:"commentable"`
	Replies      []Comment      `json:"replies,omitempty"`
	RepliesCount int            `json:"replies_count,omitempty"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

type CommentAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// CommentableRef points at the resource a comment is attached to.
type CommentableRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}
