package models

// Creator is the (optionally anonymous) author attached to blueprints
// and collections.
type Creator struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Permissions carries the per-resource abilities of the current viewer.
type Permissions struct {
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
}

type Blueprint struct {
	ID            string              `json:"id"`
	Code          string              `json:"code"`
	Title         string              `json:"title"`
	Slug          string              `json:"slug"`
	Version       string              `json:"version"`
	Description   string              `json:"description"`
	Status        string              `json:"status"`
	Region        string              `json:"region,omitempty"`
	ServerRegion  string              `json:"server_region,omitempty"`
	Facilities    []BlueprintFacility `json:"facilities,omitempty"`
	ItemInputs    []BlueprintItem     `json:"item_inputs,omitempty"`
	ItemOutputs   []BlueprintItem     `json:"item_outputs,omitempty"`
	Creator       *Creator            `json:"creator"`
	Tags          []BlueprintTag      `json:"tags"`
	Gallery       []GalleryItem       `json:"gallery"`
	LikesCount    int                 `json:"likes_count"`
	CopiesCount   int                 `json:"copies_count"`
	CommentsCount int                 `json:"comments_count"`
	IsLiked       bool                `json:"is_liked"`
	Permissions   Permissions         `json:"permissions"`
	IsAnonymous   bool                `json:"is_anonymous,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}

// BlueprintFacility is a facility reference embedded in a blueprint,
// including how many of it the blueprint places.
type BlueprintFacility struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Quantity int    `json:"quantity"`
}

// BlueprintItem is an input or output item reference embedded in a
// blueprint.
type BlueprintItem struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Quantity int    `json:"quantity"`
}

type BlueprintTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Type string `json:"type"`
}

// GalleryItem is one uploaded screenshot attached to a blueprint.
type GalleryItem struct {
	ID        string `json:"id,omitempty"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
	Name      string `json:"name"`
}
