package constants

// API route constants
const (
	BlueprintsRoute  = "/api/v1/blueprints"
	CollectionsRoute = "/api/v1/collections"
	FacilitiesRoute  = "/api/v1/facilities"
	ItemsRoute       = "/api/v1/items"
	TagsRoute        = "/api/v1/tags"
)
