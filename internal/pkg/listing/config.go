package listing

import "github.com/talospioneers/blueprinthub/internal/pkg/queryfilter"

// BlueprintFilters is the filter/sort declaration of the blueprint
// browse view.
func BlueprintFilters() queryfilter.Config {
	return queryfilter.Config{
		Filters: map[string]queryfilter.FilterConfig{
			"title":       {Type: queryfilter.KindString},
			"region":      {Type: queryfilter.KindString},
			"version":     {Type: queryfilter.KindString},
			"author_id":   {Type: queryfilter.KindString},
			"tags.id":     {Type: queryfilter.KindList},
			"facility":    {Type: queryfilter.KindList},
			"item_input":  {Type: queryfilter.KindList},
			"item_output": {Type: queryfilter.KindList},
		},
		Sort: queryfilter.SortConfig{
			Default: "-created_at",
			Fields:  []string{"created_at", "updated_at", "title", "likes_count", "copies_count"},
		},
	}
}

// MyBlueprintFilters adds the status filter available on the
// authenticated "my blueprints" view.
func MyBlueprintFilters() queryfilter.Config {
	cfg := BlueprintFilters()
	cfg.Filters["status"] = queryfilter.FilterConfig{Type: queryfilter.KindString}
	return cfg
}

// CollectionFilters is the declaration of the collection browse view.
func CollectionFilters() queryfilter.Config {
	return queryfilter.Config{
		Filters: map[string]queryfilter.FilterConfig{
			"title":  {Type: queryfilter.KindString},
			"status": {Type: queryfilter.KindString},
		},
		Sort: queryfilter.SortConfig{
			Default: "-created_at",
			Fields:  []string{"created_at", "updated_at", "title", "blueprints_count"},
		},
	}
}
