package queryfilter

import "strings"

// FilterConfig declares one filter key: its value type and an optional
// default applied on construction and on ClearAllFilters.
type FilterConfig struct {
	Type    Kind
	Default *Value
}

// SortConfig declares the default sort (a field name, optionally
// prefixed with "-" for descending) and the set of sortable fields.
type SortConfig struct {
	Default string
	Fields  []string
}

// Config is the full filter/sort declaration for one list view. It is
// immutable for the lifetime of the view.
type Config struct {
	Filters map[string]FilterConfig
	Sort    SortConfig
}

// defaultSort splits the configured default into field and direction.
func (s SortConfig) defaultSort() (string, bool) {
	field := strings.TrimPrefix(s.Default, "-")
	return field, strings.HasPrefix(s.Default, "-")
}

func (s SortConfig) allows(field string) bool {
	for _, f := range s.Fields {
		if f == field {
			return true
		}
	}
	return false
}
