// Package chips derives the dismissible filter summary shown above list
// views. The projection is pure: it is recomputed from the current
// filter state and lookup collections on every call and holds no state
// of its own.
package chips

import (
	"strconv"
	"strings"

	"github.com/talospioneers/blueprinthub/internal/pkg/constants"
	"github.com/talospioneers/blueprinthub/internal/pkg/listing"
	"github.com/talospioneers/blueprinthub/internal/pkg/queryfilter"
)

// Chip is one human-readable active-filter label. Key identifies the
// filter it belongs to so the view can dismiss it.
type Chip struct {
	Key   string
	Label string
}

// chipOrder fixes the display order; filters outside this list produce
// no chips.
var chipOrder = []string{"status", "region", "version", "tags.id", "facility", "item_input", "item_output"}

// Project derives chips for every active filter. Scalar filters resolve
// through the static option tables, array filters expand to one chip per
// element resolved against the lookups; unresolvable values fall back to
// the raw value.
func Project(filters map[string]queryfilter.Value, lookups listing.Lookups, includeStatus bool) []Chip {
	var out []Chip
	for _, key := range chipOrder {
		value, ok := filters[key]
		if !ok || !value.IsActive() {
			continue
		}
		switch key {
		case "status":
			if !includeStatus {
				continue
			}
			out = append(out, Chip{Key: key, Label: statusLabel(value.Str())})
		case "region":
			out = append(out, Chip{Key: key, Label: optionLabel(constants.RegionOptions, value.Str())})
		case "version":
			out = append(out, Chip{Key: key, Label: optionLabel(constants.VersionOptions, value.Str())})
		case "tags.id":
			for _, id := range value.Items() {
				out = append(out, Chip{Key: key, Label: tagLabel(lookups, id)})
			}
		case "facility":
			for _, slug := range value.Items() {
				out = append(out, Chip{Key: key, Label: facilityLabel(lookups, slug)})
			}
		case "item_input", "item_output":
			for _, slug := range value.Items() {
				out = append(out, Chip{Key: key, Label: itemLabel(lookups, slug)})
			}
		}
	}
	return out
}

func optionLabel(options []constants.Option, value string) string {
	if label, ok := constants.FindLabel(options, value); ok {
		return label
	}
	return value
}

func statusLabel(value string) string {
	if label, ok := constants.FindLabel(constants.StatusOptions, value); ok {
		return label
	}
	return capitalize(value)
}

func tagLabel(lookups listing.Lookups, id string) string {
	for _, tag := range lookups.Tags {
		if looseEqual(tag.ID, id) {
			return tag.Name
		}
	}
	return id
}

func facilityLabel(lookups listing.Lookups, slug string) string {
	for _, facility := range lookups.Facilities {
		if looseEqual(facility.Slug, slug) {
			return facility.Name
		}
	}
	return slug
}

func itemLabel(lookups listing.Lookups, slug string) string {
	for _, item := range lookups.Items {
		if looseEqual(item.Slug, slug) {
			return item.Name
		}
	}
	return slug
}

// looseEqual compares identifiers regardless of representation, so a
// numeric "7" matches "007" the way loose equality did upstream of the
// API.
func looseEqual(a, b string) bool {
	if a == b {
		return true
	}
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	return errA == nil && errB == nil && na == nb
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
