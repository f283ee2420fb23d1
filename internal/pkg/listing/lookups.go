package listing

import (
	"context"
	"errors"

	"github.com/talospioneers/blueprinthub/app/models"
)

// LookupClient fetches the auxiliary collections the chip projector
// cross-references.
type LookupClient interface {
	ListFacilities(ctx context.Context) ([]models.Facility, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// Lookups holds the auxiliary collections. They are fetched once per
// view, unconditionally, and never refetched on query changes.
type Lookups struct {
	Facilities []models.Facility
	Items      []models.Item
	Tags       []models.Tag
}

// LoadLookups fetches all three collections. Individual failures leave
// that collection empty; the joined error is returned for logging but a
// partially loaded Lookups is still usable (chips fall back to raw
// values).
func LoadLookups(ctx context.Context, client LookupClient) (Lookups, error) {
	var lookups Lookups
	var errs []error

	facilities, err := client.ListFacilities(ctx)
	if err != nil {
		errs = append(errs, err)
	} else {
		lookups.Facilities = facilities
	}

	items, err := client.ListItems(ctx)
	if err != nil {
		errs = append(errs, err)
	} else {
		lookups.Items = items
	}

	tags, err := client.ListTags(ctx)
	if err != nil {
		errs = append(errs, err)
	} else {
		lookups.Tags = tags
	}

	return lookups, errors.Join(errs...)
}
