package devserver

import (
	"fmt"
	"sync"

	"github.com/talospioneers/blueprinthub/app/models"
)

// FixtureStore is the in-memory dataset behind the development API.
// It implements just enough of the production query semantics for the
// client core to be developed and tested against: Laravel-QueryBuilder
// style filter[...]/sort parameters and server-side page clamping.
type FixtureStore struct {
	mu          sync.RWMutex
	blueprints  []models.Blueprint
	collections []models.BlueprintCollection
	facilities  []models.Facility
	items       []models.Item
	tags        []models.Tag
}

// Seed builds a store with a deterministic dataset.
func Seed() *FixtureStore {
	facilities := []models.Facility{
		{ID: "1", Slug: "smelter", Name: "Smelter", Description: "Smelts ore into ingots."},
		{ID: "2", Slug: "assembler", Name: "Assembler", Description: "Assembles components."},
		{ID: "3", Slug: "refinery", Name: "Refinery", Description: "Refines fluids."},
	}
	items := []models.Item{
		{ID: "1", Slug: "iron_ore", Name: "Iron Ore"},
		{ID: "2", Slug: "iron_ingot", Name: "Iron Ingot"},
		{ID: "3", Slug: "gear", Name: "Gear"},
		{ID: "4", Slug: "crude_oil", Name: "Crude Oil"},
	}
	tags := []models.Tag{
		{ID: "1", Name: "Compact", Slug: "compact", Type: "community"},
		{ID: "2", Name: "Early Game", Slug: "early-game", Type: "community"},
		{ID: "3", Name: "Late Game", Slug: "late-game", Type: "community"},
	}

	store := &FixtureStore{
		facilities: facilities,
		items:      items,
		tags:       tags,
	}

	regions := []string{"valley_iv", "wuling"}
	for i := 1; i <= 60; i++ {
		region := regions[i%len(regions)]
		bp := models.Blueprint{
			ID:          fmt.Sprintf("bp-%d", i),
			Code:        fmt.Sprintf("BPH-%04d", i),
			Title:       fmt.Sprintf("Blueprint %02d", i),
			Slug:        fmt.Sprintf("blueprint-%02d", i),
			Version:     "cbt_3",
			Status:      "published",
			Region:      region,
			Creator:     &models.Creator{ID: fmt.Sprintf("u-%d", i%5+1), Name: fmt.Sprintf("Pioneer %d", i%5+1)},
			Tags:        []models.BlueprintTag{{ID: tags[i%len(tags)].ID, Name: tags[i%len(tags)].Name, Slug: tags[i%len(tags)].Slug}},
			LikesCount:  i * 3 % 97,
			CopiesCount: i * 7 % 53,
			Permissions: models.Permissions{CanEdit: i%5 == 0, CanDelete: i%5 == 0},
			CreatedAt:   fmt.Sprintf("2026-01-%02dT10:00:00Z", i%28+1),
			UpdatedAt:   fmt.Sprintf("2026-02-%02dT10:00:00Z", i%28+1),
		}
		if i%2 == 0 {
			bp.Facilities = []models.BlueprintFacility{{ID: "1", Slug: "smelter", Name: "Smelter", Quantity: i % 9}}
			bp.ItemInputs = []models.BlueprintItem{{ID: "1", Slug: "iron_ore", Name: "Iron Ore", Quantity: 30}}
			bp.ItemOutputs = []models.BlueprintItem{{ID: "2", Slug: "iron_ingot", Name: "Iron Ingot", Quantity: 30}}
		} else {
			bp.Facilities = []models.BlueprintFacility{{ID: "2", Slug: "assembler", Name: "Assembler", Quantity: i % 6}}
			bp.ItemInputs = []models.BlueprintItem{{ID: "2", Slug: "iron_ingot", Name: "Iron Ingot", Quantity: 15}}
			bp.ItemOutputs = []models.BlueprintItem{{ID: "3", Slug: "gear", Name: "Gear", Quantity: 10}}
		}
		store.blueprints = append(store.blueprints, bp)
	}

	for i := 1; i <= 8; i++ {
		store.collections = append(store.collections, models.BlueprintCollection{
			ID:              fmt.Sprintf("col-%d", i),
			Title:           fmt.Sprintf("Collection %d", i),
			Slug:            fmt.Sprintf("collection-%d", i),
			Status:          "published",
			Creator:         &models.Creator{ID: "u-1", Name: "Pioneer 1"},
			BlueprintsCount: i * 2,
			CreatedAt:       fmt.Sprintf("2026-03-%02dT10:00:00Z", i),
			UpdatedAt:       fmt.Sprintf("2026-03-%02dT10:00:00Z", i),
		})
	}

	return store
}

// Delete removes a blueprint by ID. The second return reports whether
// it existed, the first whether the viewer may delete it.
func (s *FixtureStore) Delete(id string) (allowed, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, bp := range s.blueprints {
		if bp.ID != id {
			continue
		}
		if !bp.Permissions.CanDelete {
			return false, true
		}
		s.blueprints = append(s.blueprints[:i], s.blueprints[i+1:]...)
		return true, true
	}
	return false, false
}

func (s *FixtureStore) Blueprints() []models.Blueprint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Blueprint, len(s.blueprints))
	copy(out, s.blueprints)
	return out
}

func (s *FixtureStore) Collections() []models.BlueprintCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BlueprintCollection, len(s.collections))
	copy(out, s.collections)
	return out
}

func (s *FixtureStore) Facilities() []models.Facility {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.facilities
}

func (s *FixtureStore) Items() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

func (s *FixtureStore) Tags() []models.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tags
}
