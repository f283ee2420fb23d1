// Package devserver serves the blueprint API from in-memory fixtures
// so the client core can be developed, demoed and integration-tested
// without the production backend.
package devserver

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/talospioneers/blueprinthub/app/models"
	"github.com/talospioneers/blueprinthub/internal/pkg/constants"
)

// New builds the fiber app serving /api/v1 from the given store.
func New(store *FixtureStore) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "blueprinthub-devserver",
	})
	app.Use(recover.New(), logger.New())

	app.Get(constants.BlueprintsRoute, func(c *fiber.Ctx) error {
		return c.JSON(paginateBlueprints(store.Blueprints(), c))
	})
	app.Delete(constants.BlueprintsRoute+"/:id", func(c *fiber.Ctx) error {
		allowed, found := store.Delete(c.Params("id"))
		if !found {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "blueprint not found"})
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
		}
		return c.JSON(fiber.Map{"message": "deleted"})
	})
	app.Get(constants.CollectionsRoute, func(c *fiber.Ctx) error {
		return c.JSON(paginateCollections(store.Collections(), c))
	})
	app.Get(constants.FacilitiesRoute, func(c *fiber.Ctx) error {
		return c.JSON(models.List[models.Facility]{Data: store.Facilities()})
	})
	app.Get(constants.ItemsRoute, func(c *fiber.Ctx) error {
		return c.JSON(models.List[models.Item]{Data: store.Items()})
	})
	app.Get(constants.TagsRoute, func(c *fiber.Ctx) error {
		return c.JSON(models.List[models.Tag]{Data: store.Tags()})
	})

	return app
}

func filterParam(c *fiber.Ctx, key string) string {
	return c.Query("filter[" + key + "]")
}

func filterList(c *fiber.Ctx, key string) []string {
	raw := filterParam(c, key)
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func containsAny(haystack []string, needles []string) bool {
	for _, needle := range needles {
		for _, hay := range haystack {
			if hay == needle {
				return true
			}
		}
	}
	return false
}

func paginateBlueprints(all []models.Blueprint, c *fiber.Ctx) models.List[models.Blueprint] {
	filtered := all[:0:0]
	region := filterParam(c, "region")
	version := filterParam(c, "version")
	status := filterParam(c, "status")
	title := strings.ToLower(filterParam(c, "title"))
	authorID := filterParam(c, "author_id")
	tagIDs := filterList(c, "tags.id")
	facilitySlugs := filterList(c, "facility")
	inputSlugs := filterList(c, "item_input")
	outputSlugs := filterList(c, "item_output")

	for _, bp := range all {
		if region != "" && bp.Region != region {
			continue
		}
		if version != "" && bp.Version != version {
			continue
		}
		if status != "" && bp.Status != status {
			continue
		}
		if title != "" && !strings.Contains(strings.ToLower(bp.Title), title) {
			continue
		}
		if authorID != "" && (bp.Creator == nil || bp.Creator.ID != authorID) {
			continue
		}
		if len(tagIDs) > 0 && !containsAny(tagIDValues(bp.Tags), tagIDs) {
			continue
		}
		if len(facilitySlugs) > 0 && !containsAny(facilitySlugValues(bp.Facilities), facilitySlugs) {
			continue
		}
		if len(inputSlugs) > 0 && !containsAny(itemSlugValues(bp.ItemInputs), inputSlugs) {
			continue
		}
		if len(outputSlugs) > 0 && !containsAny(itemSlugValues(bp.ItemOutputs), outputSlugs) {
			continue
		}
		filtered = append(filtered, bp)
	}

	sortBlueprints(filtered, c.Query("sort"))

	page, perPage, meta := paginate(len(filtered), c)
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return models.List[models.Blueprint]{Data: filtered[start:end], Meta: meta}
}

func tagIDValues(tags []models.BlueprintTag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.ID
	}
	return out
}

func facilitySlugValues(facilities []models.BlueprintFacility) []string {
	out := make([]string, len(facilities))
	for i, f := range facilities {
		out[i] = f.Slug
	}
	return out
}

func itemSlugValues(items []models.BlueprintItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Slug
	}
	return out
}

func sortBlueprints(blueprints []models.Blueprint, sortParam string) {
	if sortParam == "" {
		sortParam = "-created_at"
	}
	field := strings.TrimPrefix(sortParam, "-")
	descending := strings.HasPrefix(sortParam, "-")

	sort.SliceStable(blueprints, func(i, j int) bool {
		a, b := blueprints[i], blueprints[j]
		if descending {
			a, b = b, a
		}
		switch field {
		case "title":
			return a.Title < b.Title
		case "likes_count":
			return a.LikesCount < b.LikesCount
		case "copies_count":
			return a.CopiesCount < b.CopiesCount
		case "updated_at":
			return a.UpdatedAt < b.UpdatedAt
		default:
			return a.CreatedAt < b.CreatedAt
		}
	})
}

func paginateCollections(all []models.BlueprintCollection, c *fiber.Ctx) models.List[models.BlueprintCollection] {
	filtered := all[:0:0]
	status := filterParam(c, "status")
	title := strings.ToLower(filterParam(c, "title"))

	for _, col := range all {
		if status != "" && col.Status != status {
			continue
		}
		if title != "" && !strings.Contains(strings.ToLower(col.Title), title) {
			continue
		}
		filtered = append(filtered, col)
	}

	sortParam := c.Query("sort")
	if sortParam == "" {
		sortParam = "-created_at"
	}
	field := strings.TrimPrefix(sortParam, "-")
	descending := strings.HasPrefix(sortParam, "-")
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if descending {
			a, b = b, a
		}
		switch field {
		case "title":
			return a.Title < b.Title
		case "blueprints_count":
			return a.BlueprintsCount < b.BlueprintsCount
		case "updated_at":
			return a.UpdatedAt < b.UpdatedAt
		default:
			return a.CreatedAt < b.CreatedAt
		}
	})

	page, perPage, meta := paginate(len(filtered), c)
	start := (page - 1) * perPage
	end := start + perPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return models.List[models.BlueprintCollection]{Data: filtered[start:end], Meta: meta}
}

// paginate parses page/per_page and clamps the page into range the way
// the production API does: an out-of-range page lands on the last page,
// never on an empty one.
func paginate(total int, c *fiber.Ctx) (page, perPage int, meta *models.PaginationMeta) {
	page = queryInt(c, "page", 1)
	perPage = queryInt(c, "per_page", 25)
	if perPage < 1 {
		perPage = 25
	}
	if perPage > 100 {
		perPage = 100
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > lastPage {
		page = lastPage
	}

	meta = &models.PaginationMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	if total > 0 {
		from := (page-1)*perPage + 1
		to := page * perPage
		if to > total {
			to = total
		}
		meta.From = &from
		meta.To = &to
	}
	return page, perPage, meta
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	val, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return val
}
