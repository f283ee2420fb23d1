package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/talospioneers/blueprinthub/app/models"
	"github.com/talospioneers/blueprinthub/internal/pkg/apiclient"
	"github.com/talospioneers/blueprinthub/internal/pkg/chips"
	"github.com/talospioneers/blueprinthub/internal/pkg/env"
	"github.com/talospioneers/blueprinthub/internal/pkg/format"
	"github.com/talospioneers/blueprinthub/internal/pkg/lifecycle"
	"github.com/talospioneers/blueprinthub/internal/pkg/listing"
	"github.com/talospioneers/blueprinthub/internal/pkg/queryfilter"
)

func main() {
	env.SetupEnvFile()

	var (
		region   = flag.String("region", "", "filter by region (valley_iv, wuling)")
		version  = flag.String("version", "", "filter by game version")
		title    = flag.String("title", "", "filter by title substring")
		author   = flag.String("author", "", "filter by author ID")
		tags     = flag.String("tags", "", "comma separated tag IDs")
		facility = flag.String("facility", "", "comma separated facility slugs")
		input    = flag.String("input", "", "comma separated input item slugs")
		output   = flag.String("output", "", "comma separated output item slugs")
		sortBy   = flag.String("sort", "", "sort field, prefix with - for descending")
		page     = flag.Int("page", 1, "page number")
		perPage  = flag.Int("per-page", 25, "results per page")
	)
	flag.Parse()

	locale := env.Locale()
	client, err := apiclient.New(apiclient.Config{
		BaseURL: env.APIBaseURL(),
		Locale:  locale,
	})
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	life := lifecycle.New()
	router := queryfilter.NewMemoryRouter()
	session := listing.NewSession(listing.BlueprintFilters(), router, client.ListBlueprints, life)

	setScalar(session, "region", *region)
	setScalar(session, "version", *version)
	setScalar(session, "title", *title)
	setScalar(session, "author_id", *author)
	setList(session, "tags.id", *tags)
	setList(session, "facility", *facility)
	setList(session, "item_input", *input)
	setList(session, "item_output", *output)
	if *sortBy != "" {
		session.SetSort(strings.TrimPrefix(*sortBy, "-"), strings.HasPrefix(*sortBy, "-"))
	}
	if *page > 1 {
		session.SetPage(*page)
	}
	if *perPage != 25 {
		session.SetPerPage(*perPage)
	}

	lookups, err := listing.LoadLookups(ctx, client)
	if err != nil {
		log.Printf("some lookups failed: %v", err)
	}

	session.Start(ctx)
	session.Flush()
	defer life.Dispose()

	if session.Status() == listing.StatusError {
		log.Fatalf("fetch failed: %v", session.Err())
	}

	if active := chips.Project(session.Filters(), lookups, false); len(active) > 0 {
		labels := make([]string, len(active))
		for i, chip := range active {
			labels[i] = chip.Label
		}
		fmt.Printf("Filters: %s\n", strings.Join(labels, ", "))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tTITLE\tREGION\tLIKES\tCOPIES\tCREATED")
	for _, bp := range session.Items() {
		created := bp.CreatedAt
		if ts, err := time.Parse(time.RFC3339, bp.CreatedAt); err == nil {
			created = format.Date(locale, ts)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			bp.Code,
			bp.Title,
			bp.Region,
			format.CompactNumber(locale, float64(bp.LikesCount)),
			format.CompactNumber(locale, float64(bp.CopiesCount)),
			created,
		)
	}
	w.Flush()

	if meta := session.Meta(); meta != nil {
		fmt.Printf("\nPage %d of %d (%d blueprints)\n", meta.CurrentPage, meta.LastPage, meta.Total)
	}
}

func setScalar(session *listing.Session[models.Blueprint], key, value string) {
	if value == "" {
		return
	}
	session.SetFilter(key, queryfilter.String(value))
}

func setList(session *listing.Session[models.Blueprint], key, csv string) {
	if csv == "" {
		return
	}
	var items []string
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) > 0 {
		session.SetFilter(key, queryfilter.List(items...))
	}
}
