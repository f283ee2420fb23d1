package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talospioneers/blueprinthub/app/models"
	"github.com/talospioneers/blueprinthub/internal/pkg/apiclient"
	"github.com/talospioneers/blueprinthub/internal/pkg/lifecycle"
	"github.com/talospioneers/blueprinthub/internal/pkg/listing"
	"github.com/talospioneers/blueprinthub/internal/pkg/queryfilter"
)

func listBlueprints(t *testing.T, app *fiber.App, rawQuery string) models.List[models.Blueprint] {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "/api/v1/blueprints?"+rawQuery, nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out models.List[models.Blueprint]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestListBlueprints_DefaultPagination(t *testing.T) {
	t.Parallel()

	app := New(Seed())
	out := listBlueprints(t, app, "")

	assert.Len(t, out.Data, 25)
	require.NotNil(t, out.Meta)
	assert.Equal(t, 1, out.Meta.CurrentPage)
	assert.Equal(t, 3, out.Meta.LastPage)
	assert.Equal(t, 60, out.Meta.Total)
	require.NotNil(t, out.Meta.From)
	assert.Equal(t, 1, *out.Meta.From)
}

func TestListBlueprints_Filters(t *testing.T) {
	t.Parallel()

	app := New(Seed())

	out := listBlueprints(t, app, url.Values{"filter[region]": {"wuling"}}.Encode())
	assert.Equal(t, 30, out.Meta.Total)
	for _, bp := range out.Data {
		assert.Equal(t, "wuling", bp.Region)
	}

	out = listBlueprints(t, app, url.Values{"filter[facility]": {"smelter,refinery"}}.Encode())
	assert.Equal(t, 30, out.Meta.Total, "even-numbered fixtures use the smelter")

	out = listBlueprints(t, app, url.Values{"filter[title]": {"blueprint 0"}}.Encode())
	assert.Equal(t, 9, out.Meta.Total)
}

func TestListBlueprints_SortDescending(t *testing.T) {
	t.Parallel()

	app := New(Seed())
	out := listBlueprints(t, app, "sort=-likes_count")

	require.NotEmpty(t, out.Data)
	for i := 1; i < len(out.Data); i++ {
		assert.GreaterOrEqual(t, out.Data[i-1].LikesCount, out.Data[i].LikesCount)
	}
}

func TestListBlueprints_ClampsOutOfRangePage(t *testing.T) {
	t.Parallel()

	app := New(Seed())
	out := listBlueprints(t, app, "page=99")

	assert.Equal(t, 3, out.Meta.CurrentPage, "server clamps to the last page")
	assert.Len(t, out.Data, 10)
}

func TestDeleteBlueprint(t *testing.T) {
	t.Parallel()

	app := New(Seed())

	do := func(id string) int {
		req, err := http.NewRequest(http.MethodDelete, "/api/v1/blueprints/"+id, nil)
		require.NoError(t, err)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusForbidden, do("bp-1"), "fixture without delete permission")
	assert.Equal(t, http.StatusOK, do("bp-5"))
	assert.Equal(t, http.StatusNotFound, do("bp-5"), "second delete finds nothing")
	assert.Equal(t, http.StatusNotFound, do("bp-nope"))
}

// fiberTransport routes the API client's requests straight into the
// fiber app, giving the end-to-end tests a real HTTP exchange without a
// socket.
type fiberTransport struct {
	app *fiber.App
}

func (t fiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.app.Test(req, -1)
}

func newEndToEndClient(t *testing.T, app *fiber.App) *apiclient.Client {
	t.Helper()
	client, err := apiclient.New(apiclient.Config{
		BaseURL:    "http://devserver.local",
		Locale:     "en",
		HTTPClient: &http.Client{Transport: fiberTransport{app: app}},
	})
	require.NoError(t, err)
	return client
}

func TestEndToEnd_SessionAgainstDevserver(t *testing.T) {
	t.Parallel()

	app := New(Seed())
	client := newEndToEndClient(t, app)

	router := queryfilter.NewMemoryRouter()
	session := listing.NewSession(listing.BlueprintFilters(), router, client.ListBlueprints, lifecycle.New())
	session.Start(context.Background())
	session.Flush()

	require.Equal(t, listing.StatusSuccess, session.Status())
	assert.Len(t, session.Items(), 25)

	session.SetFilter("region", queryfilter.String("wuling"))
	session.Flush()
	require.Equal(t, listing.StatusSuccess, session.Status())
	assert.Equal(t, 30, session.Meta().Total)
	assert.Equal(t, "wuling", router.Query().Get("filter[region]"))

	// Jump far past the end: the server clamps, the session adopts.
	session.SetPage(50)
	session.Flush()
	assert.Equal(t, 2, session.Page())
	assert.Equal(t, "2", router.Query().Get("page"))
}

func TestEndToEnd_LookupsLoad(t *testing.T) {
	t.Parallel()

	app := New(Seed())
	client := newEndToEndClient(t, app)

	lookups, err := listing.LoadLookups(context.Background(), client)
	require.NoError(t, err)
	assert.Len(t, lookups.Facilities, 3)
	assert.Len(t, lookups.Items, 4)
	assert.Len(t, lookups.Tags, 3)
}
