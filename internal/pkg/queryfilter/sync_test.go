package queryfilter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingRouter wraps MemoryRouter and counts Replace calls so tests
// can assert external changes never echo back.
type countingRouter struct {
	*MemoryRouter
	replaces int
}

func (r *countingRouter) Replace(q url.Values) {
	r.replaces++
	r.MemoryRouter.Replace(q)
}

func TestBind_LocalChangePushesReplace(t *testing.T) {
	t.Parallel()

	router := &countingRouter{MemoryRouter: NewMemoryRouter()}
	store := NewStore(testConfig())
	Bind(store, router)

	store.SetFilter("region", String("wuling"))

	assert.Equal(t, 1, router.replaces)
	assert.Equal(t, "wuling", router.Query().Get("filter[region]"))
	assert.Equal(t, "-created_at", router.Query().Get("sort"))
}

func TestBind_ExternalNavigationDoesNotEcho(t *testing.T) {
	t.Parallel()

	router := &countingRouter{MemoryRouter: NewMemoryRouter()}
	store := NewStore(testConfig())
	Bind(store, router)

	router.Navigate(url.Values{
		"filter[region]": {"valley_iv"},
		"sort":           {"title"},
	})

	v, _ := store.Get("region")
	assert.Equal(t, "valley_iv", v.Str())
	assert.Equal(t, "title", store.SortField())
	assert.Zero(t, router.replaces, "external change must not trigger a push back")
}

func TestBind_InitialQueryApplied(t *testing.T) {
	t.Parallel()

	router := NewMemoryRouter()
	router.Replace(url.Values{"filter[tags.id]": {"3,9"}})

	store := NewStore(testConfig())
	Bind(store, router)

	v, _ := store.Get("tags.id")
	assert.Equal(t, []string{"3", "9"}, v.Items())
}

func TestBind_PreservesUnrelatedParams(t *testing.T) {
	t.Parallel()

	router := NewMemoryRouter()
	router.Replace(url.Values{"page": {"3"}, "filter[region]": {"wuling"}})

	store := NewStore(testConfig())
	Bind(store, router)

	store.ClearFilter("region")

	q := router.Query()
	assert.Equal(t, "3", q.Get("page"), "pagination params survive filter pushes")
	assert.Empty(t, q.Get("filter[region]"), "cleared filters drop out of the query")
}
