package listing

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v2/log"

	"github.com/talospioneers/blueprinthub/app/models"
	"github.com/talospioneers/blueprinthub/internal/pkg/lifecycle"
	"github.com/talospioneers/blueprinthub/internal/pkg/queryfilter"
)

// Status mirrors the fetch lifecycle the consuming view renders.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

const (
	defaultPage    = 1
	defaultPerPage = 25
)

// FetchFunc issues one list request for the given query projection.
type FetchFunc[T any] func(ctx context.Context, query url.Values) (*models.List[T], error)

// Session layers page/per-page state on a filter store, keeps both in
// agreement with the router query, and re-issues the list fetch whenever
// the active query changes.
//
// Fetches resolve asynchronously; a request generation counter makes the
// latest query win, so a stale in-flight response never overwrites newer
// state. The server is authoritative on pagination: a response whose
// meta disagrees with the local page adopts the server's page without
// another fetch.
//
// The session serializes every store access under its own mutex,
// including external navigation, so fetch completions and host-thread
// navigation never touch the store concurrently.
type Session[T any] struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	ctx    context.Context
	store  *queryfilter.Store
	router queryfilter.Router
	fetch  FetchFunc[T]
	life   *lifecycle.Lifecycle

	started     bool
	currentPage int
	perPage     int
	items       []T
	meta        *models.PaginationMeta
	status      Status
	err         error
	gen         uint64
}

// NewSession builds a session over cfg bound to router. The router's
// current query seeds filters, sort and pagination. No fetch is issued
// until Start.
func NewSession[T any](cfg queryfilter.Config, router queryfilter.Router, fetch FetchFunc[T], life *lifecycle.Lifecycle) *Session[T] {
	s := &Session[T]{
		ctx:         context.Background(),
		store:       queryfilter.NewStore(cfg),
		router:      router,
		fetch:       fetch,
		life:        life,
		currentPage: defaultPage,
		perPage:     defaultPerPage,
		status:      StatusIdle,
	}

	// Local filter/sort changes invalidate the pagination position.
	// This callback only fires from session methods that already hold
	// the mutex.
	s.store.OnChange(func(origin queryfilter.Origin) {
		if origin != queryfilter.OriginLocal {
			return
		}
		s.currentPage = defaultPage
		s.router.Replace(s.activeQueryLocked())
	})

	// External navigation is applied under the session mutex rather
	// than through queryfilter.Bind, so the store is never mutated
	// concurrently with a fetch completion reading it.
	router.OnChange(func(query url.Values) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.store.ApplyQuery(query, queryfilter.OriginExternal)
		s.currentPage, s.perPage = parsePagination(query)
		s.scheduleFetchLocked()
	})

	if initial := router.Query(); len(initial) > 0 {
		s.store.ApplyQuery(initial, queryfilter.OriginExternal)
	}
	s.currentPage, s.perPage = parsePagination(router.Query())

	if life != nil {
		life.OnStop(func() { s.wg.Wait() })
	}
	return s
}

func parsePagination(query url.Values) (page, perPage int) {
	page = defaultPage
	perPage = defaultPerPage
	if n, err := strconv.Atoi(query.Get("page")); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(query.Get("per_page")); err == nil && n > 0 {
		perPage = n
	}
	return page, perPage
}

// Start issues the initial fetch. ctx bounds every request the session
// makes from here on.
func (s *Session[T]) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx = ctx
	s.started = true
	if s.life != nil {
		s.life.Start()
	}
	s.scheduleFetchLocked()
}

// ActiveQuery is the full projection sent to the list endpoint: filters
// and sort from the store, page when beyond the first, per_page when not
// the default.
func (s *Session[T]) ActiveQuery() url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeQueryLocked()
}

func (s *Session[T]) activeQueryLocked() url.Values {
	query := s.store.Query()
	if s.currentPage > defaultPage {
		query.Set("page", strconv.Itoa(s.currentPage))
	}
	if s.perPage != defaultPerPage {
		query.Set("per_page", strconv.Itoa(s.perPage))
	}
	return query
}

func (s *Session[T]) scheduleFetchLocked() {
	// Mutations before Start only shape the query; nothing is fetched.
	if !s.started {
		return
	}
	if s.life != nil && s.life.IsDisposed() {
		return
	}
	s.gen++
	gen := s.gen
	query := s.activeQueryLocked()
	s.status = StatusPending

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		list, err := s.fetch(s.ctx, query)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			// A newer query superseded this request.
			return
		}
		if s.life != nil && s.life.IsDisposed() {
			return
		}
		if err != nil {
			log.Errorf("[Listing] fetch failed: %v", err)
			s.status = StatusError
			s.err = err
			return
		}
		s.err = nil
		s.status = StatusSuccess
		s.items = list.Data
		s.meta = list.Meta
		if list.Meta != nil && list.Meta.CurrentPage != s.currentPage {
			// Server clamped the page; adopt it without refetching.
			s.currentPage = list.Meta.CurrentPage
			s.router.Replace(s.activeQueryLocked())
		}
	}()
}

// Flush waits for in-flight fetches to settle. Hosts call it before
// reading results synchronously (CLI rendering, tests).
func (s *Session[T]) Flush() {
	s.wg.Wait()
}

// Refresh re-issues the fetch with the current query.
func (s *Session[T]) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduleFetchLocked()
}

func (s *Session[T]) SetFilter(key string, v queryfilter.Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SetFilter(key, v)
	s.scheduleFetchLocked()
}

func (s *Session[T]) ClearFilter(key string, element ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.ClearFilter(key, element...)
	s.scheduleFetchLocked()
}

// ClearAllFilters resets every filter. With forceEmpty the filter map
// is wiped outright; otherwise each key returns to its configured
// default.
func (s *Session[T]) ClearAllFilters(forceEmpty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.ClearAllFilters(forceEmpty)
	s.scheduleFetchLocked()
}

func (s *Session[T]) SetSort(field string, descending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SetSort(field, descending)
	s.scheduleFetchLocked()
}

func (s *Session[T]) ToggleSort(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.ToggleSort(field)
	s.scheduleFetchLocked()
}

// AddTagFilter appends a tag to the tags.id filter unless present.
func (s *Session[T]) AddTagFilter(tagID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, _ := s.store.Get("tags.id")
	for _, existing := range current.Items() {
		if existing == tagID {
			return
		}
	}
	s.store.SetFilter("tags.id", queryfilter.List(append(current.Items(), tagID)...))
	s.scheduleFetchLocked()
}

func (s *Session[T]) SetRegionFilter(region string) {
	s.SetFilter("region", queryfilter.String(region))
}

func (s *Session[T]) SetAuthorFilter(authorID string) {
	s.SetFilter("author_id", queryfilter.String(authorID))
}

func (s *Session[T]) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 || page == s.currentPage {
		return
	}
	s.currentPage = page
	s.router.Replace(s.activeQueryLocked())
	s.scheduleFetchLocked()
}

func (s *Session[T]) SetPerPage(perPage int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if perPage < 1 || perPage == s.perPage {
		return
	}
	s.perPage = perPage
	s.router.Replace(s.activeQueryLocked())
	s.scheduleFetchLocked()
}

func (s *Session[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

func (s *Session[T]) Meta() *models.PaginationMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

func (s *Session[T]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Session[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Session[T]) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

func (s *Session[T]) PerPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.perPage
}

// Filters exposes the underlying filter snapshot for chip projection.
func (s *Session[T]) Filters() map[string]queryfilter.Value {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Filters()
}

func (s *Session[T]) HasActiveFilters() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.HasActiveFilters()
}

func (s *Session[T]) SortField() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.SortField()
}

func (s *Session[T]) IsSortDescending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.IsSortDescending()
}
