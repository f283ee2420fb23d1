package queryfilter

import (
	"net/url"
	"sync"
)

// MemoryRouter is an in-process Router for hosts without a browser
// history, such as the CLI and tests. Replace updates the query without
// firing change handlers, mirroring history-replace semantics; Navigate
// simulates external navigation and does fire them.
//
// Query, Replace and OnChange are safe for concurrent use; the fetch
// layer pushes corrected queries from background completions.
type MemoryRouter struct {
	mu       sync.Mutex
	query    url.Values
	handlers []func(url.Values)
}

func NewMemoryRouter() *MemoryRouter {
	return &MemoryRouter{query: url.Values{}}
}

func (r *MemoryRouter) Query() url.Values {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneQuery(r.query)
}

func (r *MemoryRouter) Replace(query url.Values) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.query = cloneQuery(query)
}

func (r *MemoryRouter) OnChange(fn func(url.Values)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, fn)
}

// Navigate sets the query as if the user navigated (back/forward or a
// pasted URL) and notifies subscribers. Handlers run outside the router
// lock so they may call back into Query or Replace.
func (r *MemoryRouter) Navigate(query url.Values) {
	r.mu.Lock()
	r.query = cloneQuery(query)
	handlers := append(([]func(url.Values))(nil), r.handlers...)
	snapshot := cloneQuery(r.query)
	r.mu.Unlock()

	for _, fn := range handlers {
		fn(cloneQuery(snapshot))
	}
}

func cloneQuery(query url.Values) url.Values {
	out := url.Values{}
	for k, v := range query {
		out[k] = append([]string(nil), v...)
	}
	return out
}
