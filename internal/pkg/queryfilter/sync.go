package queryfilter

import "net/url"

// Router is the navigation collaborator the synchronizer binds to. It
// exposes the current query, a replace operation that must not create a
// history entry, and change notification for external navigation
// (back/forward). Query and Replace must be safe for concurrent use:
// the fetch layer calls Replace from background completions while the
// host may be navigating.
type Router interface {
	Query() url.Values
	Replace(query url.Values)
	OnChange(fn func(query url.Values))
}

// Synchronizer keeps a Store and a Router's query string in agreement.
// Local store mutations push the projection into the router via Replace;
// external navigation parses the router query back into the store.
// Updates are origin-tagged so an applied external change never echoes
// back into the router.
//
// The synchronizer inherits the store's single-goroutine ownership;
// hosts whose fetches complete on other goroutines serialize access
// under their own lock the way listing.Session does.
type Synchronizer struct {
	store  *Store
	router Router
}

// Bind wires store and router together and applies the router's current
// query as the initial state.
func Bind(store *Store, router Router) *Synchronizer {
	s := &Synchronizer{store: store, router: router}

	store.OnChange(func(origin Origin) {
		if origin != OriginLocal {
			return
		}
		router.Replace(mergeQuery(router.Query(), store.Query()))
	})
	router.OnChange(func(query url.Values) {
		store.ApplyQuery(query, OriginExternal)
	})

	if initial := router.Query(); len(initial) > 0 {
		store.ApplyQuery(initial, OriginExternal)
	}
	return s
}

// mergeQuery overlays the store projection onto the router query while
// dropping stale filter[...] and sort keys the projection no longer
// carries. Unrelated parameters (page, per_page) survive untouched.
func mergeQuery(current, projection url.Values) url.Values {
	merged := url.Values{}
	for key, vals := range current {
		if isProjectionKey(key) {
			continue
		}
		merged[key] = vals
	}
	for key, vals := range projection {
		merged[key] = vals
	}
	return merged
}

func isProjectionKey(key string) bool {
	if key == "sort" {
		return true
	}
	return len(key) > len("filter[") && key[:len("filter[")] == "filter["
}
