package queryfilter

import (
	"net/url"
	"strings"
)

// Origin tags a store change with where it came from. Local changes are
// pushed out to the router; external changes (navigation) came from the
// router and must not be pushed back, which is what breaks the
// store->router->store update cycle.
type Origin int

const (
	OriginLocal Origin = iota
	OriginExternal
)

// Store holds the typed filter map and the active sort for one list
// view and renders both as a URL query projection.
//
// A Store is owned by a single view session and is not safe for
// concurrent use.
type Store struct {
	cfg       Config
	filters   map[string]Value
	sortField string
	sortDesc  bool
	subs      []func(Origin)
}

func NewStore(cfg Config) *Store {
	s := &Store{
		cfg:     cfg,
		filters: make(map[string]Value, len(cfg.Filters)),
	}
	for key, fc := range cfg.Filters {
		if fc.Default != nil {
			s.filters[key] = *fc.Default
		}
	}
	s.sortField, s.sortDesc = cfg.Sort.defaultSort()
	return s
}

// OnChange registers a subscriber invoked after every mutation. The
// origin tells the subscriber whether the change was made locally or
// applied from an external query.
func (s *Store) OnChange(fn func(Origin)) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(origin Origin) {
	for _, fn := range s.subs {
		fn(origin)
	}
}

// SetFilter sets the value for a configured key. Unknown keys are
// silently ignored.
func (s *Store) SetFilter(key string, v Value) {
	if _, ok := s.cfg.Filters[key]; !ok {
		return
	}
	s.filters[key] = v
	s.notify(OriginLocal)
}

// ClearFilter resets a key to inactive. For list filters a single
// element may be passed to remove just that element; a list emptied this
// way is indistinguishable from an explicitly empty list.
func (s *Store) ClearFilter(key string, element ...string) {
	fc, ok := s.cfg.Filters[key]
	if !ok {
		return
	}
	if len(element) > 0 && fc.Type == KindList {
		current := s.filters[key].Items()
		kept := current[:0]
		for _, item := range current {
			if item != element[0] {
				kept = append(kept, item)
			}
		}
		s.filters[key] = List(kept...)
	} else {
		s.filters[key] = Null()
	}
	s.notify(OriginLocal)
}

// ClearAllFilters resets every configured key. With forceEmpty the map
// is wiped entirely; otherwise each key returns to its configured
// default or its type-appropriate empty value.
func (s *Store) ClearAllFilters(forceEmpty bool) {
	if forceEmpty {
		s.filters = make(map[string]Value, len(s.cfg.Filters))
	} else {
		for key, fc := range s.cfg.Filters {
			if fc.Default != nil {
				s.filters[key] = *fc.Default
			} else {
				s.filters[key] = emptyFor(fc.Type)
			}
		}
	}
	s.notify(OriginLocal)
}

// Get returns the current value for a key and whether it is present.
func (s *Store) Get(key string) (Value, bool) {
	v, ok := s.filters[key]
	return v, ok
}

// Filters returns a snapshot of the current filter map.
func (s *Store) Filters() map[string]Value {
	out := make(map[string]Value, len(s.filters))
	for k, v := range s.filters {
		out[k] = v
	}
	return out
}

// HasActiveFilters reports whether any key holds a non-null,
// non-empty-string, non-empty-list value.
func (s *Store) HasActiveFilters() bool {
	for _, v := range s.filters {
		if v.IsActive() {
			return true
		}
	}
	return false
}

// SetSort sets the active sort field and direction. Fields outside the
// configured set fail closed to the configured default.
func (s *Store) SetSort(field string, descending bool) {
	if !s.cfg.Sort.allows(field) {
		field, descending = s.cfg.Sort.defaultSort()
	}
	s.sortField = field
	s.sortDesc = descending
	s.notify(OriginLocal)
}

// ToggleSort flips the direction when field is already active, and
// switches to field ascending otherwise.
func (s *Store) ToggleSort(field string) {
	if field == s.sortField {
		s.SetSort(field, !s.sortDesc)
		return
	}
	s.SetSort(field, false)
}

func (s *Store) ResetSort() {
	field, desc := s.cfg.Sort.defaultSort()
	s.sortField = field
	s.sortDesc = desc
	s.notify(OriginLocal)
}

// Reset clears filters and sort in one step.
func (s *Store) Reset(forceEmpty bool) {
	s.ClearAllFilters(forceEmpty)
	s.ResetSort()
}

func (s *Store) SortField() string {
	return s.sortField
}

func (s *Store) IsSortDescending() bool {
	return s.sortDesc
}

// Query renders the current state as its canonical query projection:
// filter[key]=value for every active filter plus sort=field or
// sort=-field.
func (s *Store) Query() url.Values {
	query := url.Values{}
	for key, v := range s.filters {
		if _, ok := s.cfg.Filters[key]; !ok {
			continue
		}
		if !v.IsActive() {
			continue
		}
		query.Set("filter["+key+"]", v.Encode())
	}
	sort := s.sortField
	if s.sortDesc {
		sort = "-" + sort
	}
	query.Set("sort", sort)
	return query
}

// ApplyQuery parses filter[key] and sort parameters back into typed
// state, coercing each value by its declared kind. Keys without a
// matching config entry are ignored. Subscribers are notified once with
// the given origin.
func (s *Store) ApplyQuery(query url.Values, origin Origin) {
	for rawKey := range query {
		if !strings.HasPrefix(rawKey, "filter[") || !strings.HasSuffix(rawKey, "]") {
			continue
		}
		key := rawKey[len("filter[") : len(rawKey)-1]
		fc, ok := s.cfg.Filters[key]
		if !ok {
			continue
		}
		s.filters[key] = parseValue(fc.Type, query.Get(rawKey))
	}
	if sort := query.Get("sort"); sort != "" {
		field := strings.TrimPrefix(sort, "-")
		if s.cfg.Sort.allows(field) {
			s.sortField = field
			s.sortDesc = strings.HasPrefix(sort, "-")
		} else {
			s.sortField, s.sortDesc = s.cfg.Sort.defaultSort()
		}
	}
	s.notify(origin)
}
