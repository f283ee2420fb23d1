package queryfilter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	published := Bool(true)
	return Config{
		Filters: map[string]FilterConfig{
			"region":      {Type: KindString},
			"version":     {Type: KindString},
			"min_tier":    {Type: KindNumber},
			"published":   {Type: KindBool, Default: &published},
			"tags.id":     {Type: KindList},
			"facility":    {Type: KindList},
			"item_input":  {Type: KindList},
			"item_output": {Type: KindList},
		},
		Sort: SortConfig{
			Default: "-created_at",
			Fields:  []string{"created_at", "likes_count", "copies_count", "title"},
		},
	}
}

func TestNewStore_AppliesDefaults(t *testing.T) {
	t.Parallel()

	s := NewStore(testConfig())

	v, ok := s.Get("published")
	require.True(t, ok)
	assert.True(t, v.Bool())

	_, ok = s.Get("region")
	assert.False(t, ok, "keys without defaults start absent")

	assert.Equal(t, "created_at", s.SortField())
	assert.True(t, s.IsSortDescending())
}

func TestSetFilter_UnknownKeyIgnored(t *testing.T) {
	t.Parallel()

	s := NewStore(testConfig())
	s.SetFilter("bogus", String("x"))

	_, ok := s.Get("bogus")
	assert.False(t, ok)
	assert.Empty(t, s.Query().Get("filter[bogus]"))
}

func TestHasActiveFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  Value
		active bool
	}{
		{"null", Null(), false},
		{"empty string", String(""), false},
		{"empty list", List(), false},
		{"string", String("wuling"), true},
		{"number", Number(3), true},
		{"list", List("belt"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(Config{
				Filters: map[string]FilterConfig{"k": {Type: tt.value.Kind()}},
				Sort:    SortConfig{Default: "created_at", Fields: []string{"created_at"}},
			})
			s.SetFilter("k", tt.value)
			assert.Equal(t, tt.active, s.HasActiveFilters())
		})
	}
}

func TestClearFilter_RemovesSingleElement(t *testing.T) {
	t.Parallel()

	s := NewStore(testConfig())
	s.SetFilter("tags.id", List("1", "2", "3"))

	s.ClearFilter("tags.id", "2")
	v, _ := s.Get("tags.id")
	assert.Equal(t, []string{"1", "3"}, v.Items())

	s.ClearFilter("tags.id", "1")
	s.ClearFilter("tags.id", "3")
	v, _ = s.Get("tags.id")
	assert.False(t, v.IsActive(), "list emptied element by element is inactive")
	assert.Empty(t, s.Query().Get("filter[tags.id]"))
}

func TestClearAllFilters_Idempotent(t *testing.T) {
	t.Parallel()

	s := NewStore(testConfig())
	s.SetFilter("region", String("wuling"))
	s.SetFilter("tags.id", List("1", "2"))

	s.ClearAllFilters(false)
	first := s.Filters()
	s.ClearAllFilters(false)
	second := s.Filters()

	assert.Equal(t, first, second)
	v, _ := s.Get("published")
	assert.True(t, v.Bool(), "configured default restored")
	v, _ = s.Get("tags.id")
	assert.False(t, v.IsActive())
}

func TestClearAllFilters_ForceEmptyWipesMap(t *testing.T) {
	t.Parallel()

	s := NewStore(testConfig())
	s.SetFilter("region", String("wuling"))

	s.ClearAllFilters(true)

	assert.Empty(t, s.Filters())
	assert.False(t, s.HasActiveFilters())
}

func TestSetSort_InvalidFieldFailsClosed(t *testing.T) {
	t.Parallel()

	s := NewStore(testConfig())
	s.SetSort("drop table", false)

	assert.Equal(t, "created_at", s.SortField())
	assert.True(t, s.IsSortDescending())
}

func TestToggleSort(t *testing.T) {
	t.Parallel()

	s := NewStore(testConfig())

	s.ToggleSort("title")
	assert.Equal(t, "title", s.SortField())
	assert.False(t, s.IsSortDescending(), "switching fields starts ascending")

	s.ToggleSort("title")
	assert.True(t, s.IsSortDescending(), "same field flips direction")

	s.ResetSort()
	assert.Equal(t, "created_at", s.SortField())
	assert.True(t, s.IsSortDescending())
}

func TestQuery_Projection(t *testing.T) {
	t.Parallel()

	s := NewStore(testConfig())
	s.SetFilter("region", String("valley_iv"))
	s.SetFilter("tags.id", List("4", "7"))
	s.SetFilter("min_tier", Number(2))
	s.SetSort("likes_count", true)

	q := s.Query()
	assert.Equal(t, "valley_iv", q.Get("filter[region]"))
	assert.Equal(t, "4,7", q.Get("filter[tags.id]"))
	assert.Equal(t, "2", q.Get("filter[min_tier]"))
	assert.Equal(t, "1", q.Get("filter[published]"))
	assert.Equal(t, "-likes_count", q.Get("sort"))

	s.SetFilter("published", Bool(false))
	assert.Equal(t, "0", s.Query().Get("filter[published]"))
}

func TestApplyQuery_RoundTrip(t *testing.T) {
	t.Parallel()

	src := NewStore(testConfig())
	src.SetFilter("region", String("wuling"))
	src.SetFilter("tags.id", List("1", "2"))
	src.SetFilter("min_tier", Number(3))
	src.SetFilter("published", Bool(false))
	src.SetSort("title", false)

	dst := NewStore(testConfig())
	dst.ApplyQuery(src.Query(), OriginExternal)

	assert.Equal(t, src.Filters(), dst.Filters())
	assert.Equal(t, src.SortField(), dst.SortField())
	assert.Equal(t, src.IsSortDescending(), dst.IsSortDescending())
}

func TestApplyQuery_CoercionAndValidation(t *testing.T) {
	t.Parallel()

	s := NewStore(testConfig())
	s.ApplyQuery(url.Values{
		"filter[published]": {"true"},
		"filter[min_tier]":  {"not-a-number"},
		"filter[unknown]":   {"x"},
		"sort":              {"-evil"},
	}, OriginExternal)

	v, _ := s.Get("published")
	assert.True(t, v.Bool())
	v, _ = s.Get("min_tier")
	assert.False(t, v.IsActive(), "unparseable number is inactive")
	_, ok := s.Get("unknown")
	assert.False(t, ok)
	assert.Equal(t, "created_at", s.SortField(), "unknown sort field falls back to default")
}
