package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{BaseURL: "not a url", Locale: "en"})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "http://localhost:4000", Locale: ""})
	assert.Error(t, err)
}

func TestClient_SendsLocaleHeaderAndQuery(t *testing.T) {
	t.Parallel()

	var gotLocale, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLocale = r.Header.Get("X-Locale")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[],"meta":{"current_page":1,"from":null,"last_page":1,"per_page":25,"to":null,"total":0}}`))
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, Locale: "de"})
	require.NoError(t, err)

	q := url.Values{}
	q.Set("filter[region]", "wuling")
	q.Set("sort", "-created_at")
	resp, err := client.ListBlueprints(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, "de", gotLocale)
	assert.Contains(t, gotQuery, "filter%5Bregion%5D=wuling")
	assert.Equal(t, 1, resp.Meta.CurrentPage)
}

func TestDeleteBlueprint_ForbiddenIsTyped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, Locale: "en"})
	require.NoError(t, err)

	err = client.DeleteBlueprint(context.Background(), "bp-1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClient_NonOKSurfacesAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := New(Config{BaseURL: srv.URL, Locale: "en"})
	require.NoError(t, err)

	_, err = client.ListTags(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Body)
}
