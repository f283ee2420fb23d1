package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/talospioneers/blueprinthub/app/models"
	"github.com/talospioneers/blueprinthub/internal/pkg/constants"
)

// ErrForbidden is returned when the API answers 403. The delete flow
// maps it to a re-authentication prompt when the viewer is not signed
// in.
var ErrForbidden = errors.New("forbidden")

// APIError carries a non-2xx response for view-level presentation.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Body)
}

// Config configures the API client.
type Config struct {
	// BaseURL is the API origin, e.g. https://api.talospioneers.com.
	BaseURL string `validate:"required,url"`
	// Locale is sent as X-Locale on every request.
	Locale string `validate:"required"`
	// HTTPClient is optional; a 30s-timeout client is used by default.
	HTTPClient *http.Client
}

var validate = validator.New()

// Client talks to the blueprint API. All list calls decode the shared
// {data, meta} envelope. The client performs no retries; failures are
// surfaced to the caller.
type Client struct {
	baseURL string
	locale  string
	http    *http.Client
}

func New(cfg Config) (*Client, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("apiclient config: %w", err)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		locale:  cfg.Locale,
		http:    httpClient,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Locale", c.locale)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%s %s: %w", method, path, ErrForbidden)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) ListBlueprints(ctx context.Context, query url.Values) (*models.List[models.Blueprint], error) {
	var out models.List[models.Blueprint]
	if err := c.do(ctx, http.MethodGet, constants.BlueprintsRoute, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCollections(ctx context.Context, query url.Values) (*models.List[models.BlueprintCollection], error) {
	var out models.List[models.BlueprintCollection]
	if err := c.do(ctx, http.MethodGet, constants.CollectionsRoute, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListFacilities(ctx context.Context) ([]models.Facility, error) {
	var out models.List[models.Facility]
	if err := c.do(ctx, http.MethodGet, constants.FacilitiesRoute, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	var out models.List[models.Item]
	if err := c.do(ctx, http.MethodGet, constants.ItemsRoute, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	var out models.List[models.Tag]
	if err := c.do(ctx, http.MethodGet, constants.TagsRoute, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) DeleteBlueprint(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, constants.BlueprintsRoute+"/"+url.PathEscape(id), nil, nil)
}
