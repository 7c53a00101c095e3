// Package api provides a client for the Overpass geodata API used to fetch
// EV charging stations from OpenStreetMap.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultEndpoint = "https://overpass-api.de/api/interpreter"
	DefaultTimeout  = 30 * time.Second
	userAgent       = "wswcharge/1.0"
)

// OverpassAPI issues charging-station queries against an Overpass interpreter.
type OverpassAPI struct {
	endpoint   string
	bbox       BBox
	operators  []string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures an OverpassAPI.
type Option func(*OverpassAPI)

// WithEndpoint overrides the interpreter URL.
func WithEndpoint(endpoint string) Option {
	return func(a *OverpassAPI) { a.endpoint = endpoint }
}

// WithBBox restricts the query to another bounding box.
func WithBBox(bbox BBox) Option {
	return func(a *OverpassAPI) { a.bbox = bbox }
}

// WithOperators replaces the operator names matched by the query.
func WithOperators(operators []string) Option {
	return func(a *OverpassAPI) { a.operators = operators }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *OverpassAPI) { a.httpClient = c }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(a *OverpassAPI) { a.log = logger }
}

// NewOverpassAPI creates a new OverpassAPI client with default settings:
// the public overpass-api.de endpoint, the Wuppertal bounding box and the
// WSW operator names.
func NewOverpassAPI(opts ...Option) *OverpassAPI {
	a := &OverpassAPI{
		endpoint:  DefaultEndpoint,
		bbox:      WuppertalBBox,
		operators: DefaultOperators,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Query returns the Overpass QL query the client sends.
func (a *OverpassAPI) Query() string {
	return BuildQuery(a.bbox, a.operators)
}

// FetchStations runs the charging-station query once and returns the decoded
// response body. The body is returned as a generic JSON tree because Overpass
// elements are loosely structured; numbers are kept as json.Number.
//
// Network failures, non-200 responses and undecodable bodies are all reported
// as errors. There is no retry.
func (a *OverpassAPI) FetchStations(ctx context.Context) (any, error) {
	form := url.Values{"data": {a.Query()}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	a.log.Debug("overpass response received", "bytes", len(body), "elapsed", time.Since(start))

	doc, err := DecodeResponse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeResponse decodes a single JSON document into a generic tree, keeping
// numbers as json.Number so large OSM ids survive intact.
func DecodeResponse(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error unmarshaling JSON: %w", err)
	}
	return doc, nil
}
