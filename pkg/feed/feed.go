// Package feed retrieves the presentation's signal records from the
// remote content API. One query, one GET, no retries.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/quietfield/drift/pkg/signal"
)

// DefaultLimit caps how many signals one session loads.
const DefaultLimit = 20

const defaultTimeout = 15 * time.Second

// FetchError wraps any transport or decode failure from the single
// content fetch. Callers treat it as terminal for the session.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching signals: %v", e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// Client issues the one read query a viewing session performs.
type Client struct {
	// Endpoint is the content API query URL, without the query parameter.
	Endpoint string
	// Limit truncates the result set. Zero means DefaultLimit.
	Limit int
	// HTTPClient defaults to a client with a request timeout.
	HTTPClient *http.Client
}

// envelope is the content API response shape. A missing result array
// decodes to nil, which is the distinct "no content yet" state.
type envelope struct {
	Result []*signal.Signal `json:"result"`
}

// Query renders the read query: all signal documents, ordered by
// section rank with order as tie-break, truncated to limit.
func Query(limit int) string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rank := `select(` +
		`section == "arrival" => 1, ` +
		`section == "tension" => 2, ` +
		`section == "rupture" => 3, ` +
		`section == "after" => 4, ` +
		`section == "hidden" => 5, ` +
		`999)`
	return fmt.Sprintf(
		`*[_type == "signal"]{_id, text, mood, weight, section, order, "imageUrl": image.asset->url} | order(%s asc, order asc)[0...%d]`,
		rank, limit)
}

// Fetch issues the session's single GET and returns the ordered signal
// sequence. An empty (or absent) result array returns an empty non-nil
// slice; any transport or decode problem returns a *FetchError.
func (c *Client) Fetch(ctx context.Context) ([]*signal.Signal, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	u := c.Endpoint + "?query=" + url.QueryEscape(Query(c.Limit))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &FetchError{Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Cause: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &FetchError{Cause: err}
	}

	signals := env.Result
	if signals == nil {
		signals = []*signal.Signal{}
	}
	// The ordering contract is applied once here, at load time. The
	// sequence is never re-sorted afterwards.
	signal.Sort(signals)
	return signals, nil
}
