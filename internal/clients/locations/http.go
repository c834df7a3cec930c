package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	spyerr "github.com/KirkDiggler/spot-the-spy/internal/errors"
)

// maxResponseBytes caps how much of a catalog response is read
const maxResponseBytes = 1 << 20

// HTTPConfig holds configuration for the remote catalog client
type HTTPConfig struct {
	URL        string
	HttpClient *http.Client
	Timeout    time.Duration
}

type httpClient struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// drawResponse is the body served by a remote catalog
type drawResponse struct {
	Theme     string   `json:"theme"`
	Locations []string `json:"locations"`
}

// NewHTTP creates a client that draws from a remote catalog endpoint
func NewHTTP(cfg *HTTPConfig) (Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, spyerr.InvalidArgument("catalog URL is required")
	}

	client := cfg.HttpClient
	if client == nil {
		client = http.DefaultClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &httpClient{
		url:     cfg.URL,
		client:  client,
		timeout: timeout,
	}, nil
}

func (c *httpClient) Draw(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
	if err != nil {
		return nil, spyerr.WrapWithCode(err, spyerr.CodeInternal, "failed to build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, spyerr.Unavailable(err, "location catalog request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, spyerr.Unavailable(fmt.Errorf("status %d", resp.StatusCode), "location catalog returned an error").
			WithMeta("status", resp.StatusCode)
	}

	var body drawResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, spyerr.Unavailable(err, "failed to decode location catalog response")
	}

	names := distinct(body.Locations)
	if len(names) < DrawSize {
		return nil, spyerr.Unavailable(nil, "location catalog returned too few locations").
			WithMeta("theme", body.Theme).
			WithMeta("locations", len(names))
	}
	return names[:DrawSize], nil
}
