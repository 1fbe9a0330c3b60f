package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"giftwell/internal/campaign/models"
	dErrors "giftwell/pkg/domain-errors"
)

// HTTPClient talks to the external contact service. Failures map to the
// unavailable code so handlers can surface a retryable error state.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) Search(ctx context.Context, query string) ([]models.Contact, error) {
	endpoint := fmt.Sprintf("%s/contacts?q=%s", c.baseURL, url.QueryEscape(query))
	return c.fetch(ctx, endpoint, "contact search failed")
}

func (c *HTTPClient) FetchList(ctx context.Context, listID string) ([]models.Contact, error) {
	endpoint := fmt.Sprintf("%s/lists/%s", c.baseURL, url.PathEscape(listID))
	return c.fetch(ctx, endpoint, "contact list fetch failed")
}

func (c *HTTPClient) fetch(ctx context.Context, endpoint, failure string) ([]models.Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, failure)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, failure)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, dErrors.Newf(dErrors.CodeUnavailable, "%s: status %d", failure, resp.StatusCode)
	}

	var contacts []models.Contact
	if err := json.NewDecoder(resp.Body).Decode(&contacts); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, failure)
	}
	return contacts, nil
}
