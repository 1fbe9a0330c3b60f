package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"giftwell/internal/campaign/models"
	dErrors "giftwell/pkg/domain-errors"
)

// HTTPFetcher pulls the bundle catalog from the external inventory service.
type HTTPFetcher struct {
	url    string
	client *http.Client
}

func NewHTTPFetcher(url string) *HTTPFetcher {
	return &HTTPFetcher{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *HTTPFetcher) FetchBundles(ctx context.Context) ([]models.Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "bundle fetch failed")
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "bundle fetch failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, dErrors.Newf(dErrors.CodeUnavailable, "bundle fetch failed: status %d", resp.StatusCode)
	}

	var bundles []models.Bundle
	if err := json.NewDecoder(resp.Body).Decode(&bundles); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "bundle fetch failed")
	}
	return bundles, nil
}
