package tenant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
)

// Site is a company site as known to the tenant registry.
type Site struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
}

// statusError is a non-2xx registry response.
type statusError struct {
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("tenant registry: status %d", e.Code)
}

// HTTPGateway is a tenant registry gateway backed by its JSON API.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway creates a tenant registry gateway. client may be nil to use
// http.DefaultClient.
func NewHTTPGateway(baseURL string, client *http.Client) *HTTPGateway {
	if baseURL == "" {
		return nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPGateway{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// GetSite fetches one site from the registry. A 404 maps to (nil, nil).
func (g *HTTPGateway) GetSite(ctx context.Context, scope domain.Scope) (*Site, error) {
	url := fmt.Sprintf("%s/companies/%d/sites/%d", g.baseURL, scope.CompanyID, scope.SiteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("tenant gateway: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tenant gateway: GetSite: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, &statusError{Code: resp.StatusCode}
	}

	var site Site
	if err := json.NewDecoder(resp.Body).Decode(&site); err != nil {
		return nil, fmt.Errorf("tenant gateway: decode response: %w", err)
	}
	return &site, nil
}

// Checker adapts a site gateway to the yes/no question services ask.
type Checker struct {
	gw gateway
}

// NewChecker creates a Checker.
func NewChecker(gw gateway) *Checker {
	if gw == nil {
		return nil
	}
	return &Checker{gw: gw}
}

// SiteActive reports whether the scope names an active registered site.
// An unknown site is apperr.ErrNotFound.
func (c *Checker) SiteActive(ctx context.Context, scope domain.Scope) (bool, error) {
	site, err := c.gw.GetSite(ctx, scope)
	if err != nil {
		return false, err
	}
	if site == nil {
		return false, apperr.ErrNotFound
	}
	return site.Active, nil
}
