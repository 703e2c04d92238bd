package multivende

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client is a bearer-authenticated client for the Multivende REST API.
type Client struct {
	cfg        Config
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client bound to one bearer token. Batch jobs build one
// client per run, after the credential check.
func NewClient(cfg Config, token string, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		cfg:   cfg,
		token: token,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		logger: logger,
	}
}

// get issues one authenticated GET and decodes the JSON body.
func (c *Client) get(ctx context.Context, url string) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("malformed response (%d): %s", resp.StatusCode, truncateBody(body))
	}
	return rec, nil
}

// FetchCollection retrieves every page of a merchant collection, in page
// order, preserving within-page entry order. The first page declares
// pagination.total_pages; pages are 1-indexed.
//
// A malformed first page aborts the fetch. A malformed later page is logged
// and skipped, never failing the whole collection.
func (c *Client) FetchCollection(ctx context.Context, resource string, window *Window) ([]Record, error) {
	first, err := c.get(ctx, c.collectionURL(resource, 1, window))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s page 1: %w", resource, err)
	}

	pages, ok := first.Int("pagination", "total_pages")
	if !ok {
		return nil, fmt.Errorf("response for %s carries no pagination", resource)
	}

	entries, _ := first.Records("entries")
	for p := 2; p <= pages; p++ {
		page, err := c.get(ctx, c.collectionURL(resource, p, window))
		if err != nil {
			c.logger.Error("Skipping malformed page",
				zap.String("resource", resource),
				zap.Int("page", p),
				zap.Error(err))
			continue
		}
		pageEntries, _ := page.Records("entries")
		entries = append(entries, pageEntries...)
	}

	return entries, nil
}

// FetchCheckout retrieves one checkout with all nested sub-objects.
func (c *Client) FetchCheckout(ctx context.Context, id string) (Record, error) {
	rec, err := c.get(ctx, fmt.Sprintf("%s/api/checkouts/%s", c.cfg.BaseURL, id))
	if err != nil {
		return nil, err
	}
	// A payload without soldAt is not a checkout (error body, deleted id)
	if _, ok := rec.Get("soldAt"); !ok {
		return nil, fmt.Errorf("checkout %s payload carries no soldAt", id)
	}
	return rec, nil
}

// FetchBillingDocuments retrieves the first page of a checkout's electronic
// billing documents. Callers treat any failure as "no billing information".
func (c *Client) FetchBillingDocuments(ctx context.Context, id string) (Record, error) {
	return c.get(ctx, fmt.Sprintf("%s/api/checkouts/%s/electronic-billing-documents/p/1", c.cfg.BaseURL, id))
}

// FetchProduct retrieves one product with its versions and attribute values.
func (c *Client) FetchProduct(ctx context.Context, id string) (Record, error) {
	return c.get(ctx, fmt.Sprintf("%s/api/products/%s", c.cfg.BaseURL, id))
}

// FetchProductAttributes retrieves the merchant's custom attribute catalog.
func (c *Client) FetchProductAttributes(ctx context.Context) (Record, error) {
	return c.get(ctx, fmt.Sprintf("%s/api/m/%s/all-product-attributes", c.cfg.BaseURL, c.cfg.MerchantID))
}

func (c *Client) collectionURL(resource string, page int, window *Window) string {
	url := fmt.Sprintf("%s/api/m/%s/%s/p/%d", c.cfg.BaseURL, c.cfg.MerchantID, resource, page)
	if q := window.query(); q != "" {
		url += "?" + q
	}
	return url
}

// TokenGrant is the response of a successful OAuth token refresh.
type TokenGrant struct {
	Token        string `json:"token"`
	ExpiresAt    string `json:"expiresAt"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshAccessToken exchanges a refresh token for a fresh bearer token.
// This call is unauthenticated, so it works with an expired client token.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenGrant, error) {
	payload, err := json.Marshal(map[string]string{
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	})
	if err != nil {
		return nil, err
	}

	url := c.cfg.BaseURL + "/oauth/access-token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("cache-control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var grant TokenGrant
	if err := json.Unmarshal(body, &grant); err != nil || grant.Token == "" {
		return nil, fmt.Errorf("token refresh rejected (%d): %s", resp.StatusCode, truncateBody(body))
	}
	return &grant, nil
}

// truncateBody keeps error messages readable when the API replies with HTML.
func truncateBody(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
