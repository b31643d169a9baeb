package fashionapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"FashionStoreAPI/internal/model"
)

// Client calls the image-similarity service the catalog pages are built on.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("fashion api base url not set")
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// AllItems fetches one catalog page: GET /all-items?page=&items_per_page=
func (c *Client) AllItems(ctx context.Context, page, itemsPerPage int) (*model.CatalogPage, error) {
	u, err := url.Parse(c.baseURL + "/all-items")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("items_per_page", strconv.Itoa(itemsPerPage))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fashion api error: %s", resp.Status)
	}

	var out model.CatalogPage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Page == 0 {
		out.Page = page
	}
	return &out, nil
}

type findSimilarRequest struct {
	QueryID string `json:"query_id"`
}

type findSimilarResponse struct {
	SimilarItems []model.CatalogItem `json:"similar_items"`
}

// FindSimilar looks up items visually similar to one item:
// POST /find-similar {query_id}
func (c *Client) FindSimilar(ctx context.Context, queryID string) ([]model.CatalogItem, error) {
	body, err := json.Marshal(findSimilarRequest{QueryID: queryID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/find-similar", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fashion api error: %s", resp.Status)
	}

	var out findSimilarResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.SimilarItems, nil
}
