// Package client is the catalog client used by menu frontends: it fetches
// and filters the dish list, keeps a soft local cache for instant paint,
// reports click/order events best-effort, and picks the right AR
// activation path for a device.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shivaramgundoju/AR-MENU/models"
)

// Client talks to the dish catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *dishCache
}

// New returns a client for the catalog service at baseURL. The cache path
// defaults to a file under the user cache dir; pass WithCachePath to
// override it in tests.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      newDishCache(""),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithCachePath(path string) Option {
	return func(c *Client) { c.cache = newDishCache(path) }
}

// Dishes fetches the full dish list and rewrites the local cache on
// success.
func (c *Client) Dishes(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := c.getJSON(ctx, "/api/dishes", &dishes); err != nil {
		return nil, err
	}
	c.cache.store(dishes)
	return dishes, nil
}

// CachedDishes returns the last successfully fetched dish list, if any.
// A missing or unreadable cache is simply a miss.
func (c *Client) CachedDishes() ([]models.Dish, bool) {
	return c.cache.load()
}

// Dish fetches a single dish by id.
func (c *Client) Dish(ctx context.Context, id string) (*models.Dish, error) {
	var dish models.Dish
	if err := c.getJSON(ctx, "/api/dishes/"+id, &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}

// Popular fetches the popularity-ranked dish list. A limit below 1 lets
// the server apply its default.
func (c *Client) Popular(ctx context.Context, limit int) ([]models.Dish, error) {
	path := "/api/dishes/popular"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var dishes []models.Dish
	if err := c.getJSON(ctx, path, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// TrackClick reports a dish click. Fire-and-forget: failures are logged
// and dropped, never returned.
func (c *Client) TrackClick(id string) {
	go c.post("/api/dishes/"+id+"/click", nil)
}

// TrackOrder reports a placed order. Fire-and-forget like TrackClick.
func (c *Client) TrackOrder(id string, quantity int, customerName, tableNumber string) {
	qty := float64(quantity)
	body := models.OrderRequest{
		Quantity:     &qty,
		CustomerName: customerName,
		TableNumber:  tableNumber,
	}
	go c.post("/api/dishes/"+id+"/order", body)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(path string, body interface{}) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			log.Printf("WARNING: dropping tracking call %s: %v", path, err)
			return
		}
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", &buf)
	if err != nil {
		log.Printf("WARNING: tracking call %s failed: %v", path, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("WARNING: tracking call %s answered %d", path, resp.StatusCode)
	}
}

func serverError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
		return fmt.Errorf("server answered %d: %s", resp.StatusCode, payload.Message)
	}
	return fmt.Errorf("server answered %d", resp.StatusCode)
}
