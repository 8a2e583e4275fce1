package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/shivaramgundoju/AR-MENU/models"
)

// dishCache keeps the last successful dish-list payload on disk so the
// menu can paint instantly while a fresh fetch is in flight. Every failure
// mode is a silent miss; the network result always wins and rewrites the
// cache.
type dishCache struct {
	path string
}

type cachePayload struct {
	Dishes   []models.Dish `json:"dishes"`
	CachedAt time.Time     `json:"cachedAt"`
}

func newDishCache(path string) *dishCache {
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return &dishCache{}
		}
		path = filepath.Join(dir, "ar-menu", "dishes.json")
	}
	return &dishCache{path: path}
}

func (c *dishCache) load() ([]models.Dish, bool) {
	if c.path == "" {
		return nil, false
	}

	raw, err := os.ReadFile(c.path)
	if err != nil {
		return nil, false
	}

	var payload cachePayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Dishes == nil {
		return nil, false
	}
	return payload.Dishes, true
}

func (c *dishCache) store(dishes []models.Dish) {
	if c.path == "" {
		return
	}

	raw, err := json.Marshal(cachePayload{Dishes: dishes, CachedAt: time.Now()})
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(c.path, raw, 0o644)
}
