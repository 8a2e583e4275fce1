package client

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	controllers "github.com/shivaramgundoju/AR-MENU/controllers"
	"github.com/shivaramgundoju/AR-MENU/models"
	"github.com/shivaramgundoju/AR-MENU/routes"
	"github.com/shivaramgundoju/AR-MENU/store"
)

func newTestBackend(t *testing.T) (*httptest.Server, *store.MemoryDishStore) {
	t.Helper()
	dishStore := store.NewMemoryDishStore()
	router := mux.NewRouter()
	routes.RegisterDishRoutes(router, controllers.NewDishHandler(dishStore, nil))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, dishStore
}

func seedBackendDish(t *testing.T, dishStore store.DishStore, name string, price float64) *models.Dish {
	t.Helper()
	created, err := dishStore.Insert(context.Background(), &models.Dish{Name: &name, Price: &price})
	require.NoError(t, err)
	return created
}

func cachePathFor(t *testing.T) string {
	return filepath.Join(t.TempDir(), "dishes.json")
}

func TestDishesFetchRewritesCache(t *testing.T) {
	server, dishStore := newTestBackend(t)
	seedBackendDish(t, dishStore, "Pizza", 199)

	cachePath := cachePathFor(t)
	c := New(server.URL, WithCachePath(cachePath))

	// Nothing cached before the first fetch.
	_, ok := c.CachedDishes()
	assert.False(t, ok)

	dishes, err := c.Dishes(context.Background())
	require.NoError(t, err)
	require.Len(t, dishes, 1)

	cached, ok := c.CachedDishes()
	require.True(t, ok)
	require.Len(t, cached, 1)
	assert.Equal(t, "Pizza", *cached[0].Name)

	// A later fetch supersedes the cached payload.
	seedBackendDish(t, dishStore, "Burger", 149)
	_, err = c.Dishes(context.Background())
	require.NoError(t, err)

	cached, ok = c.CachedDishes()
	require.True(t, ok)
	assert.Len(t, cached, 2)
}

func TestCorruptCacheIsASilentMiss(t *testing.T) {
	server, dishStore := newTestBackend(t)
	seedBackendDish(t, dishStore, "Pizza", 199)

	cachePath := cachePathFor(t)
	require.NoError(t, os.WriteFile(cachePath, []byte("{not json"), 0o644))

	c := New(server.URL, WithCachePath(cachePath))

	_, ok := c.CachedDishes()
	assert.False(t, ok)

	// The network path is unaffected and heals the cache.
	dishes, err := c.Dishes(context.Background())
	require.NoError(t, err)
	assert.Len(t, dishes, 1)

	_, ok = c.CachedDishes()
	assert.True(t, ok)
}

func TestDishNotFoundCarriesServerMessage(t *testing.T) {
	server, _ := newTestBackend(t)
	c := New(server.URL, WithCachePath(cachePathFor(t)))

	_, err := c.Dish(context.Background(), "65f000000000000000000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Dish not found")
}

func TestPopular(t *testing.T) {
	server, dishStore := newTestBackend(t)
	pizza := seedBackendDish(t, dishStore, "Pizza", 199)
	seedBackendDish(t, dishStore, "Burger", 149)

	_, err := dishStore.IncrementOrder(context.Background(), pizza.ID.Hex(), 4)
	require.NoError(t, err)

	c := New(server.URL, WithCachePath(cachePathFor(t)))
	dishes, err := c.Popular(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Pizza", *dishes[0].Name)
}

func TestTrackingIsFireAndForget(t *testing.T) {
	server, dishStore := newTestBackend(t)
	dish := seedBackendDish(t, dishStore, "Pizza", 199)
	id := dish.ID.Hex()

	c := New(server.URL, WithCachePath(cachePathFor(t)))

	c.TrackClick(id)
	c.TrackOrder(id, 3, "Asha", "7")

	require.Eventually(t, func() bool {
		updated, err := dishStore.FindByID(context.Background(), id)
		if err != nil {
			return false
		}
		return updated.ClickCount == 1 && updated.OrderCount == 3
	}, 2*time.Second, 10*time.Millisecond)

	// Tracking an unknown dish must not panic or surface anything; give
	// the goroutines a moment to run their course.
	c.TrackClick("65f000000000000000000000")
	c.TrackOrder("garbage", 1, "", "")
	time.Sleep(50 * time.Millisecond)
}
