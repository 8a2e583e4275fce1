package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shivaramgundoju/AR-MENU/models"
)

// MemoryDishStore is a mutex-guarded in-memory DishStore. Handler and
// client tests run against it, and it doubles as a throwaway backend for
// local development without a MongoDB instance.
type MemoryDishStore struct {
	mu     sync.Mutex
	dishes []models.Dish
	index  map[string]int
}

func NewMemoryDishStore() *MemoryDishStore {
	return &MemoryDishStore{index: map[string]int{}}
}

func (s *MemoryDishStore) Insert(ctx context.Context, dish *models.Dish) (*models.Dish, error) {
	if err := validateDish(dish); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	dish.ID = primitive.NewObjectID()
	dish.ClickCount = 0
	dish.OrderCount = 0
	if dish.IsAvailable == nil {
		available := true
		dish.IsAvailable = &available
	}
	dish.CreatedAt = now
	dish.UpdatedAt = now

	s.index[dish.ID.Hex()] = len(s.dishes)
	s.dishes = append(s.dishes, *dish)

	stored := *dish
	return &stored, nil
}

func (s *MemoryDishStore) FindAll(ctx context.Context) ([]models.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dishes := make([]models.Dish, len(s.dishes))
	copy(dishes, s.dishes)
	return dishes, nil
}

func (s *MemoryDishStore) FindByID(ctx context.Context, id string) (*models.Dish, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	dish := s.dishes[pos]
	return &dish, nil
}

func (s *MemoryDishStore) IncrementClick(ctx context.Context, id string) (*models.Dish, error) {
	return s.increment(id, 1, 0)
}

func (s *MemoryDishStore) IncrementOrder(ctx context.Context, id string, quantity int64) (*models.Dish, error) {
	return s.increment(id, 0, quantity)
}

func (s *MemoryDishStore) increment(id string, clicks, orders int64) (*models.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return nil, ErrNotFound
	}

	s.dishes[pos].ClickCount += clicks
	s.dishes[pos].OrderCount += orders
	s.dishes[pos].UpdatedAt = time.Now()

	dish := s.dishes[pos]
	return &dish, nil
}

func (s *MemoryDishStore) FindTopByPopularity(ctx context.Context, limit int64) ([]models.Dish, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}

	s.mu.Lock()
	ranked := make([]models.Dish, len(s.dishes))
	copy(ranked, s.dishes)
	s.mu.Unlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OrderCount != ranked[j].OrderCount {
			return ranked[i].OrderCount > ranked[j].OrderCount
		}
		return ranked[i].ClickCount > ranked[j].ClickCount
	})

	if int64(len(ranked)) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (s *MemoryDishStore) DeleteAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := int64(len(s.dishes))
	s.dishes = nil
	s.index = map[string]int{}
	return removed, nil
}
