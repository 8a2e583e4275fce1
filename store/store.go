package store

import (
	"context"
	"errors"

	"github.com/shivaramgundoju/AR-MENU/models"
)

// DefaultPopularLimit is used when a caller does not ask for a specific
// number of popular dishes.
const DefaultPopularLimit = 5

var (
	// ErrNotFound covers unknown ids as well as ids that are not valid
	// ObjectID hex at all.
	ErrNotFound = errors.New("dish not found")

	// ErrValidation is returned by Insert when name or price is missing
	// or the price is negative.
	ErrValidation = errors.New("invalid dish")
)

// DishStore is the persistence contract for the dish catalog. Counter
// increments must be a single atomic store operation, never a
// read-modify-write from the caller.
type DishStore interface {
	Insert(ctx context.Context, dish *models.Dish) (*models.Dish, error)
	FindAll(ctx context.Context) ([]models.Dish, error)
	FindByID(ctx context.Context, id string) (*models.Dish, error)
	IncrementClick(ctx context.Context, id string) (*models.Dish, error)
	IncrementOrder(ctx context.Context, id string, quantity int64) (*models.Dish, error)
	FindTopByPopularity(ctx context.Context, limit int64) ([]models.Dish, error)
	DeleteAll(ctx context.Context) (int64, error)
}

func validateDish(dish *models.Dish) error {
	if dish.Name == nil || *dish.Name == "" {
		return ErrValidation
	}
	if dish.Price == nil || *dish.Price < 0 {
		return ErrValidation
	}
	return nil
}
