package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"

	"github.com/shivaramgundoju/AR-MENU/events"
	"github.com/shivaramgundoju/AR-MENU/models"
	"github.com/shivaramgundoju/AR-MENU/store"
)

var validate = validator.New()

const requestTimeout = 10 * time.Second

// DishHandler implements the dish catalog endpoints. Handlers are
// stateless; every request maps onto exactly one store operation.
type DishHandler struct {
	store  store.DishStore
	events events.Publisher
}

func NewDishHandler(dishStore store.DishStore, publisher events.Publisher) *DishHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &DishHandler{store: dishStore, events: publisher}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// CreateDish handles POST /api/dishes.
//
// Validation failures answer 500, not 400. Existing menu clients treat
// anything non-201 here as a generic server failure, so the code is kept
// as-is for compatibility.
func (h *DishHandler) CreateDish(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	var dish models.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(dish); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to create dish")
		return
	}

	created, err := h.store.Insert(ctx, &dish)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to create dish")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// GetDishes handles GET /api/dishes.
func (h *DishHandler) GetDishes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	dishes, err := h.store.FindAll(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch dishes")
		return
	}

	writeJSON(w, http.StatusOK, dishes)
}

// GetPopularDishes handles GET /api/dishes/popular?limit=N. Anything that
// does not parse as a positive integer falls back to the default limit.
func (h *DishHandler) GetPopularDishes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = store.DefaultPopularLimit
	}

	dishes, err := h.store.FindTopByPopularity(ctx, limit)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch popular dishes")
		return
	}

	writeJSON(w, http.StatusOK, dishes)
}

// GetDish handles GET /api/dishes/{id}.
func (h *DishHandler) GetDish(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	dishID := mux.Vars(r)["id"]

	dish, err := h.store.FindByID(ctx, dishID)
	if err == store.ErrNotFound {
		writeMessage(w, http.StatusNotFound, "Dish not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch dish")
		return
	}

	writeJSON(w, http.StatusOK, dish)
}

// IncrementDishClick handles POST /api/dishes/{id}/click.
func (h *DishHandler) IncrementDishClick(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	dishID := mux.Vars(r)["id"]

	dish, err := h.store.IncrementClick(ctx, dishID)
	if err == store.ErrNotFound {
		writeMessage(w, http.StatusNotFound, "Dish not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to update click count")
		return
	}

	h.events.Publish(events.DishEvent{
		Type:       "dish.click",
		DishID:     dishID,
		DishName:   dishName(dish),
		OccurredAt: time.Now(),
	})

	writeJSON(w, http.StatusOK, dish)
}

// IncrementDishOrder handles POST /api/dishes/{id}/order. An empty or
// absent body counts as an order of one.
func (h *DishHandler) IncrementDishOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	dishID := mux.Vars(r)["id"]

	var orderReq models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&orderReq); err != nil && err != io.EOF {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quantity := orderReq.OrderQuantity()

	dish, err := h.store.IncrementOrder(ctx, dishID, quantity)
	if err == store.ErrNotFound {
		writeMessage(w, http.StatusNotFound, "Dish not found")
		return
	}
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to update order count")
		return
	}

	h.events.Publish(events.DishEvent{
		Type:         "dish.order",
		DishID:       dishID,
		DishName:     dishName(dish),
		Quantity:     quantity,
		CustomerName: orderReq.CustomerName,
		TableNumber:  orderReq.TableNumber,
		OccurredAt:   time.Now(),
	})

	writeJSON(w, http.StatusOK, dish)
}

func dishName(dish *models.Dish) string {
	if dish.Name == nil {
		return ""
	}
	return *dish.Name
}
