package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controllers "github.com/shivaramgundoju/AR-MENU/controllers"
)

// RegisterDishRoutes wires the dish catalog endpoints. The popular route
// must come before the {id} routes so "popular" is never captured as an id.
func RegisterDishRoutes(router *mux.Router, handler *controllers.DishHandler) {
	router.HandleFunc("/api/dishes", handler.CreateDish).Methods(http.MethodPost)
	router.HandleFunc("/api/dishes", handler.GetDishes).Methods(http.MethodGet)
	router.HandleFunc("/api/dishes/popular", handler.GetPopularDishes).Methods(http.MethodGet)
	router.HandleFunc("/api/dishes/{id}", handler.GetDish).Methods(http.MethodGet)
	router.HandleFunc("/api/dishes/{id}/click", handler.IncrementDishClick).Methods(http.MethodPost)
	router.HandleFunc("/api/dishes/{id}/order", handler.IncrementDishOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/dishes/{id}/qr", handler.GetDishQR).Methods(http.MethodGet)
}
