package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	database "github.com/shivaramgundoju/AR-MENU/config"
	controllers "github.com/shivaramgundoju/AR-MENU/controllers"
	"github.com/shivaramgundoju/AR-MENU/events"
	"github.com/shivaramgundoju/AR-MENU/routes"
	"github.com/shivaramgundoju/AR-MENU/store"
)

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"service":   "ar-menu-backend",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func main() {
	// A missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	client := database.DBinstance()
	defer client.Disconnect(context.Background())

	dishStore := store.NewMongoDishStore(database.OpenCollection(client, "dishes"))
	publisher := events.NewKafkaPublisherFromEnv()
	handler := controllers.NewDishHandler(dishStore, publisher)

	router := mux.NewRouter()

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("AR Menu Backend Running"))
	}).Methods(http.MethodGet)
	router.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	routes.RegisterDishRoutes(router, handler)

	// 3D assets referenced by modelUrl/iosModelUrl.
	modelsDir := os.Getenv("MODELS_DIR")
	if modelsDir == "" {
		modelsDir = "./models"
	}
	router.PathPrefix("/models/").Handler(
		http.StripPrefix("/models/", http.FileServer(http.Dir(modelsDir))))

	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, cors.AllowAll().Handler(router)))
}
