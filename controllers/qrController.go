package controller

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/shivaramgundoju/AR-MENU/store"
)

// GetDishQR handles GET /api/dishes/{id}/qr. The PNG encodes a link to the
// dish's AR page so a printed table card can open the viewer directly.
func (h *DishHandler) GetDishQR(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	dishID := mux.Vars(r)["id"]

	if _, err := h.store.FindByID(ctx, dishID); err != nil {
		if err == store.ErrNotFound {
			writeMessage(w, http.StatusNotFound, "Dish not found")
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch dish")
		return
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}

	png, err := qrcode.Encode(baseURL+"/ar/"+dishID, qrcode.Medium, 256)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
