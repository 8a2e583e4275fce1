package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dish is a menu item with pricing, descriptive, and 3D-asset metadata.
// The JSON field names match what the menu frontend expects, including
// the mongo-style "_id".
type Dish struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        *string            `bson:"name" json:"name" validate:"required,min=1"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ModelURL    string             `bson:"modelUrl,omitempty" json:"modelUrl,omitempty"`
	IOSModelURL string             `bson:"iosModelUrl,omitempty" json:"iosModelUrl,omitempty"`
	ClickCount  int64              `bson:"clickCount" json:"clickCount"`
	OrderCount  int64              `bson:"orderCount" json:"orderCount"`
	IsAvailable *bool              `bson:"isAvailable" json:"isAvailable"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrderRequest is the body of POST /api/dishes/{id}/order. Customer name
// and table number ride along for the event feed but are never stored on
// the dish itself.
type OrderRequest struct {
	Quantity     *float64 `json:"quantity,omitempty"`
	CustomerName string   `json:"customerName,omitempty"`
	TableNumber  string   `json:"tableNumber,omitempty"`
}

// OrderQuantity coerces the requested quantity to a positive whole number.
// Absent, zero, negative, and fractional values all collapse onto at least 1,
// which keeps orderCount non-decreasing.
func (r OrderRequest) OrderQuantity() int64 {
	if r.Quantity == nil {
		return 1
	}
	qty := int64(*r.Quantity)
	if qty < 1 {
		return 1
	}
	return qty
}
