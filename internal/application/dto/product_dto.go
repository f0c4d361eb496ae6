package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para publicar un producto (manager).
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Price     decimal.Decimal `json:"price" validate:"required"`
	Sizes     []string        `json:"sizes" validate:"required,min=1"`
	Colors    []string        `json:"colors" validate:"required,min=1"`
	Photos    []string        `json:"photos" validate:"required,min=1,max=4"`
	MainPhoto string          `json:"main_photo" validate:"omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	StoreID         string          `json:"store_id"`
	StoreName       string          `json:"store_name"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	Sizes           []string        `json:"sizes"`
	Colors          []string        `json:"colors"`
	Photos          []string        `json:"photos"`
	MainPhoto       string          `json:"main_photo"`
	ManagerUsername string          `json:"manager_username"`
	ManagerName     string          `json:"manager_name"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ReportOutOfStockRequest aviso de ruptura de stock (picker).
type ReportOutOfStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Note      string `json:"note" validate:"omitempty,max=500"`
}
