package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartBuyingResponse salida al iniciar una sesión de compra.
type StartBuyingResponse struct {
	ClientID string `json:"client_id"`
}

// AddCartLineRequest entrada de AddOrMerge: producto + selección completa.
type AddCartLineRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CartLineResponse salida de una línea de carrito.
type CartLineResponse struct {
	LineID      string          `json:"line_id"`
	ClientID    string          `json:"client_id"`
	StoreID     string          `json:"store_id"`
	StoreName   string          `json:"store_name"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Quantity    int             `json:"quantity"`
	Found       bool            `json:"found"`
	Timestamp   time.Time       `json:"timestamp"`
}

// CartResponse carrito completo con el avance de preparación.
type CartResponse struct {
	ClientID   string             `json:"client_id"`
	Lines      []CartLineResponse `json:"lines"`
	FoundCount int                `json:"found_count"`
	TotalCount int                `json:"total_count"`
}

// FoundToggleRequest marca o desmarca una línea como encontrada. Confirm debe
// ser true en ambos sentidos: es la salvaguarda contra toques accidentales.
type FoundToggleRequest struct {
	Confirm bool `json:"confirm"`
}
