package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jeremytpk/storall/internal/domain/entity"
)

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID               string                `json:"id"`
	ClientID         string                `json:"client_id"`
	StoreID          string                `json:"store_id"`
	StoreName        string                `json:"store_name"`
	Products         []entity.OrderProduct `json:"products"`
	Total            decimal.Decimal       `json:"total"`
	PaymentConfirmed bool                  `json:"payment_confirmed"`
	ConfirmedBy      string                `json:"confirmed_by"`
	CreatedAt        time.Time             `json:"created_at"`
}

// OutOfStockCountResponse conteo de rupturas de stock de una tienda.
type OutOfStockCountResponse struct {
	StoreID string `json:"store_id"`
	Count   int    `json:"count"`
}
