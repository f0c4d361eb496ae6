package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderProduct es una línea ya cerrada dentro de un pedido.
type OrderProduct struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Quantity    int             `json:"quantity"`
}

// Order es el pedido creado al confirmar un carrito completamente preparado.
// PaymentConfirmed lo marca el manager al cobrar.
type Order struct {
	ID               string
	ClientID         string
	StoreID          string
	StoreName        string
	Products         []OrderProduct
	Total            decimal.Decimal
	PaymentConfirmed bool
	ConfirmedBy      string // username del picker que validó el carrito
	CreatedAt        time.Time
}
