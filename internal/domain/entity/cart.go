package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine es una línea del carrito de un cliente en curso. La clave remota es
// determinista (clientId_productId), lo que garantiza a lo sumo una línea
// almacenada por par (cliente, producto).
type CartLine struct {
	LineID      string
	ClientID    string
	StoreID     string
	StoreName   string
	ProductID   string
	ProductName string
	Price       decimal.Decimal
	Size        string
	Color       string
	Quantity    int // >= 1
	Found       bool
	Timestamp   time.Time
}

// CartLineID construye la clave determinista de una línea.
func CartLineID(clientID, productID string) string {
	return clientID + "_" + productID
}

// Subtotal devuelve precio x cantidad de la línea.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
