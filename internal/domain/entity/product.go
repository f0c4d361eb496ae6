package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un artículo publicado por el manager de una tienda.
type Product struct {
	ID              string
	StoreID         string
	StoreName       string
	Name            string
	Price           decimal.Decimal
	Sizes           []string
	Colors          []string
	Photos          []string
	MainPhoto       string
	ManagerUsername string
	ManagerName     string
	CreatedAt       time.Time
}

// OutOfStockReport es el aviso de un picker de que un producto no está en estantería.
type OutOfStockReport struct {
	ID         string
	ProductID  string
	StoreID    string
	ReportedBy string // username del picker
	Note       string
	CreatedAt  time.Time
}
