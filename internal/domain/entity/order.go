package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de órdenes de venta y compra.
const (
	OrderStateDraft     = "draft"
	OrderStateSent      = "sent"
	OrderStateConfirmed = "confirmed"
	OrderStateReceived  = "received" // solo purchase orders
	OrderStateCancelled = "cancelled"
)

// ValidSalesOrderState indica si el estado es válido para una orden de venta.
func ValidSalesOrderState(s string) bool {
	switch s {
	case OrderStateDraft, OrderStateSent, OrderStateConfirmed, OrderStateCancelled:
		return true
	}
	return false
}

// ValidPurchaseOrderState indica si el estado es válido para una orden de compra.
func ValidPurchaseOrderState(s string) bool {
	return s == OrderStateReceived || ValidSalesOrderState(s)
}

// SalesOrder orden de venta asociada a un proyecto.
type SalesOrder struct {
	ID           string
	ProjectID    string
	CustomerName string
	Description  string
	TotalAmount  decimal.Decimal
	State        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PurchaseOrder orden de compra asociada a un proyecto.
type PurchaseOrder struct {
	ID          string
	ProjectID   string
	VendorName  string
	Description string
	TotalAmount decimal.Decimal
	State       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
