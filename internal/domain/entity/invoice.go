package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura y de factura de proveedor.
const (
	InvoiceStateDraft     = "draft"
	InvoiceStateSent      = "sent"
	InvoiceStatePaid      = "paid"
	InvoiceStateCancelled = "cancelled"
)

// ValidInvoiceState indica si el estado es conocido.
func ValidInvoiceState(s string) bool {
	switch s {
	case InvoiceStateDraft, InvoiceStateSent, InvoiceStatePaid, InvoiceStateCancelled:
		return true
	}
	return false
}

// Invoice factura de cliente. Number es único global, generado como
// INV-<año>-<seq> cuando el caller no lo provee. Si SalesOrderID está
// presente, Amount y ProjectID se copian de la orden al crear.
type Invoice struct {
	ID           string
	ProjectID    string
	SalesOrderID string // vacío = sin orden vinculada
	Number       string
	Amount       decimal.Decimal
	State        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VendorBill factura de proveedor. Análoga a Invoice pero contra PurchaseOrder.
type VendorBill struct {
	ID              string
	ProjectID       string
	PurchaseOrderID string
	Number          string
	Amount          decimal.Decimal
	State           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
