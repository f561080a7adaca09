package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesOrderResponse salida de una orden de venta.
type SalesOrderResponse struct {
	ID           string          `json:"id"`
	ProjectID    string          `json:"project_id"`
	CustomerName string          `json:"customer_name"`
	Description  string          `json:"description,omitempty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	State        string          `json:"state"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateSalesOrderRequest alta de orden de venta.
type CreateSalesOrderRequest struct {
	ProjectID    string           `json:"project_id"`
	CustomerName string           `json:"customer_name"`
	Description  string           `json:"description"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	State        string           `json:"state"`
}

// UpdateOrderRequest actualización parcial de una orden (venta o compra).
type UpdateOrderRequest struct {
	CustomerName *string          `json:"customer_name"`
	VendorName   *string          `json:"vendor_name"`
	Description  *string          `json:"description"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	State        *string          `json:"state"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	VendorName  string          `json:"vendor_name"`
	Description string          `json:"description,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	State       string          `json:"state"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreatePurchaseOrderRequest alta de orden de compra.
type CreatePurchaseOrderRequest struct {
	ProjectID   string           `json:"project_id"`
	VendorName  string           `json:"vendor_name"`
	Description string           `json:"description"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	State       string           `json:"state"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	SalesOrderID  string          `json:"sales_order_id,omitempty"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	State         string          `json:"state"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateInvoiceRequest alta de factura. Si SalesOrderID está presente,
// ProjectID y Amount se copian de la orden y los valores del caller se ignoran.
// InvoiceNumber vacío = se genera INV-<año>-<seq>.
type CreateInvoiceRequest struct {
	ProjectID     string           `json:"project_id"`
	SalesOrderID  string           `json:"sales_order_id"`
	InvoiceNumber string           `json:"invoice_number"`
	Amount        *decimal.Decimal `json:"amount"`
	State         string           `json:"state"`
}

// UpdateInvoiceRequest actualización parcial de factura o factura de proveedor.
type UpdateInvoiceRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	State  *string          `json:"state"`
}

// VendorBillResponse salida de una factura de proveedor.
type VendorBillResponse struct {
	ID              string          `json:"id"`
	ProjectID       string          `json:"project_id"`
	PurchaseOrderID string          `json:"purchase_order_id,omitempty"`
	BillNumber      string          `json:"bill_number,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	State           string          `json:"state"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CreateVendorBillRequest alta de factura de proveedor. Si PurchaseOrderID está
// presente, ProjectID y Amount se copian de la orden.
type CreateVendorBillRequest struct {
	ProjectID       string           `json:"project_id"`
	PurchaseOrderID string           `json:"purchase_order_id"`
	BillNumber      string           `json:"bill_number"`
	Amount          *decimal.Decimal `json:"amount"`
	State           string           `json:"state"`
}

// OrderListFilters filtros de query comunes a órdenes/facturas.
type OrderListFilters struct {
	ProjectID string `query:"project_id"`
	State     string `query:"state"`
}
