package dto

import "github.com/shopspring/decimal"

// CostBreakdown desglose del costo total del proyecto.
type CostBreakdown struct {
	VendorBills decimal.Decimal `json:"vendor_bills"`
	Timesheets  decimal.Decimal `json:"timesheets"`
	Expenses    decimal.Decimal `json:"expenses"`
}

// ProjectSummaryResponse rentabilidad de un proyecto: ingresos por facturas
// pagadas, costos (proveedores + horas × tarifa + gastos pagados) y utilidad.
type ProjectSummaryResponse struct {
	ProjectID      string          `json:"project_id"`
	Revenue        decimal.Decimal `json:"revenue"`
	Cost           decimal.Decimal `json:"cost"`
	Profit         decimal.Decimal `json:"profit"`
	HoursLogged    decimal.Decimal `json:"hours_logged"`
	InvoiceCount   int             `json:"invoice_count"`
	ExpenseCount   int             `json:"expense_count"`
	TimesheetCount int             `json:"timesheet_count"`
	Breakdown      CostBreakdown   `json:"breakdown"`
}
