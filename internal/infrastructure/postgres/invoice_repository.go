package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/projectflow/internal/domain"
	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de facturas.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura. Número duplicado devuelve domain.ErrDuplicate
// (el caso de uso reintenta con un consecutivo recalculado).
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, project_id, sales_order_id, invoice_number, amount, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProjectID, nullIfEmpty(inv.SalesOrderID), inv.Number,
		inv.Amount, inv.State, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, project_id, sales_order_id, invoice_number, amount, state, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	var orderID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.ProjectID, &orderID, &inv.Number, &inv.Amount, &inv.State, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if orderID != nil {
		inv.SalesOrderID = *orderID
	}
	return &inv, nil
}

// List facturas según el filtro, orden created_at DESC. ManagerID recorta a
// facturas de proyectos gestionados por ese usuario.
func (r *InvoiceRepo) List(f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `
		SELECT id, project_id, sales_order_id, invoice_number, amount, state, created_at, updated_at
		FROM invoices`
	var where []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if f.ProjectID != "" {
		where = append(where, "project_id = "+next(f.ProjectID))
	}
	if f.State != "" {
		where = append(where, "state = "+next(f.State))
	}
	if f.ManagerID != "" {
		where = append(where, "project_id IN (SELECT id FROM projects WHERE manager_id = "+next(f.ManagerID)+")")
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		var orderID *string
		if err := rows.Scan(
			&inv.ID, &inv.ProjectID, &orderID, &inv.Number, &inv.Amount, &inv.State, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		if orderID != nil {
			inv.SalesOrderID = *orderID
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

// Update actualiza una factura.
func (r *InvoiceRepo) Update(inv *entity.Invoice) error {
	query := `
		UPDATE invoices SET amount = $2, state = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, inv.ID, inv.Amount, inv.State, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura.
func (r *InvoiceRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count total de facturas, base del consecutivo.
func (r *InvoiceRepo) Count() (int, error) {
	var count int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

var _ repository.VendorBillRepository = (*VendorBillRepo)(nil)

// VendorBillRepo implementación del puerto VendorBillRepository sobre PostgreSQL.
type VendorBillRepo struct {
	q Querier
}

// NewVendorBillRepository construye el adaptador de facturas de proveedor.
func NewVendorBillRepository(q Querier) *VendorBillRepo {
	return &VendorBillRepo{q: q}
}

// Create persiste una factura de proveedor.
func (r *VendorBillRepo) Create(b *entity.VendorBill) error {
	query := `
		INSERT INTO vendor_bills (id, project_id, purchase_order_id, bill_number, amount, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.ProjectID, nullIfEmpty(b.PurchaseOrderID), nullIfEmpty(b.Number),
		b.Amount, b.State, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor bill: %w", err)
	}
	return nil
}

// GetByID obtiene una factura de proveedor por ID.
func (r *VendorBillRepo) GetByID(id string) (*entity.VendorBill, error) {
	query := `
		SELECT id, project_id, purchase_order_id, bill_number, amount, state, created_at, updated_at
		FROM vendor_bills WHERE id = $1`
	var b entity.VendorBill
	var orderID, number *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.ProjectID, &orderID, &number, &b.Amount, &b.State, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor bill: %w", err)
	}
	if orderID != nil {
		b.PurchaseOrderID = *orderID
	}
	if number != nil {
		b.Number = *number
	}
	return &b, nil
}

// List facturas de proveedor según el filtro, orden created_at DESC.
func (r *VendorBillRepo) List(f repository.InvoiceFilter) ([]*entity.VendorBill, error) {
	query := `
		SELECT id, project_id, purchase_order_id, bill_number, amount, state, created_at, updated_at
		FROM vendor_bills`
	var where []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if f.ProjectID != "" {
		where = append(where, "project_id = "+next(f.ProjectID))
	}
	if f.State != "" {
		where = append(where, "state = "+next(f.State))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendor bills: %w", err)
	}
	defer rows.Close()

	var bills []*entity.VendorBill
	for rows.Next() {
		var b entity.VendorBill
		var orderID, number *string
		if err := rows.Scan(
			&b.ID, &b.ProjectID, &orderID, &number, &b.Amount, &b.State, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vendor bill: %w", err)
		}
		if orderID != nil {
			b.PurchaseOrderID = *orderID
		}
		if number != nil {
			b.Number = *number
		}
		bills = append(bills, &b)
	}
	return bills, rows.Err()
}

// Update actualiza una factura de proveedor.
func (r *VendorBillRepo) Update(b *entity.VendorBill) error {
	query := `
		UPDATE vendor_bills SET amount = $2, state = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, b.ID, b.Amount, b.State, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update vendor bill: %w", err)
	}
	return nil
}

// Delete elimina una factura de proveedor.
func (r *VendorBillRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM vendor_bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor bill: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
