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

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación del puerto SalesOrderRepository sobre PostgreSQL.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador de órdenes de venta.
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

// Create persiste una orden de venta.
func (r *SalesOrderRepo) Create(o *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (id, project_id, customer_name, description, total_amount, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.ProjectID, o.CustomerName, o.Description, o.TotalAmount, o.State, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de venta por ID.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `
		SELECT id, project_id, customer_name, description, total_amount, state, created_at, updated_at
		FROM sales_orders WHERE id = $1`
	var o entity.SalesOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProjectID, &o.CustomerName, &o.Description, &o.TotalAmount, &o.State, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return &o, nil
}

// List órdenes de venta según el filtro, orden created_at DESC.
func (r *SalesOrderRepo) List(f repository.OrderFilter) ([]*entity.SalesOrder, error) {
	query := `
		SELECT id, project_id, customer_name, description, total_amount, state, created_at, updated_at
		FROM sales_orders`
	where, args := orderFilterWhere(f)
	query += where + ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.SalesOrder
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(
			&o.ID, &o.ProjectID, &o.CustomerName, &o.Description, &o.TotalAmount, &o.State, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// Update actualiza una orden de venta.
func (r *SalesOrderRepo) Update(o *entity.SalesOrder) error {
	query := `
		UPDATE sales_orders SET customer_name = $2, description = $3, total_amount = $4, state = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.CustomerName, o.Description, o.TotalAmount, o.State, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales order: %w", err)
	}
	return nil
}

// Delete elimina una orden de venta. RESTRICT si una factura la referencia.
func (r *SalesOrderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales_orders WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete sales order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes de compra.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste una orden de compra.
func (r *PurchaseOrderRepo) Create(o *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, project_id, vendor_name, description, total_amount, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.ProjectID, o.VendorName, o.Description, o.TotalAmount, o.State, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden de compra por ID.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, project_id, vendor_name, description, total_amount, state, created_at, updated_at
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.ProjectID, &o.VendorName, &o.Description, &o.TotalAmount, &o.State, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// List órdenes de compra según el filtro, orden created_at DESC.
func (r *PurchaseOrderRepo) List(f repository.OrderFilter) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT id, project_id, vendor_name, description, total_amount, state, created_at, updated_at
		FROM purchase_orders`
	where, args := orderFilterWhere(f)
	query += where + ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.ProjectID, &o.VendorName, &o.Description, &o.TotalAmount, &o.State, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// Update actualiza una orden de compra.
func (r *PurchaseOrderRepo) Update(o *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET vendor_name = $2, description = $3, total_amount = $4, state = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.VendorName, o.Description, o.TotalAmount, o.State, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// Delete elimina una orden de compra. RESTRICT si una factura de proveedor la referencia.
func (r *PurchaseOrderRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete purchase order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// orderFilterWhere arma el WHERE compartido por ambas tablas de órdenes.
func orderFilterWhere(f repository.OrderFilter) (string, []any) {
	var where string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		cond = cond + "$" + strconv.Itoa(len(args))
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}
	if f.ProjectID != "" {
		add("project_id = ", f.ProjectID)
	}
	if f.State != "" {
		add("state = ", f.State)
	}
	return where, args
}
