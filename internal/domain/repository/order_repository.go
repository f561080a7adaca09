package repository

import "github.com/tu-usuario/projectflow/internal/domain/entity"

// OrderFilter filtros comunes a órdenes de venta y compra.
type OrderFilter struct {
	ProjectID string
	State     string
}

// SalesOrderRepository define el puerto de persistencia para SalesOrder.
type SalesOrderRepository interface {
	Create(o *entity.SalesOrder) error
	GetByID(id string) (*entity.SalesOrder, error)
	List(f OrderFilter) ([]*entity.SalesOrder, error)
	Update(o *entity.SalesOrder) error
	Delete(id string) error
}

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
type PurchaseOrderRepository interface {
	Create(o *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	List(f OrderFilter) ([]*entity.PurchaseOrder, error)
	Update(o *entity.PurchaseOrder) error
	Delete(id string) error
}
