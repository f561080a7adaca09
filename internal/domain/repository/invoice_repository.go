package repository

import "github.com/tu-usuario/projectflow/internal/domain/entity"

// InvoiceFilter filtros de listado de facturas. ManagerID recorta a las
// facturas de proyectos gestionados por ese usuario.
type InvoiceFilter struct {
	ProjectID string
	State     string
	ManagerID string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Create devuelve domain.ErrDuplicate si el número de factura ya existe.
	Create(inv *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List(f InvoiceFilter) ([]*entity.Invoice, error)
	Update(inv *entity.Invoice) error
	Delete(id string) error
	// Count total de facturas (base del consecutivo INV-<año>-<seq>).
	Count() (int, error)
}

// VendorBillRepository define el puerto de persistencia para VendorBill.
type VendorBillRepository interface {
	Create(b *entity.VendorBill) error
	GetByID(id string) (*entity.VendorBill, error)
	List(f InvoiceFilter) ([]*entity.VendorBill, error)
	Update(b *entity.VendorBill) error
	Delete(id string) error
}
