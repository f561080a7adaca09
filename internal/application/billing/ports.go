package billing

import "github.com/tu-usuario/projectflow/internal/domain/entity"

// InvoicePDFGenerator puerto para la generación del PDF de una factura.
// La implementación vive en infraestructura (Maroto).
type InvoicePDFGenerator interface {
	Generate(inv *entity.Invoice, project *entity.Project) ([]byte, error)
}
