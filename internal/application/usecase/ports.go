package usecase

import (
	"context"

	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

// ProjectTxRunner ejecuta una función con repos de proyecto y tags atados a la
// misma transacción. El reemplazo completo del set de tags (borrar + insertar)
// debe ser atómico.
type ProjectTxRunner interface {
	RunProjectTags(ctx context.Context, fn func(
		projectRepo repository.ProjectRepository,
		tagRepo repository.ProjectTagRepository,
	) error) error
}
