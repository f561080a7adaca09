package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/projectflow/internal/application/usecase"
	"github.com/tu-usuario/projectflow/internal/domain/repository"
)

// Ensure TxRunner implements usecase.ProjectTxRunner.
var _ usecase.ProjectTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProjectTags inicia una transacción, ejecuta fn con repos de proyecto y
// tags atados a la tx y hace Commit o Rollback. Cubre el reemplazo completo
// del set de etiquetas en creación y actualización de proyectos.
func (r *TxRunner) RunProjectTags(ctx context.Context, fn func(
	projectRepo repository.ProjectRepository,
	tagRepo repository.ProjectTagRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	projectRepo := NewProjectRepository(tx)
	tagRepo := NewProjectTagRepository(tx)

	if err := fn(projectRepo, tagRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
