package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/talento-pro/internal/application/usecase"
	"github.com/tu-usuario/talento-pro/internal/domain/repository"
)

// Ensure TxRunner implements usecase.AgentTxRunner.
var _ usecase.AgentTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con el repositorio de alcances de
// agente atado a la tx y hace Commit o Rollback. Lo usa el reemplazo del
// registro activo: desactivar el vigente + insertar el nuevo, atómico.
func (r *TxRunner) Run(ctx context.Context, fn func(agentRepo repository.AgentAssignmentRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	agentRepo := NewAgentAssignmentRepository(tx)

	if err := fn(agentRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
