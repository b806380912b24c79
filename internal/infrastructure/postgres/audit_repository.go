package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/talento-pro/internal/application/ports"
)

var _ ports.AuditSink = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditSink sobre PostgreSQL: una fila
// por mutación del pipeline, con before/after como JSONB.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Record inserta la entrada. El recorder que lo llama ya trata cualquier error
// como no fatal para la operación principal.
func (r *AuditRepo) Record(entry ports.AuditEntry) error {
	query := `
		INSERT INTO audit_log (id, actor_id, actor_role, action, entity_type, entity_id, before, after, at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		uuid.New().String(), entry.ActorID, entry.ActorRole, entry.Action,
		entry.EntityType, entry.EntityID, nullableJSON(entry.Before), nullableJSON(entry.After),
		entry.At,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// nullableJSON evita insertar un JSONB vacío: NULL en su lugar.
func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}
