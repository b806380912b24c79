// Package audit estandariza el registro de auditoría como canal lateral
// fire-and-forget: un fallo del sink se loguea y jamás afecta la respuesta
// de la operación principal.
package audit

import (
	"encoding/json"
	"time"

	"github.com/tu-usuario/talento-pro/internal/application/ports"
	"github.com/tu-usuario/talento-pro/internal/domain"
	"github.com/tu-usuario/talento-pro/pkg/logger"
)

// Recorder envuelve el AuditSink con el logger inyectado.
type Recorder struct {
	sink ports.AuditSink
	log  *logger.Logger
}

// NewRecorder construye el recorder. sink puede ser nil (auditoría apagada).
func NewRecorder(sink ports.AuditSink, log *logger.Logger) *Recorder {
	return &Recorder{sink: sink, log: log}
}

// Record serializa before/after y entrega la entrada al sink. Nunca retorna
// error: el fallo se captura aquí.
func (r *Recorder) Record(actor domain.Actor, action, entityType, entityID string, before, after any) {
	if r == nil || r.sink == nil {
		return
	}
	entry := ports.AuditEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		At:         time.Now(),
	}
	if before != nil {
		entry.Before, _ = json.Marshal(before)
	}
	if after != nil {
		entry.After, _ = json.Marshal(after)
	}
	if err := r.sink.Record(entry); err != nil && r.log != nil {
		r.log.Warn().Err(err).
			Str("action", action).
			Str("entity_id", entityID).
			Msg("registro de auditoría fallido (no afecta la operación)")
	}
}
