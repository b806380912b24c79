package ports

import "time"

// AuditEntry registro de auditoría de una mutación del pipeline.
// Before/After van ya serializados (JSON) por el caller.
type AuditEntry struct {
	ActorID    string
	ActorRole  string
	Action     string // ej. assignment.create, assignment.transition
	EntityType string
	EntityID   string
	Before     []byte
	After      []byte
	Metadata   map[string]string
	At         time.Time
}

// AuditSink puerto de salida para el log de auditoría. Es un canal lateral
// fire-and-forget: un fallo aquí nunca debe fallar la operación principal
// (el recorder lo captura y lo loguea).
type AuditSink interface {
	Record(entry AuditEntry) error
}
