package entity

import "time"

// Estados válidos para User.
const (
	UserStatusActive      = "active"
	UserStatusInactive    = "inactive"
	UserStatusBlacklisted = "blacklisted"
)

// User representa un usuario del sistema (cualquier rol).
// El rol es inmutable durante la sesión; cambios de rol son operación de admin.
type User struct {
	ID           string
	Code         string // identificador legible, ej. USR0001
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // superadmin, admin, hr, agent, candidate
	Status       string // active, inactive, blacklisted
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
