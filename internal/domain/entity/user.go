package entity

import "time"

// User representa un usuario del sistema (solo autenticación).
type User struct {
	ID           string // uuid
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
