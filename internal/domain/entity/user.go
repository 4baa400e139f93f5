package entity

import "time"

// Roles válidos para User (tabla roles, sembrada por migración).
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un miembro del personal.
type User struct {
	ID           string
	Code         string // código visible, ej. "ST004"
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, staff
	CreatedAt    time.Time
}
