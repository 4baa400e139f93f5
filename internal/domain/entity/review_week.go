package entity

import "time"

// ReviewWeek es una nota de revisión semanal del equipo.
type ReviewWeek struct {
	ID        string
	Title     string
	Content   string
	WeekStart time.Time // lunes de la semana revisada
	CreatedBy string
	CreatedAt time.Time
}
