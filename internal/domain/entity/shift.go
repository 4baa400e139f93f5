package entity

import "time"

// Shift es una asignación del tablero de horarios: un usuario cubre un rango
// de fechas con horario de entrada y salida (HH:MM).
type Shift struct {
	ID        string
	UserID    string
	StartDate time.Time // date, inclusive
	EndDate   time.Time // date, inclusive
	StartTime string    // "08:00"
	EndTime   string    // "17:00"; menor que StartTime si el turno cruza medianoche
	Note      string
	CreatedAt time.Time
}
