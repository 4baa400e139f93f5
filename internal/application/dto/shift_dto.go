package dto

import "time"

// CreateShiftRequest entrada para asignar un turno en el tablero de horarios.
// Fechas YYYY-MM-DD, horas HH:MM. EndTime menor que StartTime = turno nocturno.
type CreateShiftRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid4"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
	Note      string `json:"note"`
}

// ShiftResponse turno hidratado. User es null si el miembro fue eliminado.
type ShiftResponse struct {
	ID        string    `json:"id"`
	User      *UserRef  `json:"user"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// ShiftListResponse turnos del rango consultado.
type ShiftListResponse struct {
	Items []ShiftResponse `json:"items"`
}
