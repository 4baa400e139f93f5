package dto

import "time"

// CreateReviewWeekRequest entrada para crear una nota de revisión semanal.
// WeekStart en formato YYYY-MM-DD (lunes de la semana).
type CreateReviewWeekRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Content   string `json:"content"`
	WeekStart string `json:"week_start" validate:"required,datetime=2006-01-02"`
}

// ReviewWeekResponse salida de una nota de revisión.
type ReviewWeekResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	WeekStart string    `json:"week_start"`
	Creator   *UserRef  `json:"creator"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewWeekListResponse lista paginada de notas.
type ReviewWeekListResponse struct {
	Items []ReviewWeekResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
