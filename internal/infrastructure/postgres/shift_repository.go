package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación PostgreSQL del tablero de horarios.
type ShiftRepo struct {
	q Querier
}

func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

func scanShift(row pgx.Row) (*entity.Shift, error) {
	var s entity.Shift
	var userID *string
	err := row.Scan(&s.ID, &userID, &s.StartDate, &s.EndDate, &s.StartTime, &s.EndTime, &s.Note, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan turno: %w", err)
	}
	if userID != nil {
		s.UserID = *userID
	}
	return &s, nil
}

func (r *ShiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, user_id, start_date, end_date, start_time, end_time, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.UserID, shift.StartDate, shift.EndDate,
		shift.StartTime, shift.EndTime, shift.Note, shift.CreatedAt)
	if err != nil {
		return fmt.Errorf("insertar turno: %w", err)
	}
	return nil
}

func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	query := `
		SELECT id, user_id, start_date, end_date, start_time, end_time, note, created_at
		FROM shifts WHERE id = $1`
	return scanShift(r.q.QueryRow(context.Background(), query, id))
}

// List filtra por solapamiento de rango de fechas: un turno entra si su
// [start_date, end_date] toca el rango [from, to] pedido.
func (r *ShiftRepo) List(from, to *time.Time) ([]*entity.Shift, error) {
	query := `
		SELECT id, user_id, start_date, end_date, start_time, end_time, note, created_at
		FROM shifts
		WHERE ($1::date IS NULL OR end_date >= $1)
		  AND ($2::date IS NULL OR start_date <= $2)
		ORDER BY start_date ASC, start_time ASC`

	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listar turnos: %w", err)
	}
	defer rows.Close()

	shifts := make([]*entity.Shift, 0)
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *ShiftRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar turno: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
