package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReviewWeekRepository = (*ReviewWeekRepo)(nil)

// ReviewWeekRepo implementación PostgreSQL de las notas de revisión semanal.
type ReviewWeekRepo struct {
	q Querier
}

func NewReviewWeekRepository(q Querier) *ReviewWeekRepo {
	return &ReviewWeekRepo{q: q}
}

func scanReviewWeek(row pgx.Row) (*entity.ReviewWeek, error) {
	var rw entity.ReviewWeek
	var createdBy *string
	err := row.Scan(&rw.ID, &rw.Title, &rw.Content, &rw.WeekStart, &createdBy, &rw.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan revisión: %w", err)
	}
	if createdBy != nil {
		rw.CreatedBy = *createdBy
	}
	return &rw, nil
}

func (r *ReviewWeekRepo) Create(review *entity.ReviewWeek) error {
	query := `
		INSERT INTO review_weeks (id, title, content, week_start, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.q.Exec(context.Background(), query,
		review.ID, review.Title, review.Content, review.WeekStart,
		nullableID(review.CreatedBy), review.CreatedAt)
	if err != nil {
		return fmt.Errorf("insertar revisión: %w", err)
	}
	return nil
}

func (r *ReviewWeekRepo) GetByID(id string) (*entity.ReviewWeek, error) {
	query := `SELECT id, title, content, week_start, created_by, created_at FROM review_weeks WHERE id = $1`
	return scanReviewWeek(r.q.QueryRow(context.Background(), query, id))
}

func (r *ReviewWeekRepo) List(limit, offset int) ([]*entity.ReviewWeek, error) {
	query := `
		SELECT id, title, content, week_start, created_by, created_at
		FROM review_weeks
		ORDER BY week_start DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar revisiones: %w", err)
	}
	defer rows.Close()

	reviews := make([]*entity.ReviewWeek, 0)
	for rows.Next() {
		rw, err := scanReviewWeek(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rw)
	}
	return reviews, rows.Err()
}

func (r *ReviewWeekRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM review_weeks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("eliminar revisión: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
