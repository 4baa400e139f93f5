package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ReviewWeekUseCase notas de revisión semanal del equipo.
type ReviewWeekUseCase struct {
	repo     repository.ReviewWeekRepository
	resolver repository.ReferenceResolver
}

// NewReviewWeekUseCase construye el caso de uso.
func NewReviewWeekUseCase(repo repository.ReviewWeekRepository, resolver repository.ReferenceResolver) *ReviewWeekUseCase {
	return &ReviewWeekUseCase{repo: repo, resolver: resolver}
}

// Create crea una nota de revisión. createdBy viene del token.
func (uc *ReviewWeekUseCase) Create(createdBy string, in dto.CreateReviewWeekRequest) (*dto.ReviewWeekResponse, error) {
	weekStart, err := time.Parse(dateLayout, in.WeekStart)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	review := &entity.ReviewWeek{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Content:   in.Content,
		WeekStart: weekStart,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(review); err != nil {
		return nil, err
	}
	hydrated, err := uc.hydrate([]*entity.ReviewWeek{review})
	if err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

// List lista notas (más recientes primero) con el creador hidratado.
func (uc *ReviewWeekUseCase) List(limit, offset int) (*dto.ReviewWeekListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items, err := uc.hydrate(list)
	if err != nil {
		return nil, err
	}
	return &dto.ReviewWeekListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una nota por ID.
func (uc *ReviewWeekUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("revisión %s: %w", id, domain.ErrNotFound)
		}
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *ReviewWeekUseCase) hydrate(list []*entity.ReviewWeek) ([]dto.ReviewWeekResponse, error) {
	userIDs := make([]string, 0, len(list))
	for _, r := range list {
		if r.CreatedBy != "" {
			userIDs = append(userIDs, r.CreatedBy)
		}
	}
	users, err := uc.resolver.UsersByID(userIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReviewWeekResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.ReviewWeekResponse{
			ID:        r.ID,
			Title:     r.Title,
			Content:   r.Content,
			WeekStart: r.WeekStart.Format(dateLayout),
			Creator:   toUserRef(users[r.CreatedBy]),
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
