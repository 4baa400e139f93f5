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

// ShiftUseCase tablero de horarios del personal.
type ShiftUseCase struct {
	repo     repository.ShiftRepository
	userRepo repository.UserRepository
	resolver repository.ReferenceResolver
}

// NewShiftUseCase construye el caso de uso.
func NewShiftUseCase(repo repository.ShiftRepository, userRepo repository.UserRepository, resolver repository.ReferenceResolver) *ShiftUseCase {
	return &ShiftUseCase{repo: repo, userRepo: userRepo, resolver: resolver}
}

// Create asigna un turno. Turnos nocturnos (EndTime < StartTime) son válidos.
func (uc *ShiftUseCase) Create(in dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	startDate, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	endDate, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if endDate.Before(startDate) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.userRepo.GetByID(in.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("usuario %s: %w", in.UserID, domain.ErrUserNotFound)
		}
		return nil, err
	}

	shift := &entity.Shift{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Note:      in.Note,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(shift); err != nil {
		return nil, err
	}
	hydrated, err := uc.hydrate([]*entity.Shift{shift})
	if err != nil {
		return nil, err
	}
	return &hydrated[0], nil
}

// List devuelve los turnos que se solapan con el rango [from, to], con el
// usuario hidratado. Fechas vacías = sin límite.
func (uc *ShiftUseCase) List(from, to string) (*dto.ShiftListResponse, error) {
	var fromT, toT *time.Time
	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		fromT = &t
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		toT = &t
	}
	list, err := uc.repo.List(fromT, toT)
	if err != nil {
		return nil, err
	}
	items, err := uc.hydrate(list)
	if err != nil {
		return nil, err
	}
	return &dto.ShiftListResponse{Items: items}, nil
}

// Delete elimina un turno por ID.
func (uc *ShiftUseCase) Delete(id string) error {
	if _, err := uc.repo.GetByID(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("turno %s: %w", id, domain.ErrNotFound)
		}
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *ShiftUseCase) hydrate(list []*entity.Shift) ([]dto.ShiftResponse, error) {
	userIDs := make([]string, 0, len(list))
	for _, s := range list {
		userIDs = append(userIDs, s.UserID)
	}
	users, err := uc.resolver.UsersByID(userIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShiftResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ShiftResponse{
			ID:        s.ID,
			User:      toUserRef(users[s.UserID]),
			StartDate: s.StartDate.Format(dateLayout),
			EndDate:   s.EndDate.Format(dateLayout),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Note:      s.Note,
			CreatedAt: s.CreatedAt,
		})
	}
	return out, nil
}
