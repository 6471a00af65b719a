package diet

import (
	"Crenza-Backend/domain"
	"context"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"maps"
	"sync"
)

type (
	DietService interface {
		GetDiets(ctx context.Context) (domain.DietsResponse, error)
		CreateDiet(ctx context.Context, req domain.CreateDietRequest) (domain.DietsResponse, error)
		RenameDiet(ctx context.Context, id string, req domain.RenameDietRequest) (domain.DietsResponse, error)
		DeleteDiet(ctx context.Context, id string) (domain.DietsResponse, error)
		SelectDiet(ctx context.Context, id string) (domain.DietsResponse, error)
		SetPlanCell(ctx context.Context, id string, req domain.SetPlanCellRequest) (domain.DietsResponse, error)
		ClearPlan(ctx context.Context, id string) (domain.DietsResponse, error)
	}

	dietService struct {
		dietRepository DietRepository
		manager        *Manager
		lock           sync.Locker
	}
)

func NewDietService(dietRepository DietRepository, manager *Manager, lock sync.Locker) DietService {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &dietService{
		dietRepository: dietRepository,
		manager:        manager,
		lock:           lock,
	}
}

func (s *dietService) GetDiets(ctx context.Context) (domain.DietsResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	b, err := s.load(ctx)
	if err != nil {
		return domain.DietsResponse{}, err
	}
	return Present(b), nil
}

func (s *dietService) CreateDiet(ctx context.Context, req domain.CreateDietRequest) (domain.DietsResponse, error) {
	return s.mutate(ctx, func(b *Book) error {
		d, err := s.manager.CreateDiet(b, req.Name)
		if err == nil {
			log.Infow("diet created", "diet_id", d.ID, "name", d.Name)
		}
		return err
	})
}

func (s *dietService) RenameDiet(ctx context.Context, id string, req domain.RenameDietRequest) (domain.DietsResponse, error) {
	dietID, err := uuid.Parse(id)
	if err != nil {
		return domain.DietsResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(b *Book) error {
		return b.RenameDiet(dietID, req.Name)
	})
}

func (s *dietService) DeleteDiet(ctx context.Context, id string) (domain.DietsResponse, error) {
	dietID, err := uuid.Parse(id)
	if err != nil {
		return domain.DietsResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(b *Book) error {
		return b.DeleteDiet(dietID)
	})
}

func (s *dietService) SelectDiet(ctx context.Context, id string) (domain.DietsResponse, error) {
	dietID, err := uuid.Parse(id)
	if err != nil {
		return domain.DietsResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(b *Book) error {
		b.SelectDiet(dietID)
		return nil
	})
}

func (s *dietService) SetPlanCell(ctx context.Context, id string, req domain.SetPlanCellRequest) (domain.DietsResponse, error) {
	dietID, err := uuid.Parse(id)
	if err != nil {
		return domain.DietsResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(b *Book) error {
		return b.SetPlanCell(dietID, req.Day, req.Meal, req.Text)
	})
}

func (s *dietService) ClearPlan(ctx context.Context, id string) (domain.DietsResponse, error) {
	dietID, err := uuid.Parse(id)
	if err != nil {
		return domain.DietsResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(b *Book) error {
		b.ClearPlan(dietID)
		return nil
	})
}

func (s *dietService) mutate(ctx context.Context, apply func(b *Book) error) (domain.DietsResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	b, err := s.load(ctx)
	if err != nil {
		return domain.DietsResponse{}, err
	}
	if err := apply(b); err != nil {
		return domain.DietsResponse{}, err
	}
	if err := s.dietRepository.Save(ctx, b); err != nil {
		log.Errorw("failed to save diets", "error", err)
		return domain.DietsResponse{}, err
	}
	return Present(b), nil
}

func (s *dietService) load(ctx context.Context) (*Book, error) {
	b, err := s.dietRepository.Load(ctx)
	if err != nil {
		log.Errorw("failed to load diets", "error", err)
		return nil, err
	}
	if b != nil && len(b.Diets) > 0 {
		return s.manager.Normalize(b), nil
	}

	b = s.manager.NewBook()
	if err := s.dietRepository.Save(ctx, b); err != nil {
		log.Errorw("failed to seed default diets", "error", err)
		return nil, err
	}
	log.Infow("default diets created", "count", len(b.Diets))
	return b, nil
}

func Present(b *Book) domain.DietsResponse {
	res := domain.DietsResponse{
		ActiveDietID: b.Active().ID.String(),
		Days:         Days,
		Meals:        Meals,
		Diets:        make([]domain.DietResponse, 0, len(b.Diets)),
	}
	for _, d := range b.Diets {
		res.Diets = append(res.Diets, domain.DietResponse{
			ID:   d.ID.String(),
			Name: d.Name,
			Plan: maps.Clone(d.Plan),
		})
	}
	return res
}
