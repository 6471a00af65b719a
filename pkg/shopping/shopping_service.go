package shopping

import (
	"Crenza-Backend/domain"
	"context"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"sync"
)

type (
	ShoppingService interface {
		GetShoppingList(ctx context.Context) (domain.ShoppingListResponse, error)
		AddEntry(ctx context.Context, req domain.AddEntryRequest) (domain.ShoppingListResponse, error)
		RemoveEntry(ctx context.Context, id string) (domain.ShoppingListResponse, error)
		ToggleEntry(ctx context.Context, id string) (domain.ShoppingListResponse, error)
		ClearShoppingList(ctx context.Context) (domain.ShoppingListResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		manager            *Manager
		lock               sync.Locker
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, manager *Manager, lock sync.Locker) ShoppingService {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		manager:            manager,
		lock:               lock,
	}
}

func (s *shoppingService) GetShoppingList(ctx context.Context) (domain.ShoppingListResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return Present(list), nil
}

func (s *shoppingService) AddEntry(ctx context.Context, req domain.AddEntryRequest) (domain.ShoppingListResponse, error) {
	draft := EntryDraft{
		Name:     req.Name,
		Quantity: req.Quantity.Ptr(),
		Price:    req.Price.Ptr(),
	}
	return s.mutate(ctx, func(list *List) error {
		_, err := s.manager.AddEntry(list, draft)
		return err
	})
}

func (s *shoppingService) RemoveEntry(ctx context.Context, id string) (domain.ShoppingListResponse, error) {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(list *List) error {
		list.RemoveEntry(entryID)
		return nil
	})
}

func (s *shoppingService) ToggleEntry(ctx context.Context, id string) (domain.ShoppingListResponse, error) {
	entryID, err := uuid.Parse(id)
	if err != nil {
		return domain.ShoppingListResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(list *List) error {
		list.ToggleEntry(entryID)
		return nil
	})
}

func (s *shoppingService) ClearShoppingList(ctx context.Context) (domain.ShoppingListResponse, error) {
	return s.mutate(ctx, func(list *List) error {
		list.Clear()
		return nil
	})
}

func (s *shoppingService) mutate(ctx context.Context, apply func(list *List) error) (domain.ShoppingListResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	list, err := s.load(ctx)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	if err := apply(list); err != nil {
		return domain.ShoppingListResponse{}, err
	}
	if err := s.shoppingRepository.Save(ctx, list); err != nil {
		log.Errorw("failed to save shopping list", "error", err)
		return domain.ShoppingListResponse{}, err
	}
	return Present(list), nil
}

func (s *shoppingService) load(ctx context.Context) (*List, error) {
	list, err := s.shoppingRepository.Load(ctx)
	if err != nil {
		log.Errorw("failed to load shopping list", "error", err)
		return nil, err
	}
	if list == nil {
		list = &List{}
	}
	if list.Entries == nil {
		list.Entries = []Entry{}
	}
	return list, nil
}

func Present(list *List) domain.ShoppingListResponse {
	res := domain.ShoppingListResponse{
		Entries: make([]domain.EntryResponse, 0, len(list.Entries)),
		Total:   domain.RoundCents(list.Total()),
	}
	for _, e := range list.Entries {
		res.Entries = append(res.Entries, PresentEntry(e))
	}
	return res
}

func PresentEntry(e Entry) domain.EntryResponse {
	return domain.EntryResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		Quantity:  e.Quantity,
		Price:     e.Price,
		Subtotal:  domain.RoundCents(e.Subtotal()),
		Completed: e.Completed,
		CreatedAt: e.CreatedAt,
	}
}
