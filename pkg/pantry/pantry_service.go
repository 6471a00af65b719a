package pantry

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/pkg/expiry"
	"Crenza-Backend/pkg/settings"
	"context"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"sync"
)

type (
	PantryService interface {
		GetInventory(ctx context.Context) (domain.InventoryResponse, error)
		GetStats(ctx context.Context) (domain.InventoryStatsResponse, error)
		CreatePantry(ctx context.Context, req domain.CreatePantryRequest) (domain.InventoryResponse, error)
		RenamePantry(ctx context.Context, id string, req domain.RenamePantryRequest) (domain.InventoryResponse, error)
		DeletePantry(ctx context.Context, id string) (domain.InventoryResponse, error)
		SelectPantry(ctx context.Context, id string) (domain.InventoryResponse, error)
		AddItem(ctx context.Context, pantryID string, req domain.AddItemRequest) (domain.InventoryResponse, error)
		RemoveItem(ctx context.Context, pantryID, itemID string) (domain.InventoryResponse, error)
		ClearPantry(ctx context.Context, pantryID string) (domain.InventoryResponse, error)
	}

	pantryService struct {
		pantryRepository   PantryRepository
		settingsRepository settings.SettingsRepository
		manager            *Manager
		lock               sync.Locker
	}
)

func NewPantryService(
	pantryRepository PantryRepository,
	settingsRepository settings.SettingsRepository,
	manager *Manager,
	lock sync.Locker,
) PantryService {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &pantryService{
		pantryRepository:   pantryRepository,
		settingsRepository: settingsRepository,
		manager:            manager,
		lock:               lock,
	}
}

func (s *pantryService) GetInventory(ctx context.Context) (domain.InventoryResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	inv, err := s.load(ctx)
	if err != nil {
		return domain.InventoryResponse{}, err
	}
	return s.present(ctx, inv)
}

func (s *pantryService) GetStats(ctx context.Context) (domain.InventoryStatsResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	inv, err := s.load(ctx)
	if err != nil {
		return domain.InventoryStatsResponse{}, err
	}
	classifier, err := s.classifier(ctx)
	if err != nil {
		return domain.InventoryStatsResponse{}, err
	}
	return ComputeStats(inv, classifier).Response(), nil
}

func (s *pantryService) CreatePantry(ctx context.Context, req domain.CreatePantryRequest) (domain.InventoryResponse, error) {
	return s.mutate(ctx, func(inv *Inventory) error {
		p, err := s.manager.CreatePantry(inv, req.Name)
		if err == nil {
			log.Infow("pantry created", "pantry_id", p.ID, "name", p.Name)
		}
		return err
	})
}

func (s *pantryService) RenamePantry(ctx context.Context, id string, req domain.RenamePantryRequest) (domain.InventoryResponse, error) {
	pantryID, err := uuid.Parse(id)
	if err != nil {
		return domain.InventoryResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(inv *Inventory) error {
		return inv.RenamePantry(pantryID, req.Name)
	})
}

func (s *pantryService) DeletePantry(ctx context.Context, id string) (domain.InventoryResponse, error) {
	pantryID, err := uuid.Parse(id)
	if err != nil {
		return domain.InventoryResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(inv *Inventory) error {
		return inv.DeletePantry(pantryID)
	})
}

func (s *pantryService) SelectPantry(ctx context.Context, id string) (domain.InventoryResponse, error) {
	pantryID, err := uuid.Parse(id)
	if err != nil {
		return domain.InventoryResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(inv *Inventory) error {
		inv.SelectPantry(pantryID)
		return nil
	})
}

func (s *pantryService) AddItem(ctx context.Context, pantryID string, req domain.AddItemRequest) (domain.InventoryResponse, error) {
	pid, err := uuid.Parse(pantryID)
	if err != nil {
		return domain.InventoryResponse{}, domain.ErrParseUUID
	}
	draft := ItemDraft{
		Name:     req.Name,
		Category: req.Category,
		Expiry:   req.Expiry,
		Barcode:  req.Barcode,
		Quantity: req.Quantity.Ptr(),
		Price:    req.Price.Ptr(),
	}
	return s.mutate(ctx, func(inv *Inventory) error {
		_, err := s.manager.AddItem(inv, pid, draft)
		return err
	})
}

func (s *pantryService) RemoveItem(ctx context.Context, pantryID, itemID string) (domain.InventoryResponse, error) {
	pid, err := uuid.Parse(pantryID)
	if err != nil {
		return domain.InventoryResponse{}, domain.ErrParseUUID
	}
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return domain.InventoryResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(inv *Inventory) error {
		inv.RemoveItem(pid, iid)
		return nil
	})
}

func (s *pantryService) ClearPantry(ctx context.Context, pantryID string) (domain.InventoryResponse, error) {
	pid, err := uuid.Parse(pantryID)
	if err != nil {
		return domain.InventoryResponse{}, domain.ErrParseUUID
	}
	return s.mutate(ctx, func(inv *Inventory) error {
		inv.ClearPantry(pid)
		return nil
	})
}

// mutate runs one load, apply, save cycle under the shared write lock and
// returns the collection as stored.
func (s *pantryService) mutate(ctx context.Context, apply func(inv *Inventory) error) (domain.InventoryResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	inv, err := s.load(ctx)
	if err != nil {
		return domain.InventoryResponse{}, err
	}
	if err := apply(inv); err != nil {
		return domain.InventoryResponse{}, err
	}
	if err := s.pantryRepository.Save(ctx, inv); err != nil {
		log.Errorw("failed to save pantries", "error", err)
		return domain.InventoryResponse{}, err
	}
	return s.present(ctx, inv)
}

func (s *pantryService) load(ctx context.Context) (*Inventory, error) {
	return LoadInventory(ctx, s.pantryRepository, s.manager)
}

// LoadInventory seeds and stores the default pantry on first use so its id
// stays stable across requests and services. Callers hold the shared lock.
func LoadInventory(ctx context.Context, repo PantryRepository, manager *Manager) (*Inventory, error) {
	inv, err := repo.Load(ctx)
	if err != nil {
		log.Errorw("failed to load pantries", "error", err)
		return nil, err
	}
	if inv != nil && len(inv.Pantries) > 0 {
		return manager.Normalize(inv), nil
	}

	inv = manager.NewInventory()
	if err := repo.Save(ctx, inv); err != nil {
		log.Errorw("failed to seed default pantry", "error", err)
		return nil, err
	}
	log.Infow("default pantry created", "pantry_id", inv.ActiveID, "name", inv.Pantries[0].Name)
	return inv, nil
}

func (s *pantryService) classifier(ctx context.Context) (expiry.Classifier, error) {
	current, err := s.settingsRepository.Load(ctx)
	if err != nil {
		return expiry.Classifier{}, err
	}
	return expiry.NewClassifier(current.AlertDays, s.manager.Now), nil
}

func (s *pantryService) present(ctx context.Context, inv *Inventory) (domain.InventoryResponse, error) {
	classifier, err := s.classifier(ctx)
	if err != nil {
		return domain.InventoryResponse{}, err
	}
	return Present(inv, classifier), nil
}

// Present renders the aggregate with items in display order and their
// expiry status.
func Present(inv *Inventory, classifier expiry.Classifier) domain.InventoryResponse {
	res := domain.InventoryResponse{
		ActivePantryID: inv.Active().ID.String(),
		AlertDays:      classifier.AlertDays,
		Pantries:       make([]domain.PantryResponse, 0, len(inv.Pantries)),
	}
	for _, p := range inv.Pantries {
		pr := domain.PantryResponse{
			ID:    p.ID.String(),
			Name:  p.Name,
			Items: make([]domain.ItemResponse, 0, len(p.Items)),
		}
		for _, it := range SortForDisplay(p.Items) {
			pr.Items = append(pr.Items, PresentItem(it, classifier))
		}
		res.Pantries = append(res.Pantries, pr)
	}
	return res
}

func PresentItem(it Item, classifier expiry.Classifier) domain.ItemResponse {
	res := domain.ItemResponse{
		ID:        it.ID.String(),
		Name:      it.Name,
		Category:  it.Category,
		Barcode:   it.Barcode,
		Quantity:  it.Quantity,
		Price:     it.Price,
		Status:    string(classifier.Status(it.Expiry)),
		CreatedAt: it.CreatedAt,
	}
	if it.Expiry != nil {
		res.Expiry = it.Expiry.Format(domain.DateLayout)
	}
	return res
}
