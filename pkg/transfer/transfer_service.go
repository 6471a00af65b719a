package transfer

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/pkg/expiry"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"context"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"sync"
)

type (
	TransferService interface {
		TransferEntry(ctx context.Context, entryID string, req domain.TransferRequest) (domain.TransferResponse, error)
		RestockItem(ctx context.Context, pantryID, itemID string) (domain.RestockResponse, error)
	}

	transferService struct {
		pantryRepository   pantry.PantryRepository
		shoppingRepository shopping.ShoppingRepository
		settingsRepository settings.SettingsRepository
		workflow           *Workflow
		lock               sync.Locker
	}
)

func NewTransferService(
	pantryRepository pantry.PantryRepository,
	shoppingRepository shopping.ShoppingRepository,
	settingsRepository settings.SettingsRepository,
	workflow *Workflow,
	lock sync.Locker,
) TransferService {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &transferService{
		pantryRepository:   pantryRepository,
		shoppingRepository: shoppingRepository,
		settingsRepository: settingsRepository,
		workflow:           workflow,
		lock:               lock,
	}
}

func (s *transferService) TransferEntry(ctx context.Context, entryID string, req domain.TransferRequest) (domain.TransferResponse, error) {
	eid, err := uuid.Parse(entryID)
	if err != nil {
		return domain.TransferResponse{}, domain.ErrParseUUID
	}
	pid, err := uuid.Parse(req.PantryID)
	if err != nil {
		return domain.TransferResponse{}, domain.ErrParseUUID
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	inv, list, err := s.load(ctx)
	if err != nil {
		return domain.TransferResponse{}, err
	}

	item, err := s.workflow.Transfer(inv, list, eid, pid, pantry.ItemDraft{
		Name:     req.Name,
		Category: req.Category,
		Expiry:   req.Expiry,
		Barcode:  req.Barcode,
		Quantity: req.Quantity.Ptr(),
		Price:    req.Price.Ptr(),
	})
	if err != nil {
		return domain.TransferResponse{}, err
	}

	// The pantry is always saved before the list.
	if err := s.pantryRepository.Save(ctx, inv); err != nil {
		log.Errorw("failed to save pantries after transfer", "entry_id", eid, "error", err)
		return domain.TransferResponse{}, err
	}
	if err := s.shoppingRepository.Save(ctx, list); err != nil {
		log.Errorw("failed to save shopping list after transfer", "entry_id", eid, "error", err)
		return domain.TransferResponse{}, err
	}
	log.Infow("entry transferred", "entry_id", eid, "item_id", item.ID, "pantry_id", pid)

	classifier, err := s.classifier(ctx)
	if err != nil {
		return domain.TransferResponse{}, err
	}
	return domain.TransferResponse{
		Item:         pantry.PresentItem(item, classifier),
		Inventory:    pantry.Present(inv, classifier),
		ShoppingList: shopping.Present(list),
	}, nil
}

func (s *transferService) RestockItem(ctx context.Context, pantryID, itemID string) (domain.RestockResponse, error) {
	pid, err := uuid.Parse(pantryID)
	if err != nil {
		return domain.RestockResponse{}, domain.ErrParseUUID
	}
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return domain.RestockResponse{}, domain.ErrParseUUID
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	inv, list, err := s.load(ctx)
	if err != nil {
		return domain.RestockResponse{}, err
	}

	entry, err := s.workflow.Restock(inv, list, pid, iid)
	if err != nil {
		return domain.RestockResponse{}, err
	}
	if err := s.shoppingRepository.Save(ctx, list); err != nil {
		log.Errorw("failed to save shopping list after restock", "item_id", iid, "error", err)
		return domain.RestockResponse{}, err
	}

	return domain.RestockResponse{
		Entry:        shopping.PresentEntry(entry),
		ShoppingList: shopping.Present(list),
	}, nil
}

func (s *transferService) load(ctx context.Context) (*pantry.Inventory, *shopping.List, error) {
	inv, err := pantry.LoadInventory(ctx, s.pantryRepository, s.workflow.Pantries)
	if err != nil {
		return nil, nil, err
	}
	list, err := s.shoppingRepository.Load(ctx)
	if err != nil {
		log.Errorw("failed to load shopping list", "error", err)
		return nil, nil, err
	}
	if list == nil {
		list = &shopping.List{}
	}
	return inv, list, nil
}

func (s *transferService) classifier(ctx context.Context) (expiry.Classifier, error) {
	current, err := s.settingsRepository.Load(ctx)
	if err != nil {
		return expiry.Classifier{}, err
	}
	return expiry.NewClassifier(current.AlertDays, s.workflow.Pantries.Now), nil
}
