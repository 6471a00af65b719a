// Package household resets every aggregate back to a fresh install.
package household

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/pkg/diet"
	"Crenza-Backend/pkg/expiry"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"context"
	"github.com/gofiber/fiber/v2/log"
	"sync"
)

type (
	HouseholdService interface {
		ResetHousehold(ctx context.Context) (domain.ResetHouseholdResponse, error)
	}

	Repositories struct {
		Pantries pantry.PantryRepository
		Shopping shopping.ShoppingRepository
		Diets    diet.DietRepository
		Settings settings.SettingsRepository
	}

	householdService struct {
		repositories Repositories
		pantries     *pantry.Manager
		diets        *diet.Manager
		defaults     settings.Settings
		vocabulary   settings.Vocabulary
		lock         sync.Locker
	}
)

func NewHouseholdService(
	repositories Repositories,
	pantries *pantry.Manager,
	diets *diet.Manager,
	defaults settings.Settings,
	vocabulary settings.Vocabulary,
	lock sync.Locker,
) HouseholdService {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &householdService{
		repositories: repositories,
		pantries:     pantries,
		diets:        diets,
		defaults:     defaults,
		vocabulary:   vocabulary,
		lock:         lock,
	}
}

// ResetHousehold stores a default pantry, an empty shopping list, the default
// diets and the default settings. A failed save stops the reset; aggregates
// saved before it stay reset.
func (s *householdService) ResetHousehold(ctx context.Context) (domain.ResetHouseholdResponse, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	inv := s.pantries.NewInventory()
	if err := s.repositories.Pantries.Save(ctx, inv); err != nil {
		log.Errorw("failed to reset pantries", "error", err)
		return domain.ResetHouseholdResponse{}, err
	}
	list := &shopping.List{Entries: []shopping.Entry{}}
	if err := s.repositories.Shopping.Save(ctx, list); err != nil {
		log.Errorw("failed to reset shopping list", "error", err)
		return domain.ResetHouseholdResponse{}, err
	}
	book := s.diets.NewBook()
	if err := s.repositories.Diets.Save(ctx, book); err != nil {
		log.Errorw("failed to reset diets", "error", err)
		return domain.ResetHouseholdResponse{}, err
	}
	current := s.defaults
	if err := s.repositories.Settings.Save(ctx, current); err != nil {
		log.Errorw("failed to reset settings", "error", err)
		return domain.ResetHouseholdResponse{}, err
	}

	log.Infow("household reset", "pantry_id", inv.ActiveID, "diet_id", book.ActiveID)
	return domain.ResetHouseholdResponse{
		Inventory:    pantry.Present(inv, expiry.NewClassifier(current.AlertDays, s.pantries.Now)),
		ShoppingList: shopping.Present(list),
		Diets:        diet.Present(book),
		Settings: domain.SettingsResponse{
			AlertDays:  current.AlertDays,
			Categories: s.vocabulary.Categories,
			Days:       s.vocabulary.Days,
			Meals:      s.vocabulary.Meals,
		},
	}, nil
}
