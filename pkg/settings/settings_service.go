package settings

import (
	"Crenza-Backend/domain"
	"context"
	"github.com/gofiber/fiber/v2/log"
	"sync"
)

type (
	SettingsService interface {
		GetSettings(ctx context.Context) (domain.SettingsResponse, error)
		UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error)
	}

	// Vocabulary is the static configuration echoed next to the settings so a
	// client can render its pickers.
	Vocabulary struct {
		Categories []string
		Days       []string
		Meals      []string
	}

	settingsService struct {
		settingsRepository SettingsRepository
		vocabulary         Vocabulary
		lock               sync.Locker
	}
)

func NewSettingsService(settingsRepository SettingsRepository, vocabulary Vocabulary, lock sync.Locker) SettingsService {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &settingsService{
		settingsRepository: settingsRepository,
		vocabulary:         vocabulary,
		lock:               lock,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.SettingsResponse, error) {
	current, err := s.settingsRepository.Load(ctx)
	if err != nil {
		return domain.SettingsResponse{}, err
	}
	return s.present(current), nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error) {
	if req.AlertDays == nil {
		return domain.SettingsResponse{}, domain.ErrInvalidAlertDays
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	current, err := s.settingsRepository.Load(ctx)
	if err != nil {
		return domain.SettingsResponse{}, err
	}
	if err := current.SetAlertDays(*req.AlertDays); err != nil {
		return domain.SettingsResponse{}, err
	}
	if err := s.settingsRepository.Save(ctx, current); err != nil {
		log.Errorw("failed to save settings", "error", err)
		return domain.SettingsResponse{}, err
	}

	log.Infow("alert window updated", "alert_days", current.AlertDays)
	return s.present(current), nil
}

func (s *settingsService) present(current Settings) domain.SettingsResponse {
	return domain.SettingsResponse{
		AlertDays:  current.AlertDays,
		Categories: s.vocabulary.Categories,
		Days:       s.vocabulary.Days,
		Meals:      s.vocabulary.Meals,
	}
}
