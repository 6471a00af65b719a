package alert

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/internal/utils/mailing"
	"Crenza-Backend/pkg/expiry"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"context"
	"github.com/gofiber/fiber/v2/log"
	"sync"
	"time"
)

type (
	AlertService interface {
		SendExpiryReport(ctx context.Context, req domain.ExpiryReportRequest) (domain.ExpiryReportResponse, error)
	}

	alertService struct {
		pantryRepository   pantry.PantryRepository
		settingsRepository settings.SettingsRepository
		mailer             mailing.Mailer
		now                func() time.Time
		lock               sync.Locker
	}
)

// NewAlertService accepts a nil mailer; sending then fails with
// domain.ErrMailNotConfigured.
func NewAlertService(
	pantryRepository pantry.PantryRepository,
	settingsRepository settings.SettingsRepository,
	mailer mailing.Mailer,
	now func() time.Time,
	lock sync.Locker,
) AlertService {
	if now == nil {
		now = time.Now
	}
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &alertService{
		pantryRepository:   pantryRepository,
		settingsRepository: settingsRepository,
		mailer:             mailer,
		now:                now,
		lock:               lock,
	}
}

func (s *alertService) SendExpiryReport(ctx context.Context, req domain.ExpiryReportRequest) (domain.ExpiryReportResponse, error) {
	if s.mailer == nil {
		return domain.ExpiryReportResponse{}, domain.ErrMailNotConfigured
	}

	s.lock.Lock()
	inv, err := s.pantryRepository.Load(ctx)
	if err != nil {
		s.lock.Unlock()
		return domain.ExpiryReportResponse{}, err
	}
	current, err := s.settingsRepository.Load(ctx)
	s.lock.Unlock()
	if err != nil {
		return domain.ExpiryReportResponse{}, err
	}

	lines := BuildReport(inv, expiry.NewClassifier(current.AlertDays, s.now))
	if len(lines) == 0 {
		return domain.ExpiryReportResponse{Sent: false, Lines: lines}, nil
	}

	body, err := RenderReport(lines, current.AlertDays)
	if err != nil {
		return domain.ExpiryReportResponse{}, err
	}
	if err := s.mailer.SendMail(req.Email, Subject, body); err != nil {
		log.Errorw("failed to send expiry report", "to", req.Email, "error", err)
		return domain.ExpiryReportResponse{}, err
	}

	log.Infow("expiry report sent", "to", req.Email, "items", len(lines))
	return domain.ExpiryReportResponse{Sent: true, Lines: lines}, nil
}
