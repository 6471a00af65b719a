package backup

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/internal/utils/storage"
	"Crenza-Backend/pkg/diet"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/settings"
	"Crenza-Backend/pkg/shopping"
	"context"
	"encoding/json"
	"github.com/gofiber/fiber/v2/log"
	"strings"
	"sync"
	"time"
)

type (
	BackupService interface {
		Export(ctx context.Context) (domain.ExportBackupResponse, error)
		DeleteBackup(ctx context.Context, req domain.DeleteBackupRequest) (domain.DeleteBackupResponse, error)
	}

	Repositories struct {
		Pantries pantry.PantryRepository
		Shopping shopping.ShoppingRepository
		Diets    diet.DietRepository
		Settings settings.SettingsRepository
	}

	backupService struct {
		repositories Repositories
		s3           storage.AwsS3
		now          func() time.Time
		lock         sync.Locker
	}
)

// NewBackupService accepts a nil s3; Export then fails with
// domain.ErrBackupNotConfigured.
func NewBackupService(repositories Repositories, s3 storage.AwsS3, now func() time.Time, lock sync.Locker) BackupService {
	if now == nil {
		now = time.Now
	}
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &backupService{
		repositories: repositories,
		s3:           s3,
		now:          now,
		lock:         lock,
	}
}

func (s *backupService) Export(ctx context.Context) (domain.ExportBackupResponse, error) {
	if s.s3 == nil {
		return domain.ExportBackupResponse{}, domain.ErrBackupNotConfigured
	}

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return domain.ExportBackupResponse{}, err
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return domain.ExportBackupResponse{}, err
	}

	objectKey, err := s.s3.UploadObject(ctx, FileName(snapshot.ExportedAt), Folder, ContentType, data)
	if err != nil {
		log.Errorw("failed to upload snapshot", "error", err)
		return domain.ExportBackupResponse{}, err
	}

	log.Infow("snapshot exported", "key", objectKey, "bytes", len(data))
	return domain.ExportBackupResponse{
		Key:        objectKey,
		URL:        s.s3.GetPublicLinkKey(objectKey),
		ExportedAt: snapshot.ExportedAt,
	}, nil
}

// DeleteBackup removes a snapshot by the link Export returned. Links outside
// the bucket or the backups folder are rejected.
func (s *backupService) DeleteBackup(ctx context.Context, req domain.DeleteBackupRequest) (domain.DeleteBackupResponse, error) {
	if s.s3 == nil {
		return domain.DeleteBackupResponse{}, domain.ErrBackupNotConfigured
	}

	objectKey := s.s3.GetObjectKeyFromLink(strings.TrimSpace(req.Link))
	if !strings.HasPrefix(objectKey, Folder+"/") || len(objectKey) == len(Folder)+1 {
		return domain.DeleteBackupResponse{}, domain.ErrInvalidBackupLink
	}

	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Errorw("failed to delete snapshot", "key", objectKey, "error", err)
		return domain.DeleteBackupResponse{}, err
	}

	log.Infow("snapshot deleted", "key", objectKey)
	return domain.DeleteBackupResponse{Key: objectKey}, nil
}

// snapshot reads all four aggregates under the write lock so the export is
// consistent.
func (s *backupService) snapshot(ctx context.Context) (Snapshot, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	inv, err := s.repositories.Pantries.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	list, err := s.repositories.Shopping.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	book, err := s.repositories.Diets.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	current, err := s.repositories.Settings.Load(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		ExportedAt: s.now().UTC(),
		Pantries:   []pantry.Pantry{},
		Settings:   current,
	}
	if inv != nil {
		snap.Pantries = append(snap.Pantries, inv.Pantries...)
		snap.ActivePantryID = inv.ActiveID
	}
	if list != nil {
		snap.ShoppingList = list.Entries
	}
	if book != nil {
		snap.Diets = book.Diets
		snap.ActiveDietID = book.ActiveID
	}
	return snap, nil
}
