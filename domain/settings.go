package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetSettings    = "settings retrieved successfully"
	MessageSuccessUpdateSettings = "settings updated successfully"
	MessageSuccessSendAlert      = "expiry report processed successfully"
	MessageSuccessExportBackup   = "snapshot exported successfully"
	MessageSuccessDeleteBackup   = "snapshot deleted successfully"
	MessageSuccessResetHousehold = "household data reset successfully"

	MessageFailedGetSettings    = "failed to retrieve settings"
	MessageFailedUpdateSettings = "failed to update settings"
	MessageFailedSendAlert      = "failed to send expiry report"
	MessageFailedExportBackup   = "failed to export snapshot"
	MessageFailedDeleteBackup   = "failed to delete snapshot"
	MessageFailedResetHousehold = "failed to reset household data"

	ErrInvalidAlertDays    = fmt.Errorf("%w: alert days must be a non-negative integer", ErrValidation)
	ErrMailNotConfigured   = fmt.Errorf("%w: SMTP is not configured", ErrUnavailable)
	ErrBackupNotConfigured = fmt.Errorf("%w: S3 bucket is not configured", ErrUnavailable)
	ErrInvalidBackupLink   = fmt.Errorf("%w: link does not point to a snapshot", ErrValidation)
)

type (
	UpdateSettingsRequest struct {
		AlertDays *int `json:"alert_days" validate:"required,min=0"`
	}

	SettingsResponse struct {
		AlertDays  int      `json:"alert_days"`
		Categories []string `json:"categories"`
		Days       []string `json:"days"`
		Meals      []string `json:"meals"`
	}

	ExpiryReportRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ExpiryReportLine struct {
		Pantry string `json:"pantry"`
		Name   string `json:"name"`
		Expiry string `json:"expiry"`
		Status string `json:"status"`
	}

	ExpiryReportResponse struct {
		Sent  bool               `json:"sent"`
		Lines []ExpiryReportLine `json:"lines"`
	}

	ExportBackupResponse struct {
		Key        string    `json:"key"`
		URL        string    `json:"url"`
		ExportedAt time.Time `json:"exported_at"`
	}

	DeleteBackupRequest struct {
		Link string `json:"link" validate:"required,url"`
	}

	DeleteBackupResponse struct {
		Key string `json:"key"`
	}

	ResetHouseholdResponse struct {
		Inventory    InventoryResponse    `json:"inventory"`
		ShoppingList ShoppingListResponse `json:"shopping_list"`
		Diets        DietsResponse        `json:"diets"`
		Settings     SettingsResponse     `json:"settings"`
	}
)
