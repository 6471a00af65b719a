package handlers

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/internal/api/presenters"
	"Crenza-Backend/pkg/alert"
	"Crenza-Backend/pkg/backup"
	"Crenza-Backend/pkg/household"
	"Crenza-Backend/pkg/settings"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SettingsHandler interface {
		GetSettings(c *fiber.Ctx) error
		UpdateSettings(c *fiber.Ctx) error
		SendExpiryReport(c *fiber.Ctx) error
		ExportBackup(c *fiber.Ctx) error
		DeleteBackup(c *fiber.Ctx) error
		ResetHousehold(c *fiber.Ctx) error
	}

	settingsHandler struct {
		settingsService  settings.SettingsService
		alertService     alert.AlertService
		backupService    backup.BackupService
		householdService household.HouseholdService
		validator        *validator.Validate
	}
)

func NewSettingsHandler(
	settingsService settings.SettingsService,
	alertService alert.AlertService,
	backupService backup.BackupService,
	householdService household.HouseholdService,
	validator *validator.Validate,
) SettingsHandler {
	return &settingsHandler{
		settingsService:  settingsService,
		alertService:     alertService,
		backupService:    backupService,
		householdService: householdService,
		validator:        validator,
	}
}

func (h *settingsHandler) GetSettings(c *fiber.Ctx) error {
	res, err := h.settingsService.GetSettings(c.UserContext())
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetSettings, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSettings)
}

func (h *settingsHandler) UpdateSettings(c *fiber.Ctx) error {
	req := new(domain.UpdateSettingsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSettings, err)
	}

	res, err := h.settingsService.UpdateSettings(c.UserContext(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpdateSettings, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateSettings)
}

func (h *settingsHandler) SendExpiryReport(c *fiber.Ctx) error {
	req := new(domain.ExpiryReportRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendAlert, err)
	}

	res, err := h.alertService.SendExpiryReport(c.UserContext(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSendAlert, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendAlert)
}

func (h *settingsHandler) ExportBackup(c *fiber.Ctx) error {
	res, err := h.backupService.Export(c.UserContext())
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedExportBackup, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessExportBackup)
}

func (h *settingsHandler) DeleteBackup(c *fiber.Ctx) error {
	req := new(domain.DeleteBackupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteBackup, err)
	}

	res, err := h.backupService.DeleteBackup(c.UserContext(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedDeleteBackup, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteBackup)
}

func (h *settingsHandler) ResetHousehold(c *fiber.Ctx) error {
	res, err := h.householdService.ResetHousehold(c.UserContext())
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedResetHousehold, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResetHousehold)
}
