package handlers

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/internal/api/presenters"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/transfer"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		GetInventory(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
		CreatePantry(c *fiber.Ctx) error
		RenamePantry(c *fiber.Ctx) error
		DeletePantry(c *fiber.Ctx) error
		SelectPantry(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		ClearPantry(c *fiber.Ctx) error
		RestockItem(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService   pantry.PantryService
		transferService transfer.TransferService
		validator       *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, transferService transfer.TransferService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService:   pantryService,
		transferService: transferService,
		validator:       validator,
	}
}

func (h *pantryHandler) GetInventory(c *fiber.Ctx) error {
	res, err := h.pantryService.GetInventory(c.UserContext())
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetInventory, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventory)
}

func (h *pantryHandler) GetStats(c *fiber.Ctx) error {
	res, err := h.pantryService.GetStats(c.UserContext())
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetStats, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStats)
}

func (h *pantryHandler) CreatePantry(c *fiber.Ctx) error {
	req := new(domain.CreatePantryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePantry, err)
	}

	res, err := h.pantryService.CreatePantry(c.UserContext(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedCreatePantry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePantry)
}

func (h *pantryHandler) RenamePantry(c *fiber.Ctx) error {
	req := new(domain.RenamePantryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenamePantry, err)
	}

	res, err := h.pantryService.RenamePantry(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRenamePantry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRenamePantry)
}

func (h *pantryHandler) DeletePantry(c *fiber.Ctx) error {
	res, err := h.pantryService.DeletePantry(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedDeletePantry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeletePantry)
}

func (h *pantryHandler) SelectPantry(c *fiber.Ctx) error {
	res, err := h.pantryService.SelectPantry(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSelectPantry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSelectPantry)
}

func (h *pantryHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddItem, err)
	}

	res, err := h.pantryService.AddItem(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedAddItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddItem)
}

func (h *pantryHandler) RemoveItem(c *fiber.Ctx) error {
	res, err := h.pantryService.RemoveItem(c.UserContext(), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRemoveItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveItem)
}

func (h *pantryHandler) ClearPantry(c *fiber.Ctx) error {
	res, err := h.pantryService.ClearPantry(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedClearPantry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearPantry)
}

func (h *pantryHandler) RestockItem(c *fiber.Ctx) error {
	res, err := h.transferService.RestockItem(c.UserContext(), c.Params("id"), c.Params("itemId"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRestockItem, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRestockItem)
}
