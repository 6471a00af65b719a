package handlers

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/internal/api/presenters"
	"Crenza-Backend/pkg/shopping"
	"Crenza-Backend/pkg/transfer"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		AddEntry(c *fiber.Ctx) error
		RemoveEntry(c *fiber.Ctx) error
		ToggleEntry(c *fiber.Ctx) error
		ClearShoppingList(c *fiber.Ctx) error
		TransferEntry(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		transferService transfer.TransferService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, transferService transfer.TransferService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		transferService: transferService,
		validator:       validator,
	}
}

func (h *shoppingHandler) GetShoppingList(c *fiber.Ctx) error {
	res, err := h.shoppingService.GetShoppingList(c.UserContext())
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetShoppingList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingHandler) AddEntry(c *fiber.Ctx) error {
	req := new(domain.AddEntryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddEntry, err)
	}

	res, err := h.shoppingService.AddEntry(c.UserContext(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedAddEntry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddEntry)
}

func (h *shoppingHandler) RemoveEntry(c *fiber.Ctx) error {
	res, err := h.shoppingService.RemoveEntry(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRemoveEntry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveEntry)
}

func (h *shoppingHandler) ToggleEntry(c *fiber.Ctx) error {
	res, err := h.shoppingService.ToggleEntry(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedToggleEntry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleEntry)
}

func (h *shoppingHandler) ClearShoppingList(c *fiber.Ctx) error {
	res, err := h.shoppingService.ClearShoppingList(c.UserContext())
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedClearShoppingList, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearShoppingList)
}

func (h *shoppingHandler) TransferEntry(c *fiber.Ctx) error {
	req := new(domain.TransferRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTransferEntry, err)
	}

	res, err := h.transferService.TransferEntry(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedTransferEntry, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessTransferEntry)
}
