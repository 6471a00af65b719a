package handlers

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/internal/api/presenters"
	"Crenza-Backend/pkg/diet"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DietHandler interface {
		GetDiets(c *fiber.Ctx) error
		CreateDiet(c *fiber.Ctx) error
		RenameDiet(c *fiber.Ctx) error
		DeleteDiet(c *fiber.Ctx) error
		SelectDiet(c *fiber.Ctx) error
		SetPlanCell(c *fiber.Ctx) error
		ClearPlan(c *fiber.Ctx) error
	}

	dietHandler struct {
		dietService diet.DietService
		validator   *validator.Validate
	}
)

func NewDietHandler(dietService diet.DietService, validator *validator.Validate) DietHandler {
	return &dietHandler{
		dietService: dietService,
		validator:   validator,
	}
}

func (h *dietHandler) GetDiets(c *fiber.Ctx) error {
	res, err := h.dietService.GetDiets(c.UserContext())
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetDiets, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDiets)
}

func (h *dietHandler) CreateDiet(c *fiber.Ctx) error {
	req := new(domain.CreateDietRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDiet, err)
	}

	res, err := h.dietService.CreateDiet(c.UserContext(), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedCreateDiet, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDiet)
}

func (h *dietHandler) RenameDiet(c *fiber.Ctx) error {
	req := new(domain.RenameDietRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRenameDiet, err)
	}

	res, err := h.dietService.RenameDiet(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedRenameDiet, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRenameDiet)
}

func (h *dietHandler) DeleteDiet(c *fiber.Ctx) error {
	res, err := h.dietService.DeleteDiet(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedDeleteDiet, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteDiet)
}

func (h *dietHandler) SelectDiet(c *fiber.Ctx) error {
	res, err := h.dietService.SelectDiet(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSelectDiet, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSelectDiet)
}

func (h *dietHandler) SetPlanCell(c *fiber.Ctx) error {
	req := new(domain.SetPlanCellRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetPlanCell, err)
	}

	res, err := h.dietService.SetPlanCell(c.UserContext(), c.Params("id"), *req)
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedSetPlanCell, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetPlanCell)
}

func (h *dietHandler) ClearPlan(c *fiber.Ctx) error {
	res, err := h.dietService.ClearPlan(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedClearPlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearPlan)
}
