package presenters

import (
	"Crenza-Backend/domain"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, fiber.StatusOK},
		{domain.ErrPantryNameEmpty, fiber.StatusBadRequest},
		{domain.ErrParseUUID, fiber.StatusBadRequest},
		{domain.ErrDietNotFound, fiber.StatusNotFound},
		{domain.ErrLastPantry, fiber.StatusConflict},
		{fmt.Errorf("%w: save diets: locked", domain.ErrPersistence), fiber.StatusServiceUnavailable},
		{domain.ErrMailNotConfigured, fiber.StatusServiceUnavailable},
		{domain.ErrBackupNotConfigured, fiber.StatusServiceUnavailable},
		{errors.New("unexpected"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFromError(tc.err), "%v", tc.err)
	}
}
