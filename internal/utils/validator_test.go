package utils

import (
	"Crenza-Backend/domain"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestPlanCellTags(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(domain.SetPlanCellRequest{Day: "Lunedì", Meal: "Spuntino Mattutino", Text: ""}))

	err := Validate.Struct(domain.SetPlanCellRequest{Day: "Lunedi", Meal: "Merenda"})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := []string{verrs[0].Field(), verrs[1].Field()}
	assert.ElementsMatch(t, []string{"day", "meal"}, fields)
}

func TestTransferRequestTags(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(domain.TransferRequest{PantryID: "0195a1b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b"}))
	assert.Error(t, Validate.Struct(domain.TransferRequest{PantryID: "dispensa"}))
	assert.Error(t, Validate.Struct(domain.TransferRequest{
		PantryID: "0195a1b2-7c3d-7e4f-8a9b-0c1d2e3f4a5b",
		Expiry:   "12/03/2025",
	}))
}
