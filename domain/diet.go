package domain

import "fmt"

var (
	Days  = []string{"Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato", "Domenica"}
	Meals = []string{"Colazione", "Spuntino Mattutino", "Pranzo", "Spuntino Pomeridiano", "Cena"}

	MessageSuccessGetDiets    = "diets retrieved successfully"
	MessageSuccessCreateDiet  = "diet created successfully"
	MessageSuccessRenameDiet  = "diet renamed successfully"
	MessageSuccessDeleteDiet  = "diet deleted successfully"
	MessageSuccessSelectDiet  = "diet selected successfully"
	MessageSuccessSetPlanCell = "meal plan updated successfully"
	MessageSuccessClearPlan   = "meal plan cleared successfully"

	MessageFailedGetDiets    = "failed to retrieve diets"
	MessageFailedCreateDiet  = "failed to create diet"
	MessageFailedRenameDiet  = "failed to rename diet"
	MessageFailedDeleteDiet  = "failed to delete diet"
	MessageFailedSelectDiet  = "failed to select diet"
	MessageFailedSetPlanCell = "failed to update meal plan"
	MessageFailedClearPlan   = "failed to clear meal plan"

	ErrDietNameEmpty = fmt.Errorf("%w: diet name is required", ErrValidation)
	ErrInvalidDay    = fmt.Errorf("%w: unknown day of week", ErrValidation)
	ErrInvalidMeal   = fmt.Errorf("%w: unknown meal slot", ErrValidation)
	ErrLastDiet      = fmt.Errorf("%w: cannot delete the last diet", ErrInvariantViolation)
	ErrDietNotFound  = fmt.Errorf("%w: diet not found", ErrNotFound)
)

type (
	CreateDietRequest struct {
		Name string `json:"name" validate:"required"`
	}

	RenameDietRequest struct {
		Name string `json:"name" validate:"required"`
	}

	// Text may be empty: an empty cell is still a written cell.
	SetPlanCellRequest struct {
		Day  string `json:"day" validate:"required,weekday"`
		Meal string `json:"meal" validate:"required,mealslot"`
		Text string `json:"text" validate:"max=2000"`
	}

	DietResponse struct {
		ID   string            `json:"id"`
		Name string            `json:"name"`
		Plan map[string]string `json:"plan"`
	}

	DietsResponse struct {
		ActiveDietID string         `json:"active_diet_id"`
		Days         []string       `json:"days"`
		Meals        []string       `json:"meals"`
		Diets        []DietResponse `json:"diets"`
	}
)
