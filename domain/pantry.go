package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetInventory = "inventory retrieved successfully"
	MessageSuccessGetStats     = "inventory statistics retrieved successfully"
	MessageSuccessCreatePantry = "pantry created successfully"
	MessageSuccessRenamePantry = "pantry renamed successfully"
	MessageSuccessDeletePantry = "pantry deleted successfully"
	MessageSuccessSelectPantry = "pantry selected successfully"
	MessageSuccessAddItem      = "item added successfully"
	MessageSuccessRemoveItem   = "item removed successfully"
	MessageSuccessClearPantry  = "pantry cleared successfully"
	MessageSuccessRestockItem  = "item copied to the shopping list"

	MessageFailedGetInventory = "failed to retrieve inventory"
	MessageFailedGetStats     = "failed to retrieve inventory statistics"
	MessageFailedCreatePantry = "failed to create pantry"
	MessageFailedRenamePantry = "failed to rename pantry"
	MessageFailedDeletePantry = "failed to delete pantry"
	MessageFailedSelectPantry = "failed to select pantry"
	MessageFailedAddItem      = "failed to add item"
	MessageFailedRemoveItem   = "failed to remove item"
	MessageFailedClearPantry  = "failed to clear pantry"
	MessageFailedRestockItem  = "failed to copy item to the shopping list"

	ErrPantryNameEmpty   = fmt.Errorf("%w: pantry name is required", ErrValidation)
	ErrItemNameEmpty     = fmt.Errorf("%w: item name is required", ErrValidation)
	ErrInvalidCategory   = fmt.Errorf("%w: unknown category", ErrValidation)
	ErrInvalidExpiryDate = fmt.Errorf("%w: invalid expiry date", ErrValidation)
	ErrLastPantry        = fmt.Errorf("%w: cannot delete the last pantry", ErrInvariantViolation)
	ErrPantryNotFound    = fmt.Errorf("%w: pantry not found", ErrNotFound)
	ErrItemNotFound      = fmt.Errorf("%w: item not found", ErrNotFound)
)

type (
	CreatePantryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	RenamePantryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	AddItemRequest struct {
		Name     string      `json:"name" validate:"required"`
		Category string      `json:"category" validate:"omitempty"`
		Expiry   string      `json:"expiry" validate:"omitempty,datetime=2006-01-02"`
		Barcode  string      `json:"barcode" validate:"omitempty,max=128"`
		Quantity LooseNumber `json:"quantity"`
		Price    LooseNumber `json:"price"`
	}

	ItemResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Category  string    `json:"category"`
		Expiry    string    `json:"expiry,omitempty"`
		Barcode   string    `json:"barcode,omitempty"`
		Quantity  int       `json:"quantity"`
		Price     float64   `json:"price"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}

	PantryResponse struct {
		ID    string         `json:"id"`
		Name  string         `json:"name"`
		Items []ItemResponse `json:"items"`
	}

	InventoryResponse struct {
		ActivePantryID string           `json:"active_pantry_id"`
		AlertDays      int              `json:"alert_days"`
		Pantries       []PantryResponse `json:"pantries"`
	}

	InventoryStatsResponse struct {
		TotalItems    int     `json:"total_items"`
		TotalQuantity int     `json:"total_quantity"`
		TotalValue    float64 `json:"total_value"`
		OkItems       int     `json:"ok_items"`
		NearItems     int     `json:"near_items"`
		ExpiredItems  int     `json:"expired_items"`
		UndatedItems  int     `json:"undated_items"`
	}
)
