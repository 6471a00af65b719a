package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetShoppingList   = "shopping list retrieved successfully"
	MessageSuccessAddEntry          = "entry added to the shopping list"
	MessageSuccessRemoveEntry       = "entry removed from the shopping list"
	MessageSuccessToggleEntry       = "entry updated successfully"
	MessageSuccessClearShoppingList = "shopping list cleared successfully"
	MessageSuccessTransferEntry     = "entry moved to the pantry"

	MessageFailedGetShoppingList   = "failed to retrieve shopping list"
	MessageFailedAddEntry          = "failed to add entry to the shopping list"
	MessageFailedRemoveEntry       = "failed to remove entry from the shopping list"
	MessageFailedToggleEntry       = "failed to update entry"
	MessageFailedClearShoppingList = "failed to clear shopping list"
	MessageFailedTransferEntry     = "failed to move entry to the pantry"

	ErrEntryNameEmpty = fmt.Errorf("%w: entry name is required", ErrValidation)
	ErrEntryNotFound  = fmt.Errorf("%w: shopping entry not found", ErrNotFound)
)

type (
	AddEntryRequest struct {
		Name     string      `json:"name" validate:"required"`
		Quantity LooseNumber `json:"quantity"`
		Price    LooseNumber `json:"price"`
	}

	// TransferRequest carries the fields captured when a purchased entry is
	// put away. Name, quantity and price fall back to the entry's own values.
	TransferRequest struct {
		PantryID string      `json:"pantry_id" validate:"required,uuid"`
		Name     string      `json:"name" validate:"omitempty"`
		Category string      `json:"category" validate:"omitempty"`
		Expiry   string      `json:"expiry" validate:"omitempty,datetime=2006-01-02"`
		Barcode  string      `json:"barcode" validate:"omitempty,max=128"`
		Quantity LooseNumber `json:"quantity"`
		Price    LooseNumber `json:"price"`
	}

	EntryResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Quantity  int       `json:"quantity"`
		Price     float64   `json:"price"`
		Subtotal  float64   `json:"subtotal"`
		Completed bool      `json:"completed"`
		CreatedAt time.Time `json:"created_at"`
	}

	ShoppingListResponse struct {
		Entries []EntryResponse `json:"entries"`
		Total   float64         `json:"total"`
	}

	TransferResponse struct {
		Item         ItemResponse         `json:"item"`
		Inventory    InventoryResponse    `json:"inventory"`
		ShoppingList ShoppingListResponse `json:"shopping_list"`
	}

	RestockResponse struct {
		Entry        EntryResponse        `json:"entry"`
		ShoppingList ShoppingListResponse `json:"shopping_list"`
	}
)
