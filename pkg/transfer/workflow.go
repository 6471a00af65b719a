package transfer

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/pkg/pantry"
	"Crenza-Backend/pkg/shopping"
	"github.com/google/uuid"
	"strings"
)

// Workflow moves state between the shopping list and the pantries. It is the
// only place where one action changes two aggregates.
type Workflow struct {
	Pantries *pantry.Manager
	Shopping *shopping.Manager
}

func NewWorkflow(pantries *pantry.Manager, shopping *shopping.Manager) *Workflow {
	return &Workflow{Pantries: pantries, Shopping: shopping}
}

// Transfer turns a shopping entry into a pantry item. Blank draft fields fall
// back to the entry's name, quantity and price. When it fails neither
// aggregate has been touched; when it succeeds the entry is gone.
func (w *Workflow) Transfer(inv *pantry.Inventory, list *shopping.List, entryID, pantryID uuid.UUID, draft pantry.ItemDraft) (pantry.Item, error) {
	entry, ok := list.Find(entryID)
	if !ok {
		return pantry.Item{}, domain.ErrEntryNotFound
	}

	if strings.TrimSpace(draft.Name) == "" {
		draft.Name = entry.Name
	}
	if draft.Quantity == nil {
		q := float64(entry.Quantity)
		draft.Quantity = &q
	}
	if draft.Price == nil {
		p := entry.Price
		draft.Price = &p
	}

	item, err := w.Pantries.AddItem(inv, pantryID, draft)
	if err != nil {
		return pantry.Item{}, err
	}
	list.RemoveEntry(entryID)
	return item, nil
}

// Restock puts one unit of a pantry item back on the shopping list at the
// item's price. The pantry is not modified.
func (w *Workflow) Restock(inv *pantry.Inventory, list *shopping.List, pantryID, itemID uuid.UUID) (shopping.Entry, error) {
	item, ok := inv.FindItem(pantryID, itemID)
	if !ok {
		return shopping.Entry{}, domain.ErrItemNotFound
	}
	one := 1.0
	price := item.Price
	return w.Shopping.AddEntry(list, shopping.EntryDraft{Name: item.Name, Quantity: &one, Price: &price})
}
