package pantry

import (
	"Crenza-Backend/domain"
	"github.com/google/uuid"
	"slices"
	"strings"
	"time"
)

type (
	Item struct {
		ID        uuid.UUID  `json:"id"`
		Name      string     `json:"name"`
		Category  string     `json:"category"`
		Expiry    *time.Time `json:"expiry,omitempty"`
		Barcode   string     `json:"barcode,omitempty"`
		Quantity  int        `json:"quantity"`
		Price     float64    `json:"price"`
		CreatedAt time.Time  `json:"created_at"`
	}

	Pantry struct {
		ID    uuid.UUID `json:"id"`
		Name  string    `json:"name"`
		Items []Item    `json:"items"`
	}

	// Inventory is the pantry aggregate: never empty, and ActiveID always
	// resolves once Normalize has run.
	Inventory struct {
		Pantries []Pantry  `json:"pantries"`
		ActiveID uuid.UUID `json:"active_pantry_id"`
	}

	// ItemDraft is an unvalidated item as it arrives from a form or a transfer.
	ItemDraft struct {
		Name     string
		Category string
		Expiry   string
		Barcode  string
		Quantity *float64
		Price    *float64
	}

	Manager struct {
		Categories  Categories
		DefaultName string
		NewID       func() uuid.UUID
		Now         func() time.Time
	}
)

func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func NewManager(categories Categories, defaultName string) *Manager {
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	if strings.TrimSpace(defaultName) == "" {
		defaultName = "Dispensa Principale"
	}
	return &Manager{
		Categories:  categories,
		DefaultName: defaultName,
		NewID:       NewID,
		Now:         time.Now,
	}
}

func (m *Manager) NewInventory() *Inventory {
	p := Pantry{ID: m.NewID(), Name: m.DefaultName, Items: []Item{}}
	return &Inventory{Pantries: []Pantry{p}, ActiveID: p.ID}
}

// Normalize restores the aggregate invariants after loading from a store.
func (m *Manager) Normalize(inv *Inventory) *Inventory {
	if inv == nil || len(inv.Pantries) == 0 {
		return m.NewInventory()
	}
	for i := range inv.Pantries {
		if inv.Pantries[i].Items == nil {
			inv.Pantries[i].Items = []Item{}
		}
	}
	if inv.Find(inv.ActiveID) == nil {
		inv.ActiveID = inv.Pantries[0].ID
	}
	return inv
}

func (inv *Inventory) Find(id uuid.UUID) *Pantry {
	for i := range inv.Pantries {
		if inv.Pantries[i].ID == id {
			return &inv.Pantries[i]
		}
	}
	return nil
}

// Active falls back to the first pantry when ActiveID is stale.
func (inv *Inventory) Active() *Pantry {
	if p := inv.Find(inv.ActiveID); p != nil {
		return p
	}
	return &inv.Pantries[0]
}

func (m *Manager) CreatePantry(inv *Inventory, name string) (Pantry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Pantry{}, domain.ErrPantryNameEmpty
	}
	p := Pantry{ID: m.NewID(), Name: name, Items: []Item{}}
	inv.Pantries = append(inv.Pantries, p)
	return p, nil
}

func (inv *Inventory) RenamePantry(id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrPantryNameEmpty
	}
	if p := inv.Find(id); p != nil {
		p.Name = name
	}
	return nil
}

func (inv *Inventory) DeletePantry(id uuid.UUID) error {
	idx := slices.IndexFunc(inv.Pantries, func(p Pantry) bool { return p.ID == id })
	if idx < 0 {
		return nil
	}
	if len(inv.Pantries) == 1 {
		return domain.ErrLastPantry
	}
	inv.Pantries = slices.Delete(inv.Pantries, idx, idx+1)
	if inv.ActiveID == id {
		inv.ActiveID = inv.Pantries[0].ID
	}
	return nil
}

func (inv *Inventory) SelectPantry(id uuid.UUID) {
	if inv.Find(id) == nil {
		inv.ActiveID = inv.Pantries[0].ID
		return
	}
	inv.ActiveID = id
}

// BuildItem validates a draft and applies the defaults without touching any
// pantry, so callers can reject bad input before mutating state.
func (m *Manager) BuildItem(draft ItemDraft) (Item, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return Item{}, domain.ErrItemNameEmpty
	}

	category, err := m.Categories.Resolve(draft.Category)
	if err != nil {
		return Item{}, err
	}

	var expiry *time.Time
	if raw := strings.TrimSpace(draft.Expiry); raw != "" {
		t, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			return Item{}, domain.ErrInvalidExpiryDate
		}
		expiry = &t
	}

	return Item{
		ID:        m.NewID(),
		Name:      name,
		Category:  category,
		Expiry:    expiry,
		Barcode:   strings.TrimSpace(draft.Barcode),
		Quantity:  domain.CoerceQuantity(draft.Quantity),
		Price:     domain.CoercePrice(draft.Price),
		CreatedAt: m.Now(),
	}, nil
}

func (m *Manager) AddItem(inv *Inventory, pantryID uuid.UUID, draft ItemDraft) (Item, error) {
	p := inv.Find(pantryID)
	if p == nil {
		return Item{}, domain.ErrPantryNotFound
	}
	item, err := m.BuildItem(draft)
	if err != nil {
		return Item{}, err
	}
	p.Items = append(p.Items, item)
	return item, nil
}

func (inv *Inventory) RemoveItem(pantryID, itemID uuid.UUID) {
	p := inv.Find(pantryID)
	if p == nil {
		return
	}
	p.Items = slices.DeleteFunc(p.Items, func(it Item) bool { return it.ID == itemID })
}

func (inv *Inventory) ClearPantry(pantryID uuid.UUID) {
	if p := inv.Find(pantryID); p != nil {
		p.Items = []Item{}
	}
}

func (inv *Inventory) FindItem(pantryID, itemID uuid.UUID) (Item, bool) {
	p := inv.Find(pantryID)
	if p == nil {
		return Item{}, false
	}
	for _, it := range p.Items {
		if it.ID == itemID {
			return it, true
		}
	}
	return Item{}, false
}

var undated = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// SortForDisplay returns a copy ordered by expiry, undated items last. Equal
// dates keep storage order.
func SortForDisplay(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Item) int {
		return sortKey(a).Compare(sortKey(b))
	})
	return out
}

func sortKey(it Item) time.Time {
	if it.Expiry == nil {
		return undated
	}
	return *it.Expiry
}
