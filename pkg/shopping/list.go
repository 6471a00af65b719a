package shopping

import (
	"Crenza-Backend/domain"
	"github.com/google/uuid"
	"slices"
	"strings"
	"time"
)

type (
	Entry struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		Quantity  int       `json:"qty"`
		Price     float64   `json:"price"`
		Completed bool      `json:"completed"`
		CreatedAt time.Time `json:"created_at"`
	}

	List struct {
		Entries []Entry `json:"entries"`
	}

	// EntryDraft leaves Quantity or Price nil when the caller sent nothing
	// usable; AddEntry applies the defaults.
	EntryDraft struct {
		Name     string
		Quantity *float64
		Price    *float64
	}

	Manager struct {
		NewID func() uuid.UUID
		Now   func() time.Time
	}
)

func NewManager() *Manager {
	return &Manager{
		NewID: func() uuid.UUID { return uuid.Must(uuid.NewV7()) },
		Now:   time.Now,
	}
}

func (m *Manager) AddEntry(list *List, draft EntryDraft) (Entry, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return Entry{}, domain.ErrEntryNameEmpty
	}
	e := Entry{
		ID:        m.NewID(),
		Name:      name,
		Quantity:  domain.CoerceQuantity(draft.Quantity),
		Price:     domain.CoercePrice(draft.Price),
		CreatedAt: m.Now(),
	}
	list.Entries = append(list.Entries, e)
	return e, nil
}

func (l *List) Find(id uuid.UUID) (Entry, bool) {
	idx := l.index(id)
	if idx < 0 {
		return Entry{}, false
	}
	return l.Entries[idx], true
}

func (l *List) RemoveEntry(id uuid.UUID) {
	l.Entries = slices.DeleteFunc(l.Entries, func(e Entry) bool { return e.ID == id })
}

func (l *List) ToggleEntry(id uuid.UUID) {
	if idx := l.index(id); idx >= 0 {
		l.Entries[idx].Completed = !l.Entries[idx].Completed
	}
}

func (l *List) Clear() {
	l.Entries = []Entry{}
}

// Total is not rounded; use domain.RoundCents for display.
func (l *List) Total() float64 {
	var total float64
	for _, e := range l.Entries {
		total += e.Subtotal()
	}
	return total
}

func (e Entry) Subtotal() float64 {
	return float64(e.Quantity) * e.Price
}

func (l *List) index(id uuid.UUID) int {
	return slices.IndexFunc(l.Entries, func(e Entry) bool { return e.ID == id })
}
