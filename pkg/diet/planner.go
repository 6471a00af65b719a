package diet

import (
	"Crenza-Backend/domain"
	"github.com/google/uuid"
	"slices"
	"strings"
)

var (
	Days  = domain.Days
	Meals = domain.Meals

	DefaultNames = []string{"La mia Dieta", "Dieta figlio"}
)

const keySeparator = "|"

type (
	// Diet.Plan is sparse: a key exists only once its cell has been written,
	// even if the text written was empty.
	Diet struct {
		ID   uuid.UUID         `json:"id"`
		Name string            `json:"name"`
		Plan map[string]string `json:"plan"`
	}

	Book struct {
		Diets    []Diet    `json:"diets"`
		ActiveID uuid.UUID `json:"active_diet_id"`
	}

	Manager struct {
		DefaultNames []string
		NewID        func() uuid.UUID
	}
)

func NewManager(defaultNames []string) *Manager {
	names := make([]string, 0, len(defaultNames))
	for _, n := range defaultNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		names = DefaultNames
	}
	return &Manager{
		DefaultNames: names,
		NewID:        func() uuid.UUID { return uuid.Must(uuid.NewV7()) },
	}
}

func IsDay(day string) bool {
	return slices.Contains(Days, day)
}

func IsMeal(meal string) bool {
	return slices.Contains(Meals, meal)
}

func CellKey(day, meal string) string {
	return day + keySeparator + meal
}

// SplitCellKey reports ok=false for keys that do not name a known day and meal.
func SplitCellKey(key string) (day, meal string, ok bool) {
	day, meal, found := strings.Cut(key, keySeparator)
	if !found || !IsDay(day) || !IsMeal(meal) {
		return "", "", false
	}
	return day, meal, true
}

func (m *Manager) NewBook() *Book {
	b := &Book{Diets: make([]Diet, 0, len(m.DefaultNames))}
	for _, name := range m.DefaultNames {
		b.Diets = append(b.Diets, Diet{ID: m.NewID(), Name: name, Plan: map[string]string{}})
	}
	b.ActiveID = b.Diets[0].ID
	return b
}

// Normalize restores the never-empty and active-resolves invariants after a load.
func (m *Manager) Normalize(b *Book) *Book {
	if b == nil || len(b.Diets) == 0 {
		return m.NewBook()
	}
	for i := range b.Diets {
		if b.Diets[i].Plan == nil {
			b.Diets[i].Plan = map[string]string{}
		}
	}
	if b.Find(b.ActiveID) == nil {
		b.ActiveID = b.Diets[0].ID
	}
	return b
}

func (b *Book) Find(id uuid.UUID) *Diet {
	for i := range b.Diets {
		if b.Diets[i].ID == id {
			return &b.Diets[i]
		}
	}
	return nil
}

func (b *Book) Active() *Diet {
	if d := b.Find(b.ActiveID); d != nil {
		return d
	}
	return &b.Diets[0]
}

func (m *Manager) CreateDiet(b *Book, name string) (Diet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Diet{}, domain.ErrDietNameEmpty
	}
	d := Diet{ID: m.NewID(), Name: name, Plan: map[string]string{}}
	b.Diets = append(b.Diets, d)
	return d, nil
}

func (b *Book) RenameDiet(id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrDietNameEmpty
	}
	if d := b.Find(id); d != nil {
		d.Name = name
	}
	return nil
}

func (b *Book) DeleteDiet(id uuid.UUID) error {
	idx := slices.IndexFunc(b.Diets, func(d Diet) bool { return d.ID == id })
	if idx < 0 {
		return nil
	}
	if len(b.Diets) == 1 {
		return domain.ErrLastDiet
	}
	b.Diets = slices.Delete(b.Diets, idx, idx+1)
	if b.ActiveID == id {
		b.ActiveID = b.Diets[0].ID
	}
	return nil
}

func (b *Book) SelectDiet(id uuid.UUID) {
	if b.Find(id) == nil {
		b.ActiveID = b.Diets[0].ID
		return
	}
	b.ActiveID = id
}

func (b *Book) SetPlanCell(id uuid.UUID, day, meal, text string) error {
	if !IsDay(day) {
		return domain.ErrInvalidDay
	}
	if !IsMeal(meal) {
		return domain.ErrInvalidMeal
	}
	d := b.Find(id)
	if d == nil {
		return domain.ErrDietNotFound
	}
	if d.Plan == nil {
		d.Plan = map[string]string{}
	}
	d.Plan[CellKey(day, meal)] = text
	return nil
}

// Cell never fails: unknown diets and unset cells read as "" and false.
func (b *Book) Cell(id uuid.UUID, day, meal string) (string, bool) {
	d := b.Find(id)
	if d == nil {
		return "", false
	}
	text, ok := d.Plan[CellKey(day, meal)]
	return text, ok
}

func (b *Book) ClearPlan(id uuid.UUID) {
	if d := b.Find(id); d != nil {
		d.Plan = map[string]string{}
	}
}
