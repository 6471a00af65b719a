package diet

import (
	"Crenza-Backend/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewBookUsesDefaultNames(t *testing.T) {
	b := NewManager(nil).NewBook()

	require.Len(t, b.Diets, 2)
	assert.Equal(t, "La mia Dieta", b.Diets[0].Name)
	assert.Equal(t, "Dieta figlio", b.Diets[1].Name)
	assert.Equal(t, b.Diets[0].ID, b.ActiveID)
	assert.NotEqual(t, b.Diets[0].ID, b.Diets[1].ID)
}

func TestPlanCellRoundTrip(t *testing.T) {
	b := NewManager(nil).NewBook()
	id := b.Diets[0].ID

	require.NoError(t, b.SetPlanCell(id, "Lunedì", "Pranzo", "Pasta"))

	text, ok := b.Cell(id, "Lunedì", "Pranzo")
	assert.True(t, ok)
	assert.Equal(t, "Pasta", text)

	text, ok = b.Cell(id, "Martedì", "Cena")
	assert.False(t, ok)
	assert.Empty(t, text)

	text, ok = b.Cell(uuid.New(), "Lunedì", "Pranzo")
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestEmptyTextKeepsTheKey(t *testing.T) {
	b := NewManager(nil).NewBook()
	id := b.Diets[0].ID
	require.NoError(t, b.SetPlanCell(id, "Sabato", "Cena", "Pizza"))

	require.NoError(t, b.SetPlanCell(id, "Sabato", "Cena", ""))

	text, ok := b.Cell(id, "Sabato", "Cena")
	assert.True(t, ok)
	assert.Empty(t, text)
	assert.Contains(t, b.Diets[0].Plan, "Sabato|Cena")
}

func TestSetPlanCellValidation(t *testing.T) {
	b := NewManager(nil).NewBook()
	id := b.Diets[0].ID

	assert.ErrorIs(t, b.SetPlanCell(id, "Monday", "Pranzo", "x"), domain.ErrInvalidDay)
	assert.ErrorIs(t, b.SetPlanCell(id, "Lunedì", "Merenda", "x"), domain.ErrInvalidMeal)
	assert.ErrorIs(t, b.SetPlanCell(uuid.New(), "Lunedì", "Pranzo", "x"), domain.ErrNotFound)
	assert.Empty(t, b.Diets[0].Plan)
}

func TestDeleteLastDietFails(t *testing.T) {
	m := NewManager([]string{"Unica"})
	b := m.NewBook()
	only := b.Diets[0]

	err := b.DeleteDiet(only.ID)

	require.ErrorIs(t, err, domain.ErrInvariantViolation)
	require.Len(t, b.Diets, 1)
	assert.Equal(t, only.ID, b.Diets[0].ID)
	assert.Equal(t, only.ID, b.ActiveID)
}

func TestDeleteActiveDietFallsBackToFirst(t *testing.T) {
	m := NewManager(nil)
	b := m.NewBook()
	third, err := m.CreateDiet(b, "Dieta estiva")
	require.NoError(t, err)
	b.SelectDiet(third.ID)
	require.Equal(t, third.ID, b.ActiveID)

	require.NoError(t, b.DeleteDiet(third.ID))

	assert.Equal(t, b.Diets[0].ID, b.ActiveID)
	assert.Len(t, b.Diets, 2)
}

func TestRenameDiet(t *testing.T) {
	b := NewManager(nil).NewBook()
	id := b.Diets[1].ID

	require.ErrorIs(t, b.RenameDiet(id, "  "), domain.ErrValidation)
	assert.Equal(t, "Dieta figlio", b.Diets[1].Name)

	require.NoError(t, b.RenameDiet(id, " Dieta Marco "))
	assert.Equal(t, "Dieta Marco", b.Diets[1].Name)

	require.NoError(t, b.RenameDiet(uuid.New(), "Ignorata"))
}

func TestSelectUnknownDietFallsBackToFirst(t *testing.T) {
	b := NewManager(nil).NewBook()
	b.SelectDiet(b.Diets[1].ID)

	b.SelectDiet(uuid.New())

	assert.Equal(t, b.Diets[0].ID, b.ActiveID)
}

func TestNormalizeRepairsLoadedBook(t *testing.T) {
	m := NewManager(nil)
	assert.Len(t, m.Normalize(nil).Diets, 2)

	loaded := &Book{Diets: []Diet{{ID: uuid.New(), Name: "Vecchia"}}, ActiveID: uuid.New()}
	got := m.Normalize(loaded)
	assert.Equal(t, got.Diets[0].ID, got.ActiveID)
	assert.NotNil(t, got.Diets[0].Plan)
}

func TestClearPlanAndKeys(t *testing.T) {
	b := NewManager(nil).NewBook()
	id := b.Diets[0].ID
	require.NoError(t, b.SetPlanCell(id, "Domenica", "Colazione", "Cornetto"))

	b.ClearPlan(id)
	assert.Empty(t, b.Diets[0].Plan)

	day, meal, ok := SplitCellKey("Giovedì|Spuntino Pomeridiano")
	assert.True(t, ok)
	assert.Equal(t, "Giovedì", day)
	assert.Equal(t, "Spuntino Pomeridiano", meal)

	_, _, ok = SplitCellKey("Giovedì-Cena")
	assert.False(t, ok)
}
