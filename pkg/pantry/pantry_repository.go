package pantry

import (
	"Crenza-Backend/domain"
	"Crenza-Backend/entities"
	"Crenza-Backend/internal/utils"
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

const (
	codeMissing   = "N/A"
	expiryMissing = "N/D"
)

type (
	// PantryRepository is the Store for the pantry aggregate. Load returns an
	// empty Inventory when nothing has been saved yet.
	PantryRepository interface {
		Load(ctx context.Context) (*Inventory, error)
		Save(ctx context.Context, inv *Inventory) error
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) Load(ctx context.Context) (*Inventory, error) {
	var rows []*entities.Pantry
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("position asc").
		Find(&rows).Error
	if err != nil {
		return nil, utils.PersistenceError("load pantries", err)
	}

	inv := &Inventory{Pantries: make([]Pantry, 0, len(rows))}
	for _, row := range rows {
		p := Pantry{ID: row.ID, Name: row.Name, Items: make([]Item, 0, len(row.Items))}
		for _, it := range row.Items {
			p.Items = append(p.Items, itemFromRow(it))
		}
		inv.Pantries = append(inv.Pantries, p)
	}

	active, ok, err := utils.LoadPreference(ctx, r.db, entities.PreferenceActivePantry)
	if err != nil {
		return nil, utils.PersistenceError("load active pantry", err)
	}
	if ok {
		if id, err := uuid.Parse(active); err == nil {
			inv.ActiveID = id
		}
	}

	return inv, nil
}

// Save replaces the stored aggregate in one transaction. Concurrent writers
// are last-write-wins.
func (r *pantryRepository) Save(ctx context.Context, inv *Inventory) error {
	pantries := make([]*entities.Pantry, 0, len(inv.Pantries))
	var items []*entities.PantryItem
	for i, p := range inv.Pantries {
		pantries = append(pantries, &entities.Pantry{ID: p.ID, Name: p.Name, Position: i})
		for j, it := range p.Items {
			items = append(items, itemToRow(p.ID, j, it))
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.PantryItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&entities.Pantry{}).Error; err != nil {
			return err
		}
		if len(pantries) > 0 {
			if err := tx.Create(&pantries).Error; err != nil {
				return err
			}
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return utils.SavePreference(tx, entities.PreferenceActivePantry, inv.ActiveID.String())
	})
	return utils.PersistenceError("save pantries", err)
}

func itemToRow(pantryID uuid.UUID, position int, it Item) *entities.PantryItem {
	row := &entities.PantryItem{
		ID:         it.ID,
		PantryID:   pantryID,
		Code:       it.Barcode,
		Name:       it.Name,
		Category:   it.Category,
		Quantity:   it.Quantity,
		Price:      it.Price,
		Expiry:     expiryMissing,
		InsertedAt: it.CreatedAt,
		Position:   position,
	}
	if row.Code == "" {
		row.Code = codeMissing
	}
	if row.Category == "" {
		row.Category = DefaultCategory
	}
	if it.Expiry != nil {
		row.Expiry = it.Expiry.Format(domain.DateLayout)
	}
	return row
}

func itemFromRow(row *entities.PantryItem) Item {
	it := Item{
		ID:        row.ID,
		Name:      row.Name,
		Category:  row.Category,
		Barcode:   row.Code,
		Quantity:  row.Quantity,
		Price:     row.Price,
		CreatedAt: row.InsertedAt,
	}
	if it.Barcode == codeMissing {
		it.Barcode = ""
	}
	if it.Category == "" {
		it.Category = DefaultCategory
	}
	if it.Quantity < 1 {
		it.Quantity = 1
	}
	if t, err := time.Parse(domain.DateLayout, row.Expiry); err == nil {
		it.Expiry = &t
	}
	return it
}
