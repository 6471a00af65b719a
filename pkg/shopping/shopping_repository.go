package shopping

import (
	"Crenza-Backend/entities"
	"Crenza-Backend/internal/utils"
	"context"
	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		Load(ctx context.Context) (*List, error)
		Save(ctx context.Context, list *List) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) Load(ctx context.Context) (*List, error) {
	var rows []*entities.ShoppingEntry
	if err := r.db.WithContext(ctx).Order("position asc").Find(&rows).Error; err != nil {
		return nil, utils.PersistenceError("load shopping list", err)
	}

	list := &List{Entries: make([]Entry, 0, len(rows))}
	for _, row := range rows {
		list.Entries = append(list.Entries, Entry{
			ID:        row.ID,
			Name:      row.Name,
			Quantity:  max(row.Quantity, 1),
			Price:     max(row.Price, 0),
			Completed: row.Completed,
			CreatedAt: row.InsertedAt,
		})
	}
	return list, nil
}

func (r *shoppingRepository) Save(ctx context.Context, list *List) error {
	rows := make([]*entities.ShoppingEntry, 0, len(list.Entries))
	for i, e := range list.Entries {
		rows = append(rows, &entities.ShoppingEntry{
			ID:         e.ID,
			Name:       e.Name,
			Quantity:   e.Quantity,
			Price:      e.Price,
			InsertedAt: e.CreatedAt,
			Completed:  e.Completed,
			Position:   i,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.ShoppingEntry{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	return utils.PersistenceError("save shopping list", err)
}
