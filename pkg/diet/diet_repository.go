package diet

import (
	"Crenza-Backend/entities"
	"Crenza-Backend/internal/utils"
	"context"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DietRepository interface {
		Load(ctx context.Context) (*Book, error)
		Save(ctx context.Context, b *Book) error
	}

	dietRepository struct {
		db *gorm.DB
	}
)

func NewDietRepository(db *gorm.DB) DietRepository {
	return &dietRepository{db: db}
}

func (r *dietRepository) Load(ctx context.Context) (*Book, error) {
	var rows []*entities.Diet
	if err := r.db.WithContext(ctx).Preload("Cells").Order("position asc").Find(&rows).Error; err != nil {
		return nil, utils.PersistenceError("load diets", err)
	}

	b := &Book{Diets: make([]Diet, 0, len(rows))}
	for _, row := range rows {
		d := Diet{ID: row.ID, Name: row.Name, Plan: make(map[string]string, len(row.Cells))}
		for _, cell := range row.Cells {
			if _, _, ok := SplitCellKey(cell.Key); ok {
				d.Plan[cell.Key] = cell.Content
			}
		}
		b.Diets = append(b.Diets, d)
	}

	active, ok, err := utils.LoadPreference(ctx, r.db, entities.PreferenceActiveDiet)
	if err != nil {
		return nil, utils.PersistenceError("load active diet", err)
	}
	if ok {
		if id, err := uuid.Parse(active); err == nil {
			b.ActiveID = id
		}
	}
	return b, nil
}

func (r *dietRepository) Save(ctx context.Context, b *Book) error {
	diets := make([]*entities.Diet, 0, len(b.Diets))
	var cells []*entities.DietCell
	for i, d := range b.Diets {
		diets = append(diets, &entities.Diet{ID: d.ID, Name: d.Name, Position: i})
		for key, content := range d.Plan {
			cells = append(cells, &entities.DietCell{DietID: d.ID, Key: key, Content: content})
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.DietCell{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&entities.Diet{}).Error; err != nil {
			return err
		}
		if len(diets) > 0 {
			if err := tx.Create(&diets).Error; err != nil {
				return err
			}
		}
		if len(cells) > 0 {
			if err := tx.Create(&cells).Error; err != nil {
				return err
			}
		}
		return utils.SavePreference(tx, entities.PreferenceActiveDiet, b.ActiveID.String())
	})
	return utils.PersistenceError("save diets", err)
}
