package lookup

import (
	"RecipeSite/entities"
	"context"

	"gorm.io/gorm"
)

type (
	LookupRepository interface {
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetRegions(ctx context.Context) ([]*entities.Region, error)
	}

	lookupRepository struct {
		db *gorm.DB
	}
)

func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *lookupRepository) GetRegions(ctx context.Context) ([]*entities.Region, error) {
	var regions []*entities.Region
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&regions).Error; err != nil {
		return nil, err
	}
	return regions, nil
}
