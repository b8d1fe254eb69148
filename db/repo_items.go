package db

import (
	"context"

	"Gin_postgres_redis_lost_found/models"
)

// Items

func (r *Repo) CreateItem(ctx context.Context, it *models.Item) error {
	return r.DB.WithContext(ctx).Create(it).Error
}

func (r *Repo) FindItemByID(ctx context.Context, id string) (*models.Item, error) {
	var it models.Item
	if err := r.DB.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// ListItems returns all items with their claims preloaded, newest first.
// Callers derive each item's status from the claims; it is not stored.
func (r *Repo) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	err := r.DB.WithContext(ctx).
		Preload("Claims").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// DeleteItem removes an item and, in the same transaction, every claim
// against it. The item owns its claims.
func (r *Repo) DeleteItem(ctx context.Context, id string) error {
	return r.WithTransaction(ctx, func(tx *Repo) error {
		var it models.Item
		if err := tx.DB.First(&it, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.DB.Where("item_id = ?", id).Delete(&models.Claim{}).Error; err != nil {
			return err
		}
		return tx.DB.Delete(&it).Error
	})
}
