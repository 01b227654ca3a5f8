package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codevault/marketplace/internal/models"
)

// RecordPurchase runs the whole purchase commit as one unit of work:
// the ledger row and the downloads bump are visible together or not at
// all. A second purchase for the same (user, product) pair trips the
// unique index and comes back as gorm.ErrDuplicatedKey with nothing
// written.
func (r *GormRepo) RecordPurchase(ctx context.Context, purchase *models.Purchase) (*models.Purchase, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Product{}).
			Where("id = ?", purchase.ProductID).
			UpdateColumn("downloads", gorm.Expr("downloads + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

func (r *GormRepo) ListPurchasesByUser(ctx context.Context, userID uuid.UUID) ([]models.Purchase, error) {
	purchases := make([]models.Purchase, 0)
	if err := r.DB.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *GormRepo) CountPurchasesByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
