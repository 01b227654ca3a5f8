package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codevault/marketplace/internal/models"
	"github.com/codevault/marketplace/internal/repo"
)

type PurchaseService struct {
	Repo *repo.GormRepo
}

// Purchase validates the request and commits the ledger row together
// with the product's downloads bump in one store transaction. The
// amount charged is always the product's current price; a non-nil
// claimedAmount that disagrees with it is rejected before anything is
// written. Duplicate attempts for the same (user, product) pair lose
// on the ledger's unique index, so a retry after a transient failure
// is always safe.
func (s *PurchaseService) Purchase(ctx context.Context, userID, productID uuid.UUID, claimedAmount *float64) (*models.Purchase, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, err
	}
	if !user.IsVerified {
		return nil, fmt.Errorf("%w: user %s is not verified", ErrNotFound, userID)
	}

	product, err := s.Repo.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, err
	}

	amount := product.Price
	if claimedAmount != nil && *claimedAmount != amount {
		return nil, fmt.Errorf("%w: claimed %.2f, current price %.2f", ErrPriceMismatch, *claimedAmount, amount)
	}

	purchase := &models.Purchase{
		ID:           uuid.New(),
		UserID:       userID,
		ProductID:    productID,
		PurchaseDate: time.Now().UTC(),
		Amount:       amount,
	}

	created, err := s.Repo.RecordPurchase(ctx, purchase)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: product %s", ErrAlreadyPurchased, productID)
		}
		return nil, err
	}
	return created, nil
}

func (s *PurchaseService) PurchasesByUser(ctx context.Context, userID uuid.UUID) ([]models.Purchase, error) {
	return s.Repo.ListPurchasesByUser(ctx, userID)
}
