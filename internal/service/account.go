package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codevault/marketplace/internal/models"
	"github.com/codevault/marketplace/internal/repo"
	"github.com/codevault/marketplace/internal/transport"
)

type AccountService struct {
	Repo *repo.GormRepo
}

func (s *AccountService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, *transport.ProfileStats, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, nil, err
	}

	products, err := s.Repo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	totalPurchases, err := s.Repo.CountPurchasesByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	stats := &transport.ProfileStats{
		TotalProducts:  int64(len(products)),
		TotalPurchases: totalPurchases,
	}
	for _, p := range products {
		stats.TotalEarnings += float64(p.Downloads) * p.Price
	}
	if len(products) > 0 {
		var sum float64
		for _, p := range products {
			sum += p.Rating
		}
		stats.AverageRating = sum / float64(len(products))
	}

	return user, stats, nil
}

func (s *AccountService) ProductsByAuthor(ctx context.Context, userID uuid.UUID) ([]models.Product, error) {
	return s.Repo.ListByAuthor(ctx, userID)
}
