package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codevault/marketplace/internal/models"
	"github.com/codevault/marketplace/internal/repo"
	"github.com/codevault/marketplace/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest, authorID uuid.UUID) (*models.Product, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	language := strings.TrimSpace(req.Language)
	category := strings.TrimSpace(req.Category)

	if title == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description required", ErrValidation)
	}
	if language == "" {
		return nil, fmt.Errorf("%w: language required", ErrValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: category required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	if _, err := s.Repo.GetUser(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: author does not exist", ErrValidation)
		}
		return nil, err
	}

	prod := &models.Product{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Price:       req.Price,
		Language:    language,
		Category:    category,
		AuthorID:    authorID,
		CodeContent: req.CodeContent,
		Rating:      0,
		Downloads:   0,
	}

	created, err := s.Repo.CreateProduct(ctx, prod)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: product id collision", ErrConflict)
		}
		return nil, err
	}
	return created, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	prod, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}
	return prod, nil
}

func (s *CatalogService) GetProducts(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	return s.Repo.GetProducts(ctx, offset, limit)
}

func (s *CatalogService) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.Repo.ListByCategory(ctx, strings.TrimSpace(category))
}

// Search returns the whole catalog for an empty or whitespace-only term.
func (s *CatalogService) Search(ctx context.Context, term string) ([]models.Product, error) {
	return s.Repo.SearchProducts(ctx, strings.TrimSpace(term))
}
