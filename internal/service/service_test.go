package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/codevault/marketplace/internal/models"
	"github.com/codevault/marketplace/internal/repo"
	"github.com/codevault/marketplace/internal/transport"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	// every connection to :memory: is a separate database, keep one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Product{}, &models.User{}, &models.Purchase{}, &models.RefreshToken{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return &repo.GormRepo{DB: db}
}

func createTestUser(t *testing.T, r *repo.GormRepo, verified bool) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New(),
		Username:     "user_" + uuid.NewString()[:8],
		Email:        uuid.NewString()[:8] + "@example.com",
		PasswordHash: "x",
		IsVerified:   verified,
	}
	created, err := r.CreateUser(context.Background(), user)
	require.NoError(t, err)
	return created
}

func createTestProduct(t *testing.T, svc *CatalogService, authorID uuid.UUID, title, category, language string, price float64) *models.Product {
	t.Helper()

	prod, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Title:       title,
		Description: "desc for " + title,
		Price:       price,
		Language:    language,
		Category:    category,
		CodeContent: "// " + title,
	}, authorID)
	require.NoError(t, err)
	return prod
}
