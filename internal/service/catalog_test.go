package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevault/marketplace/internal/transport"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	prod, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Title:       "Parser Combinator",
		Description: "A parser combinator library",
		Price:       9.99,
		Language:    "Rust",
		Category:    "Backend",
		CodeContent: "fn parse() {}",
	}, author.ID)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, prod.ID)
	assert.Equal(t, "Parser Combinator", prod.Title)
	assert.Equal(t, author.ID, prod.AuthorID)
	assert.Equal(t, 0, prod.Downloads)
	assert.Equal(t, 0.0, prod.Rating)
	assert.False(t, prod.CreatedAt.IsZero())

	stored, err := svc.GetProduct(context.Background(), prod.ID)
	require.NoError(t, err)
	assert.Equal(t, prod.ID, stored.ID)
}

func TestCatalogService_CreateProduct_UniqueIDs(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 10; i++ {
		prod := createTestProduct(t, svc, author.ID, "prod", "Backend", "Go", 1)
		require.False(t, seen[prod.ID], "duplicate product id generated")
		seen[prod.ID] = true
	}
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	valid := transport.CreateProductRequest{
		Title:       "t",
		Description: "d",
		Price:       1,
		Language:    "Go",
		Category:    "Backend",
	}

	tests := []struct {
		name     string
		mutate   func(*transport.CreateProductRequest)
		authorID uuid.UUID
	}{
		{name: "empty title", mutate: func(r *transport.CreateProductRequest) { r.Title = "" }, authorID: author.ID},
		{name: "whitespace title", mutate: func(r *transport.CreateProductRequest) { r.Title = "   " }, authorID: author.ID},
		{name: "empty description", mutate: func(r *transport.CreateProductRequest) { r.Description = "" }, authorID: author.ID},
		{name: "empty language", mutate: func(r *transport.CreateProductRequest) { r.Language = "" }, authorID: author.ID},
		{name: "empty category", mutate: func(r *transport.CreateProductRequest) { r.Category = "" }, authorID: author.ID},
		{name: "negative price", mutate: func(r *transport.CreateProductRequest) { r.Price = -0.01 }, authorID: author.ID},
		{name: "unknown author", mutate: func(r *transport.CreateProductRequest) {}, authorID: uuid.New()},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			_, err := svc.CreateProduct(context.Background(), req, tt.authorID)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	_, err := svc.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogService_ByCategory(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	backend := createTestProduct(t, svc, author.ID, "api server", "Backend", "Go", 5)
	createTestProduct(t, svc, author.ID, "react widget", "Frontend", "TypeScript", 3)

	items, err := svc.ByCategory(context.Background(), "Backend")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, backend.ID, items[0].ID)
}

func TestCatalogService_ByCategory_NoMatches(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	items, err := svc.ByCategory(context.Background(), "Embedded")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCatalogService_ByCategory_TrimsInput(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	createTestProduct(t, svc, author.ID, "api server", "Backend", "Go", 5)

	items, err := svc.ByCategory(context.Background(), "  Backend  ")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestCatalogService_Search_CaseInsensitive(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	createTestProduct(t, svc, author.ID, "Parser Combinator", "Backend", "Rust", 9.99)
	createTestProduct(t, svc, author.ID, "react widget", "Frontend", "TypeScript", 3)

	upper, err := svc.Search(context.Background(), "RUST")
	require.NoError(t, err)
	lower, err := svc.Search(context.Background(), "rust")
	require.NoError(t, err)

	require.Len(t, upper, 1)
	require.Len(t, lower, 1)
	assert.Equal(t, upper[0].ID, lower[0].ID)
}

func TestCatalogService_Search_MatchesTitleDescriptionLanguage(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	byTitle := createTestProduct(t, svc, author.ID, "quicksort snippet", "Algorithms", "C", 1)
	byLang := createTestProduct(t, svc, author.ID, "web scraper", "Tools", "Python", 2)

	items, err := svc.Search(context.Background(), "quicksort")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, byTitle.ID, items[0].ID)

	items, err = svc.Search(context.Background(), "python")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, byLang.ID, items[0].ID)

	// description of every helper-created product contains "desc"
	items, err = svc.Search(context.Background(), "desc")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCatalogService_Search_EmptyTermReturnsAll(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	createTestProduct(t, svc, author.ID, "one", "Backend", "Go", 1)
	createTestProduct(t, svc, author.ID, "two", "Frontend", "JS", 2)

	for _, term := range []string{"", "   "} {
		items, err := svc.Search(context.Background(), term)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	}
}

func TestCatalogService_Search_NoMatches(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	createTestProduct(t, svc, author.ID, "one", "Backend", "Go", 1)

	items, err := svc.Search(context.Background(), "zzz-no-such-product")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCatalogService_GetProducts_Pagination(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	author := createTestUser(t, r, true)

	for i := 0; i < 5; i++ {
		createTestProduct(t, svc, author.ID, "prod", "Backend", "Go", 1)
	}

	total, items, err := svc.GetProducts(context.Background(), 0, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, items, 3)

	total, items, err = svc.GetProducts(context.Background(), 3, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, items, 2)
}
