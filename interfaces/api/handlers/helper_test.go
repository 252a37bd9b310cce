package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/tanaki1609/shop-api/domain/dto"
	"github.com/tanaki1609/shop-api/domain/models"
	"github.com/tanaki1609/shop-api/interfaces/api/handlers"
	"github.com/tanaki1609/shop-api/interfaces/api/middleware"
	"github.com/tanaki1609/shop-api/interfaces/api/routes"
)

const testPageSize = 10
const testJWTSecret = "handler-test-secret"

func newTestApp(svcs *handlers.Services) *fiber.App {
	if svcs.PageSize == 0 {
		svcs.PageSize = testPageSize
	}
	if svcs.JWTSecret == "" {
		svcs.JWTSecret = testJWTSecret
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	routes.SetupRoutes(app, handlers.NewHandlers(svcs))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

// ========== Service mocks ==========

type mockProductService struct {
	products   map[uint]*models.Product
	created    *models.Product
	createErr  error
	review     *models.Review
	listItems  []*models.Product
	listTotal  int64
	lastSearch string
	lastOffset int
	lastLimit  int
	deleted    []uint
}

func (m *mockProductService) Create(ctx context.Context, req *dto.ProductRequest) (*models.Product, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

func (m *mockProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if product, ok := m.products[id]; ok {
		return product, nil
	}
	return nil, models.ErrProductNotFound
}

func (m *mockProductService) Update(ctx context.Context, id uint, req *dto.ProductRequest) (*models.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	if m.createErr != nil {
		return nil, m.createErr
	}
	product.Title = req.Title
	return product, nil
}

func (m *mockProductService) Delete(ctx context.Context, id uint) error {
	if _, ok := m.products[id]; !ok {
		return models.ErrProductNotFound
	}
	m.deleted = append(m.deleted, id)
	delete(m.products, id)
	return nil
}

func (m *mockProductService) List(ctx context.Context, search string, offset, limit int) ([]*models.Product, int64, error) {
	m.lastSearch = search
	m.lastOffset = offset
	m.lastLimit = limit
	return m.listItems, m.listTotal, nil
}

func (m *mockProductService) AddReview(ctx context.Context, productID uint, req *dto.ReviewRequest) (*models.Review, error) {
	if _, ok := m.products[productID]; !ok {
		return nil, models.ErrProductNotFound
	}
	return m.review, nil
}

type mockCategoryService struct {
	categories map[uint]*models.Category
	bySlug     map[string]*models.Category
	created    *models.Category
	createErr  error
}

func (m *mockCategoryService) Create(ctx context.Context, req *dto.CategoryRequest) (*models.Category, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return m.created, nil
}

func (m *mockCategoryService) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	if category, ok := m.categories[id]; ok {
		return category, nil
	}
	return nil, models.ErrCategoryNotFound
}

func (m *mockCategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	if category, ok := m.bySlug[slug]; ok {
		return category, nil
	}
	return nil, models.ErrCategoryNotFound
}

func (m *mockCategoryService) Update(ctx context.Context, id uint, req *dto.CategoryRequest) (*models.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, models.ErrCategoryNotFound
	}
	if m.createErr != nil {
		return nil, m.createErr
	}
	category.Name = req.Name
	return category, nil
}

func (m *mockCategoryService) Delete(ctx context.Context, id uint) error {
	if _, ok := m.categories[id]; !ok {
		return models.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryService) List(ctx context.Context, offset, limit int) ([]*models.Category, int64, error) {
	items := make([]*models.Category, 0, len(m.categories))
	for _, c := range m.categories {
		items = append(items, c)
	}
	return items, int64(len(items)), nil
}

type mockTagService struct {
	tags    map[uint]*models.Tag
	created *models.Tag
}

func (m *mockTagService) Create(ctx context.Context, req *dto.TagRequest) (*models.Tag, error) {
	return m.created, nil
}

func (m *mockTagService) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	if tag, ok := m.tags[id]; ok {
		return tag, nil
	}
	return nil, models.ErrTagNotFound
}

func (m *mockTagService) Update(ctx context.Context, id uint, req *dto.TagRequest) (*models.Tag, error) {
	tag, ok := m.tags[id]
	if !ok {
		return nil, models.ErrTagNotFound
	}
	tag.Name = req.Name
	return tag, nil
}

func (m *mockTagService) Delete(ctx context.Context, id uint) error {
	if _, ok := m.tags[id]; !ok {
		return models.ErrTagNotFound
	}
	delete(m.tags, id)
	return nil
}

func (m *mockTagService) List(ctx context.Context, offset, limit int) ([]*models.Tag, int64, error) {
	items := make([]*models.Tag, 0, len(m.tags))
	for _, tag := range m.tags {
		items = append(items, tag)
	}
	return items, int64(len(items)), nil
}

type mockUserService struct {
	registered  *models.User
	registerErr error
	key         string
	authErr     error
	profile     *models.User
}

func (m *mockUserService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.registered, nil
}

func (m *mockUserService) Authorize(ctx context.Context, req *dto.AuthRequest) (string, error) {
	if m.authErr != nil {
		return "", m.authErr
	}
	return m.key, nil
}

func (m *mockUserService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	if m.profile == nil || m.profile.ID != id {
		return nil, models.ErrUserNotFound
	}
	return m.profile, nil
}
