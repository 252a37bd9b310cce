package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanaki1609/shop-api/domain/models"
	"github.com/tanaki1609/shop-api/interfaces/api/handlers"
)

func sampleProduct(id uint) *models.Product {
	categoryID := uint(1)
	text := "A laptop"
	return &models.Product{
		ID:         id,
		Title:      "Gaming laptop",
		Text:       &text,
		Price:      decimal.NewFromFloat(1499.99),
		IsActive:   true,
		CategoryID: &categoryID,
		Category:   &models.Category{ID: 1, Name: "Electronics", Slug: "electronics"},
		Tags: []models.Tag{
			{ID: 1, Name: "new"},
			{ID: 2, Name: "sale"},
		},
	}
}

func productApp(svc *mockProductService) (*mockProductService, *fiber.App) {
	if svc == nil {
		svc = &mockProductService{products: map[uint]*models.Product{}}
	}
	app := newTestApp(&handlers.Services{
		ProductService:  svc,
		CategoryService: &mockCategoryService{},
		TagService:      &mockTagService{},
		UserService:     &mockUserService{},
	})
	return svc, app
}

func validProductPayload() map[string]any {
	return map[string]any{
		"title":       "Gaming laptop",
		"price":       1499.99,
		"category_id": 1,
		"tags":        []uint{1, 2},
	}
}

func TestProductGetByIDHandler(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockProductService{products: map[uint]*models.Product{7: sampleProduct(7)}}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodGet, "/7", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(7), body["id"])
		assert.Equal(t, "Gaming laptop", body["title"])
		assert.Equal(t, []any{"new", "sale"}, body["tag_list"])
	})

	t.Run("missing product returns the detail body", func(t *testing.T) {
		_, app := productApp(nil)

		resp := doJSON(t, app, http.MethodGet, "/42", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"detail": "Product not found!"}`, readBody(t, resp))
	})

	t.Run("non-numeric id", func(t *testing.T) {
		_, app := productApp(nil)

		resp := doJSON(t, app, http.MethodGet, "/abc", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"detail": "Product not found!"}`, readBody(t, resp))
	})
}

func TestProductCreateHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &mockProductService{
			products: map[uint]*models.Product{},
			created:  sampleProduct(7),
		}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodPost, "/", validProductPayload())
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.JSONEq(t, `{"product_id": 7}`, readBody(t, resp))
	})

	t.Run("validation errors come back field-keyed", func(t *testing.T) {
		_, app := productApp(nil)

		resp := doJSON(t, app, http.MethodPost, "/", map[string]any{
			"title": "abc",
			"price": 0.5,
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, []any{"Ensure this field has at least 5 characters."}, body["title"])
		assert.Equal(t, []any{"Ensure this value is greater than or equal to 1."}, body["price"])
		assert.Equal(t, []any{"This field is required."}, body["category_id"])
		assert.Equal(t, []any{"This field is required."}, body["tags"])
	})

	t.Run("unknown category maps onto category_id", func(t *testing.T) {
		svc := &mockProductService{
			products:  map[uint]*models.Product{},
			createErr: models.ErrCategoryDoesNotExist,
		}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodPost, "/", validProductPayload())
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"category_id": ["Category does not exist"]}`, readBody(t, resp))
	})

	t.Run("unknown tags map onto tags", func(t *testing.T) {
		svc := &mockProductService{
			products:  map[uint]*models.Product{},
			createErr: models.ErrTagsDoNotExist,
		}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodPost, "/", validProductPayload())
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"tags": ["Tags does not exist"]}`, readBody(t, resp))
	})
}

func TestProductUpdateHandler(t *testing.T) {
	t.Run("replaces and answers 201", func(t *testing.T) {
		svc := &mockProductService{products: map[uint]*models.Product{7: sampleProduct(7)}}
		_, app := productApp(svc)

		payload := validProductPayload()
		payload["title"] = "Office laptop"
		resp := doJSON(t, app, http.MethodPut, "/7", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Office laptop", body["title"])
	})

	t.Run("missing product wins over invalid payload", func(t *testing.T) {
		_, app := productApp(nil)

		resp := doJSON(t, app, http.MethodPut, "/42", map[string]any{"title": ""})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"detail": "Product not found!"}`, readBody(t, resp))
	})
}

func TestProductDeleteHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		svc := &mockProductService{products: map[uint]*models.Product{7: sampleProduct(7)}}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodDelete, "/7", nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Empty(t, readBody(t, resp))
		assert.Equal(t, []uint{7}, svc.deleted)
	})

	t.Run("missing product", func(t *testing.T) {
		_, app := productApp(nil)

		resp := doJSON(t, app, http.MethodDelete, "/42", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"detail": "Product not found!"}`, readBody(t, resp))
	})
}

func TestProductListHandler(t *testing.T) {
	t.Run("paginated envelope", func(t *testing.T) {
		svc := &mockProductService{
			products:  map[uint]*models.Product{},
			listItems: []*models.Product{sampleProduct(1), sampleProduct(2)},
			listTotal: 25,
		}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodGet, "/", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(25), body["total"])
		assert.NotNil(t, body["next"], "total exceeds the first page")
		assert.Nil(t, body["previous"])
		assert.Len(t, body["results"], 2)
	})

	t.Run("search filter reaches the service", func(t *testing.T) {
		svc := &mockProductService{products: map[uint]*models.Product{}}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodGet, "/?search=laptop&page=2", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "laptop", svc.lastSearch)
		assert.Equal(t, testPageSize, svc.lastOffset, "page 2 skips one page")
		assert.Equal(t, testPageSize, svc.lastLimit)
	})

	t.Run("empty result keeps results as an array", func(t *testing.T) {
		svc := &mockProductService{products: map[uint]*models.Product{}}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodGet, "/", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"total": 0, "next": null, "previous": null, "results": []}`, readBody(t, resp))
	})
}

func TestProductAddReviewHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &mockProductService{
			products: map[uint]*models.Product{7: sampleProduct(7)},
			review:   &models.Review{ID: 3, Text: "Great!", Stars: 5, ProductID: 7},
		}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodPost, "/7/reviews", map[string]any{"text": "Great!"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.JSONEq(t, `{"review_id": 3}`, readBody(t, resp))
	})

	t.Run("invalid stars", func(t *testing.T) {
		svc := &mockProductService{products: map[uint]*models.Product{7: sampleProduct(7)}}
		_, app := productApp(svc)

		resp := doJSON(t, app, http.MethodPost, "/7/reviews", map[string]any{"text": "Great!", "stars": 9})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, []any{"Ensure this value is less than or equal to 5."}, body["stars"])
	})

	t.Run("missing product", func(t *testing.T) {
		_, app := productApp(nil)

		resp := doJSON(t, app, http.MethodPost, "/42/reviews", map[string]any{"text": "Great!"})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"detail": "Product not found!"}`, readBody(t, resp))
	})
}
