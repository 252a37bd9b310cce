package handlers

import (
	"github.com/tanaki1609/shop-api/domain/services"
)

// Services contains everything the handlers need.
type Services struct {
	ProductService  services.ProductService
	CategoryService services.CategoryService
	TagService      services.TagService
	UserService     services.UserService
	PageSize        int
	JWTSecret       string
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
	TagHandler      *TagHandler
	UserHandler     *UserHandler
	JWTSecret       string
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		ProductHandler:  NewProductHandler(services.ProductService, services.PageSize),
		CategoryHandler: NewCategoryHandler(services.CategoryService, services.PageSize),
		TagHandler:      NewTagHandler(services.TagService, services.PageSize),
		UserHandler:     NewUserHandler(services.UserService),
		JWTSecret:       services.JWTSecret,
	}
}
