package serviceimpl

import (
	"context"

	"gorm.io/gorm"

	"github.com/tanaki1609/shop-api/domain/models"
)

// In-memory repository fakes. Each keeps just enough state for the service
// tests to assert on what was persisted.

type fakeProductRepo struct {
	products    map[uint]*models.Product
	nextID      uint
	createCalls int
	updateCalls int
	deleteCalls int
	lastTags    []models.Tag
	err         error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*models.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	if r.err != nil {
		return r.err
	}
	r.createCalls++
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	product, ok := r.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *models.Product, tags []models.Tag) error {
	if r.err != nil {
		return r.err
	}
	r.updateCalls++
	r.lastTags = tags
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uint) error {
	if r.err != nil {
		return r.err
	}
	r.deleteCalls++
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, search string, offset, limit int) ([]*models.Product, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	items := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		items = append(items, p)
	}
	return items, int64(len(items)), nil
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	bySlug     map[string]*models.Category
	nextID     uint
	deleted    []uint
}

func newFakeCategoryRepo(categories ...*models.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{
		categories: map[uint]*models.Category{},
		bySlug:     map[string]*models.Category{},
		nextID:     1,
	}
	for _, c := range categories {
		r.categories[c.ID] = c
		r.bySlug[c.Slug] = c
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = category
	r.bySlug[category.Slug] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, models.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, ok := r.bySlug[slug]
	if !ok {
		return nil, models.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	r.categories[category.ID] = category
	r.bySlug[category.Slug] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uint) ([]uint, error) {
	removed := []uint{id}
	delete(r.categories, id)
	// Single-level subtree walk is enough for the tests.
	for cid, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == id {
			removed = append(removed, cid)
			delete(r.categories, cid)
		}
	}
	r.deleted = removed
	return removed, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context, offset, limit int) ([]*models.Category, int64, error) {
	items := make([]*models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		items = append(items, c)
	}
	return items, int64(len(items)), nil
}

type fakeTagRepo struct {
	tags map[uint]models.Tag
}

func newFakeTagRepo(tags ...models.Tag) *fakeTagRepo {
	r := &fakeTagRepo{tags: map[uint]models.Tag{}}
	for _, t := range tags {
		r.tags[t.ID] = t
	}
	return r
}

func (r *fakeTagRepo) Create(ctx context.Context, tag *models.Tag) error {
	tag.ID = uint(len(r.tags) + 1)
	r.tags[tag.ID] = *tag
	return nil
}

func (r *fakeTagRepo) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	tag, ok := r.tags[id]
	if !ok {
		return nil, models.ErrTagNotFound
	}
	return &tag, nil
}

func (r *fakeTagRepo) GetByIDs(ctx context.Context, ids []uint) ([]models.Tag, error) {
	found := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		if tag, ok := r.tags[id]; ok {
			found = append(found, tag)
		}
	}
	return found, nil
}

func (r *fakeTagRepo) Update(ctx context.Context, tag *models.Tag) error {
	r.tags[tag.ID] = *tag
	return nil
}

func (r *fakeTagRepo) Delete(ctx context.Context, id uint) error {
	delete(r.tags, id)
	return nil
}

func (r *fakeTagRepo) List(ctx context.Context, offset, limit int) ([]*models.Tag, int64, error) {
	items := make([]*models.Tag, 0, len(r.tags))
	for id := range r.tags {
		tag := r.tags[id]
		items = append(items, &tag)
	}
	return items, int64(len(items)), nil
}

type fakeReviewRepo struct {
	reviews     []models.Review
	createCalls int
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *models.Review) error {
	r.createCalls++
	review.ID = uint(len(r.reviews) + 1)
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) ListByProduct(ctx context.Context, productID uint) ([]models.Review, error) {
	var out []models.Review
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users     map[string]*models.User
	nextID    uint
	createErr error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
	for _, u := range users {
		r.users[u.Username] = u
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

type fakeTokenRepo struct {
	tokens      map[uint]*models.Token
	createCalls int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[uint]*models.Token{}}
}

func (r *fakeTokenRepo) Create(ctx context.Context, token *models.Token) error {
	r.createCalls++
	r.tokens[token.UserID] = token
	return nil
}

func (r *fakeTokenRepo) GetByUserID(ctx context.Context, userID uint) (*models.Token, error) {
	token, ok := r.tokens[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return token, nil
}
