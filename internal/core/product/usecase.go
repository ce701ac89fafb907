package product

import (
	"context"
	"fmt"
	"strings"

	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

// UseCase serves catalog reads through the cache and keeps single-product
// entries consistent with writes. List entries are never invalidated and
// go stale until their TTL runs out.
//
// A read that misses can race a concurrent update: if the read fetches the
// old record, the update invalidates, and the read then populates, the old
// record stays cached until TTL. That window is accepted.
type UseCase struct {
	repository ports.ProductRepository
	cache      *CacheAside
	logger     ports.Logger
}

type UseCaseDependencies struct {
	Repository ports.ProductRepository
	Cache      *CacheAside
	Logger     ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("product repository is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		repository: deps.Repository,
		cache:      deps.Cache,
		logger:     deps.Logger,
	}, nil
}

func (uc *UseCase) List(ctx context.Context, query ListQuery) (*Page, error) {
	query.Normalize()
	if err := query.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid list query: " + err.Error())
	}

	key := NewListKey(query)
	var cached Page
	if uc.cache.lookup(ctx, key, &cached).hit() {
		uc.logger.Debug("Product list served from cache", ports.F("key", key.Encode()))
		return &cached, nil
	}

	data, total, err := uc.repository.Find(ctx, ports.ProductFilter{
		Category: query.Category,
		Search:   query.Search,
		Offset:   query.Offset(),
		Limit:    query.Limit,
	})
	if err != nil {
		uc.logger.Error("Failed to list products",
			ports.F("key", key.Encode()),
			ports.F("error", err))
		return nil, fmt.Errorf("list products: %w", err)
	}

	items := make([]*Product, 0, len(data))
	for _, d := range data {
		items = append(items, fromPortsProduct(d))
	}
	page := &Page{
		Items:       items,
		Total:       total,
		PageCount:   PageCount(total, query.Limit),
		CurrentPage: query.Page,
	}

	uc.cache.populate(ctx, key, page)
	return page, nil
}

func (uc *UseCase) Get(ctx context.Context, id string) (*Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewValidationError("product id is required")
	}

	key := SingleKey{ID: id}
	var cached Product
	if uc.cache.lookup(ctx, key, &cached).hit() {
		uc.logger.Debug("Product served from cache", ports.F("id", id))
		return &cached, nil
	}

	data, err := uc.repository.FindByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Error("Failed to get product",
			ports.F("id", id),
			ports.F("error", err))
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}

	product := fromPortsProduct(data)
	uc.cache.populate(ctx, key, product)
	return product, nil
}

// Create inserts a product. Existing list entries are left to expire.
func (uc *UseCase) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if params.Price <= 0 {
		return nil, errors.NewValidationError("invalid product: price is required")
	}

	product := &Product{
		Name:        strings.TrimSpace(params.Name),
		Description: strings.TrimSpace(params.Description),
		Price:       params.Price,
		Image:       strings.TrimSpace(params.Image),
		Brand:       strings.TrimSpace(params.Brand),
		Category:    Category(strings.TrimSpace(params.Category)),
		Stock:       params.Stock,
		Rating:      DefaultRating,
	}
	if product.Category == "" {
		product.Category = CategoryOther
	}
	if params.Rating != nil {
		product.Rating = *params.Rating
	}
	if err := product.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid product: " + err.Error())
	}

	data := toPortsProduct(product)
	if err := uc.repository.Create(ctx, data); err != nil {
		uc.logger.Error("Failed to create product",
			ports.F("name", product.Name),
			ports.F("error", err))
		return nil, fmt.Errorf("create product: %w", err)
	}

	uc.logger.Info("Product created", ports.F("id", data.ID))
	return fromPortsProduct(data), nil
}

func (uc *UseCase) Update(ctx context.Context, id string, params UpdateParams) (*Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewValidationError("product id is required")
	}
	if err := params.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid product update: " + err.Error())
	}

	data, err := uc.repository.Update(ctx, id, toPortsPatch(params))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Error("Failed to update product",
			ports.F("id", id),
			ports.F("error", err))
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	uc.cache.invalidate(ctx, SingleKey{ID: id})
	uc.logger.Info("Product updated", ports.F("id", id))
	return fromPortsProduct(data), nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) (*Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewValidationError("product id is required")
	}

	data, err := uc.repository.Delete(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Error("Failed to delete product",
			ports.F("id", id),
			ports.F("error", err))
		return nil, fmt.Errorf("delete product %s: %w", id, err)
	}

	uc.cache.invalidate(ctx, SingleKey{ID: id})
	uc.logger.Info("Product deleted", ports.F("id", id))
	return fromPortsProduct(data), nil
}

func toPortsPatch(params UpdateParams) ports.ProductPatch {
	patch := ports.ProductPatch{
		Name:        trimmed(params.Name),
		Description: trimmed(params.Description),
		Price:       params.Price,
		Image:       trimmed(params.Image),
		Brand:       trimmed(params.Brand),
		Category:    trimmed(params.Category),
		Stock:       params.Stock,
		Rating:      params.Rating,
	}
	return patch
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func toPortsProduct(p *Product) *ports.ProductData {
	return &ports.ProductData{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		Brand:       p.Brand,
		Category:    string(p.Category),
		Stock:       p.Stock,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func fromPortsProduct(d *ports.ProductData) *Product {
	return &Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Image:       d.Image,
		Brand:       d.Brand,
		Category:    Category(d.Category),
		Stock:       d.Stock,
		Rating:      d.Rating,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
