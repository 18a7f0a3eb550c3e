package service

import (
	"context"

	"github.com/gestaovendas/erp-representacao/internal/adapter/repository"
	"github.com/gestaovendas/erp-representacao/internal/domain/brand"
	"github.com/gestaovendas/erp-representacao/internal/domain/client"
	"github.com/gestaovendas/erp-representacao/internal/domain/order"
	"github.com/gestaovendas/erp-representacao/internal/domain/product"
	"github.com/gestaovendas/erp-representacao/internal/domain/purchase"
	"github.com/gestaovendas/erp-representacao/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Repositórios em memória usados nos testes de serviço

type fakeProductRepo struct {
	products map[string]*product.Product
}

func newFakeProductRepo(products ...*product.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*product.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) error {
	for _, existing := range r.products {
		if existing.Subcode == p.Subcode {
			return repository.ErrProductDuplicateKey
		}
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) FindByProductCode(_ context.Context, code string) (*product.Product, error) {
	for _, p := range r.products {
		if p.ProductCode == code {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) FindBySubcode(_ context.Context, subcode string) (*product.Product, error) {
	for _, p := range r.products {
		if p.Subcode == subcode {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) List(_ context.Context, _, _ string, _, _ int) ([]*product.Product, error) {
	result := make([]*product.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, p)
	}
	return result, nil
}

func (r *fakeProductRepo) FindLowStock(_ context.Context) ([]*product.Product, error) {
	result := make([]*product.Product, 0)
	for _, p := range r.products {
		if p.IsLowStock() {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrProductNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) Count(_ context.Context, _, _ string) (int, error) {
	return len(r.products), nil
}

func (r *fakeProductRepo) DecrementStock(_ context.Context, id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if p.Stock < quantity {
		return &product.InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Available:   p.Stock,
			Requested:   quantity,
		}
	}
	p.Stock -= quantity
	return nil
}

func (r *fakeProductRepo) IncrementStock(_ context.Context, id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.Stock += quantity
	return nil
}

func (r *fakeProductRepo) UpdatePriceAndSubcode(_ context.Context, id string, price decimal.Decimal, subcode string) error {
	p, ok := r.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	p.Price = price
	p.Subcode = subcode
	return nil
}

type fakeBrandRepo struct {
	brands map[string]*brand.Brand // indexado por nome
}

func newFakeBrandRepo(brands ...*brand.Brand) *fakeBrandRepo {
	r := &fakeBrandRepo{brands: make(map[string]*brand.Brand)}
	for _, b := range brands {
		r.brands[b.Name] = b
	}
	return r
}

func (r *fakeBrandRepo) Create(_ context.Context, b *brand.Brand) error {
	if _, ok := r.brands[b.Name]; ok {
		return repository.ErrBrandDuplicateKey
	}
	r.brands[b.Name] = b
	return nil
}

func (r *fakeBrandRepo) FindByID(_ context.Context, id string) (*brand.Brand, error) {
	for _, b := range r.brands {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, repository.ErrBrandNotFound
}

func (r *fakeBrandRepo) FindByName(_ context.Context, name string) (*brand.Brand, error) {
	b, ok := r.brands[name]
	if !ok {
		return nil, repository.ErrBrandNotFound
	}
	return b, nil
}

func (r *fakeBrandRepo) List(_ context.Context) ([]*brand.Brand, error) {
	result := make([]*brand.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBrandRepo) Update(_ context.Context, b *brand.Brand) error {
	r.brands[b.Name] = b
	return nil
}

func (r *fakeBrandRepo) Delete(_ context.Context, id string) error {
	for name, b := range r.brands {
		if b.ID == id {
			delete(r.brands, name)
			return nil
		}
	}
	return repository.ErrBrandNotFound
}

type fakeClientRepo struct {
	ids map[string]bool
}

func newFakeClientRepo(ids ...string) *fakeClientRepo {
	r := &fakeClientRepo{ids: make(map[string]bool)}
	for _, id := range ids {
		r.ids[id] = true
	}
	return r
}

func (r *fakeClientRepo) Create(_ context.Context, c *client.Client) error {
	r.ids[c.ID] = true
	return nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id string) (*client.Client, error) {
	if !r.ids[id] {
		return nil, repository.ErrClientNotFound
	}
	return &client.Client{ID: id}, nil
}

func (r *fakeClientRepo) FindByCNPJ(_ context.Context, _ string) (*client.Client, error) {
	return nil, repository.ErrClientNotFound
}

func (r *fakeClientRepo) List(_ context.Context, _ string, _, _ int) ([]*client.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Search(_ context.Context, _ string, _, _ int) ([]*client.Client, error) {
	return nil, nil
}

func (r *fakeClientRepo) Update(_ context.Context, _ *client.Client) error { return nil }

func (r *fakeClientRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *fakeClientRepo) Count(_ context.Context, _ string) (int, error) { return len(r.ids), nil }

func (r *fakeClientRepo) Exists(_ context.Context, id string) (bool, error) {
	return r.ids[id], nil
}

type fakeUserRepo struct {
	ids map[string]bool
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	r := &fakeUserRepo{ids: make(map[string]bool)}
	for _, id := range ids {
		r.ids[id] = true
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.ids[u.ID] = true
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	if !r.ids[id] {
		return nil, repository.ErrUserNotFound
	}
	return &user.User{ID: id}, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*user.User, error) { return nil, nil }

func (r *fakeUserRepo) Update(_ context.Context, _ *user.User) error { return nil }

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ string) error { return nil }

func (r *fakeUserRepo) Exists(_ context.Context, id string) (bool, error) {
	return r.ids[id], nil
}

type fakeOrderRepo struct {
	orders map[string]*order.Order
}

func newFakeOrderRepo(orders ...*order.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[string]*order.Order)}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id string) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) List(_ context.Context, _ order.Status, _ string, _, _ int) ([]*order.Order, error) {
	result := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeOrderRepo) FindBySeller(_ context.Context, _ string, _, _ int) ([]*order.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return repository.ErrOrderNotFound
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) Finalize(_ context.Context, id string) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	if o.Status != order.StatusOpen {
		return nil, order.ErrAlreadyDelivered
	}
	o.Status = order.StatusDelivered
	return o, nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	o, ok := r.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	if o.Status != order.StatusOpen {
		return repository.ErrOrderDelivered
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) Count(_ context.Context, _ order.Status, _ string) (int, error) {
	return len(r.orders), nil
}

func (r *fakeOrderRepo) StatsByClient(_ context.Context, clientID string) (*order.ClientStats, error) {
	return &order.ClientStats{ClientID: clientID}, nil
}

type fakeHistoryRepo struct {
	entries []*purchase.PriceHistory
}

func (r *fakeHistoryRepo) Append(_ context.Context, h *purchase.PriceHistory) error {
	r.entries = append(r.entries, h)
	return nil
}

func (r *fakeHistoryRepo) ListByProduct(_ context.Context, productID string) ([]*purchase.PriceHistory, error) {
	result := make([]*purchase.PriceHistory, 0)
	for _, h := range r.entries {
		if h.ProductID == productID {
			result = append(result, h)
		}
	}
	return result, nil
}
