package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/elitesports/pos-api/internal/domain/entity"
	"github.com/elitesports/pos-api/internal/domain/repository"
)

var errStorage = errors.New("storage failure")

// fakeProductRepo is an in-memory ProductRepository for service tests
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) CreateBatch(ctx context.Context, products []entity.Product) error {
	for i := range products {
		if err := r.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Barcode != nil && *p.Barcode == barcode {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Product
	for _, p := range r.products {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if params.InStock && p.Quantity == 0 {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *fakeProductRepo) ListCategories(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeProductRepo) GetLowStock(ctx context.Context, threshold int) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Product
	for _, p := range r.products {
		if p.Quantity <= threshold {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *fakeProductRepo) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var failedIDs []uuid.UUID
	for id, qty := range decrements {
		p, ok := r.products[id]
		if !ok || p.Quantity < qty {
			failedIDs = append(failedIDs, id)
		}
	}
	// All-or-nothing: any shortage leaves every quantity untouched
	if len(failedIDs) > 0 {
		return failedIDs, nil
	}
	for id, qty := range decrements {
		r.products[id].Quantity -= qty
	}
	return nil, nil
}

func (r *fakeProductRepo) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, qty := range increments {
		if p, ok := r.products[id]; ok {
			p.Quantity += qty
		}
	}
	return nil
}

// fakeOrderRepo is an in-memory OrderRepository for service tests
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []entity.Order

	failCreate bool
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errStorage
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			clone := r.orders[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetByNumber(ctx context.Context, number int) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].Number == number {
			clone := r.orders[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) NextNumber(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max := 100
	for i := range r.orders {
		if r.orders[i].Number > max {
			max = r.orders[i].Number
		}
	}
	return max + 1, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Order, len(r.orders))
	copy(out, r.orders)
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return out, int64(len(out)), nil
}

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

// fakeOTPRepo is an in-memory LoginOTPRepository for service tests
type fakeOTPRepo struct {
	mu   sync.Mutex
	otps []*entity.LoginOTP
}

func (r *fakeOTPRepo) Create(ctx context.Context, otp *entity.LoginOTP) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	r.otps = append(r.otps, otp)
	return nil
}

func (r *fakeOTPRepo) GetLatestByEmail(ctx context.Context, email string) (*entity.LoginOTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.otps) - 1; i >= 0; i-- {
		if r.otps[i].Email == email {
			clone := *r.otps[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeOTPRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, otp := range r.otps {
		if otp.ID == id {
			otp.Used = true
		}
	}
	return nil
}

func (r *fakeOTPRepo) InvalidateForEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, otp := range r.otps {
		if otp.Email == email {
			otp.Used = true
		}
	}
	return nil
}

func (r *fakeOTPRepo) DeleteExpired(ctx context.Context) error {
	return nil
}

// fakeUploadRepo is an in-memory UploadBatchRepository for service tests
type fakeUploadRepo struct {
	mu      sync.Mutex
	batches []*entity.UploadBatch
}

func (r *fakeUploadRepo) Create(ctx context.Context, batch *entity.UploadBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if batch.ID == uuid.Nil {
		batch.ID = uuid.New()
	}
	r.batches = append(r.batches, batch)
	return nil
}

func (r *fakeUploadRepo) GetByUploadID(ctx context.Context, uploadID string) (*entity.UploadBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.batches {
		if b.UploadID == uploadID {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeUploadRepo) GetByFileHash(ctx context.Context, hash string) (*entity.UploadBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.batches {
		if b.FileHash == hash {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeUploadRepo) List(ctx context.Context) ([]entity.UploadBatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.UploadBatch, 0, len(r.batches))
	for i := len(r.batches) - 1; i >= 0; i-- {
		out = append(out, *r.batches[i])
	}
	return out, nil
}

func (r *fakeUploadRepo) MarkRolledBack(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.batches {
		if b.ID == id {
			b.RolledBack = true
		}
	}
	return nil
}

// fakeReportRepo returns canned aggregates for service tests
type fakeReportRepo struct {
	totals repository.SalesTotals
	daily  []repository.DailySalesPoint
	top    []repository.TopItem
}

func (r *fakeReportRepo) SalesTotals(ctx context.Context) (*repository.SalesTotals, error) {
	totals := r.totals
	return &totals, nil
}

func (r *fakeReportRepo) DailySales(ctx context.Context, days int) ([]repository.DailySalesPoint, error) {
	return r.daily, nil
}

func (r *fakeReportRepo) TopItems(ctx context.Context, limit int) ([]repository.TopItem, error) {
	if limit < len(r.top) {
		return r.top[:limit], nil
	}
	return r.top, nil
}
