package service

import (
	"context"
	"sync"
	"time"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/Malmeu/facturier-sub001/internal/domain/repository"
	"github.com/Malmeu/facturier-sub001/pkg/pagination"
	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests.

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product

	updateStockErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) add(p *entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
	return p
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.add(product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok || p.UserID != userID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok && p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByCode(ctx context.Context, userID uuid.UUID, code string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.products {
		if p.UserID == userID && p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, userID uuid.UUID, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Product
	for _, p := range f.products {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) GetLowStock(ctx context.Context, userID uuid.UUID) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Product
	for _, p := range f.products {
		if p.UserID == userID && p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.products {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) UpdateStock(ctx context.Context, userID, id uuid.UUID, quantity float64) error {
	if f.updateStockErr != nil {
		return f.updateStockErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[id]; ok && p.UserID == userID {
		p.CurrentStock = quantity
	}
	return nil
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements []entity.StockMovement

	createErr error
}

func newFakeMovementRepo() *fakeMovementRepo {
	return &fakeMovementRepo{}
}

func (f *fakeMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if f.createErr != nil {
		return f.createErr
	}
	if movement.ID == uuid.Nil {
		movement.ID = uuid.New()
	}
	movement.CreatedAt = time.Now()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movements = append(f.movements, *movement)
	return nil
}

func (f *fakeMovementRepo) List(ctx context.Context, userID uuid.UUID, params *repository.MovementFilterParams) ([]entity.StockMovement, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.StockMovement
	for _, m := range f.movements {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeMovementRepo) ListByProduct(ctx context.Context, userID, productID uuid.UUID) ([]entity.StockMovement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.StockMovement
	for _, m := range f.movements {
		if m.UserID == userID && m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]entity.StockMovement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.StockMovement
	for i := len(f.movements) - 1; i >= 0 && len(out) < limit; i-- {
		if f.movements[i].UserID == userID {
			out = append(out, f.movements[i])
		}
	}
	return out, nil
}

func (f *fakeMovementRepo) all() []entity.StockMovement {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entity.StockMovement, len(f.movements))
	copy(out, f.movements)
	return out
}

type fakeDocumentRepo struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uuid.UUID]*entity.Document)}
}

func (f *fakeDocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	for i := range doc.Items {
		if doc.Items[i].ID == uuid.Nil {
			doc.Items[i].ID = uuid.New()
		}
		doc.Items[i].DocumentID = doc.ID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *doc
	f.docs[doc.ID] = &cp
	return nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error) {
	return f.GetWithItems(ctx, userID, id)
}

func (f *fakeDocumentRepo) GetWithItems(ctx context.Context, userID, id uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	if !ok || d.UserID != userID {
		return nil, nil
	}
	cp := *d
	cp.Items = append([]entity.DocumentItem(nil), d.Items...)
	cp.Payments = append([]entity.Payment(nil), d.Payments...)
	return &cp, nil
}

func (f *fakeDocumentRepo) Update(ctx context.Context, doc *entity.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.docs[doc.ID]
	if !ok {
		return nil
	}
	items := stored.Items
	if doc.Items != nil {
		items = doc.Items
	}
	cp := *doc
	cp.Items = items
	f.docs[doc.ID] = &cp
	return nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, id)
	return nil
}

func (f *fakeDocumentRepo) List(ctx context.Context, userID uuid.UUID, params *repository.DocumentFilterParams) ([]entity.Document, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Document
	for _, d := range f.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeDocumentRepo) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status enum.DocumentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.docs[id]; ok && d.UserID == userID {
		d.Status = status
	}
	return nil
}

func (f *fakeDocumentRepo) GetDueDocuments(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Document, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Document
	for _, d := range f.docs {
		if d.UserID == userID && d.Type == enum.DocumentTypeInvoice && d.AmountDue > 0 &&
			(d.Status == enum.DocumentStatusSent || d.Status == enum.DocumentStatusPartial) {
			out = append(out, *d)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeDocumentRepo) CountByStatus(ctx context.Context, userID uuid.UUID, docType enum.DocumentType, status enum.DocumentStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, d := range f.docs {
		if d.UserID == userID && d.Type == docType && d.Status == status {
			n++
		}
	}
	return n, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments = append(f.payments, *payment)
	return nil
}

func (f *fakePaymentRepo) GetByDocumentID(ctx context.Context, documentID uuid.UUID) ([]entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Payment
	for _, p := range f.payments {
		if p.DocumentID == documentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) List(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) add(c *entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers[c.ID] = c
	return c
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	f.add(customer)
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Customer
	for _, c := range f.customers {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerRepo) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, c := range f.customers {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[uuid.UUID]*entity.DocumentSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uuid.UUID]*entity.DocumentSettings)}
}

func (f *fakeSettingsRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.DocumentSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.settings[userID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSettingsRepo) Create(ctx context.Context, settings *entity.DocumentSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *settings
	f.settings[settings.UserID] = &cp
	return nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, settings *entity.DocumentSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *settings
	f.settings[settings.UserID] = &cp
	return nil
}
