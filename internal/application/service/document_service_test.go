package service

import (
	"context"
	"testing"
	"time"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type documentServiceFixture struct {
	svc          *DocumentService
	documentRepo *fakeDocumentRepo
	customerRepo *fakeCustomerRepo
	productRepo  *fakeProductRepo
	movementRepo *fakeMovementRepo
	settingsRepo *fakeSettingsRepo
}

func newDocumentServiceFixture() *documentServiceFixture {
	documentRepo := newFakeDocumentRepo()
	customerRepo := newFakeCustomerRepo()
	productRepo := newFakeProductRepo()
	movementRepo := newFakeMovementRepo()
	settingsRepo := newFakeSettingsRepo()

	svc := NewDocumentService(
		documentRepo,
		customerRepo,
		productRepo,
		NewSettingsService(settingsRepo),
		NewStockService(productRepo, movementRepo),
	)

	return &documentServiceFixture{
		svc:          svc,
		documentRepo: documentRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		settingsRepo: settingsRepo,
	}
}

func float64Ptr(v float64) *float64 { return &v }

func TestDocumentServiceCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("assigns a reference and computes totals", func(t *testing.T) {
		fx := newDocumentServiceFixture()

		doc, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID,
			Type:   enum.DocumentTypeInvoice,
			Date:   &date,
			Items: []DocumentItemInput{
				{Description: "Prestation", Quantity: 2, UnitPrice: float64Ptr(100), TaxRate: float64Ptr(19)},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "FAC-2026-0001", doc.Reference)
		assert.Equal(t, enum.DocumentStatusDraft, doc.Status)
		assert.Equal(t, 200.0, doc.SubTotal)
		assert.Equal(t, 38.0, doc.TaxTotal)
		assert.Equal(t, 238.0, doc.GrandTotal)
		assert.Equal(t, 238.0, doc.AmountDue)

		settings, _ := fx.settingsRepo.GetByUserID(ctx, userID)
		assert.Equal(t, 2, settings.NextInvoiceNumber)
	})

	t.Run("consecutive invoices get consecutive references", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		input := &CreateDocumentInput{
			UserID: userID,
			Type:   enum.DocumentTypeInvoice,
			Date:   &date,
			Items:  []DocumentItemInput{{Description: "Ligne", Quantity: 1, UnitPrice: float64Ptr(10)}},
		}

		first, err := fx.svc.Create(ctx, input)
		require.NoError(t, err)
		second, err := fx.svc.Create(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, "FAC-2026-0001", first.Reference)
		assert.Equal(t, "FAC-2026-0002", second.Reference)
	})

	t.Run("quotes use their own counter and format", func(t *testing.T) {
		fx := newDocumentServiceFixture()

		quote, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID,
			Type:   enum.DocumentTypeQuote,
			Date:   &date,
			Items:  []DocumentItemInput{{Description: "Etude", Quantity: 1, UnitPrice: float64Ptr(500)}},
		})
		require.NoError(t, err)
		assert.Equal(t, "DEV-2026-0001", quote.Reference)

		settings, _ := fx.settingsRepo.GetByUserID(ctx, userID)
		assert.Equal(t, 2, settings.NextQuoteNumber)
		assert.Equal(t, 1, settings.NextInvoiceNumber)
	})

	t.Run("product lines inherit price and tax from the catalog", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		product := fx.productRepo.add(&entity.Product{
			UserID:       userID,
			Name:         "Ramette A4",
			SellingPrice: 5.5,
			TaxRate:      19,
		})

		doc, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID,
			Type:   enum.DocumentTypeInvoice,
			Date:   &date,
			Items:  []DocumentItemInput{{ProductID: &product.ID, Quantity: 4}},
		})
		require.NoError(t, err)

		require.Len(t, doc.Items, 1)
		assert.Equal(t, "Ramette A4", doc.Items[0].Description)
		assert.Equal(t, 5.5, doc.Items[0].UnitPrice)
		assert.Equal(t, 19.0, doc.Items[0].TaxRate)
		assert.Equal(t, 22.0, doc.Items[0].SubTotal)
	})

	t.Run("draft creation does not touch stock", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		product := fx.productRepo.add(&entity.Product{
			UserID: userID, Name: "Carton", SellingPrice: 2,
			TrackInventory: true, CurrentStock: 30,
		})

		_, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID,
			Type:   enum.DocumentTypeInvoice,
			Date:   &date,
			Items:  []DocumentItemInput{{ProductID: &product.ID, Quantity: 5}},
		})
		require.NoError(t, err)

		stored, _ := fx.productRepo.GetByID(ctx, userID, product.ID)
		assert.Equal(t, 30.0, stored.CurrentStock)
		assert.Empty(t, fx.movementRepo.all())
	})

	t.Run("sent creation propagates stock immediately", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		product := fx.productRepo.add(&entity.Product{
			UserID: userID, Name: "Carton", SellingPrice: 2,
			TrackInventory: true, CurrentStock: 30,
		})

		_, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID,
			Type:   enum.DocumentTypeInvoice,
			Status: enum.DocumentStatusSent,
			Date:   &date,
			Items:  []DocumentItemInput{{ProductID: &product.ID, Quantity: 5}},
		})
		require.NoError(t, err)

		stored, _ := fx.productRepo.GetByID(ctx, userID, product.ID)
		assert.Equal(t, 25.0, stored.CurrentStock)
		assert.Len(t, fx.movementRepo.all(), 1)
	})

	t.Run("rejections", func(t *testing.T) {
		fx := newDocumentServiceFixture()

		tests := []struct {
			name  string
			input *CreateDocumentInput
		}{
			{"no items", &CreateDocumentInput{UserID: userID, Type: enum.DocumentTypeInvoice}},
			{"paid status at creation", &CreateDocumentInput{
				UserID: userID, Type: enum.DocumentTypeInvoice, Status: enum.DocumentStatusPaid,
				Items: []DocumentItemInput{{Description: "X", Quantity: 1, UnitPrice: float64Ptr(1)}},
			}},
			{"zero quantity line", &CreateDocumentInput{
				UserID: userID, Type: enum.DocumentTypeInvoice,
				Items: []DocumentItemInput{{Description: "X", Quantity: 0, UnitPrice: float64Ptr(1)}},
			}},
			{"free-text line without description", &CreateDocumentInput{
				UserID: userID, Type: enum.DocumentTypeInvoice,
				Items: []DocumentItemInput{{Quantity: 1, UnitPrice: float64Ptr(1)}},
			}},
			{"unknown customer", &CreateDocumentInput{
				UserID: userID, Type: enum.DocumentTypeInvoice,
				CustomerID: &uuid.UUID{},
				Items:      []DocumentItemInput{{Description: "X", Quantity: 1, UnitPrice: float64Ptr(1)}},
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := fx.svc.Create(ctx, tt.input)
				assert.Error(t, err)
			})
		}
	})
}

func TestDocumentServiceUpdate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	create := func(fx *documentServiceFixture, status enum.DocumentStatus) *entity.Document {
		doc, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID,
			Type:   enum.DocumentTypeInvoice,
			Status: status,
			Date:   &date,
			Items:  []DocumentItemInput{{Description: "Prestation", Quantity: 2, UnitPrice: float64Ptr(100), TaxRate: float64Ptr(19)}},
		})
		require.NoError(t, err)
		return doc
	}

	t.Run("replacing items recomputes totals", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		doc := create(fx, enum.DocumentStatusDraft)

		updated, err := fx.svc.Update(ctx, userID, doc.ID, &UpdateDocumentInput{
			Items: []DocumentItemInput{{Description: "Prestation revue", Quantity: 1, UnitPrice: float64Ptr(50), TaxRate: float64Ptr(0)}},
		})
		require.NoError(t, err)

		require.Len(t, updated.Items, 1)
		assert.Equal(t, 50.0, updated.GrandTotal)
	})

	t.Run("header-only update keeps existing items", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		doc := create(fx, enum.DocumentStatusDraft)

		note := "Paiement sous 30 jours"
		updated, err := fx.svc.Update(ctx, userID, doc.ID, &UpdateDocumentInput{Note: &note})
		require.NoError(t, err)

		require.NotNil(t, updated.Note)
		assert.Equal(t, note, *updated.Note)
		assert.Len(t, updated.Items, 1)
	})

	t.Run("global discount reduces the grand total but not the tax", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		doc := create(fx, enum.DocumentStatusDraft)

		pct := enum.DiscountTypePercentage
		updated, err := fx.svc.Update(ctx, userID, doc.ID, &UpdateDocumentInput{
			DiscountValue: float64Ptr(10),
			DiscountType:  &pct,
		})
		require.NoError(t, err)

		assert.Equal(t, 20.0, updated.DiscountTotal)
		assert.Equal(t, 38.0, updated.TaxTotal)
		assert.Equal(t, 218.0, updated.GrandTotal)
	})

	t.Run("sent documents are immutable", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		doc := create(fx, enum.DocumentStatusSent)

		_, err := fx.svc.Update(ctx, userID, doc.ID, &UpdateDocumentInput{
			Items: []DocumentItemInput{{Description: "X", Quantity: 1, UnitPrice: float64Ptr(1)}},
		})
		assert.Error(t, err)
	})
}

func TestDocumentServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("finalizing a draft propagates stock", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		product := fx.productRepo.add(&entity.Product{
			UserID: userID, Name: "Carton", SellingPrice: 2,
			TrackInventory: true, CurrentStock: 30,
		})
		doc, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID,
			Type:   enum.DocumentTypeInvoice,
			Date:   &date,
			Items:  []DocumentItemInput{{ProductID: &product.ID, Quantity: 5}},
		})
		require.NoError(t, err)

		updated, err := fx.svc.UpdateStatus(ctx, userID, doc.ID, enum.DocumentStatusSent)
		require.NoError(t, err)
		assert.Equal(t, enum.DocumentStatusSent, updated.Status)

		stored, _ := fx.productRepo.GetByID(ctx, userID, product.ID)
		assert.Equal(t, 25.0, stored.CurrentStock)
		assert.Len(t, fx.movementRepo.all(), 1)
	})

	t.Run("derived states cannot be set directly", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		doc, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID, Type: enum.DocumentTypeInvoice, Date: &date,
			Items: []DocumentItemInput{{Description: "X", Quantity: 1, UnitPrice: float64Ptr(1)}},
		})
		require.NoError(t, err)

		for _, status := range []enum.DocumentStatus{
			enum.DocumentStatusPaid,
			enum.DocumentStatusPartial,
			enum.DocumentStatusConverted,
		} {
			_, err := fx.svc.UpdateStatus(ctx, userID, doc.ID, status)
			assert.Error(t, err, string(status))
		}
	})

	t.Run("sent documents cannot go back to draft", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		doc, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID, Type: enum.DocumentTypeInvoice,
			Status: enum.DocumentStatusSent, Date: &date,
			Items: []DocumentItemInput{{Description: "X", Quantity: 1, UnitPrice: float64Ptr(1)}},
		})
		require.NoError(t, err)

		_, err = fx.svc.UpdateStatus(ctx, userID, doc.ID, enum.DocumentStatusDraft)
		assert.Error(t, err)
	})
}

func TestDocumentServiceConvertQuote(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	createQuote := func(fx *documentServiceFixture) *entity.Document {
		quote, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID:        userID,
			Type:          enum.DocumentTypeQuote,
			Date:          &date,
			DiscountValue: 10,
			DiscountType:  enum.DiscountTypePercentage,
			Items: []DocumentItemInput{
				{Description: "Etude", Quantity: 1, UnitPrice: float64Ptr(1000), TaxRate: float64Ptr(19)},
			},
		})
		require.NoError(t, err)
		return quote
	}

	t.Run("produces a draft invoice and marks the quote converted", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		quote := createQuote(fx)

		invoice, err := fx.svc.ConvertQuote(ctx, userID, quote.ID)
		require.NoError(t, err)

		assert.Equal(t, enum.DocumentTypeInvoice, invoice.Type)
		assert.Equal(t, enum.DocumentStatusDraft, invoice.Status)
		assert.Equal(t, "FAC-2026-0001", invoice.Reference)
		require.Len(t, invoice.Items, 1)
		assert.Equal(t, quote.GrandTotal, invoice.GrandTotal)

		storedQuote, _ := fx.documentRepo.GetWithItems(ctx, userID, quote.ID)
		assert.Equal(t, enum.DocumentStatusConverted, storedQuote.Status)
		require.NotNil(t, storedQuote.ConvertedToID)
		assert.Equal(t, invoice.ID, *storedQuote.ConvertedToID)
		// the quote keeps its line items
		assert.Len(t, storedQuote.Items, 1)
	})

	t.Run("conversion creates no stock movements", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		product := fx.productRepo.add(&entity.Product{
			UserID: userID, Name: "Carton", SellingPrice: 2,
			TrackInventory: true, CurrentStock: 30,
		})
		quote, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID, Type: enum.DocumentTypeQuote, Date: &date,
			Items: []DocumentItemInput{{ProductID: &product.ID, Quantity: 5}},
		})
		require.NoError(t, err)

		_, err = fx.svc.ConvertQuote(ctx, userID, quote.ID)
		require.NoError(t, err)

		assert.Empty(t, fx.movementRepo.all())
	})

	t.Run("a quote converts only once", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		quote := createQuote(fx)

		_, err := fx.svc.ConvertQuote(ctx, userID, quote.ID)
		require.NoError(t, err)

		_, err = fx.svc.ConvertQuote(ctx, userID, quote.ID)
		assert.Error(t, err)
	})

	t.Run("invoices cannot be converted", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		invoice, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID, Type: enum.DocumentTypeInvoice, Date: &date,
			Items: []DocumentItemInput{{Description: "X", Quantity: 1, UnitPrice: float64Ptr(1)}},
		})
		require.NoError(t, err)

		_, err = fx.svc.ConvertQuote(ctx, userID, invoice.ID)
		assert.Error(t, err)
	})
}

func TestDocumentServiceDelete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("drafts can be deleted", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		doc, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID, Type: enum.DocumentTypeInvoice, Date: &date,
			Items: []DocumentItemInput{{Description: "X", Quantity: 1, UnitPrice: float64Ptr(1)}},
		})
		require.NoError(t, err)

		require.NoError(t, fx.svc.Delete(ctx, userID, doc.ID))

		stored, _ := fx.documentRepo.GetByID(ctx, userID, doc.ID)
		assert.Nil(t, stored)
	})

	t.Run("sent documents cannot be deleted", func(t *testing.T) {
		fx := newDocumentServiceFixture()
		doc, err := fx.svc.Create(ctx, &CreateDocumentInput{
			UserID: userID, Type: enum.DocumentTypeInvoice,
			Status: enum.DocumentStatusSent, Date: &date,
			Items: []DocumentItemInput{{Description: "X", Quantity: 1, UnitPrice: float64Ptr(1)}},
		})
		require.NoError(t, err)

		assert.Error(t, fx.svc.Delete(ctx, userID, doc.ID))
	})
}
