package service

import (
	"context"
	"testing"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentServiceRecordPayment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	// a sent invoice worth 238.00 (200.00 + 19% tax)
	seedInvoice := func(docRepo *fakeDocumentRepo, status enum.DocumentStatus) *entity.Document {
		doc := &entity.Document{
			UserID: userID,
			Type:   enum.DocumentTypeInvoice,
			Status: status,
			Items: []entity.DocumentItem{
				{Description: "Prestation", Quantity: 2, UnitPrice: 100, TaxRate: 19},
			},
		}
		ComputeLineTotals(&doc.Items[0])
		ComputeDocumentTotals(doc)
		require.NoError(t, docRepo.Create(ctx, doc))
		return doc
	}

	t.Run("full payment marks the document paid", func(t *testing.T) {
		docRepo := newFakeDocumentRepo()
		paymentRepo := newFakePaymentRepo()
		svc := NewPaymentService(paymentRepo, docRepo)
		doc := seedInvoice(docRepo, enum.DocumentStatusSent)

		payment, err := svc.RecordPayment(ctx, &RecordPaymentInput{
			UserID:     userID,
			DocumentID: doc.ID,
			Amount:     238,
			Method:     enum.PaymentMethodTransfer,
		})
		require.NoError(t, err)
		assert.Equal(t, enum.PaymentStatusCompleted, payment.Status)

		stored, _ := docRepo.GetWithItems(ctx, userID, doc.ID)
		assert.Equal(t, enum.DocumentStatusPaid, stored.Status)
		assert.Equal(t, 238.0, stored.AmountPaid)
		assert.Equal(t, 0.0, stored.AmountDue)
		// the header update must not wipe the stored line items
		assert.Len(t, stored.Items, 1)
	})

	t.Run("partial payment marks the document partial", func(t *testing.T) {
		docRepo := newFakeDocumentRepo()
		paymentRepo := newFakePaymentRepo()
		svc := NewPaymentService(paymentRepo, docRepo)
		doc := seedInvoice(docRepo, enum.DocumentStatusSent)

		_, err := svc.RecordPayment(ctx, &RecordPaymentInput{
			UserID:     userID,
			DocumentID: doc.ID,
			Amount:     100,
			Method:     enum.PaymentMethodCash,
		})
		require.NoError(t, err)

		stored, _ := docRepo.GetWithItems(ctx, userID, doc.ID)
		assert.Equal(t, enum.DocumentStatusPartial, stored.Status)
		assert.Equal(t, 100.0, stored.AmountPaid)
		assert.Equal(t, 138.0, stored.AmountDue)
	})

	t.Run("overpayment is allowed and the due amount goes negative", func(t *testing.T) {
		docRepo := newFakeDocumentRepo()
		paymentRepo := newFakePaymentRepo()
		svc := NewPaymentService(paymentRepo, docRepo)
		doc := seedInvoice(docRepo, enum.DocumentStatusSent)

		_, err := svc.RecordPayment(ctx, &RecordPaymentInput{
			UserID:     userID,
			DocumentID: doc.ID,
			Amount:     300,
		})
		require.NoError(t, err)

		stored, _ := docRepo.GetWithItems(ctx, userID, doc.ID)
		assert.Equal(t, enum.DocumentStatusPaid, stored.Status)
		assert.Equal(t, -62.0, stored.AmountDue)
	})

	t.Run("second payment completes a partially paid document", func(t *testing.T) {
		docRepo := newFakeDocumentRepo()
		paymentRepo := newFakePaymentRepo()
		svc := NewPaymentService(paymentRepo, docRepo)
		doc := seedInvoice(docRepo, enum.DocumentStatusSent)

		_, err := svc.RecordPayment(ctx, &RecordPaymentInput{UserID: userID, DocumentID: doc.ID, Amount: 38})
		require.NoError(t, err)
		_, err = svc.RecordPayment(ctx, &RecordPaymentInput{UserID: userID, DocumentID: doc.ID, Amount: 200})
		require.NoError(t, err)

		stored, _ := docRepo.GetWithItems(ctx, userID, doc.ID)
		assert.Equal(t, enum.DocumentStatusPaid, stored.Status)
		assert.Equal(t, 238.0, stored.AmountPaid)

		payments, err := svc.ListByDocument(ctx, userID, doc.ID)
		require.NoError(t, err)
		assert.Len(t, payments, 2)
	})

	t.Run("drafts cannot receive payments", func(t *testing.T) {
		docRepo := newFakeDocumentRepo()
		paymentRepo := newFakePaymentRepo()
		svc := NewPaymentService(paymentRepo, docRepo)
		doc := seedInvoice(docRepo, enum.DocumentStatusDraft)

		_, err := svc.RecordPayment(ctx, &RecordPaymentInput{UserID: userID, DocumentID: doc.ID, Amount: 50})
		assert.Error(t, err)
	})

	t.Run("amount must be positive", func(t *testing.T) {
		docRepo := newFakeDocumentRepo()
		paymentRepo := newFakePaymentRepo()
		svc := NewPaymentService(paymentRepo, docRepo)
		doc := seedInvoice(docRepo, enum.DocumentStatusSent)

		_, err := svc.RecordPayment(ctx, &RecordPaymentInput{UserID: userID, DocumentID: doc.ID, Amount: 0})
		assert.Error(t, err)
		_, err = svc.RecordPayment(ctx, &RecordPaymentInput{UserID: userID, DocumentID: doc.ID, Amount: -10})
		assert.Error(t, err)
	})

	t.Run("unknown document", func(t *testing.T) {
		svc := NewPaymentService(newFakePaymentRepo(), newFakeDocumentRepo())

		_, err := svc.RecordPayment(ctx, &RecordPaymentInput{UserID: userID, DocumentID: uuid.New(), Amount: 10})
		assert.Error(t, err)
	})

	t.Run("another user's document is not reachable", func(t *testing.T) {
		docRepo := newFakeDocumentRepo()
		paymentRepo := newFakePaymentRepo()
		svc := NewPaymentService(paymentRepo, docRepo)
		doc := seedInvoice(docRepo, enum.DocumentStatusSent)

		_, err := svc.RecordPayment(ctx, &RecordPaymentInput{UserID: uuid.New(), DocumentID: doc.ID, Amount: 10})
		assert.Error(t, err)
	})
}
