package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStock(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		typ      enum.MovementType
		quantity float64
		want     float64
	}{
		{"in adds", 10, enum.MovementTypeIn, 5, 15},
		{"out subtracts", 10, enum.MovementTypeOut, 4, 6},
		{"out below zero is allowed", 3, enum.MovementTypeOut, 5, -2},
		{"adjustment overwrites", 10, enum.MovementTypeAdjustment, 42, 42},
		{"adjustment to zero", 10, enum.MovementTypeAdjustment, 0, 0},
		{"fractional quantities", 1.5, enum.MovementTypeIn, 0.25, 1.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStock(tt.current, tt.typ, tt.quantity))
		})
	}
}

func TestStockServiceCreateMovement(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	setup := func() (*StockService, *fakeProductRepo, *fakeMovementRepo, *entity.Product) {
		productRepo := newFakeProductRepo()
		movementRepo := newFakeMovementRepo()
		product := productRepo.add(&entity.Product{
			UserID:         userID,
			Name:           "Cartons 40x40",
			TrackInventory: true,
			CurrentStock:   50,
		})
		return NewStockService(productRepo, movementRepo), productRepo, movementRepo, product
	}

	t.Run("in movement raises stock", func(t *testing.T) {
		svc, productRepo, movementRepo, product := setup()

		movement, err := svc.CreateMovement(ctx, &CreateMovementInput{
			UserID:    userID,
			ProductID: product.ID,
			Type:      enum.MovementTypeIn,
			Quantity:  10,
			Reason:    enum.MovementReasonPurchase,
		})
		require.NoError(t, err)
		assert.Equal(t, enum.MovementTypeIn, movement.Type)

		stored, _ := productRepo.GetByID(ctx, userID, product.ID)
		assert.Equal(t, 60.0, stored.CurrentStock)
		assert.Len(t, movementRepo.all(), 1)
	})

	t.Run("adjustment overwrites stock", func(t *testing.T) {
		svc, productRepo, _, product := setup()

		_, err := svc.CreateMovement(ctx, &CreateMovementInput{
			UserID:    userID,
			ProductID: product.ID,
			Type:      enum.MovementTypeAdjustment,
			Quantity:  12,
			Reason:    enum.MovementReasonInventory,
		})
		require.NoError(t, err)

		stored, _ := productRepo.GetByID(ctx, userID, product.ID)
		assert.Equal(t, 12.0, stored.CurrentStock)
	})

	t.Run("unknown product", func(t *testing.T) {
		svc, _, _, _ := setup()

		_, err := svc.CreateMovement(ctx, &CreateMovementInput{
			UserID:    userID,
			ProductID: uuid.New(),
			Type:      enum.MovementTypeIn,
			Quantity:  1,
			Reason:    enum.MovementReasonOther,
		})
		assert.Error(t, err)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		svc, _, _, product := setup()

		_, err := svc.CreateMovement(ctx, &CreateMovementInput{
			UserID:    userID,
			ProductID: product.ID,
			Type:      enum.MovementTypeIn,
			Quantity:  -5,
			Reason:    enum.MovementReasonOther,
		})
		assert.Error(t, err)
	})

	t.Run("movement kept when product update fails", func(t *testing.T) {
		svc, productRepo, movementRepo, product := setup()
		productRepo.updateStockErr = errors.New("connection reset")

		_, err := svc.CreateMovement(ctx, &CreateMovementInput{
			UserID:    userID,
			ProductID: product.ID,
			Type:      enum.MovementTypeIn,
			Quantity:  10,
			Reason:    enum.MovementReasonPurchase,
		})
		assert.Error(t, err)
		// the movement log is append-only and is written first
		assert.Len(t, movementRepo.all(), 1)
	})
}

func TestStockServicePropagateDocument(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newDoc := func(status enum.DocumentStatus, items ...entity.DocumentItem) *entity.Document {
		return &entity.Document{
			ID:     uuid.New(),
			UserID: userID,
			Type:   enum.DocumentTypeInvoice,
			Status: status,
			Items:  items,
		}
	}

	t.Run("records an out movement per tracked line", func(t *testing.T) {
		productRepo := newFakeProductRepo()
		movementRepo := newFakeMovementRepo()
		svc := NewStockService(productRepo, movementRepo)

		product := productRepo.add(&entity.Product{
			UserID:         userID,
			TrackInventory: true,
			CurrentStock:   50,
		})

		doc := newDoc(enum.DocumentStatusSent, entity.DocumentItem{ProductID: &product.ID, Quantity: 5})
		svc.PropagateDocument(ctx, doc)

		stored, _ := productRepo.GetByID(ctx, userID, product.ID)
		assert.Equal(t, 45.0, stored.CurrentStock)

		movements := movementRepo.all()
		require.Len(t, movements, 1)
		assert.Equal(t, enum.MovementTypeOut, movements[0].Type)
		assert.Equal(t, enum.MovementReasonSale, movements[0].Reason)
		require.NotNil(t, movements[0].DocumentID)
		assert.Equal(t, doc.ID, *movements[0].DocumentID)
	})

	t.Run("drafts are ignored", func(t *testing.T) {
		productRepo := newFakeProductRepo()
		movementRepo := newFakeMovementRepo()
		svc := NewStockService(productRepo, movementRepo)

		product := productRepo.add(&entity.Product{
			UserID:         userID,
			TrackInventory: true,
			CurrentStock:   50,
		})

		svc.PropagateDocument(ctx, newDoc(enum.DocumentStatusDraft, entity.DocumentItem{ProductID: &product.ID, Quantity: 5}))

		stored, _ := productRepo.GetByID(ctx, userID, product.ID)
		assert.Equal(t, 50.0, stored.CurrentStock)
		assert.Empty(t, movementRepo.all())
	})

	t.Run("untracked products are skipped", func(t *testing.T) {
		productRepo := newFakeProductRepo()
		movementRepo := newFakeMovementRepo()
		svc := NewStockService(productRepo, movementRepo)

		product := productRepo.add(&entity.Product{
			UserID:         userID,
			TrackInventory: false,
			CurrentStock:   50,
		})

		svc.PropagateDocument(ctx, newDoc(enum.DocumentStatusSent, entity.DocumentItem{ProductID: &product.ID, Quantity: 5}))

		stored, _ := productRepo.GetByID(ctx, userID, product.ID)
		assert.Equal(t, 50.0, stored.CurrentStock)
		assert.Empty(t, movementRepo.all())
	})

	t.Run("free-text lines and missing products never fail", func(t *testing.T) {
		productRepo := newFakeProductRepo()
		movementRepo := newFakeMovementRepo()
		svc := NewStockService(productRepo, movementRepo)

		missing := uuid.New()
		svc.PropagateDocument(ctx, newDoc(enum.DocumentStatusSent,
			entity.DocumentItem{Description: "Livraison", Quantity: 1},
			entity.DocumentItem{ProductID: &missing, Quantity: 2},
		))

		assert.Empty(t, movementRepo.all())
	})
}
