package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsServiceGetOrCreate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc := NewSettingsService(newFakeSettingsRepo())

	settings, err := svc.GetOrCreate(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, "FAC-{YEAR}-{SEQUENCE}", settings.InvoiceFormat)
	assert.Equal(t, "DEV-{YEAR}-{SEQUENCE}", settings.QuoteFormat)
	assert.Equal(t, 1, settings.NextInvoiceNumber)
	assert.Equal(t, 1, settings.NextQuoteNumber)
	assert.Equal(t, "EUR", settings.Currency)
	assert.Equal(t, 19.0, settings.DefaultTaxRate)

	again, err := svc.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestSettingsServiceUpdate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("partial update", func(t *testing.T) {
		svc := NewSettingsService(newFakeSettingsRepo())

		format := "INV/{YEAR}/{SEQUENCE}"
		currency := "DZD"
		updated, err := svc.Update(ctx, userID, &UpdateSettingsInput{
			InvoiceFormat: &format,
			Currency:      &currency,
		})
		require.NoError(t, err)

		assert.Equal(t, format, updated.InvoiceFormat)
		assert.Equal(t, "DZD", updated.Currency)
		// untouched fields keep their defaults
		assert.Equal(t, "DEV-{YEAR}-{SEQUENCE}", updated.QuoteFormat)
		assert.Equal(t, 19.0, updated.DefaultTaxRate)
	})

	t.Run("empty format rejected", func(t *testing.T) {
		svc := NewSettingsService(newFakeSettingsRepo())

		empty := ""
		_, err := svc.Update(ctx, userID, &UpdateSettingsInput{InvoiceFormat: &empty})
		assert.Error(t, err)
	})

	t.Run("negative tax rate rejected", func(t *testing.T) {
		svc := NewSettingsService(newFakeSettingsRepo())

		rate := -1.0
		_, err := svc.Update(ctx, userID, &UpdateSettingsInput{DefaultTaxRate: &rate})
		assert.Error(t, err)
	})
}
