package service

import (
	"github.com/Malmeu/facturier-sub001/internal/domain/entity"
	"github.com/Malmeu/facturier-sub001/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeLineTotals recomputes the monetary fields of a single line item.
// Each intermediate value is rounded to 2 decimal places.
func ComputeLineTotals(item *entity.DocumentItem) {
	qty := decimal.NewFromFloat(item.Quantity)
	price := decimal.NewFromFloat(item.UnitPrice)
	base := qty.Mul(price)

	sub := base
	if item.DiscountValue != 0 {
		discount := decimal.NewFromFloat(item.DiscountValue)
		if item.DiscountType == enum.DiscountTypeFixed {
			sub = base.Sub(discount)
		} else {
			sub = base.Mul(oneHundred.Sub(discount)).Div(oneHundred)
		}
	}
	sub = sub.Round(2)

	tax := sub.Mul(decimal.NewFromFloat(item.TaxRate)).Div(oneHundred).Round(2)

	item.SubTotal, _ = sub.Float64()
	item.TaxAmount, _ = tax.Float64()
	item.Total, _ = sub.Add(tax).Round(2).Float64()
}

// ComputeDocumentTotals recomputes every monetary field of a document from
// its line items, global discount and payments. It is a pure transform with
// no error conditions: missing numeric fields count as zero.
//
// The tax total is computed from the line items before the global discount
// is applied; the global discount reduces the taxable amount but never the
// tax already charged per line.
func ComputeDocumentTotals(doc *entity.Document) {
	subTotal := decimal.Zero
	taxTotal := decimal.Zero

	for i := range doc.Items {
		ComputeLineTotals(&doc.Items[i])
		subTotal = subTotal.Add(decimal.NewFromFloat(doc.Items[i].SubTotal))
		taxTotal = taxTotal.Add(decimal.NewFromFloat(doc.Items[i].TaxAmount))
	}
	subTotal = subTotal.Round(2)
	taxTotal = taxTotal.Round(2)

	discountTotal := decimal.Zero
	if doc.DiscountValue != 0 {
		discount := decimal.NewFromFloat(doc.DiscountValue)
		if doc.DiscountType == enum.DiscountTypeFixed {
			discountTotal = discount
		} else {
			discountTotal = subTotal.Mul(discount).Div(oneHundred)
		}
		discountTotal = discountTotal.Round(2)
	}

	taxableAmount := subTotal.Sub(discountTotal).Round(2)
	grandTotal := taxableAmount.Add(taxTotal).Round(2)

	amountPaid := decimal.Zero
	for i := range doc.Payments {
		amountPaid = amountPaid.Add(decimal.NewFromFloat(doc.Payments[i].Amount))
	}
	amountPaid = amountPaid.Round(2)

	doc.SubTotal, _ = subTotal.Float64()
	doc.DiscountTotal, _ = discountTotal.Float64()
	doc.TaxableAmount, _ = taxableAmount.Float64()
	doc.TaxTotal, _ = taxTotal.Float64()
	doc.GrandTotal, _ = grandTotal.Float64()
	doc.AmountPaid, _ = amountPaid.Float64()
	doc.AmountDue, _ = grandTotal.Sub(amountPaid).Round(2).Float64()
}

// DerivePaymentStatus returns the status a document should carry after its
// totals have been recomputed: paid once nothing is due, partial once any
// amount has been received, otherwise the current status is kept.
func DerivePaymentStatus(doc *entity.Document) enum.DocumentStatus {
	if doc.AmountDue <= 0 {
		return enum.DocumentStatusPaid
	}
	if doc.AmountPaid > 0 {
		return enum.DocumentStatusPartial
	}
	return doc.Status
}
