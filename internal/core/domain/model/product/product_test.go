package product_test

import (
	"testing"
	"time"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/product"
	"inventory/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func details() product.Details {
	return product.Details{
		CustomerName:  "Eve",
		ProductName:   "Album",
		Date:          time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC),
		Amount:        decimal.RequireFromString("99.90"),
		PaymentMethod: product.Online,
	}
}

func TestNewProduct(t *testing.T) {
	businessID, creator := kernel.NewUUID(), kernel.NewUUID()

	p, err := product.NewProduct(businessID, creator, details())

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.True(t, p.BusinessID().IsEqual(businessID))
	assert.True(t, p.CreatedByID().IsEqual(creator))
	assert.Equal(t, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), p.Details().Date)
}

func TestNewProduct_Invalid(t *testing.T) {
	d := details()
	d.ProductName = ""
	d.PaymentMethod = "CASH"

	_, err := product.NewProduct(kernel.NewUUID(), kernel.UUID{}, d)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "productName")
	assert.Contains(t, err.Error(), "paymentMethod")
	assert.Contains(t, err.Error(), "createdById")
}

func TestNewProduct_AmountMustFitStorage(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{name: "negative", amount: "-1", wantErr: errs.ErrValueIsInvalid},
		{name: "sub-cent precision", amount: "0.001", wantErr: errs.ErrValueIsInvalid},
		{name: "ten billion", amount: "10000000000", wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := details()
			d.Amount = decimal.RequireFromString(tt.amount)

			_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), d)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "amount")
		})
	}
}

func TestProduct_Revise(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), details())
	require.NoError(t, err)

	d := details()
	d.PaymentMethod = product.Offline
	require.NoError(t, p.Revise(d))
	assert.Equal(t, product.Offline, p.Details().PaymentMethod)

	d.Amount = decimal.NewFromInt(-5)
	assert.ErrorIs(t, p.Revise(d), errs.ErrValueIsInvalid)
	assert.Equal(t, product.Offline, p.Details().PaymentMethod)
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := product.ParsePaymentMethod("offline")
	require.NoError(t, err)
	assert.Equal(t, product.Offline, m)

	_, err = product.ParsePaymentMethod("card")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestProduct_ZeroValue(t *testing.T) {
	var p product.Product
	assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
}
