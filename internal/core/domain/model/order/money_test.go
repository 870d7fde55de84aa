package order_test

import (
	"testing"

	"inventory/internal/core/domain/model/kernel"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMoney(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "zero", value: "0"},
		{name: "cents", value: "10.55"},
		{name: "trailing zeros are not extra precision", value: "10.500"},
		{name: "largest storable", value: "9999999999.99"},
		{name: "negative", value: "-0.01", wantErr: errs.ErrValueIsInvalid},
		{name: "sub-cent precision", value: "10.555", wantErr: errs.ErrValueIsInvalid},
		{name: "ten billion", value: "10000000000", wantErr: errs.ErrValueIsOutOfRange},
		{name: "exponent form", value: "1e12", wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := order.ValidateMoney("amount", decimal.RequireFromString(tt.value))

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "amount")
		})
	}
}

func TestNewOrder_RejectsUnstorableAmounts(t *testing.T) {
	t.Run("amount above column range", func(t *testing.T) {
		d := validDetails()
		d.Amount = decimal.RequireFromString("10000000000")

		_, err := order.NewOrder(kernel.NewUUID(), d, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("worker amount with sub-cent precision", func(t *testing.T) {
		d := validDetails()
		d.WorkerAmount = decimal.RequireFromString("10.555")

		_, err := order.NewOrder(kernel.NewUUID(), d, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "workerAmount")
	})
}
