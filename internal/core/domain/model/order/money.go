package order

import (
	"fmt"

	"inventory/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits a stored amount keeps.
const MoneyScale = 2

// MaxMoney is the exclusive upper bound of a stored amount (numeric(12,2)).
var MaxMoney = decimal.New(1, 10)

// ValidateMoney checks that v fits a numeric(12,2) column without rounding.
func ValidateMoney(paramName string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%s is negative", v))
	}
	if v.GreaterThanOrEqual(MaxMoney) {
		return errs.NewValueIsOutOfRangeError(paramName, v, 0, MaxMoney.Sub(decimal.New(1, -MoneyScale)))
	}
	if !v.Equal(v.Truncate(MoneyScale)) {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s has more than %d decimal places", v, MoneyScale))
	}
	return nil
}
