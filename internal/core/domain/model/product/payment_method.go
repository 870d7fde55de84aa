package product

import (
	"fmt"
	"strings"

	"inventory/internal/pkg/errs"
)

type PaymentMethod string

const (
	Online  PaymentMethod = "ONLINE"
	Offline PaymentMethod = "OFFLINE"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	if m != Online && m != Offline {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q must be ONLINE or OFFLINE", string(m)))
	}
	return nil
}

func (m PaymentMethod) String() string {
	return string(m)
}
