package value

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"harbour-market/pkg/errcodes"
)

// Money is an amount in minor units of its currency. Amounts never go
// negative in this domain.
type Money struct {
	MinorUnits int64
	Currency   string
}

func NewMoney(minorUnits int64, currency string) (Money, error) {
	if minorUnits <= 0 {
		return Money{}, failure.NewInvalidArgumentError(
			"amount must be positive",
			failure.WithCode(errcodes.InvalidAmount),
		)
	}

	if currency == "" {
		return Money{}, failure.NewInvalidArgumentError(
			"currency is empty",
			failure.WithCode(errcodes.InvalidAmount),
		)
	}

	return Money{MinorUnits: minorUnits, Currency: currency}, nil
}

func (m Money) String() string {
	const centsPerUnit = 100

	return fmt.Sprintf("%d.%02d %s", m.MinorUnits/centsPerUnit, m.MinorUnits%centsPerUnit, m.Currency)
}
