package types

import (
	"context"
	"time"

	"github.com/angas/spotpris-go/hours"
	"github.com/shopspring/decimal"
)

// PriceRecord is one hour's price breakdown in SEK per kWh.
type PriceRecord struct {
	StartTime time.Time // Beginning of the priced hour, Stockholm time
	Energy    decimal.Decimal
	Vat       decimal.Decimal
	Fee       decimal.Decimal
	Tax       decimal.Decimal
}

// Sum is the total price for the hour: energy + VAT + fee + tax.
func (p PriceRecord) Sum() decimal.Decimal {
	return p.Energy.Add(p.Vat).Add(p.Fee).Add(p.Tax)
}

// PriceFetcher retrieves the full price breakdown for one area and one
// calendar day. Implementations return either the whole day or an error,
// never a partial sequence.
type PriceFetcher interface {
	GetPrices(ctx context.Context, area Area, date hours.Date) ([]PriceRecord, error)
}
