package calc

import (
	"time"

	"github.com/angas/spotpris-go/convert"
	"github.com/angas/spotpris-go/types"
	"github.com/shopspring/decimal"
)

// Tariff holds the fixed price components added on top of the hourly
// spot price. All amounts are in SEK per kWh.
type Tariff struct {
	VatRate    decimal.Decimal // VAT rate on the energy price, e.g. 0.25 (moms)
	EnergyTax  decimal.Decimal // Energy tax (energiskatt)
	DayFee     decimal.Decimal // Grid transfer fee weekdays 06-22 (överföringsavgift)
	OffPeakFee decimal.Decimal // Grid transfer fee nights and weekends
}

func DefaultTariff() Tariff {
	return Tariff{
		VatRate:    decimal.New(25, -2),
		EnergyTax:  convert.Ore(45),
		DayFee:     convert.Ore(70),
		OffPeakFee: convert.Ore(12),
	}
}

// GridFee returns the transfer fee in effect at the given hour. The
// off-peak fee applies 00-06 and 22-24 on weekdays and all weekend hours.
func (t Tariff) GridFee(at time.Time) decimal.Decimal {
	switch at.Weekday() {
	case time.Saturday, time.Sunday:
		return t.OffPeakFee
	}
	if h := at.Hour(); h < 6 || h >= 22 {
		return t.OffPeakFee
	}
	return t.DayFee
}

// Compose builds the full price breakdown for one hour from its spot
// price. Pure function, no rounding.
func (t Tariff) Compose(start time.Time, energy decimal.Decimal) types.PriceRecord {
	return types.PriceRecord{
		StartTime: start,
		Energy:    energy,
		Vat:       energy.Mul(t.VatRate),
		Fee:       t.GridFee(start),
		Tax:       t.EnergyTax,
	}
}
