package nordpool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/angas/spotpris-go/calc"
	"github.com/angas/spotpris-go/convert"
	"github.com/angas/spotpris-go/hours"
	"github.com/angas/spotpris-go/slice"
	"github.com/angas/spotpris-go/types"
)

const (
	apiURL = "https://www.nordpoolgroup.com/api"

	// Naive local timestamp as found in the row StartTime fields
	rowTimeLayout = "2006-01-02T15:04:05"
)

// Nordpool fetches hourly spot prices from the Nordpool market data API
// and composes them with a tariff into full price breakdowns.
type Nordpool struct {
	BaseURL string
	Client  *http.Client
	tariff  calc.Tariff
}

func New(tariff calc.Tariff) *Nordpool {
	return &Nordpool{
		BaseURL: apiURL,
		Client:  &http.Client{},
		tariff:  tariff,
	}
}

// GetPrices returns the price breakdown for every hour of the given
// Stockholm calendar day, in ascending start-time order. Either the full
// day is returned or an error, never a partial sequence.
func (n *Nordpool) GetPrices(ctx context.Context, area types.Area, date hours.Date) ([]types.PriceRecord, error) {
	if !area.Valid() {
		return nil, types.ErrUnsupportedArea
	}

	url := fmt.Sprintf("%s/marketdata/page/10?currency=SEK&endDate=%s",
		n.BaseURL,
		date.Start().Format("02-01-2006"))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, &types.NetworkError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := n.Client.Do(req)
	if err != nil {
		return nil, &types.NetworkError{Err: fmt.Errorf("failed to fetch prices: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &types.NetworkError{Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	var p page
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, &types.ParseError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	records, err := n.mapRecords(p, area, date)
	if err != nil {
		return nil, &types.ParseError{Err: err}
	}

	return records, nil
}

// mapRecords turns the raw page into one record per hour of the day.
// Start times are derived from the day's midnight rather than from the
// naive row timestamps, which carry no UTC offset and repeat an hour on
// the autumn DST transition. Each row's wall clock is cross-checked
// against its StartTime field.
func (n *Nordpool) mapRecords(p page, area types.Area, date hours.Date) ([]types.PriceRecord, error) {
	dayStart := date.Start()
	records := make([]types.PriceRecord, 0, date.Hours())

	for _, r := range p.Data.Rows {
		if r.IsExtraRow || r.IsNtcRow {
			continue
		}

		col, ok := slice.Find(r.Columns, func(c column) bool { return c.Name == area.String() })
		if !ok {
			return nil, fmt.Errorf("no column for area %s in row %q", area, r.StartTime)
		}

		// "-" marks an hour without a price, e.g. the skipped spring DST hour
		if v := strings.TrimSpace(col.Value); v == "" || v == "-" {
			continue
		}

		perMWh, err := convert.ParseDecimalComma(col.Value)
		if err != nil {
			return nil, err
		}

		naive, err := time.Parse(rowTimeLayout, r.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid row start time %q: %w", r.StartTime, err)
		}

		start := dayStart.Add(time.Duration(len(records)) * time.Hour)
		if naive.Hour() != start.Hour() {
			return nil, fmt.Errorf("row start time %q does not match expected wall clock %02d:00", r.StartTime, start.Hour())
		}

		records = append(records, n.tariff.Compose(start, convert.PerMWhToPerKWh(perMWh)))
	}

	if len(records) != date.Hours() {
		return nil, fmt.Errorf("expected %d hourly rows for %s, got %d", date.Hours(), date, len(records))
	}

	return records, nil
}
