package elprisetjustnu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/angas/spotpris-go/calc"
	"github.com/angas/spotpris-go/hours"
	"github.com/angas/spotpris-go/types"
	"github.com/shopspring/decimal"
)

const apiURL = "https://www.elprisetjustnu.se/api/v1"

type rawPrice struct {
	SEKPerKWh float64   `json:"SEK_per_kWh"`
	EURPerKWh float64   `json:"EUR_per_kWh"`
	EXR       float64   `json:"EXR"`
	TimeStart time.Time `json:"time_start"`
	TimeEnd   time.Time `json:"time_end"`
}

// ElPrisetJustNu fetches hourly spot prices from elprisetjustnu.se,
// which serves them in SEK per kWh with full timezone offsets.
type ElPrisetJustNu struct {
	BaseURL string
	Client  *http.Client
	tariff  calc.Tariff
}

func New(tariff calc.Tariff) *ElPrisetJustNu {
	return &ElPrisetJustNu{
		BaseURL: apiURL,
		Client:  &http.Client{},
		tariff:  tariff,
	}
}

// GetPrices returns the price breakdown for every hour of the given
// Stockholm calendar day, in ascending start-time order. Either the full
// day is returned or an error, never a partial sequence.
func (e *ElPrisetJustNu) GetPrices(ctx context.Context, area types.Area, date hours.Date) ([]types.PriceRecord, error) {
	if !area.Valid() {
		return nil, types.ErrUnsupportedArea
	}

	url := fmt.Sprintf("%s/prices/%d/%02d-%02d_%s.json",
		e.BaseURL, date.Year, int(date.Month), date.Day, area)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, &types.NetworkError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, &types.NetworkError{Err: fmt.Errorf("failed to fetch prices: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &types.NetworkError{Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	var rawPrices []rawPrice
	if err := json.NewDecoder(resp.Body).Decode(&rawPrices); err != nil {
		return nil, &types.ParseError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	records, err := e.mapRecords(rawPrices, date)
	if err != nil {
		return nil, &types.ParseError{Err: err}
	}

	return records, nil
}

func (e *ElPrisetJustNu) mapRecords(rawPrices []rawPrice, date hours.Date) ([]types.PriceRecord, error) {
	records := make([]types.PriceRecord, 0, len(rawPrices))

	for _, raw := range rawPrices {
		start := raw.TimeStart.In(hours.Stockholm())
		if hours.FromTime(start) != date {
			return nil, fmt.Errorf("entry at %s is outside requested day %s", raw.TimeStart, date)
		}
		if len(records) > 0 && !records[len(records)-1].StartTime.Before(start) {
			return nil, fmt.Errorf("entries not in ascending start-time order at %s", raw.TimeStart)
		}
		records = append(records, e.tariff.Compose(start, decimal.NewFromFloat(raw.SEKPerKWh)))
	}

	if len(records) != date.Hours() {
		return nil, fmt.Errorf("expected %d hourly entries for %s, got %d", date.Hours(), date, len(records))
	}

	return records, nil
}
