package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/angas/spotpris-go/config"
	"github.com/angas/spotpris-go/elprisetjustnu"
	"github.com/angas/spotpris-go/hours"
	"github.com/angas/spotpris-go/logging"
	"github.com/angas/spotpris-go/nordpool"
	"github.com/angas/spotpris-go/slice"
	"github.com/angas/spotpris-go/types"
)

var Version = "?.?.?"

func main() {
	configPath := flag.String("config", "", "path to config file")
	areaFlag := flag.String("area", "", "price area SE1-SE4, overrides config")
	dateFlag := flag.String("date", "", "day to fetch as YYYY-MM-DD, default today")
	sourceFlag := flag.String("source", "nordpool", "price source: nordpool or elprisetjustnu")
	flag.Parse()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(logging.NewConsoleHandler(os.Stderr, cnfg.Logging.GetConsoleLevel()))
	slog.SetDefault(logger)
	logger.Debug("spotpris is starting...", slog.String("version", Version))

	areaStr := cnfg.Fetch.Area
	if *areaFlag != "" {
		areaStr = *areaFlag
	}
	area, err := types.ParseArea(areaStr)
	if err != nil {
		exitWithError(logger, fmt.Errorf("invalid area %q: %w", areaStr, err))
	}

	date := hours.Today()
	if *dateFlag != "" {
		if date, err = hours.ParseDate(*dateFlag); err != nil {
			exitWithError(logger, err)
		}
	}

	tariff := cnfg.Tariff.Tariff()
	var fetcher types.PriceFetcher
	switch *sourceFlag {
	case "nordpool":
		fetcher = nordpool.New(tariff)
	case "elprisetjustnu":
		fetcher = elprisetjustnu.New(tariff)
	default:
		exitWithError(logger, fmt.Errorf("unknown source %q", *sourceFlag))
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cnfg.Fetch.GetTimeoutSeconds())*time.Second)
	defer cancel()

	prices, err := fetcher.GetPrices(ctx, area, date)
	if err != nil {
		exitWithError(logger, fmt.Errorf("failed to fetch prices for %s %s: %w", area, date, err))
	}

	fmt.Printf("%-18s%10s%10s%10s%10s%10s\n", "Hour", "Energy", "VAT", "Fee", "Tax", "Total")
	for _, line := range slice.Map(prices, formatRow) {
		fmt.Println(line)
	}

	logger.Debug("done", slog.String("area", area.String()), slog.Int("noOfHours", len(prices)))
}

func formatRow(p types.PriceRecord) string {
	return fmt.Sprintf("%-18s%10s%10s%10s%10s%10s",
		p.StartTime.Format("2006-01-02 15:04"),
		p.Energy.StringFixed(2),
		p.Vat.StringFixed(2),
		p.Fee.StringFixed(2),
		p.Tax.StringFixed(2),
		p.Sum().StringFixed(2))
}

func exitWithError(logger *slog.Logger, err error) {
	logger.Error(err.Error())
	os.Exit(1)
}
