package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/angas/spotpris-go/calc"
	"github.com/angas/spotpris-go/logging"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type AppConfigFetch struct {
	// Price area to fetch for: "SE1", "SE2", "SE3", "SE4"
	Area string `mapstructure:"area"`
	// HTTP timeout for the upstream request in seconds, default: 30
	TimeoutSeconds *int `mapstructure:"timeout_seconds"`
}

func (f AppConfigFetch) GetTimeoutSeconds() int {
	if f.TimeoutSeconds == nil {
		return 30
	}
	return *f.TimeoutSeconds
}

type AppConfigTariff struct {
	VatRate    *float64 `mapstructure:"vat_rate"`     // VAT rate on the energy price (moms), default: 0.25
	EnergyTax  *float64 `mapstructure:"energy_tax"`   // Energy tax in SEK/kWh (energiskatt), default: 0.45
	FeeDay     *float64 `mapstructure:"fee_day"`      // Grid fee weekdays 06-22 in SEK/kWh, default: 0.70
	FeeOffPeak *float64 `mapstructure:"fee_off_peak"` // Grid fee nights/weekends in SEK/kWh, default: 0.12
}

// Tariff materializes the configured tariff, falling back to the
// defaults for unset fields.
func (t AppConfigTariff) Tariff() calc.Tariff {
	tariff := calc.DefaultTariff()
	if t.VatRate != nil {
		tariff.VatRate = decimal.NewFromFloat(*t.VatRate)
	}
	if t.EnergyTax != nil {
		tariff.EnergyTax = decimal.NewFromFloat(*t.EnergyTax)
	}
	if t.FeeDay != nil {
		tariff.DayFee = decimal.NewFromFloat(*t.FeeDay)
	}
	if t.FeeOffPeak != nil {
		tariff.OffPeakFee = decimal.NewFromFloat(*t.FeeOffPeak)
	}
	return tariff
}

type AppConfigLogging struct {
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Fetch   AppConfigFetch   `mapstructure:"fetch"`
	Tariff  AppConfigTariff  `mapstructure:"tariff"`
	Logging AppConfigLogging `mapstructure:"logging"`
}

// Load reads the YAML config at path, or from config/config.yaml when
// path is empty. A missing default config file is not an error, the
// defaults apply.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("config")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("fetch.area", "SE3")
	v.SetDefault("fetch.timeout_seconds", nil)
	v.SetDefault("tariff.vat_rate", nil)
	v.SetDefault("tariff.energy_tax", nil)
	v.SetDefault("tariff.fee_day", nil)
	v.SetDefault("tariff.fee_off_peak", nil)
	v.SetDefault("logging.console_level", nil)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var c AppConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	return &c, nil
}
