package payments

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"globalpay_gateway/internal/domain/entities"
)

const (
	// DefaultBaseURL is the Global Payments certification endpoint.
	DefaultBaseURL = "https://certapia.globalpay.com/GlobalPay/"

	defaultTimeout = 30 * time.Second
)

var (
	ErrMissingGlobalPaymentsCredentials = errors.New("missing GLOBALPAY_USERNAME or GLOBALPAY_PASSWORD")
	ErrInvalidGlobalPaymentsConfig      = errors.New("invalid global payments configuration")
)

// Config is read once at construction and never mutated afterwards.
type Config struct {
	Username    string
	Password    string
	BaseURL     string
	MoneyFormat entities.MoneyFormat
	Timeout     time.Duration
}

// ConfigFromEnv reads the gateway configuration.
//
// Supported env vars:
//   - GLOBALPAY_USERNAME, GLOBALPAY_PASSWORD (required)
//   - GLOBALPAY_BASE_URL (default: certification endpoint)
//   - GLOBALPAY_MONEY_FORMAT (dollars|cents, default: dollars)
//   - GLOBALPAY_TIMEOUT (Go duration, default: 30s)
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Username: strings.TrimSpace(os.Getenv("GLOBALPAY_USERNAME")),
		Password: os.Getenv("GLOBALPAY_PASSWORD"),
		BaseURL:  getenvDefault("GLOBALPAY_BASE_URL", DefaultBaseURL),
		Timeout:  defaultTimeout,
	}

	format, err := entities.ParseMoneyFormat(getenvDefault("GLOBALPAY_MONEY_FORMAT", string(entities.MoneyFormatDollars)))
	if err != nil {
		return Config{}, fmt.Errorf("%w: GLOBALPAY_MONEY_FORMAT: %v", ErrInvalidGlobalPaymentsConfig, err)
	}
	cfg.MoneyFormat = format

	if raw := os.Getenv("GLOBALPAY_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: GLOBALPAY_TIMEOUT=%q", ErrInvalidGlobalPaymentsConfig, raw)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Username == "" || c.Password == "" {
		return ErrMissingGlobalPaymentsCredentials
	}
	if _, err := entities.ParseMoneyFormat(string(c.MoneyFormat)); err != nil {
		return fmt.Errorf("%w: money format %q", ErrInvalidGlobalPaymentsConfig, c.MoneyFormat)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
