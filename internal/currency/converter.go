// Package currency resolves amounts into a user's base currency using a
// frankfurter-style historical rates API.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/expensehub/expense-tracker/internal/common"
)

// Converter looks up the value of amount in toCurrency as of a given date.
type Converter interface {
	Convert(ctx context.Context, amount float64, fromCurrency, toCurrency string, asOf time.Time) (float64, error)
}

// Config for the rates client.
type Config struct {
	BaseURL string        // default https://api.frankfurter.app
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.frankfurter.app"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Convert fetches the historical rate for asOf and applies it. Identical
// source and target codes short-circuit without a network call.
func (c *Client) Convert(ctx context.Context, amount float64, fromCurrency, toCurrency string, asOf time.Time) (float64, error) {
	from := strings.ToUpper(strings.TrimSpace(fromCurrency))
	to := strings.ToUpper(strings.TrimSpace(toCurrency))
	if from == to {
		return amount, nil
	}
	if len(from) != 3 || len(to) != 3 {
		return 0, common.NewAppError("CONVERSION_ERROR",
			fmt.Sprintf("unrecognized currency pair %q/%q", fromCurrency, toCurrency), common.ErrConversion)
	}

	endpoint := fmt.Sprintf("%s/%s?%s",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		asOf.Format("2006-01-02"),
		url.Values{
			"amount": {fmt.Sprintf("%v", amount)},
			"from":   {from},
			"to":     {to},
		}.Encode(),
	)

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build rates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("currency.convert.send_error", "from", from, "to", to, "error", err)
		return 0, common.NewAppError("CONVERSION_ERROR", "rate service unreachable", common.ErrConversion)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("currency.convert.body_close_error", "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	c.logger.Info("currency.convert.response",
		"from", from,
		"to", to,
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode/100 != 2 {
		return 0, common.NewAppError("CONVERSION_ERROR",
			fmt.Sprintf("rate lookup returned status %d", resp.StatusCode), common.ErrConversion)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return 0, common.NewAppError("CONVERSION_ERROR", "malformed rate response", common.ErrConversion)
	}
	converted, ok := body.Rates[to]
	if !ok {
		return 0, common.NewAppError("CONVERSION_ERROR",
			fmt.Sprintf("no rate for %s on %s", to, asOf.Format("2006-01-02")), common.ErrConversion)
	}
	return converted, nil
}
