package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/llm"
)

// ExtractExpense implements llm.Extractor using vision chat/completions:
// the receipt image goes up as a data URL alongside the extraction prompt,
// and the response is validated against the expense JSON schema before use.
func (c *Client) ExtractExpense(ctx context.Context, req llm.ExtractRequest) (entity.ExtractionResult, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"image_bytes", len(req.Image),
		"mime_type", req.MIMEType,
	)

	if len(req.Image) == 0 {
		return entity.ExtractionResult{}, nil,
			common.NewAppError("EXTRACTION_ERROR", "empty image", common.ErrExtraction)
	}

	schema := llm.BuildExpenseJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(req.DefaultCurrency) + "\n\nJSON Schema:\n" + mustJSON(schema)},
			{"role": "user", "content": []map[string]any{
				{"type": "text", "text": userPrompt},
				{"type": "image_url", "image_url": map[string]any{
					"url": llm.EncodeDataURL(req.Image, req.MIMEType),
				}},
			}},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.ExtractionResult{}, nil,
			common.NewAppError("EXTRACTION_ERROR", "extraction service unavailable", common.ErrExtraction)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.ExtractionResult{}, raw,
			common.NewAppError("EXTRACTION_ERROR", "malformed completion response", common.ErrExtraction)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("llm.extract.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.ExtractionResult{}, raw,
			common.NewAppError("EXTRACTION_ERROR", "no choices in completion response", common.ErrExtraction)
	}
	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	// Validate strictly first; retry once after a lenient sanitize pass.
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		cleaned, changed, sErr := llm.SanitizeFields(rawContent)
		if sErr != nil || llm.ValidateJSONAgainstSchema(schema, cleaned) != nil {
			c.logger.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return entity.ExtractionResult{}, rawContent,
				common.NewAppError("EXTRACTION_ERROR", "response failed schema validation", common.ErrExtraction)
		}
		c.logger.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "changed", changed,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var fields llm.ExpenseFields
	if err := json.Unmarshal(rawContent, &fields); err != nil {
		return entity.ExtractionResult{}, rawContent,
			common.NewAppError("EXTRACTION_ERROR", "unmarshal extraction fields", common.ErrExtraction)
	}

	category, _ := constants.Canonicalize(fields.Category)
	result := entity.ExtractionResult{
		TxDate:       fields.TxDate,
		Vendor:       fields.Vendor,
		Amount:       fields.Amount,
		CurrencyCode: strings.ToUpper(fields.CurrencyCode),
		Category:     category,
		Location:     fields.Location,
		Details:      fields.Details,
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"vendor", result.Vendor,
		"category", result.Category,
		"currency", result.CurrencyCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, rawContent, nil
}

func (c *Client) post(ctx context.Context, url string, body any) ([]byte, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("llm.http.response_body_close_error", "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return raw, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, nil
}

const userPrompt = `Extract travel expense details from this receipt image.
Return the data in a structured JSON format.
Categorize the expense into one of: Hotel, Transport, Meal, or Other.
Include the specific location if mentioned (city/country).
Describe the details briefly (e.g., "Dinner at Italian restaurant", "Flight to London").`

func buildSystemPrompt(defaultCurrency string) string {
	parts := []string{
		"You read receipt images and emit a single JSON object with the expense fields.",
		"Dates are YYYY-MM-DD. Currency is a 3-letter ISO 4217 code.",
	}
	if cur := strings.TrimSpace(defaultCurrency); cur != "" {
		parts = append(parts, "If the receipt shows no currency, assume "+cur+".")
	}
	return strings.Join(parts, " ")
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
