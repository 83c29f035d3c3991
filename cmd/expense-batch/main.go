// expense-batch scans a directory of receipt images into a local expense
// store and writes a claim-summary workbook. Useful for bulk-importing a
// trip's receipts without running the server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/expensehub/expense-tracker/constants"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/currency"
	"github.com/expensehub/expense-tracker/internal/entity"
	"github.com/expensehub/expense-tracker/internal/export"
	"github.com/expensehub/expense-tracker/internal/ledger"
	"github.com/expensehub/expense-tracker/internal/llm/openai"
	"github.com/expensehub/expense-tracker/internal/localstore"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory of receipt images to process (required)")
		store   = flag.String("store", "expenses.db", "local store path")
		out     = flag.String("out", "", "output XLSX file path (defaults next to --dir)")
		email   = flag.String("email", "batch@local", "owner account email in the local store")
		baseCur = flag.String("base", "INR", "base currency for new owner accounts")
		replace = flag.Bool("replace", false, "replace the owner's existing records instead of appending")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "expenses.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	db, err := localstore.Open(*store)
	if err != nil {
		logger.Error("failed to open local store", "path", *store, "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	expensesRepo := db.Expenses()
	user, err := ensureOwner(ctx, db, *email, *baseCur)
	if err != nil {
		logger.Error("failed to resolve owner account", "error", err)
		os.Exit(1)
	}

	uploads, err := collectUploads(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(uploads) == 0 {
		printError("No receipt images found under %s\n", *dir)
		os.Exit(1)
	}
	logger.Info("batch.start", "dir", *dir, "files", len(uploads), "user_id", user.ID)

	if *replace {
		if err := expensesRepo.ReplaceForUser(ctx, user.ID, nil); err != nil {
			logger.Error("failed to clear existing records", "error", err)
			os.Exit(1)
		}
	}

	extractor := openai.NewClient(openai.Config{
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	converter := currency.NewClient(currency.Config{
		BaseURL: cfg.Currency.BaseURL,
		Timeout: cfg.Currency.Timeout,
	}, logger)

	svc := ledger.NewService(expensesRepo, extractor, converter, logger)
	results, err := svc.ProcessUploads(ctx, user, uploads)
	if err != nil {
		logger.Error("batch processing aborted", "error", err)
		os.Exit(1)
	}

	completed, failed := 0, 0
	for _, rec := range results {
		if rec == nil {
			continue
		}
		if rec.Status == constants.StatusError {
			failed++
		} else {
			completed++
		}
	}
	logger.Info("batch.done", "completed", completed, "failed", failed)

	xlsx, err := export.NewService(expensesRepo, logger).ExportExpensesXLSX(ctx, user)
	if err != nil {
		logger.Error("failed to export workbook", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Processed %d receipts (%d failed). Summary written to %s\n", completed+failed, failed, *out)
}

// ensureOwner finds or creates the local account that owns the imported
// records.
func ensureOwner(ctx context.Context, db *localstore.Store, email, baseCurrency string) (*entity.User, error) {
	users := db.Users()
	if user, err := users.FindByEmail(ctx, email); err == nil {
		return user, nil
	}
	return users.Create(ctx, &entity.User{
		ID:           uuid.New(),
		Name:         "Batch Import",
		Email:        email,
		BaseCurrency: strings.ToUpper(baseCurrency),
	})
}

func collectUploads(dir string) ([]ledger.Upload, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var uploads []ledger.Upload
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(entry.Name()))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		uploads = append(uploads, ledger.Upload{
			Filename: entry.Name(),
			Image:    data,
			MIMEType: constants.MIMEForExt(ext),
		})
	}
	return uploads, nil
}
