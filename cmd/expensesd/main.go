package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/expensehub/expense-tracker/gen/proto/expensehub/v1"
	"github.com/expensehub/expense-tracker/internal/auth"
	"github.com/expensehub/expense-tracker/internal/common"
	"github.com/expensehub/expense-tracker/internal/currency"
	"github.com/expensehub/expense-tracker/internal/export"
	"github.com/expensehub/expense-tracker/internal/ledger"
	"github.com/expensehub/expense-tracker/internal/llm/openai"
	"github.com/expensehub/expense-tracker/internal/repository"
	"github.com/expensehub/expense-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	usersRepo := repository.NewUserRepository(entc, logger)
	expensesRepo := repository.NewExpenseRepository(entc, logger)

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

	authSvc := auth.NewService(usersRepo, auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), logger)
	ledgerSvc := ledger.NewService(expensesRepo, extractor, converter, logger)
	exportSvc := export.NewService(expensesRepo, logger)

	v1.RegisterAuthServiceServer(grpcServer, server.NewAuthServer(authSvc, logger))
	v1.RegisterExpensesServiceServer(grpcServer, server.NewExpensesServer(ledgerSvc, authSvc, logger))
	v1.RegisterExportServiceServer(grpcServer, server.NewExportServer(exportSvc, authSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("expensesd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
