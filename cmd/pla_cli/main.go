package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/SscSPs/personal_ledger_app/internal/core/services"
	"github.com/SscSPs/personal_ledger_app/internal/logging"
	"github.com/SscSPs/personal_ledger_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/personal_ledger_app/internal/sources"
	"github.com/SscSPs/personal_ledger_app/pkg/config"
	"github.com/SscSPs/personal_ledger_app/pkg/database"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

func main() {
	// Structured logs go to stderr so report output stays pipeable.
	level := slog.LevelWarn
	if os.Getenv("PLA_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	color.NoColor = color.NoColor || !cfg.ColorOutput

	ctx := logging.WithLogger(context.Background(), logger)

	db, err := database.NewSQLiteDB(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error("Failed to open ledger database", slog.String("error", err.Error()), slog.String("path", cfg.DatabasePath))
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := sqlite.NewRepositoryProvider(db)
	svc := services.NewServiceContainer(cfg, repos)
	registry := sources.NewRegistry(sources.NewCSVSource(cfg.CSVDateFormat))

	app := &app{cfg: cfg, svc: svc, sources: registry}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&accountAddCmd{app: app}, "accounts")
	commander.Register(&accountListCmd{app: app}, "accounts")

	commander.Register(&importCmd{app: app}, "transactions")
	commander.Register(&annotateCmd{app: app}, "transactions")
	commander.Register(&linkCmd{app: app}, "transactions")
	commander.Register(&splitCmd{app: app}, "transactions")
	commander.Register(&classifyCmd{app: app}, "transactions")

	commander.Register(&categoryAddCmd{app: app}, "categories")
	commander.Register(&categoryRenameCmd{app: app}, "categories")
	commander.Register(&categoryDeleteCmd{app: app}, "categories")
	commander.Register(&categoryListCmd{app: app}, "categories")

	commander.Register(&budgetSetCmd{app: app}, "budgets")
	commander.Register(&budgetModifyCmd{app: app}, "budgets")
	commander.Register(&budgetDeleteCmd{app: app}, "budgets")

	commander.Register(&balanceCmd{app: app}, "reports")
	commander.Register(&statementCmd{app: app}, "reports")
	commander.Register(&categoriesReportCmd{app: app}, "reports")
	commander.Register(&budgetsReportCmd{app: app}, "reports")

	flag.Parse()
	os.Exit(int(commander.Execute(ctx)))
}
