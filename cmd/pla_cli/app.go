package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/personal_ledger_app/internal/apperrors"
	"github.com/SscSPs/personal_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/personal_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/personal_ledger_app/internal/sources"
	"github.com/SscSPs/personal_ledger_app/pkg/config"
	"github.com/fatih/color"
	"github.com/google/subcommands"
)

// app bundles everything a command needs. Commands hold a pointer to it
// instead of wiring their own dependencies.
type app struct {
	cfg     *config.Config
	svc     *portssvc.ServiceContainer
	sources *sources.Registry
}

var (
	errColor  = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	okColor   = color.New(color.FgGreen)
)

// fail renders an error for the user and picks the exit status from its
// classification: bad input is a usage error, everything else a failure.
func fail(err error) subcommands.ExitStatus {
	errColor.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, apperrors.ErrValidation) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

func warnf(format string, args ...any) {
	warnColor.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

func okf(format string, args ...any) {
	okColor.Printf(format+"\n", args...)
}

// parseKind maps the user-facing -kind flag onto a category namespace.
func parseKind(s string) (domain.CategoryKind, error) {
	switch s {
	case "outflow":
		return domain.OutflowCategory, nil
	case "inflow":
		return domain.InflowCategory, nil
	default:
		return "", fmt.Errorf("%w: kind must be \"inflow\" or \"outflow\", got %q", apperrors.ErrValidation, s)
	}
}

// parseMonth parses the -month flag ("2026-03"). Empty means the current month.
func parseMonth(s string) (int, time.Month, error) {
	if s == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month must look like 2026-03, got %q", apperrors.ErrValidation, s)
	}
	return t.Year(), t.Month(), nil
}
