package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

func amountString(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	if amount.IsNegative() {
		return color.RedString(s)
	}
	return color.GreenString(s)
}

type balanceCmd struct {
	app *app

	month string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show a month's net balance" }
func (*balanceCmd) Usage() string {
	return `pla_cli balance [-month 2026-03]

  Shows the month's net balance: inflows minus outflows.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Reporting month (defaults to the current month)")
}

func (c *balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	year, month, err := parseMonth(c.month)
	if err != nil {
		return fail(err)
	}

	balance, err := c.app.svc.Reporting.MonthlyBalance(ctx, year, month)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("%d-%02d: %s\n", year, month, amountString(balance))
	return subcommands.ExitSuccess
}

type statementCmd struct {
	app *app

	month string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show a month's transactions" }
func (*statementCmd) Usage() string {
	return `pla_cli statement [-month 2026-03]

  Lists the month's transactions in statement order. A split transaction is
  shown as its original line followed by its indented chunks.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Reporting month (defaults to the current month)")
}

func (c *statementCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	year, month, err := parseMonth(c.month)
	if err != nil {
		return fail(err)
	}

	lines, err := c.app.svc.Reporting.MonthlyStatement(ctx, year, month)
	if err != nil {
		return fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tDESCRIPTION\tCATEGORY\tNOTE")
	for _, line := range lines {
		desc := line.Description
		if line.IsChild {
			desc = "  └ " + desc
		}
		if line.IsMaster {
			desc += " (split)"
		}
		category := line.CategoryName
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			line.TransactionID,
			line.Date.Format("2006-01-02"),
			amountString(line.Amount),
			desc,
			category,
			line.Note,
		)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type categoriesReportCmd struct {
	app *app

	month string
}

func (*categoriesReportCmd) Name() string     { return "categories" }
func (*categoriesReportCmd) Synopsis() string { return "show a month's outflow per category" }
func (*categoriesReportCmd) Usage() string {
	return `pla_cli categories [-month 2026-03]

  Sums the month's outflows per category. Unclassified spending is reported
  last under "uncategorized".
`
}

func (c *categoriesReportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Reporting month (defaults to the current month)")
}

func (c *categoriesReportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	year, month, err := parseMonth(c.month)
	if err != nil {
		return fail(err)
	}

	summary, err := c.app.svc.Reporting.CategorySummary(ctx, year, month)
	if err != nil {
		return fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tSPENT")
	for _, row := range summary {
		fmt.Fprintf(w, "%s\t%s\n", row.CategoryName, row.Total.StringFixed(2))
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type budgetsReportCmd struct {
	app *app

	unit string
}

func (*budgetsReportCmd) Name() string     { return "budgets" }
func (*budgetsReportCmd) Synopsis() string { return "show all budgets normalized to one unit" }
func (*budgetsReportCmd) Usage() string {
	return `pla_cli budgets [-unit month]

  Lists every budget with its limit converted to the chosen display unit, so
  differently-recurring budgets can be compared side by side.
`
}

func (c *budgetsReportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.unit, "unit", "month", "Display unit: day, week, month or year")
}

func (c *budgetsReportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	lines, err := c.app.svc.Reporting.BudgetSummary(ctx, c.unit)
	if err != nil {
		return fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "CATEGORY\tBUDGET\tPER %s\n", c.unit)
	for _, line := range lines {
		fmt.Fprintf(w, "%s\t%s per %d %s(s)\t%s\n",
			line.CategoryName,
			line.Limit.StringFixed(2),
			line.Frequency,
			line.Unit,
			line.NormalizedLimit.Round(2).StringFixed(2),
		)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
