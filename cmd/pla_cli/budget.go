package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// budgetFlags are the flags shared by budget-set and budget-modify.
type budgetFlags struct {
	kind      string
	unit      string
	frequency int64
	limit     string
}

func (b *budgetFlags) register(f *flag.FlagSet) {
	f.StringVar(&b.kind, "kind", "outflow", "Category namespace: outflow or inflow")
	f.StringVar(&b.unit, "unit", "month", "Recurrence unit: day, week, month or year")
	f.Int64Var(&b.frequency, "every", 1, "Recurrence frequency (limit applies per N units)")
	f.StringVar(&b.limit, "limit", "", "Spending limit amount")
}

func (b *budgetFlags) parse() (decimal.Decimal, error) {
	if b.limit == "" {
		return decimal.Zero, fmt.Errorf("-limit is required")
	}
	return decimal.NewFromString(b.limit)
}

type budgetSetCmd struct {
	app *app

	flags budgetFlags
}

func (*budgetSetCmd) Name() string     { return "budget-set" }
func (*budgetSetCmd) Synopsis() string { return "set a spending limit on a category" }
func (*budgetSetCmd) Usage() string {
	return `pla_cli budget-set -limit <amount> [-unit month] [-every 1] [-kind outflow|inflow] <category-name>

  Sets a recurring spending limit on a category. A category carries at most
  one budget; use budget-modify to change an existing one.
`
}

func (c *budgetSetCmd) SetFlags(f *flag.FlagSet) { c.flags.register(f) }

func (c *budgetSetCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	kind, err := parseKind(c.flags.kind)
	if err != nil {
		return fail(err)
	}
	limit, err := c.flags.parse()
	if err != nil {
		return fail(err)
	}
	name := strings.Join(f.Args(), " ")

	bwr, err := c.app.svc.Budget.SetLimit(ctx, name, kind, c.flags.unit, c.flags.frequency, limit)
	if err != nil {
		return fail(err)
	}
	okf("Budget set: %s per %d %s(s) on %q", bwr.Limit, bwr.Recurrence.Frequency, bwr.Recurrence.Unit, bwr.CategoryName)
	return subcommands.ExitSuccess
}

type budgetModifyCmd struct {
	app *app

	flags budgetFlags
}

func (*budgetModifyCmd) Name() string     { return "budget-modify" }
func (*budgetModifyCmd) Synopsis() string { return "change an existing budget" }
func (*budgetModifyCmd) Usage() string {
	return `pla_cli budget-modify -limit <amount> [-unit month] [-every 1] [-kind outflow|inflow] <category-name>

  Rewrites the limit and recurrence of an existing budget.
`
}

func (c *budgetModifyCmd) SetFlags(f *flag.FlagSet) { c.flags.register(f) }

func (c *budgetModifyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	kind, err := parseKind(c.flags.kind)
	if err != nil {
		return fail(err)
	}
	limit, err := c.flags.parse()
	if err != nil {
		return fail(err)
	}
	name := strings.Join(f.Args(), " ")

	if err := c.app.svc.Budget.ModifyLimit(ctx, name, kind, c.flags.unit, c.flags.frequency, limit); err != nil {
		return fail(err)
	}
	okf("Budget on %q updated", name)
	return subcommands.ExitSuccess
}

type budgetDeleteCmd struct {
	app *app

	kind string
}

func (*budgetDeleteCmd) Name() string     { return "budget-delete" }
func (*budgetDeleteCmd) Synopsis() string { return "remove a category's budget" }
func (*budgetDeleteCmd) Usage() string {
	return `pla_cli budget-delete [-kind outflow|inflow] <category-name>

  Removes the budget from a category. The category itself is kept.
`
}

func (c *budgetDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "outflow", "Category namespace: outflow or inflow")
}

func (c *budgetDeleteCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	kind, err := parseKind(c.kind)
	if err != nil {
		return fail(err)
	}
	name := strings.Join(f.Args(), " ")

	deleted, err := c.app.svc.Budget.DeleteLimit(ctx, name, kind)
	if err != nil {
		return fail(err)
	}
	if !deleted {
		warnf("no budget on %q; nothing deleted", name)
		return subcommands.ExitSuccess
	}
	okf("Budget on %q deleted", name)
	return subcommands.ExitSuccess
}
