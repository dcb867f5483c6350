package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
)

func parseTransactionID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction id %q", s)
	}
	return id, nil
}

type classifyCmd struct {
	app *app
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "assign a category to a transaction" }
func (*classifyCmd) Usage() string {
	return `pla_cli classify <transaction-id> <category-name>

  Assigns a category to a transaction, replacing any previous assignment.
  The category must already exist in the namespace matching the
  transaction's direction.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {}

func (c *classifyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	id, err := parseTransactionID(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	name := strings.Join(f.Args()[1:], " ")

	if err := c.app.svc.Category.ClassifyTransaction(ctx, id, name); err != nil {
		return fail(err)
	}
	okf("Transaction %d classified as %q", id, name)
	return subcommands.ExitSuccess
}

type annotateCmd struct {
	app *app
}

func (*annotateCmd) Name() string     { return "annotate" }
func (*annotateCmd) Synopsis() string { return "attach a note to a transaction" }
func (*annotateCmd) Usage() string {
	return `pla_cli annotate <transaction-id> <note...>

  Attaches a free-text note to a transaction, replacing any previous note.
`
}

func (c *annotateCmd) SetFlags(f *flag.FlagSet) {}

func (c *annotateCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	id, err := parseTransactionID(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	note := strings.Join(f.Args()[1:], " ")

	if err := c.app.svc.Transaction.AnnotateTransaction(ctx, id, note); err != nil {
		return fail(err)
	}
	okf("Transaction %d annotated", id)
	return subcommands.ExitSuccess
}

type linkCmd struct {
	app *app

	account string
}

func (*linkCmd) Name() string     { return "link" }
func (*linkCmd) Synopsis() string { return "attribute a transaction to an account" }
func (*linkCmd) Usage() string {
	return `pla_cli link -account <account-number> <transaction-id>

  Attributes a transaction to a registered account.
`
}

func (c *linkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account number to link to")
}

func (c *linkCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || c.account == "" {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	id, err := parseTransactionID(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	account, err := c.app.svc.Account.GetAccountByNumber(ctx, c.account)
	if err != nil {
		return fail(err)
	}

	if err := c.app.svc.Transaction.LinkAccount(ctx, id, account.AccountID); err != nil {
		return fail(err)
	}
	okf("Transaction %d linked to account %s", id, account.AccountNumber)
	return subcommands.ExitSuccess
}
