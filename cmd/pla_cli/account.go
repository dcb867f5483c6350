package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type accountAddCmd struct {
	app *app

	number      string
	name        string
	institution string
}

func (*accountAddCmd) Name() string     { return "account-add" }
func (*accountAddCmd) Synopsis() string { return "register a bank account" }
func (*accountAddCmd) Usage() string {
	return `pla_cli account-add -number <account-number> -name <name> [-institution <institution>]

  Registers a bank account transactions can be attributed to.
`
}

func (c *accountAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "number", "", "External account number (unique)")
	f.StringVar(&c.name, "name", "", "Display name")
	f.StringVar(&c.institution, "institution", "", "Bank or institution name")
}

func (c *accountAddCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	account, err := c.app.svc.Account.CreateAccount(ctx, c.number, c.name, c.institution)
	if err != nil {
		return fail(err)
	}
	okf("Account %d registered (%s)", account.AccountID, account.AccountNumber)
	return subcommands.ExitSuccess
}

type accountListCmd struct {
	app *app
}

func (*accountListCmd) Name() string     { return "account-list" }
func (*accountListCmd) Synopsis() string { return "list registered accounts" }
func (*accountListCmd) Usage() string {
	return `pla_cli account-list

  Lists all registered accounts.
`
}

func (c *accountListCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountListCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	accounts, err := c.app.svc.Account.ListAccounts(ctx)
	if err != nil {
		return fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tNAME\tINSTITUTION")
	for _, a := range accounts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.AccountID, a.AccountNumber, a.Name, a.Institution)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
