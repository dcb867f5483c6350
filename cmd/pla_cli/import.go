package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type importCmd struct {
	app *app

	file    string
	source  string
	account string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a bank statement export" }
func (*importCmd) Usage() string {
	return `pla_cli import -file <path> -account <account-number> [-source csv]

  Imports a statement export into the ledger. Lines already imported are
  skipped; re-importing the same file is a no-op.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Statement export to import")
	f.StringVar(&c.source, "source", "csv", "Statement source format")
	f.StringVar(&c.account, "account", "", "Account number the statement belongs to")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.file == "" || c.account == "" {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	source, err := c.app.sources.Lookup(c.source)
	if err != nil {
		return fail(err)
	}

	account, err := c.app.svc.Account.GetAccountByNumber(ctx, c.account)
	if err != nil {
		return fail(err)
	}

	file, err := os.Open(c.file)
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	records, err := source.Parse(ctx, file)
	if err != nil {
		return fail(fmt.Errorf("failed to parse %s: %w", c.file, err))
	}

	result, err := c.app.svc.Import.ImportStatement(ctx, account.AccountID, records)
	if err != nil {
		return fail(err)
	}

	okf("Imported %d transaction(s), skipped %d duplicate(s) [batch %s]",
		result.Inserted, result.Skipped, result.BatchID)
	return subcommands.ExitSuccess
}
