package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/personal_ledger_app/internal/editor"
	"github.com/google/subcommands"
)

type splitCmd struct {
	app *app

	chunksFlag string
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "split a transaction into chunks" }
func (*splitCmd) Usage() string {
	return `pla_cli split <transaction-id> [-chunks "<amount> <desc>;<amount> <desc>"]

  Splits a transaction into chunks that can be classified independently.
  Without -chunks your editor opens with one "<amount> <description>" line
  per chunk; save an empty or unchanged buffer to cancel. Chunk amounts must
  sum to the transaction's amount. A transaction can be split only once, and
  chunks cannot be split again.
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.chunksFlag, "chunks", "", "Semicolon-separated chunks, bypassing the editor")
}

func (c *splitCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	id, err := parseTransactionID(f.Arg(0))
	if err != nil {
		return fail(err)
	}

	if c.chunksFlag != "" {
		return c.splitNonInteractive(ctx, id)
	}
	return c.splitInteractive(ctx, id)
}

// splitNonInteractive parses the -chunks flag ("-30 food;-20 household").
func (c *splitCmd) splitNonInteractive(ctx context.Context, id int64) subcommands.ExitStatus {
	content := strings.ReplaceAll(c.chunksFlag, ";", "\n")
	chunks, err := editor.ParseChunks(content)
	if err != nil {
		return fail(err)
	}

	children, err := c.app.svc.Chunk.Split(ctx, id, chunks)
	if err != nil {
		return fail(err)
	}
	okf("Transaction %d split into %d chunk(s)", id, len(children))
	return subcommands.ExitSuccess
}

// splitInteractive stages nothing until the editor round-trip finishes, so a
// cancelled editor leaves the ledger untouched.
func (c *splitCmd) splitInteractive(ctx context.Context, id int64) subcommands.ExitStatus {
	txn, err := c.app.svc.Transaction.GetTransaction(ctx, id)
	if err != nil {
		return fail(err)
	}

	template := editor.SplitTemplate(txn.Description, txn.Amount)
	content, ok, err := editor.Collect(ctx, c.app.cfg.Editor, template)
	if err != nil {
		return fail(err)
	}
	if !ok {
		warnf("split cancelled; nothing changed")
		return subcommands.ExitSuccess
	}

	chunks, err := editor.ParseChunks(content)
	if err != nil {
		return fail(err)
	}
	if len(chunks) == 0 {
		warnf("no chunks entered; nothing changed")
		return subcommands.ExitSuccess
	}

	pending, err := c.app.svc.Chunk.StageSplit(ctx, id, chunks)
	if err != nil {
		return fail(err)
	}
	children, err := c.app.svc.Chunk.CommitSplit(ctx, pending)
	if err != nil {
		return fail(err)
	}
	okf("Transaction %d split into %d chunk(s)", id, len(children))
	return subcommands.ExitSuccess
}
