package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type categoryAddCmd struct {
	app *app

	kind string
}

func (*categoryAddCmd) Name() string     { return "category-add" }
func (*categoryAddCmd) Synopsis() string { return "create a category" }
func (*categoryAddCmd) Usage() string {
	return `pla_cli category-add [-kind outflow|inflow] <name>

  Creates a category. A name matching an existing category exactly or nearly
  (typo distance) is folded into the existing one.
`
}

func (c *categoryAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "outflow", "Category namespace: outflow or inflow")
}

func (c *categoryAddCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	kind, err := parseKind(c.kind)
	if err != nil {
		return fail(err)
	}
	name := strings.Join(f.Args(), " ")

	result, err := c.app.svc.Category.AddCategory(ctx, name, kind)
	if err != nil {
		return fail(err)
	}
	if !result.Created {
		warnf("%q matches existing category %q; nothing created", name, result.Category.Name)
		return subcommands.ExitSuccess
	}
	okf("Category %q created", result.Category.Name)
	return subcommands.ExitSuccess
}

type categoryRenameCmd struct {
	app *app

	kind string
}

func (*categoryRenameCmd) Name() string     { return "category-rename" }
func (*categoryRenameCmd) Synopsis() string { return "rename a category" }
func (*categoryRenameCmd) Usage() string {
	return `pla_cli category-rename [-kind outflow|inflow] <old-name> <new-name>

  Renames a category in place. Classified transactions follow the rename.
`
}

func (c *categoryRenameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "outflow", "Category namespace: outflow or inflow")
}

func (c *categoryRenameCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	kind, err := parseKind(c.kind)
	if err != nil {
		return fail(err)
	}

	if err := c.app.svc.Category.RenameCategory(ctx, kind, f.Arg(0), f.Arg(1)); err != nil {
		return fail(err)
	}
	okf("Category %q renamed to %q", f.Arg(0), f.Arg(1))
	return subcommands.ExitSuccess
}

type categoryDeleteCmd struct {
	app *app

	kind string
}

func (*categoryDeleteCmd) Name() string     { return "category-delete" }
func (*categoryDeleteCmd) Synopsis() string { return "delete a category and its classifications" }
func (*categoryDeleteCmd) Usage() string {
	return `pla_cli category-delete [-kind outflow|inflow] <name>

  Deletes a category together with its classifications and budget. The
  transactions themselves are kept and become unclassified.
`
}

func (c *categoryDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "outflow", "Category namespace: outflow or inflow")
}

func (c *categoryDeleteCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	kind, err := parseKind(c.kind)
	if err != nil {
		return fail(err)
	}
	name := strings.Join(f.Args(), " ")

	deleted, err := c.app.svc.Category.DeleteCategory(ctx, kind, name)
	if err != nil {
		return fail(err)
	}
	if !deleted {
		warnf("category %q does not exist; nothing deleted", name)
		return subcommands.ExitSuccess
	}
	okf("Category %q deleted", name)
	return subcommands.ExitSuccess
}

type categoryListCmd struct {
	app *app
}

func (*categoryListCmd) Name() string     { return "category-list" }
func (*categoryListCmd) Synopsis() string { return "list categories" }
func (*categoryListCmd) Usage() string {
	return `pla_cli category-list

  Lists all categories, grouped by kind.
`
}

func (c *categoryListCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoryListCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	categories, err := c.app.svc.Category.ListCategories(ctx)
	if err != nil {
		return fail(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME")
	for _, cat := range categories {
		fmt.Fprintf(w, "%s\t%s\n", strings.ToLower(string(cat.Kind)), cat.Name)
	}
	w.Flush()
	return subcommands.ExitSuccess
}
