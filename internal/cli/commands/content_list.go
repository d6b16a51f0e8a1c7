package commands

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"mrconsole/internal/config"

	"mrconsole/internal/cli/list"
	"mrconsole/internal/cli/model"
)

type contentListCmd struct{}

func (contentListCmd) Name() string        { return "list" }
func (contentListCmd) Description() string { return "List content records" }
func (contentListCmd) Usage() string       { return "list [--page N] [--limit N] [--filter text]" }

func (contentListCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(Out)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 0, "items per page (0 = settings default)")
	filter := fs.String("filter", "", "case-insensitive match on name, reference or type")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	if fs.NArg() != 0 || *page < 1 {
		return ErrUsage
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	if _, err := a.requireSession(); err != nil {
		return err
	}
	if *limit <= 0 {
		*limit = a.settings.Load(ctx).ItemsPerPage
	}

	c, err := a.openCache()
	if err != nil {
		return err
	}
	defer c.Close()

	ctrl := list.NewController(a.content, c, a.log)
	p, stale, err := ctrl.FetchPage(ctx, *page, *limit)
	if err != nil {
		return err
	}

	items := list.Filter(p.Data, *filter)
	if len(items) == 0 {
		fmt.Fprintln(Out, "No content found")
		return nil
	}

	fmt.Fprintln(Out, renderContentTable(items))
	fmt.Fprintf(Out, "Page %d/%d, %d total", p.Page, p.TotalPages, p.Total)
	if stale {
		fmt.Fprint(Out, " (cached, backend unreachable)")
	}
	fmt.Fprintln(Out)
	return nil
}

func renderContentTable(items []model.ContentItem) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Name", "Type", "Status", "Ref", "Scale", "Height"})
	for _, it := range items {
		tw.AppendRow(table.Row{
			it.Name,
			it.TypeLabel(),
			it.Status,
			it.RefID,
			strconv.FormatFloat(it.Scale, 'f', 2, 64),
			strconv.FormatFloat(it.Height, 'f', 2, 64),
		})
	}
	return tw.Render()
}

func init() { RegisterCmd(contentListCmd{}) }
