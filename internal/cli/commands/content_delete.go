package commands

import (
	"context"
	"fmt"

	"mrconsole/internal/config"

	"mrconsole/internal/cli/list"
)

type contentDeleteCmd struct{}

func (contentDeleteCmd) Name() string        { return "delete" }
func (contentDeleteCmd) Description() string { return "Delete a content record (asks for confirmation)" }
func (contentDeleteCmd) Usage() string       { return "delete <id>" }

func (contentDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	if _, err := a.requireSession(); err != nil {
		return err
	}

	it, err := a.content.Get(ctx, args[0])
	if err != nil {
		return err
	}

	dialog := list.NewDeleteDialog(it.ID, it.Name)
	fmt.Fprintf(Out, "This permanently deletes %q and its assets.\n", it.Name)
	typed, err := readLine(fmt.Sprintf("Type %s to confirm: ", list.DeleteConfirmLiteral))
	if err != nil {
		return err
	}
	dialog.SetTyped(typed)

	c, err := a.openCache()
	if err != nil {
		return err
	}
	defer c.Close()

	ctrl := list.NewController(a.content, c, a.log)
	if err := ctrl.ConfirmDelete(ctx, dialog, a.notifier(ctx)); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted %s\n", it.ID)
	return nil
}

func init() { RegisterCmd(contentDeleteCmd{}) }
