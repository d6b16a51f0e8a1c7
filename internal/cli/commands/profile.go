package commands

import (
	"context"
	"fmt"

	"mrconsole/internal/config"
)

type profileCmd struct{}

func (profileCmd) Name() string        { return "profile" }
func (profileCmd) Description() string { return "Update the account name or organization" }
func (profileCmd) Usage() string       { return "profile username <name> | profile org <name>" }

func (profileCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	if _, err := a.requireSession(); err != nil {
		return err
	}

	switch args[0] {
	case "username":
		if err := a.users.UpdateUsername(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Username updated to %s\n", args[1])
	case "org":
		if err := a.users.UpdateOrganization(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Organization renamed to %s\n", args[1])
	default:
		return ErrUsage
	}
	return nil
}

func init() { RegisterCmd(profileCmd{}) }
