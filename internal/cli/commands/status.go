package commands

import (
	"context"
	"fmt"
	"time"

	"mrconsole/internal/config"

	"mrconsole/internal/cli/list"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the current session and account" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	s, err := a.requireSession()
	if err != nil {
		return err
	}

	fmt.Fprintf(Out, "Email:   %s\n", s.User.Email)
	if s.User.Username != "" {
		fmt.Fprintf(Out, "Name:    %s\n", s.User.Username)
	}
	if s.Claims.Role != "" {
		fmt.Fprintf(Out, "Role:    %s\n", s.Claims.Role)
	}
	fmt.Fprintf(Out, "Expires: %s\n", s.Claims.ExpiresAt.Local().Format(time.RFC1123))

	// refresh the profile when the backend is reachable
	if me, err := a.users.Me(ctx); err == nil {
		if me.Username != "" && me.Username != s.User.Username {
			fmt.Fprintf(Out, "Name (server): %s\n", me.Username)
		}
	}

	// content summary, from the cache when the backend is down
	if c, err := a.openCache(); err == nil {
		defer c.Close()
		ctrl := list.NewController(a.content, c, a.log)
		if p, stale, err := ctrl.FetchPage(ctx, 1, 1); err == nil {
			suffix := ""
			if stale {
				suffix = " (cached)"
			}
			fmt.Fprintf(Out, "Content: %d records%s\n", p.Total, suffix)
		}
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
