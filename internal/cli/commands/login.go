package commands

import (
	"context"
	"fmt"

	"mrconsole/internal/config"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Authenticate and store the session" }
func (loginCmd) Usage() string       { return "login <email> [password]" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	email := args[0]

	var password string
	if len(args) == 2 {
		password = args[1]
	} else {
		var err error
		password, err = readPassword("Password: ")
		if err != nil {
			return err
		}
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	resp, err := a.users.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := a.session.Save(resp.AccessToken, resp.User); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	name := resp.User.Username
	if name == "" {
		name = resp.User.Email
	}
	fmt.Fprintf(Out, "Logged in as %s\n", name)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
