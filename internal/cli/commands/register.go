package commands

import (
	"context"
	"flag"
	"fmt"

	"mrconsole/internal/config"

	"mrconsole/internal/cli/model"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and its organization" }
func (registerCmd) Usage() string {
	return "register <email> <username> [--org <name>] [--role <role>]"
}

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(Out)
	org := fs.String("org", "", "organization name to create")
	role := fs.String("role", "admin", "account role")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) != 2 {
		return ErrUsage
	}
	email, username := rest[0], rest[1]

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	req := model.RegisterRequest{
		Email:    email,
		Password: password,
		Username: username,
		Role:     *role,
	}
	if *org != "" {
		req.CreateOrg = true
		req.OrganizationDetails = model.OrganizationDetails{Name: *org}
	}
	if err := a.users.Register(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(Out, "Account created, check %s for the verification email\n", email)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
