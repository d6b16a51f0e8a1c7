package commands

import (
	"context"
	"fmt"

	"mrconsole/internal/config"
)

type verifyResendCmd struct{}

func (verifyResendCmd) Name() string        { return "verify-resend" }
func (verifyResendCmd) Description() string { return "Resend the account verification email" }
func (verifyResendCmd) Usage() string       { return "verify-resend <email>" }

func (verifyResendCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	if err := a.users.ResendVerification(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Verification email sent to %s\n", args[0])
	return nil
}

func init() { RegisterCmd(verifyResendCmd{}) }
