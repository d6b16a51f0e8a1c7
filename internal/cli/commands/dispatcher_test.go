package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"mrconsole/internal/config"
)

// fakeCmd lets tests control what Run returns.
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, cfg *config.Config, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	return f.run(ctx, cfg, args)
}

// capture redirects Out for the duration of fn.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	out := capture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{}) })
	if !strings.Contains(out, "Mixed Reality Console") {
		t.Fatalf("global help expected, got %q", out)
	}

	out = capture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help"}) })
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("usage expected")
	}

	code := Dispatch(context.Background(), &config.Config{}, []string{"help", "login"})
	if code != 0 {
		t.Fatalf("expected 0 for help login, got %d", code)
	}

	out = capture(t, func() { _ = Dispatch(context.Background(), &config.Config{}, []string{"help", "nope"}) })
	if !strings.Contains(out, "Unknown command") {
		t.Fatalf("unknown command message expected")
	}

	code = Dispatch(context.Background(), &config.Config{}, []string{"nope"})
	if code != 2 {
		t.Fatalf("expected 2 for unknown command, got %d", code)
	}
}

func TestDispatcher_ExitCodes(t *testing.T) {
	RegisterCmd(fakeCmd{name: "fail", usage: "fail", desc: "always fails",
		run: func(ctx context.Context, cfg *config.Config, args []string) error {
			return errors.New("boom")
		}})
	RegisterCmd(fakeCmd{name: "badargs", usage: "badargs <x>", desc: "always usage",
		run: func(ctx context.Context, cfg *config.Config, args []string) error {
			return ErrUsage
		}})
	defer func() {
		delete(registry, "fail")
		delete(registry, "badargs")
	}()

	out := capture(t, func() {
		if code := Dispatch(context.Background(), &config.Config{}, []string{"fail"}); code != 1 {
			t.Fatalf("expected 1 for failing command, got %d", code)
		}
	})
	if !strings.Contains(out, "fail error: boom") {
		t.Fatalf("error message expected, got %q", out)
	}

	out = capture(t, func() {
		if code := Dispatch(context.Background(), &config.Config{}, []string{"badargs"}); code != 2 {
			t.Fatalf("expected 2 for usage error, got %d", code)
		}
	})
	if !strings.Contains(out, "Usage: badargs <x>") {
		t.Fatalf("usage line expected, got %q", out)
	}
}

func TestRegisteredCommands(t *testing.T) {
	for _, name := range []string{
		"login", "logout", "register", "verify-resend", "status", "profile",
		"list", "get", "create", "edit", "delete", "qr", "settings",
	} {
		if _, ok := Get(name); !ok {
			t.Fatalf("command %q not registered", name)
		}
	}
}
