package commands

import (
	"context"
	"fmt"
	"strconv"

	"mrconsole/internal/config"

	"mrconsole/internal/cli/model"
)

type settingsCmd struct{}

func (settingsCmd) Name() string        { return "settings" }
func (settingsCmd) Description() string { return "Show or change console preferences" }
func (settingsCmd) Usage() string       { return "settings [set <key> <value> | reset]" }

func (settingsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	if _, err := a.requireSession(); err != nil {
		return err
	}

	switch {
	case len(args) == 0:
		printSettings(a.settings.Load(ctx))
		return nil
	case args[0] == "reset" && len(args) == 1:
		s := a.settings.Reset(ctx)
		fmt.Fprintln(Out, "Settings reset to defaults")
		printSettings(s)
		return nil
	case args[0] == "set" && len(args) == 3:
		apply, err := settingSetter(args[1], args[2])
		if err != nil {
			return err
		}
		printSettings(a.settings.Update(ctx, apply))
		return nil
	default:
		return ErrUsage
	}
}

// settingSetter maps a key/value pair onto a settings mutation.
func settingSetter(key, value string) (func(*model.UserSettings), error) {
	parseBool := func() (bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false, fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		return b, nil
	}

	switch key {
	case "darkMode":
		b, err := parseBool()
		if err != nil {
			return nil, err
		}
		return func(s *model.UserSettings) { s.DarkMode = b }, nil
	case "primaryColor":
		return func(s *model.UserSettings) { s.PrimaryColor = value }, nil
	case "itemsPerPage":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("itemsPerPage expects a positive number, got %q", value)
		}
		return func(s *model.UserSettings) { s.ItemsPerPage = n }, nil
	case "viewMode":
		if value != model.ViewModeGrid && value != model.ViewModeList {
			return nil, fmt.Errorf("viewMode expects %s or %s, got %q", model.ViewModeGrid, model.ViewModeList, value)
		}
		return func(s *model.UserSettings) { s.DefaultViewMode = value }, nil
	case "emailNotifications":
		b, err := parseBool()
		if err != nil {
			return nil, err
		}
		return func(s *model.UserSettings) { s.EmailNotifications = b }, nil
	case "inAppNotifications":
		b, err := parseBool()
		if err != nil {
			return nil, err
		}
		return func(s *model.UserSettings) { s.InAppNotifications = b }, nil
	default:
		return nil, fmt.Errorf("unknown setting %q", key)
	}
}

func printSettings(s model.UserSettings) {
	fmt.Fprintf(Out, "darkMode:           %t\n", s.DarkMode)
	fmt.Fprintf(Out, "primaryColor:       %s\n", s.PrimaryColor)
	fmt.Fprintf(Out, "itemsPerPage:       %d\n", s.ItemsPerPage)
	fmt.Fprintf(Out, "viewMode:           %s\n", s.DefaultViewMode)
	fmt.Fprintf(Out, "emailNotifications: %t\n", s.EmailNotifications)
	fmt.Fprintf(Out, "inAppNotifications: %t\n", s.InAppNotifications)
}

func init() { RegisterCmd(settingsCmd{}) }
