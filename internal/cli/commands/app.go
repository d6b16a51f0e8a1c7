package commands

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"mrconsole/internal/cli/api"
	"mrconsole/internal/cli/cache"
	"mrconsole/internal/cli/session"
	"mrconsole/internal/cli/settings"
	"mrconsole/internal/config"
)

// app wires every command's shared dependencies: the three service
// clients, the session store and the per-user settings. Built per
// invocation, not per process, so tests can run against throwaway
// state directories.
type app struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	session  *session.Store
	users    *api.UsersClient
	content  *api.ContentClient
	uploads  *api.UploadClient
	settings *settings.Store
}

func newApp(cfg *config.Config) (*app, error) {
	if err := os.MkdirAll(cfg.StateDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", cfg.StateDir, err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	log := logger.Sugar()

	sess := session.NewStore(cfg.StateDir)
	onUnauthorized := func() {
		_ = sess.Clear()
		fmt.Fprintln(Out, "Session expired, please login again")
	}

	users := api.NewUsersClient(api.NewClient(cfg.UserServiceURL, sess, onUnauthorized, log))
	content := api.NewContentClient(api.NewClient(cfg.ContentServiceURL, sess, onUnauthorized, log))
	uploads := api.NewUploadClient(api.NewClient(cfg.UploadServiceURL, sess, onUnauthorized, log))

	return &app{
		cfg:      cfg,
		log:      log,
		session:  sess,
		users:    users,
		content:  content,
		uploads:  uploads,
		settings: settings.NewStore(cfg.StateDir, users, log),
	}, nil
}

// openCache opens and migrates the local content cache. Callers own the
// returned store and must Close it.
func (a *app) openCache() (*cache.Store, error) {
	c, path, err := cache.Open(a.cfg.StateDir)
	if err != nil {
		return nil, err
	}
	if err := c.Migrate(); err != nil {
		c.Close()
		return nil, fmt.Errorf("migrating cache %s: %w", path, err)
	}
	return c, nil
}

// requireSession loads the stored session or fails with a login hint.
func (a *app) requireSession() (*session.Session, error) {
	s, err := a.session.Load()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("not logged in, run: mrc login <email>")
	}
	return s, nil
}

// notifier returns the transient notice surface, muted when the user
// switched in-app notifications off.
func (a *app) notifier(ctx context.Context) consoleNotifier {
	s := a.settings.Load(ctx)
	return consoleNotifier{enabled: s.InAppNotifications}
}

type consoleNotifier struct {
	enabled bool
}

func (n consoleNotifier) Success(msg string) {
	if n.enabled {
		fmt.Fprintf(Out, "✓ %s\n", msg)
	}
}

func (n consoleNotifier) Error(msg string) {
	if n.enabled {
		fmt.Fprintf(Out, "✗ %s\n", msg)
	}
}
