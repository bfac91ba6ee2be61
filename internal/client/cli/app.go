package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/client"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/config"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/services"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/session"
	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
)

type authService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Signup(ctx context.Context, form services.SignupForm, sel *services.Selection) (*models.SignupResult, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*models.Session, error)
}

type catalogService interface {
	Packages(ctx context.Context) ([]models.Package, error)
}

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   session.Store
	api     client.Client
	auth    authService
	catalog catalogService
	dash    *services.Dashboard

	reader *bufio.Reader
	out    io.Writer
	sleep  func(time.Duration)
}

// NewApp opens the session store and wires the API client and services.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	store, err := session.Open(ctx, session.Options{
		Backend:     c.SessionBackend,
		SQLitePath:  c.SessionDBPath,
		RedisAddr:   c.RedisAddr,
		RedisPrefix: c.RedisKeyPrefix,
	}, logger)
	if err != nil {
		logger.Error(ctx, "opening session store failed", "backend", c.SessionBackend, "error", err.Error())
		return nil, err
	}

	api := client.NewHTTPClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithRateLimit(c.RateLimit),
		client.WithLogger(logger),
	)

	return newApp(c, logger, store, api), nil
}

func newApp(c *config.Config, logger logging.Logger, store session.Store, api client.Client) *App {
	return &App{
		config:  c,
		logger:  logger,
		store:   store,
		api:     api,
		auth:    services.NewAuthService(api, store, logger),
		catalog: services.NewCatalogService(api, logger),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		sleep:   time.Sleep,
	}
}

// Run restores a persisted session, opens signup directly when a package
// was preselected, and then serves the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Warn(ctx, "closing session store failed", "error", err.Error())
		}
	}()

	a.println("Welcome to tunnelpanel (type 'help' for commands)")

	sess, err := a.auth.CurrentSession(ctx)
	if err != nil {
		a.logger.Warn(ctx, "reading stored session failed", "error", err.Error())
	}

	switch {
	case sess != nil:
		_ = a.enterDashboard(ctx, sess)
	case a.config.PackageID != 0:
		_ = a.Signup(ctx, nil)
	}

	runREPL(ctx, a, a.status, a.reader)
}

// Serve runs the App until the user leaves or ctx is cancelled. On cancel
// it returns ctx.Err() without waiting for a pending stdin read.
func (a *App) Serve(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run(ctx)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		a.logger.Info(ctx, "shutting down", "reason", ctx.Err().Error())
		return ctx.Err()
	}
}

func (a *App) isLoggedIn() bool {
	return a.dash != nil
}

func (a *App) status() string {
	if a.dash == nil {
		return ""
	}
	return a.dash.Session().User.Username + " " + string(a.dash.Role())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
