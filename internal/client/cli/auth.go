package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/client"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/services"
	"github.com/dmitrijs2005/tunnelpanel/internal/common"
)

// getSimpleText, getPassword and getConfirmation are test seams for the
// interactive input helpers.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Login prompts for credentials, persists the session and opens the
// dashboard after the redirect delay.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		a.println(services.LoginMessage(err))
		return err
	}

	a.println("Login successful. Redirecting...")
	a.sleep(a.config.RedirectDelay)
	return a.enterDashboard(ctx, sess)
}

// Logout forgets the session and returns to the anonymous prompt.
func (a *App) Logout(ctx context.Context) error {
	a.dash = nil
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Error(ctx, "clearing session failed", "error", err.Error())
		a.println("Error: " + client.Message(err))
		return err
	}
	a.println("Logged out.")
	return nil
}

// enterDashboard builds the dashboard for sess and shows the profile.
func (a *App) enterDashboard(ctx context.Context, sess *models.Session) error {
	d, err := services.NewDashboard(a.api, sess, a.logger)
	if err != nil {
		return err
	}
	a.dash = d

	a.println(d.Role().Banner())
	if err := d.Init(ctx); err != nil {
		return a.reportError(ctx, "Error loading profile", err)
	}
	a.renderProfile()
	return nil
}

// reportError prints a failure. An authorization failure means the stored
// session is no longer accepted, so it is cleared as well.
func (a *App) reportError(ctx context.Context, prefix string, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		a.println(ve.Message)
	case errors.Is(err, client.ErrUnauthorized):
		a.println(prefix + ": " + client.Message(err))
		a.println("Session is no longer valid. Please log in again.")
		a.dash = nil
		if cerr := a.auth.Logout(ctx); cerr != nil {
			a.logger.Error(ctx, "clearing session failed", "error", cerr.Error())
		}
	default:
		a.println(prefix + ": " + client.Message(err))
	}
	return err
}
