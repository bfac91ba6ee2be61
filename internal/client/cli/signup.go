package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/services"
	"github.com/dmitrijs2005/tunnelpanel/internal/common"
)

// loadCatalog fetches and prints the packages. On failure the placeholder
// line is printed instead of the list.
func (a *App) loadCatalog(ctx context.Context) ([]models.Package, error) {
	pkgs, err := a.catalog.Packages(ctx)
	if err != nil {
		a.println(services.CatalogUnavailableMessage)
		return nil, err
	}
	a.renderPackages(pkgs)
	return pkgs, nil
}

func (a *App) Packages(ctx context.Context) error {
	_, err := a.loadCatalog(ctx)
	return err
}

// Signup runs the account creation flow. The package may be preselected
// with an argument or with the configured package id; otherwise the user
// is asked to pick one.
func (a *App) Signup(ctx context.Context, args []string) error {
	pkgs, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}
	sel := services.NewSelection(pkgs)

	preselect := a.config.PackageID
	if len(args) > 0 {
		if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
			preselect = id
		}
	}
	if preselect != 0 {
		sel.Select(preselect)
	}

	if _, ok := sel.Selected(); !ok {
		choice, err := getSimpleText(a.reader, "Choose a package (id)", a.out)
		if err != nil {
			return err
		}
		if id, err := strconv.ParseInt(choice, 10, 64); err == nil && !sel.Select(id) {
			a.println("Unknown package:", choice)
		}
	}
	a.println(sel.CTALabel())

	form, err := a.readSignupForm()
	if err != nil {
		return err
	}

	res, err := a.auth.Signup(ctx, form, sel)
	if err != nil {
		a.println(services.SignupMessage(err))
		return err
	}

	a.renderSignupSuccess(res)
	// The session is already stored; without the acknowledgement the
	// dashboard waits for the next start.
	if _, err := getSimpleText(a.reader, "Press Enter to continue to your dashboard", a.out); err != nil {
		a.logger.Debug(ctx, "acknowledgement not read", "error", err.Error())
		return err
	}
	return a.enterDashboard(ctx, res.Session)
}

func (a *App) readSignupForm() (services.SignupForm, error) {
	var form services.SignupForm
	var err error

	if form.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return form, err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return form, err
	}

	pw, err := getPassword(a.out, "Password")
	if err != nil {
		return form, err
	}
	defer common.WipeByteArray(pw)

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return form, err
	}
	defer common.WipeByteArray(confirm)

	form.Password = string(pw)
	form.ConfirmPassword = string(confirm)
	return form, nil
}
