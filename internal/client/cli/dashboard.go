package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/services"
)

// WhoAmI prints the role banner and the cached identity.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.dash.Session()
	a.println(a.dash.Role().Banner())
	a.printf("Username: %s\nEmail: %s\n", s.User.Username, s.User.Email)
	return nil
}

// Tab switches the dashboard view and prints its freshly loaded data.
func (a *App) Tab(ctx context.Context, name string) error {
	tab := services.Tab(name)
	err := a.dash.Activate(ctx, tab)
	if errors.Is(err, services.ErrTabUnavailable) {
		a.println("This tab is not available for your role.")
		return err
	}
	if err != nil {
		return a.reportError(ctx, "Error loading "+name, err)
	}
	a.renderTab(tab)
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, errors.New("missing user id")
	}
	return strconv.ParseInt(args[0], 10, 64)
}

func (a *App) adminAction(ctx context.Context, args []string, usage string,
	do func(context.Context, int64) error, okMsg, failMsg string) error {
	id, err := parseID(args)
	if err != nil {
		a.println("Usage: " + usage)
		return err
	}
	if err := do(ctx, id); err != nil {
		switch {
		case errors.Is(err, errCancelled):
			a.println("Cancelled.")
			return nil
		case errors.Is(err, services.ErrForbidden):
			a.println("Only administrators can do that.")
			return err
		}
		return a.reportError(ctx, failMsg, err)
	}
	a.println(okMsg)
	a.renderAdminUsers()
	return nil
}

func (a *App) Suspend(ctx context.Context, args []string) error {
	return a.adminAction(ctx, args, "suspend <user-id>", a.dash.SuspendUser,
		"User suspended successfully", "Error suspending user")
}

func (a *App) Activate(ctx context.Context, args []string) error {
	return a.adminAction(ctx, args, "activate <user-id>", a.dash.ActivateUser,
		"User activated successfully", "Error activating user")
}

// Delete asks for confirmation before deleting.
func (a *App) Delete(ctx context.Context, args []string) error {
	return a.adminAction(ctx, args, "delete <user-id>", func(ctx context.Context, id int64) error {
		done, err := a.dash.DeleteUser(ctx, id, func() bool {
			ok, err := getConfirmation(a.reader, "Are you sure you want to delete this user?", a.out)
			return err == nil && ok
		})
		if err == nil && !done {
			return errCancelled
		}
		return err
	}, "User deleted successfully", "Error deleting user")
}

var errCancelled = errors.New("cancelled")

// CreateUser provisions an account as a reseller and shows its
// credentials once.
func (a *App) CreateUser(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "User email", a.out)
	if err != nil {
		return err
	}
	daysText, err := getSimpleText(a.reader, "Expiry days", a.out)
	if err != nil {
		return err
	}
	days, err := strconv.Atoi(daysText)
	if err != nil {
		days = 0
	}

	creds, err := a.dash.CreateUser(ctx, email, days)
	if creds == nil {
		if errors.Is(err, services.ErrForbidden) {
			a.println("Only resellers can do that.")
			return err
		}
		return a.reportError(ctx, "Error creating user", err)
	}

	a.printf("User Created!\nUsername: %s\nPassword: %s\n", creds.Username, creds.Password)
	if err != nil {
		a.println("The user list below may be out of date.")
		reportErr := a.reportError(ctx, "Error reloading users", err)
		if a.dash != nil {
			a.renderReseller()
		}
		return reportErr
	}
	a.renderReseller()
	return nil
}

// UpdateEmail changes the account email and shows the reloaded profile.
func (a *App) UpdateEmail(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "New email", a.out)
	if err != nil {
		return err
	}
	if err := a.dash.UpdateEmail(ctx, email); err != nil {
		return a.reportError(ctx, "Error updating profile", err)
	}
	a.println("Profile updated successfully")
	a.renderProfile()
	return nil
}
