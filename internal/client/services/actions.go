package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
)

func (d *Dashboard) requireRole(r models.Role) error {
	if d.role != r {
		return ErrForbidden
	}
	return nil
}

// SuspendUser asks the server to suspend id and reloads the admin list.
// The current status of the user is not checked here.
func (d *Dashboard) SuspendUser(ctx context.Context, id int64) error {
	if err := d.requireRole(models.RoleAdmin); err != nil {
		return err
	}
	if err := d.client.SuspendUser(ctx, d.sess.Token, id); err != nil {
		d.logger.Warn(ctx, "suspend failed", "user_id", id, "error", err.Error())
		return err
	}
	d.logger.Info(ctx, "user suspended", "user_id", id)
	return d.refresh(ctx, TabAdmin)
}

func (d *Dashboard) ActivateUser(ctx context.Context, id int64) error {
	if err := d.requireRole(models.RoleAdmin); err != nil {
		return err
	}
	if err := d.client.ActivateUser(ctx, d.sess.Token, id); err != nil {
		d.logger.Warn(ctx, "activate failed", "user_id", id, "error", err.Error())
		return err
	}
	d.logger.Info(ctx, "user activated", "user_id", id)
	return d.refresh(ctx, TabAdmin)
}

// DeleteUser deletes id after confirm approves it. It reports whether the
// delete was issued. A nil or declined confirmation sends nothing.
func (d *Dashboard) DeleteUser(ctx context.Context, id int64, confirm func() bool) (bool, error) {
	if err := d.requireRole(models.RoleAdmin); err != nil {
		return false, err
	}
	if confirm == nil || !confirm() {
		return false, nil
	}
	if err := d.client.DeleteUser(ctx, d.sess.Token, id); err != nil {
		d.logger.Warn(ctx, "delete failed", "user_id", id, "error", err.Error())
		return true, err
	}
	d.logger.Info(ctx, "user deleted", "user_id", id)
	return true, d.refresh(ctx, TabAdmin)
}

// ErrRefreshFailed wraps a failed reload that followed a successful
// mutation. The mutation itself stands.
var ErrRefreshFailed = errors.New("view not refreshed")

// CreateUser provisions an account under the reseller. The returned
// credentials are not kept anywhere. If only the reload fails, the
// credentials are returned together with an error wrapping ErrRefreshFailed.
func (d *Dashboard) CreateUser(ctx context.Context, email string, expiryDays int) (*models.Credentials, error) {
	if err := d.requireRole(models.RoleReseller); err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	if err := required(email); err != nil {
		return nil, err
	}
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	if validate.Var(expiryDays, "gt=0") != nil {
		return nil, ErrInvalidExpiry
	}

	creds, err := d.client.ResellerCreateUser(ctx, d.sess.Token, email, expiryDays)
	if err != nil {
		d.logger.Warn(ctx, "create user failed", "email", email, "error", err.Error())
		return nil, err
	}
	d.logger.Info(ctx, "user created", "username", creds.Username, "expiry_days", expiryDays)

	if err := d.refresh(ctx, TabReseller); err != nil {
		d.logger.Warn(ctx, "reseller view not reloaded", "error", err.Error())
		return creds, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	return creds, nil
}

// UpdateEmail changes the caller's email and reloads the profile.
func (d *Dashboard) UpdateEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := required(email); err != nil {
		return err
	}
	if err := checkEmail(email); err != nil {
		return err
	}

	if err := d.client.UpdateEmail(ctx, d.sess.Token, email); err != nil {
		d.logger.Warn(ctx, "email update failed", "error", err.Error())
		return err
	}
	return d.refresh(ctx, TabProfile)
}
