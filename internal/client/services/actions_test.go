package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuspendUser_ForwardsUnchangedThenRefetches(t *testing.T) {
	fc := &fakeClient{AdminUsersRet: []models.User{{ID: 5, Status: models.StatusSuspended}}}
	d := newDashboard(t, fc, models.RoleAdmin)

	// Already suspended: the request is still sent.
	require.NoError(t, d.SuspendUser(context.Background(), 5))

	assert.Equal(t, []string{"PUT /admin/users/5/suspend tok", "GET /admin/users tok"}, fc.Calls())
	assert.Equal(t, fc.AdminUsersRet, d.AdminUsers())
}

func TestActivateUser(t *testing.T) {
	fc := &fakeClient{}
	d := newDashboard(t, fc, models.RoleAdmin)

	require.NoError(t, d.ActivateUser(context.Background(), 7))
	assert.Equal(t, []string{"PUT /admin/users/7/activate tok", "GET /admin/users tok"}, fc.Calls())
}

func TestAdminAction_FailureSkipsRefetch(t *testing.T) {
	fc := &fakeClient{ActionErr: errors.New("nope")}
	d := newDashboard(t, fc, models.RoleAdmin)

	require.Error(t, d.SuspendUser(context.Background(), 5))
	assert.Equal(t, []string{"PUT /admin/users/5/suspend tok"}, fc.Calls())
}

func TestDeleteUser_Confirmation(t *testing.T) {
	ctx := context.Background()

	t.Run("declined sends nothing", func(t *testing.T) {
		fc := &fakeClient{}
		d := newDashboard(t, fc, models.RoleAdmin)

		asked := false
		done, err := d.DeleteUser(ctx, 5, func() bool { asked = true; return false })
		require.NoError(t, err)
		assert.True(t, asked)
		assert.False(t, done)
		assert.Empty(t, fc.Calls())
	})

	t.Run("nil confirm sends nothing", func(t *testing.T) {
		fc := &fakeClient{}
		d := newDashboard(t, fc, models.RoleAdmin)

		done, err := d.DeleteUser(ctx, 9, nil)
		require.NoError(t, err)
		assert.False(t, done)
		assert.Empty(t, fc.Calls())
	})

	t.Run("approved deletes and refetches", func(t *testing.T) {
		fc := &fakeClient{}
		d := newDashboard(t, fc, models.RoleAdmin)

		done, err := d.DeleteUser(ctx, 5, func() bool { return true })
		require.NoError(t, err)
		assert.True(t, done)
		assert.Equal(t, []string{"DELETE /admin/users/5/delete tok", "GET /admin/users tok"}, fc.Calls())
	})
}

func TestActions_RoleScoping(t *testing.T) {
	ctx := context.Background()

	fc := &fakeClient{}
	user := newDashboard(t, fc, models.RoleUser)
	require.ErrorIs(t, user.SuspendUser(ctx, 1), ErrForbidden)
	require.ErrorIs(t, user.ActivateUser(ctx, 1), ErrForbidden)
	_, err := user.DeleteUser(ctx, 1, func() bool { t.Fatal("confirm must not be asked"); return true })
	require.ErrorIs(t, err, ErrForbidden)
	_, err = user.CreateUser(ctx, "a@b.co", 30)
	require.ErrorIs(t, err, ErrForbidden)

	admin := newDashboard(t, fc, models.RoleAdmin)
	_, err = admin.CreateUser(ctx, "a@b.co", 30)
	require.ErrorIs(t, err, ErrForbidden)

	reseller := newDashboard(t, fc, models.RoleReseller)
	require.ErrorIs(t, reseller.SuspendUser(ctx, 1), ErrForbidden)

	assert.Empty(t, fc.Calls())
}

func TestCreateUser(t *testing.T) {
	fc := &fakeClient{
		CreateRet:        &models.Credentials{Username: "739102", Password: "x9Kq2mPz"},
		QuotaRet:         &models.Quota{TotalQuota: 10, Used: 4, Remaining: 6},
		ResellerUsersRet: []models.User{{ID: 11}},
	}
	d := newDashboard(t, fc, models.RoleReseller)

	creds, err := d.CreateUser(context.Background(), " new@client.io ", 30)
	require.NoError(t, err)

	assert.Equal(t, "739102", creds.Username)
	assert.Equal(t, "new@client.io", fc.LastCreateEmail)
	assert.Equal(t, 30, fc.LastCreateDays)
	assert.Equal(t, []string{
		"POST /reseller/create-user tok",
		"GET /reseller/quota tok",
		"GET /reseller/users tok",
	}, fc.Calls())

	q, _, ok := d.ResellerView()
	require.True(t, ok)
	assert.Equal(t, 6, q.Remaining)
}

func TestCreateUser_ReloadFailureKeepsCredentials(t *testing.T) {
	fc := &fakeClient{
		CreateRet: &models.Credentials{Username: "739102", Password: "x9Kq2mPz"},
		QuotaErr:  errors.New("quota down"),
	}
	d := newDashboard(t, fc, models.RoleReseller)

	creds, err := d.CreateUser(context.Background(), "new@client.io", 30)
	require.ErrorIs(t, err, ErrRefreshFailed)
	require.NotNil(t, creds)
	assert.Equal(t, "x9Kq2mPz", creds.Password)
}

func TestCreateUser_Validation(t *testing.T) {
	fc := &fakeClient{}
	d := newDashboard(t, fc, models.RoleReseller)
	ctx := context.Background()

	_, err := d.CreateUser(ctx, "", 30)
	require.ErrorIs(t, err, ErrRequiredFields)
	_, err = d.CreateUser(ctx, "not-an-email", 30)
	require.ErrorIs(t, err, ErrInvalidEmail)
	_, err = d.CreateUser(ctx, "a@b.co", 0)
	require.ErrorIs(t, err, ErrInvalidExpiry)

	assert.Empty(t, fc.Calls())
}

func TestUpdateEmail_ReloadsProfile(t *testing.T) {
	fc := &fakeClient{}
	d := newDashboard(t, fc, models.RoleUser)

	require.NoError(t, d.UpdateEmail(context.Background(), "x@y.io"))
	assert.Equal(t, "x@y.io", fc.LastUpdateEmail)
	assert.Equal(t, []string{"PUT /user/update tok", "GET /user/profile tok"}, fc.Calls())

	require.ErrorIs(t, d.UpdateEmail(context.Background(), "x@y"), ErrInvalidEmail)
	assert.Len(t, fc.Calls(), 2)
}
