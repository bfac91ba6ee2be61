package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
)

// fakeClient implements client.Client. Calls are recorded as
// "METHOD /path token" so tests can assert on order and authorization.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	PackagesRet []models.Package
	PackagesErr error

	LoginRet      *models.AuthResponse
	LoginErr      error
	LastLoginUser string
	LastLoginPass string

	SignupRet  *models.SignupResponse
	SignupErr  error
	LastSignup models.SignupRequest

	ProfileRet *models.User
	ProfileErr error

	UpdateEmailErr  error
	LastUpdateEmail string

	AdminUsersRet []models.User
	AdminUsersErr error
	ActionErr     error

	QuotaRet         *models.Quota
	QuotaErr         error
	ResellerUsersRet []models.User
	CreateRet        *models.Credentials
	CreateErr        error
	LastCreateEmail  string
	LastCreateDays   int

	// onProfile runs inside Profile before it returns.
	onProfile func()
}

func (f *fakeClient) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Do(ctx context.Context, method, path, token string, body, out any) error {
	f.record("%s %s %s", method, path, token)
	return nil
}

func (f *fakeClient) Packages(ctx context.Context) ([]models.Package, error) {
	f.record("GET /packages ")
	return f.PackagesRet, f.PackagesErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	f.record("POST /auth/login ")
	f.LastLoginUser, f.LastLoginPass = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error) {
	f.record("POST /auth/signup ")
	f.LastSignup = req
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Profile(ctx context.Context, token string) (*models.User, error) {
	f.record("GET /user/profile %s", token)
	if f.onProfile != nil {
		f.onProfile()
	}
	if f.ProfileErr != nil {
		return nil, f.ProfileErr
	}
	u := *f.ProfileRet
	return &u, nil
}

func (f *fakeClient) UpdateEmail(ctx context.Context, token, email string) error {
	f.record("PUT /user/update %s", token)
	f.LastUpdateEmail = email
	return f.UpdateEmailErr
}

func (f *fakeClient) AdminUsers(ctx context.Context, token string) ([]models.User, error) {
	f.record("GET /admin/users %s", token)
	return f.AdminUsersRet, f.AdminUsersErr
}

func (f *fakeClient) SuspendUser(ctx context.Context, token string, id int64) error {
	f.record("PUT /admin/users/%d/suspend %s", id, token)
	return f.ActionErr
}

func (f *fakeClient) ActivateUser(ctx context.Context, token string, id int64) error {
	f.record("PUT /admin/users/%d/activate %s", id, token)
	return f.ActionErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, token string, id int64) error {
	f.record("DELETE /admin/users/%d/delete %s", id, token)
	return f.ActionErr
}

func (f *fakeClient) ResellerQuota(ctx context.Context, token string) (*models.Quota, error) {
	f.record("GET /reseller/quota %s", token)
	return f.QuotaRet, f.QuotaErr
}

func (f *fakeClient) ResellerUsers(ctx context.Context, token string) ([]models.User, error) {
	f.record("GET /reseller/users %s", token)
	return f.ResellerUsersRet, nil
}

func (f *fakeClient) ResellerCreateUser(ctx context.Context, token, email string, expiryDays int) (*models.Credentials, error) {
	f.record("POST /reseller/create-user %s", token)
	f.LastCreateEmail, f.LastCreateDays = email, expiryDays
	return f.CreateRet, f.CreateErr
}

// memStore is an in-memory session.Store.
type memStore struct {
	sess    *models.Session
	saves   int
	SaveErr error
}

func (m *memStore) Load(ctx context.Context) (*models.Session, error) { return m.sess, nil }

func (m *memStore) Save(ctx context.Context, s *models.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.saves++
	cp := *s
	m.sess = &cp
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.sess = nil
	return nil
}

func (m *memStore) Close() error { return nil }
