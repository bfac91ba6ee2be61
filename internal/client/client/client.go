package client

import (
	"context"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
)

// Client is the transport-agnostic contract of the provisioning API.
//
// Operations that need authorization take the bearer token explicitly; an
// empty token sends no Authorization header. Implementations never persist
// anything on their own.
type Client interface {
	Do(ctx context.Context, method, path, token string, body, out any) error

	Packages(ctx context.Context) ([]models.Package, error)
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.SignupResponse, error)

	Profile(ctx context.Context, token string) (*models.User, error)
	UpdateEmail(ctx context.Context, token, email string) error

	AdminUsers(ctx context.Context, token string) ([]models.User, error)
	SuspendUser(ctx context.Context, token string, id int64) error
	ActivateUser(ctx context.Context, token string, id int64) error
	DeleteUser(ctx context.Context, token string, id int64) error

	ResellerQuota(ctx context.Context, token string) (*models.Quota, error)
	ResellerUsers(ctx context.Context, token string) ([]models.User, error)
	ResellerCreateUser(ctx context.Context, token, email string, expiryDays int) (*models.Credentials, error)
}
