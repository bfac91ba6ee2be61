// Package services holds the application logic of the tunnelpanel CLI:
// authentication, the package catalog and the role-gated dashboard. Services
// talk to the API through client.Client and persist only through
// session.Store.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/client"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/session"
	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
)

// ErrIncompleteResponse is returned when the server reports success but
// leaves out the token or the user.
var ErrIncompleteResponse = errors.New("server response lacks token or user")

// AuthService implements login, signup and logout.
type AuthService struct {
	client client.Client
	store  session.Store
	logger logging.Logger

	login  Flow
	signup Flow
}

func NewAuthService(c client.Client, store session.Store, logger logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &AuthService{client: c, store: store, logger: logger}
}

// Login authenticates and persists the session. Nothing is stored on failure.
func (a *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if err := required(username, password); err != nil {
		return nil, err
	}
	if err := a.login.Begin(); err != nil {
		return nil, err
	}

	sess, err := a.doLogin(ctx, username, password)
	a.login.Finish(err)
	return sess, err
}

func (a *AuthService) doLogin(ctx context.Context, username, password string) (*models.Session, error) {
	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "username", username, "error", err.Error())
		return nil, err
	}

	sess := &models.Session{Token: resp.Token, User: resp.User}
	if !sess.Valid() {
		return nil, ErrIncompleteResponse
	}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	a.logger.Info(ctx, "logged in", "username", sess.User.Username, "role", string(sess.Role()))
	return sess, nil
}

// Signup validates the form against the selection, creates the account and
// persists the returned session.
func (a *AuthService) Signup(ctx context.Context, form SignupForm, sel *Selection) (*models.SignupResult, error) {
	form = form.normalized()
	if err := form.Validate(sel); err != nil {
		return nil, err
	}
	if err := a.signup.Begin(); err != nil {
		return nil, err
	}

	res, err := a.doSignup(ctx, form, sel)
	a.signup.Finish(err)
	return res, err
}

func (a *AuthService) doSignup(ctx context.Context, form SignupForm, sel *Selection) (*models.SignupResult, error) {
	pkg, _ := sel.Selected()

	resp, err := a.client.Signup(ctx, models.SignupRequest{
		FullName:  form.FullName,
		Email:     form.Email,
		Password:  form.Password,
		PackageID: pkg.ID,
	})
	if err != nil {
		a.logger.Warn(ctx, "signup failed", "email", form.Email, "package_id", pkg.ID, "error", err.Error())
		return nil, err
	}

	sess := &models.Session{Token: resp.Token, User: resp.User}
	if !sess.Valid() {
		return nil, ErrIncompleteResponse
	}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	res := &models.SignupResult{
		Session:  sess,
		Username: resp.Username,
		Package:  resp.Package,
		Message:  resp.Message,
	}
	if res.Username == "" {
		res.Username = resp.User.Username
	}
	if res.Package.ID == 0 {
		res.Package = pkg
	}

	a.logger.Info(ctx, "account created", "username", res.Username, "package_id", res.Package.ID)
	return res, nil
}

// Logout forgets the persisted session.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// CurrentSession returns the persisted session or nil.
func (a *AuthService) CurrentSession(ctx context.Context) (*models.Session, error) {
	return a.store.Load(ctx)
}

func (a *AuthService) LoginState() FlowState  { return a.login.State() }
func (a *AuthService) SignupState() FlowState { return a.signup.State() }

// LoginMessage renders a login failure for the user.
func LoginMessage(err error) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, client.ErrUnavailable):
		return "Login error: " + client.Message(err)
	default:
		return client.Message(err)
	}
}

// SignupMessage renders a signup failure for the user.
func SignupMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	if errors.Is(err, client.ErrUnavailable) {
		return client.Message(err)
	}

	msg := client.Message(err)
	switch {
	case strings.Contains(msg, "already registered"):
		return "This email is already registered. Please use a different email or try logging in."
	case msg == "":
		return "Registration failed. Please try again."
	default:
		return msg
	}
}
