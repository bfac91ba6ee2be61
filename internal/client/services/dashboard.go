package services

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/client"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrTabUnavailable = errors.New("tab is not available for this role")
	ErrForbidden      = errors.New("action is not permitted for this role")
)

type Tab string

const (
	TabProfile  Tab = "profile"
	TabAdmin    Tab = "admin"
	TabReseller Tab = "reseller"
)

// TabsFor lists the dashboard tabs a role may open, profile first.
func TabsFor(r models.Role) []Tab {
	switch r {
	case models.RoleAdmin:
		return []Tab{TabProfile, TabAdmin}
	case models.RoleReseller:
		return []Tab{TabProfile, TabReseller}
	default:
		return []Tab{TabProfile}
	}
}

// Dashboard is the view state of a logged-in session. Every activation
// refetches its data; a response is applied only if no newer request for
// the same view was started meanwhile.
type Dashboard struct {
	client client.Client
	sess   *models.Session
	role   models.Role
	tabs   []Tab
	logger logging.Logger

	mu     sync.Mutex
	active Tab
	seq    map[Tab]uint64

	profile       *models.User
	adminUsers    []models.User
	quota         *models.Quota
	resellerUsers []models.User
}

func NewDashboard(c client.Client, sess *models.Session, logger logging.Logger) (*Dashboard, error) {
	if !sess.Valid() {
		return nil, ErrNoSession
	}
	if logger == nil {
		logger = logging.Nop()
	}
	role := sess.Role()
	return &Dashboard{
		client: c,
		sess:   sess,
		role:   role,
		tabs:   TabsFor(role),
		logger: logger.With("username", sess.User.Username, "role", string(role)),
		seq:    make(map[Tab]uint64),
	}, nil
}

// Init opens the profile tab.
func (d *Dashboard) Init(ctx context.Context) error {
	return d.Activate(ctx, TabProfile)
}

// Activate switches to tab and reloads its data.
func (d *Dashboard) Activate(ctx context.Context, tab Tab) error {
	if !slices.Contains(d.tabs, tab) {
		return ErrTabUnavailable
	}

	d.mu.Lock()
	d.active = tab
	d.mu.Unlock()

	return d.refresh(ctx, tab)
}

// begin starts a new load of tab and returns its sequence token.
func (d *Dashboard) begin(tab Tab) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq[tab]++
	return d.seq[tab]
}

// apply runs set under the lock if token is still the latest for tab.
func (d *Dashboard) apply(tab Tab, token uint64, set func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seq[tab] != token {
		return false
	}
	set()
	return true
}

func (d *Dashboard) refresh(ctx context.Context, tab Tab) error {
	token := d.begin(tab)
	var err error

	switch tab {
	case TabProfile:
		var u *models.User
		if u, err = d.client.Profile(ctx, d.sess.Token); err == nil {
			d.apply(tab, token, func() { d.profile = u })
		}

	case TabAdmin:
		var users []models.User
		if users, err = d.client.AdminUsers(ctx, d.sess.Token); err == nil {
			d.apply(tab, token, func() { d.adminUsers = users })
		}

	case TabReseller:
		var q *models.Quota
		if q, err = d.client.ResellerQuota(ctx, d.sess.Token); err != nil {
			break
		}
		var users []models.User
		if users, err = d.client.ResellerUsers(ctx, d.sess.Token); err == nil {
			d.apply(tab, token, func() {
				d.quota = q
				d.resellerUsers = users
			})
		}
	}

	if err != nil {
		d.logger.Error(ctx, "loading view failed", "tab", string(tab), "error", err.Error())
	}
	return err
}

func (d *Dashboard) Session() *models.Session { return d.sess }
func (d *Dashboard) Role() models.Role        { return d.role }
func (d *Dashboard) Tabs() []Tab              { return slices.Clone(d.tabs) }

func (d *Dashboard) ActiveTab() Tab {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// ProfileView returns the last loaded profile.
func (d *Dashboard) ProfileView() (models.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.profile == nil {
		return models.User{}, false
	}
	return *d.profile, true
}

func (d *Dashboard) AdminUsers() []models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.adminUsers)
}

// ResellerView returns the last loaded quota and provisioned users.
func (d *Dashboard) ResellerView() (models.Quota, []models.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.quota == nil {
		return models.Quota{}, nil, false
	}
	return *d.quota, slices.Clone(d.resellerUsers), true
}
