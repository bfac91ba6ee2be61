// Package models defines client-side data models used by the tunnelpanel CLI.
package models

import (
	"strings"
	"time"
)

// Role is the account role issued by the server. It is never changed on the
// client.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReseller Role = "reseller"
	RoleUser     Role = "user"
)

// ParseRole maps a raw role value to a Role. Unknown values fall back to
// RoleUser (least privilege).
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleReseller:
		return RoleReseller
	default:
		return RoleUser
	}
}

// Banner renders the role line shown at the top of the dashboard.
func (r Role) Banner() string {
	return "Role: " + strings.ToUpper(string(r))
}

// Status is the account status. It drives the badge and the actions offered
// in the admin table.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Badge renders the status label, e.g. "ACTIVE".
func (s Status) Badge() string {
	return strings.ToUpper(string(s))
}

// IsActive reports whether the account is active.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// User is an account record as returned by the API.
type User struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	ResellerID *int64     `json:"reseller_id,omitempty"`
}

// EffectiveRole returns the role used for view gating.
func (u User) EffectiveRole() Role {
	return ParseRole(string(u.Role))
}

// Credentials is a freshly issued username/password pair. It is shown to the
// operator once and never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Quota is the reseller allotment as computed by the server. The client
// never derives Remaining itself.
type Quota struct {
	TotalQuota int `json:"total_quota"`
	Used       int `json:"used"`
	Remaining  int `json:"remaining"`
}
