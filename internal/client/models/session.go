package models

// Session is the client-held proof of authentication plus the cached user
// identity. Token and User are always set or cleared together.
type Session struct {
	Token string
	User  User
}

// Valid reports whether both halves of the session are populated.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.Username != ""
}

// Role returns the role the dashboard is gated on.
func (s *Session) Role() Role {
	if s == nil {
		return RoleUser
	}
	return s.User.EffectiveRole()
}

// AuthResponse is the login reply: either Token+User or Error.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
	Error string `json:"error,omitempty"`
}

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	PackageID int64  `json:"package_id"`
}

// SignupResponse is the body returned by POST /auth/signup.
type SignupResponse struct {
	Token    string  `json:"token"`
	User     User    `json:"user"`
	Username string  `json:"username"`
	Package  Package `json:"package"`
	Message  string  `json:"message,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// SignupResult is what the signup flow hands back to the caller for the
// blocking acknowledgement step.
type SignupResult struct {
	Session  *Session
	Username string
	Package  Package
	Message  string
}
