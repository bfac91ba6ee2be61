// Package cli provides the interactive tunnelpanel command-line client.
//
// NewApp wires configuration, the session store, the API client and the
// services; App.Run restores a stored session and starts the REPL, which
// blocks until the user exits.
//
// Logged out, the REPL offers the package catalog, signup and login. A
// successful login or signup opens the role-gated dashboard: every user has
// the profile view, administrators additionally manage all accounts, and
// resellers see their quota and provision new accounts. Each view is
// reloaded whenever it is opened or changed by an action.
package cli
