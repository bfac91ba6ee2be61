// Package common contains small helpers and constants shared across
// tunnelpanel packages.
package common

// RequestIDHeaderName is the HTTP header that carries a per-request
// correlation id on outbound API calls.
const RequestIDHeaderName = "X-Request-ID"

// AppName tags every log record of the CLI.
const AppName = "tunnelpanel"
