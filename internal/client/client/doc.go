// Package client contains the gateway to the provisioning API.
//
// # Overview
//
// The package provides a transport-agnostic API contract (see the Client
// interface) and a concrete JSON/HTTP implementation (see HTTPClient) that
// attaches a bearer token when one is passed, tags every request with an
// X-Request-ID, and bounds requests with a timeout and an optional rate limit.
//
// # Error Handling
//
// A request that could not complete maps to ErrUnavailable. A non-2xx status,
// or a 2xx body carrying an "error" field, maps to *DomainError whose Message
// is the server text when present and "HTTP error! status: N" otherwise.
// 401 and 403 also match ErrUnauthorized. Use Message to get the text that is
// shown to the user.
//
// The client never reads or writes the session store; callers decide what to
// persist.
package client
