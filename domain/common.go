package domain

import "errors"

var (
	MessageInvalidBody   = "Invalid request body"
	MessageRouteNotFound = "Route not found"

	// Missing-identity wording differs per route; clients match on these
	// strings, so they are part of the public API surface.
	MessageMissingIdentityBody       = "Not allowed — missing user identity (x-user-email header or body.userEmail required)"
	MessageMissingIdentityQuery      = "Not allowed — missing user identity (x-user-email header or ?email required)"
	MessageMissingIdentityMyFoods    = "Missing user identity (x-user-email header or ?email=... required)"
	MessageMissingIdentityMyRequests = "Missing user identity (x-user-email header or ?email required)"
	MessageNotAllowed                = "Not allowed"

	ErrMissingIdentity = errors.New("missing user identity")
	ErrNotAllowed      = errors.New("caller is not the owner")
)

// UserIdentity is the caller identity asserted via request metadata or a
// verified bearer token. Email is the sole authorization credential.
type UserIdentity struct {
	Email   string
	Name    string
	Picture string
}
