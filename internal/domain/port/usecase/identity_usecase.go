package usecase

import "context"

// IdentityResolver maps request credentials to a stable owner identifier.
// A pure lookup: no mutation, no session state.
type IdentityResolver interface {
	// Resolve returns the owner identity for a username/password pair.
	//
	// Possible errors:
	// - ErrUnauthenticated: missing, unknown or mismatched credentials
	// - ErrStorage: if the credential store is unreachable
	Resolve(ctx context.Context, username, password string) (string, error)
}
