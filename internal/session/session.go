// Package session carries the authenticated identity through a request.
// The auth middleware is the single point where a verified token becomes
// a Session; everything below it receives the identity explicitly via
// the request context instead of a process-wide current user.
package session

import "context"

// Session is the identity of the caller for one request.
type Session struct {
	UserID string
	Email  string
}

type contextKey struct{}

// NewContext returns a context carrying the session.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts the session placed by the auth middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}
