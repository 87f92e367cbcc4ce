// File: services/admin/interface.go
package admin

import (
	"context"
	"errors"
)

// ErrNotAuthorized is returned when the caller is not in the admin list.
var ErrNotAuthorized = errors.New("caller is not an administrator")

// Service covers admin-only operations that touch the identity provider.
type Service interface {
	// SetPassword updates the target user's credential. The acting user
	// must appear in the stored admin list; a missing permissions document
	// is an error, not an open door.
	SetPassword(ctx context.Context, actorUserID, targetUserID, password string) error
	// IsAdmin reports plain (non-impersonating) admin status for route
	// guards.
	IsAdmin(ctx context.Context, userID string) (bool, error)
}
