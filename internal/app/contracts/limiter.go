package contracts

import "context"

// LoginLimiter throttles failed logins per username.
type LoginLimiter interface {
	IsBlocked(ctx context.Context, username string) (blocked bool, retryAfterSecs int, err error)
	RegisterFailure(ctx context.Context, username string) error
}
