package ratelimiter

import (
	"context"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/pkg/constvars"
	"time"
)

type loginLimiter struct {
	limiter     *ResourceLimiter
	maxAttempts int
	windowSec   int
	now         func() time.Time
}

// NewLoginLimiter counts failed logins per username in a fixed window taken
// from InternalConfig.Auth.
func NewLoginLimiter(limiter *ResourceLimiter, internalConfig *config.InternalConfig) contracts.LoginLimiter {
	return &loginLimiter{
		limiter:     limiter,
		maxAttempts: internalConfig.Auth.LoginMaxAttempts,
		windowSec:   int(internalConfig.Auth.LoginWindow / time.Second),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (l *loginLimiter) input(username string) *ResourceLimiterInput {
	return &ResourceLimiterInput{
		ResourceName:      username,
		LimiterGroupName:  constvars.LoginLimiterGroupName,
		WindowDurationSec: l.windowSec,
		MaxQuota:          l.maxAttempts,
		NowUTC:            l.now(),
	}
}

func (l *loginLimiter) IsBlocked(ctx context.Context, username string) (bool, int, error) {
	output, err := l.limiter.CheckResourceLimiter(ctx, l.input(username))
	if err != nil {
		return false, 0, err
	}
	return !output.Allowed, output.RetryAfterSecs, nil
}

func (l *loginLimiter) RegisterFailure(ctx context.Context, username string) error {
	_, err := l.limiter.ApplyResourceLimiter(ctx, l.input(username))
	return err
}
