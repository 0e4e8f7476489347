package ratelimiter

import (
	"context"
	"fmt"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed window counter stored in Redis with a TTL equal
// to the window duration.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{redis: redis, log: log}
}

type ResourceLimiterInput struct {
	// ResourceName is the entity to be limited, e.g. a username.
	ResourceName string
	// LimiterGroupName namespaces the limiter key, e.g. LOGIN.
	LimiterGroupName string
	WindowDurationSec int
	MaxQuota          int
	// NowUTC defaults to time.Now().UTC() when zero.
	NowUTC time.Time
}

type ResourceLimiterOutput struct {
	Allowed        bool
	RetryAfterSecs int
}

type window struct {
	key        string
	ttl        time.Duration
	retryAfter int
}

func (in *ResourceLimiterInput) window() (*window, bool) {
	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	if resource == "" || group == "" {
		return nil, false
	}

	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = 60
	}
	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	nextWindowStart := (windowID + 1) * int64(windowSec)
	return &window{
		key:        fmt.Sprintf("%s:%s:%d", group, resource, windowID),
		ttl:        time.Duration(windowSec)*time.Second + time.Second,
		retryAfter: int(nextWindowStart-now.Unix()) + 1,
	}, true
}

// ApplyResourceLimiter counts one hit in the current window and reports
// whether the quota still allows it.
func (l *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *ResourceLimiterInput) (*ResourceLimiterOutput, error) {
	if in == nil {
		return &ResourceLimiterOutput{Allowed: false}, fmt.Errorf("nil input")
	}
	if in.MaxQuota <= 0 {
		return &ResourceLimiterOutput{Allowed: true}, nil
	}
	w, ok := in.window()
	if !ok {
		return &ResourceLimiterOutput{Allowed: false, RetryAfterSecs: in.WindowDurationSec}, nil
	}

	newCount, err := l.redis.IncrementWithTTL(ctx, w.key, w.ttl)
	if err != nil {
		l.log.Error("ResourceLimiter.ApplyResourceLimiter increment failed",
			zap.String(constvars.LoggingRedisKey, w.key),
			zap.Error(err))
		return &ResourceLimiterOutput{Allowed: false}, err
	}

	if newCount > in.MaxQuota {
		return &ResourceLimiterOutput{Allowed: false, RetryAfterSecs: w.retryAfter}, nil
	}
	return &ResourceLimiterOutput{Allowed: true}, nil
}

// CheckResourceLimiter reports whether the current window is already
// exhausted without counting a hit.
func (l *ResourceLimiter) CheckResourceLimiter(ctx context.Context, in *ResourceLimiterInput) (*ResourceLimiterOutput, error) {
	if in == nil {
		return &ResourceLimiterOutput{Allowed: false}, fmt.Errorf("nil input")
	}
	if in.MaxQuota <= 0 {
		return &ResourceLimiterOutput{Allowed: true}, nil
	}
	w, ok := in.window()
	if !ok {
		return &ResourceLimiterOutput{Allowed: false, RetryAfterSecs: in.WindowDurationSec}, nil
	}

	raw, err := l.redis.Get(ctx, w.key)
	if err != nil {
		l.log.Error("ResourceLimiter.CheckResourceLimiter get failed",
			zap.String(constvars.LoggingRedisKey, w.key),
			zap.Error(err))
		return &ResourceLimiterOutput{Allowed: false}, err
	}
	if raw == "" {
		return &ResourceLimiterOutput{Allowed: true}, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return &ResourceLimiterOutput{Allowed: false}, fmt.Errorf("unexpected limiter value %q: %w", raw, err)
	}
	if count >= in.MaxQuota {
		return &ResourceLimiterOutput{Allowed: false, RetryAfterSecs: w.retryAfter}, nil
	}
	return &ResourceLimiterOutput{Allowed: true}, nil
}
