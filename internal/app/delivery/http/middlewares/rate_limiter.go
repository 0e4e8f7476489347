package middlewares

import (
	"net"
	"net/http"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/exceptions"
	"proacolhe-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per client IP token bucket. A client that drains its
// bucket is blocked for blockTime.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func clientIP(req *http.Request) string {
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return ip
}

func (r *RateLimiter) reject(w http.ResponseWriter, req *http.Request, ip string, until time.Time) {
	retryAfter := int(until.Sub(r.now()).Seconds()) + 1
	utils.LogSecurityEvent(r.log, "rate_limit_exceeded", utils.GetRequestID(req.Context()), "medium",
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.Int(constvars.LoggingRetryAfterKey, retryAfter),
	)
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfter))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil))
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := clientIP(req)
		now := r.now()

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if now.Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, req, ip, blockedUntil)
				return
			}

			delete(r.blocked, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
			r.limiters[ip] = limiter
		}

		if !limiter.AllowN(now, 1) {
			blockedUntil := now.Add(r.blockTime)
			r.blocked[ip] = blockedUntil
			r.mu.Unlock()
			r.reject(w, req, ip, blockedUntil)
			return
		}

		r.mu.Unlock()

		next.ServeHTTP(w, req)
	})
}

// NewRateLimiterFromConfig allows App.MaxTimeRequestsPerSeconds requests in
// a burst, refilled at one per second.
func (m *Middlewares) NewRateLimiterFromConfig(blockTime time.Duration) *RateLimiter {
	return NewRateLimiter(m.InternalConfig.App.MaxTimeRequestsPerSeconds, time.Second, blockTime, m.Log)
}
