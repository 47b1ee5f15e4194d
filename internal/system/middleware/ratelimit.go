/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/asgardeo/teamsauth/internal/system/error/apierror"
	"github.com/asgardeo/teamsauth/internal/system/log"
	"github.com/asgardeo/teamsauth/internal/system/utils"
)

// limiterIdleTimeout is how long an unused per-client limiter is kept.
const limiterIdleTimeout = 5 * time.Minute

// RateLimitOptions configures a per-client token bucket.
type RateLimitOptions struct {
	RequestsPerMinute int
	Burst             int
	// TrustProxyHeaders keys clients by X-Forwarded-For/X-Real-IP instead of the connection peer.
	// Enable it only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
	// KeyFunc extracts the client key. Overrides the IP based default.
	KeyFunc func(r *http.Request) string
}

// rateLimiter holds one limiter per client key.
type rateLimiter struct {
	limiters    sync.Map
	limit       rate.Limit
	burst       int
	mu          sync.Mutex
	lastCleanup time.Time
}

func newRateLimiter(opts RateLimitOptions) *rateLimiter {
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	return &rateLimiter{
		limit:       rate.Limit(float64(opts.RequestsPerMinute) / time.Minute.Seconds()),
		burst:       burst,
		lastCleanup: time.Now(),
	}
}

// getLimiter retrieves or creates the limiter for key.
func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	actual, _ := rl.limiters.LoadOrStore(key, rate.NewLimiter(rl.limit, rl.burst))
	rl.maybeCleanup()
	return actual.(*rate.Limiter)
}

// maybeCleanup drops limiters whose buckets have refilled, which means the client went idle.
func (rl *rateLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < limiterIdleTimeout {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// WithRateLimit wraps handler with a per-client rate limit. Rejected requests get 429 with Retry-After.
func WithRateLimit(handler http.HandlerFunc, opts RateLimitOptions) http.HandlerFunc {
	if opts.RequestsPerMinute <= 0 {
		return handler
	}
	keyFunc := opts.KeyFunc
	if keyFunc == nil {
		keyFunc = utils.GetRemoteIP
		if opts.TrustProxyHeaders {
			keyFunc = utils.GetClientIP
		}
	}
	rl := newRateLimiter(opts)

	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RateLimitMiddleware"))

		key := keyFunc(r)
		if key == "" {
			logger.Warn("Unable to extract rate limit key, allowing request")
			handler(w, r)
			return
		}

		limiter := rl.getLimiter(key)
		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := max(int(reservation.Delay().Seconds()), 1)
			reservation.Cancel()

			logger.Warn("Rate limit exceeded", log.String("endpoint", r.URL.Path),
				log.Int("retryAfter", retryAfter))

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			utils.WriteJSON(w, http.StatusTooManyRequests, apierror.ErrorResponse{
				Code:        "SSE-4290",
				Message:     "Too many requests",
				Description: "The request rate limit was exceeded. Please try again later.",
			})
			return
		}

		handler(w, r)
	}
}
