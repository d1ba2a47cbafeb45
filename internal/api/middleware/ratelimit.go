package middleware

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/WeddingSalon-BookingService/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, попробуйте позже"

// tokenBucketScript атомарно пополняет и списывает токен.
// Возвращает {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals * refill_tokens)
		last_refill = last_refill + intervals * interval_ms
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// Decision результат проверки лимита
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// TokenBucketConfig параметры ведра токенов
type TokenBucketConfig struct {
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// TokenBucket лимитер на Redis, состояние ведра хранится в hash под ключом prefix:key
type TokenBucket struct {
	client redis.Scripter
	cfg    TokenBucketConfig
	now    func() time.Time
}

func NewTokenBucket(client redis.Scripter, cfg TokenBucketConfig) *TokenBucket {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "ratelimit"
	}
	return &TokenBucket{client: client, cfg: cfg, now: time.Now}
}

func (b *TokenBucket) Allow(ctx context.Context, key string) (Decision, error) {
	args := []interface{}{
		b.now().UnixMilli(),
		b.cfg.Capacity,
		b.cfg.RefillTokens,
		b.cfg.RefillInterval.Milliseconds(),
		int64(b.cfg.TTL / time.Second),
	}

	vals, err := tokenBucketScript.Run(ctx, b.client, []string{b.cfg.Prefix + ":" + key}, args...).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("token bucket script: %w", err)
	}
	if len(vals) != 3 {
		return Decision{}, fmt.Errorf("token bucket script: unexpected result %v", vals)
	}

	return Decision{
		Allowed:    vals[0] == 1,
		Limit:      b.cfg.Capacity,
		Remaining:  vals[1],
		RetryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}

// RateLimit ограничивает частоту запросов с одного IP.
// Ошибка лимитера не блокирует запрос (fail-open), а только логируется.
func RateLimit(limiter Limiter, scope string, trustProxy bool, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustProxy)
			key := scope + ":ip:" + ip

			decision, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Warn("%s %s - Rate limiter unavailable, passing through: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

			if !decision.Allowed {
				secs := int(math.Ceil(decision.RetryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				logger.Warn("%s %s - Rate limited: ip=%s, retry_after=%ds", r.Method, r.URL.Path, ip, secs)
				handlers.RespondError(w, http.StatusTooManyRequests, handlers.CodeRateLimited, msgRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP адрес клиента. X-Forwarded-For учитывается только за доверенным прокси.
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr == "" {
			return "unknown"
		}
		return r.RemoteAddr
	}
	return host
}
