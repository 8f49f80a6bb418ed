package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"usersvc/internal/api/response"
	"usersvc/internal/pkg/cache"
	"usersvc/internal/pkg/logger"
)

// RateLimiter limita as requisições por IP numa janela fixa, com o contador no cache.
// Se o cache estiver fora, a requisição segue sem limite.
func RateLimiter(client cache.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Rate limiter indisponível.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, duration); err != nil {
					log.Warn("Falha ao definir TTL do rate limiter.", map[string]interface{}{"error": err.Error()})
				}
			}

			if count > int64(limit) {
				// Um Expire perdido deixaria o contador sem TTL e o IP bloqueado para sempre.
				if ttl, err := client.TTL(ctx, key); err == nil && ttl < 0 {
					if err := client.Expire(ctx, key, duration); err != nil {
						log.Warn("Falha ao definir TTL do rate limiter.", map[string]interface{}{"error": err.Error()})
					}
				}
				log.Info("Limite de requisições excedido.", map[string]interface{}{"ip": ip})
				w.Header().Set("Retry-After", strconv.Itoa(int(duration.Seconds())))
				response.Status(w, http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
