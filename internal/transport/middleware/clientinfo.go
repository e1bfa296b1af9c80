package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/regional-site-backend/pkg/ctxutil"
)

const maxUserAgentLen = 512

// ClientInfo stores the caller IP and user agent in the context for the
// activity log and rate limiting. When trustProxy is set the left-most
// X-Forwarded-For address (or X-Real-IP) wins over the socket address.
func ClientInfo(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua := r.UserAgent()
			if len(ua) > maxUserAgentLen {
				ua = ua[:maxUserAgentLen]
			}
			// Stored as text, so a rune split by the cut is dropped.
			ua = strings.ToValidUTF8(ua, "")
			ctx := ctxutil.WithClientInfo(r.Context(), ctxutil.ClientInfo{
				IP:        clientIP(r, trustProxy),
				UserAgent: ua,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			first, _, _ := strings.Cut(fwd, ",")
			if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
				return ip.String()
			}
		}
		if ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP"))); ip != nil {
			return ip.String()
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
