package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/regional-site-backend/pkg/ctxutil"
)

// IdempotencyHeader lets clients name a logical operation explicitly.
const IdempotencyHeader = "X-Idempotency-Key"

const (
	idemInFlight = "0"
	idemDone     = "1"
)

type idempotencyStore interface {
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Replace(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// Idempotency rejects duplicate mutating requests with 409 Conflict. A repeat
// is refused while the first request is still running. Requests that carry
// X-Idempotency-Key are also refused within ttl after the first one
// succeeded. Requests without the header are keyed by a hash of method, URL,
// caller and body, and that key is released once the request completes, so a
// later identical request (toggling a flag back, say) goes through. Failed
// requests always release the key. Store failures let the request through.
func Idempotency(store idempotencyStore, ttl time.Duration, maxBody int64, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			key, explicit, err := idempotencyKey(w, r, maxBody)
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
					return
				}
				writeError(w, http.StatusBadRequest, "cannot read request body")
				return
			}

			ctx := r.Context()
			acquired, err := store.SetNX(ctx, key, []byte(idemInFlight), ttl)
			if err != nil {
				logger.WarnContext(ctx, "idempotency store unavailable", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if !acquired {
				writeError(w, http.StatusConflict, "duplicate request")
				return
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			completed := false
			defer func() {
				bg := context.WithoutCancel(ctx)
				if explicit && completed && sw.status >= 200 && sw.status < 300 {
					if err := store.Replace(bg, key, []byte(idemDone)); err != nil {
						logger.WarnContext(ctx, "idempotency mark done failed", slog.String("error", err.Error()))
					}
					return
				}
				if err := store.Del(bg, key); err != nil {
					logger.WarnContext(ctx, "idempotency release failed", slog.String("error", err.Error()))
				}
			}()

			next.ServeHTTP(sw, r)
			completed = true
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// idempotencyKey derives the store key and leaves r.Body readable again.
// explicit reports whether the client named the operation itself.
func idempotencyKey(w http.ResponseWriter, r *http.Request, maxBody int64) (key string, explicit bool, err error) {
	caller := r.Header.Get("Authorization")
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		caller = id.String()
	}

	if explicit := r.Header.Get(IdempotencyHeader); explicit != "" {
		sum := sha256.Sum256([]byte(caller + "\x00" + explicit))
		return "idem:k:" + hex.EncodeToString(sum[:]), true, nil
	}

	h := sha256.New()
	io.WriteString(h, r.Method+"\x00"+r.URL.RequestURI()+"\x00"+caller+"\x00") //nolint:errcheck

	if r.Body != nil && r.Body != http.NoBody {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
		if err != nil {
			return "", false, err
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body) //nolint:errcheck
	}
	return "idem:h:" + hex.EncodeToString(h.Sum(nil)), false, nil
}
