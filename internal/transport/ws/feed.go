// Package ws pushes public cache invalidations to connected regional sites
// over WebSocket so they can drop stale session caches without polling.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/heartmarshall/regional-site-backend/internal/cache"
	"github.com/heartmarshall/regional-site-backend/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	maxInboundSize = 512
)

// Config controls the feed.
type Config struct {
	// AllowedOrigins lists browser origins that may connect. "*" allows any.
	// Requests without an Origin header are always accepted.
	AllowedOrigins []string
	// PingInterval is how often the server pings; a client that misses two
	// pongs in a row is dropped.
	PingInterval time.Duration
}

// Feed is an http.Handler serving GET /api/public/invalidations?region=CC.
type Feed struct {
	bus      cache.Bus
	upgrader websocket.Upgrader
	ping     time.Duration
	log      *slog.Logger

	done context.Context
	stop context.CancelFunc
}

// NewFeed creates a Feed reading from bus.
func NewFeed(bus cache.Bus, cfg Config, logger *slog.Logger) *Feed {
	ping := cfg.PingInterval
	if ping <= 0 {
		ping = 30 * time.Second
	}
	origins := cfg.AllowedOrigins
	done, stop := context.WithCancel(context.Background())
	return &Feed{
		bus:  bus,
		ping: ping,
		log:  logger.With("handler", "ws.feed"),
		done: done,
		stop: stop,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r.Header.Get("Origin"), origins)
			},
		},
	}
}

// ServeHTTP upgrades the connection and streams invalidations as JSON text
// frames. With a region parameter only that region's events and cross-region
// events are delivered.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region != "" {
		if err := domain.ValidateRegionCode(region); err != nil {
			http.Error(w, "invalid region", http.StatusBadRequest)
			return
		}
	}

	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		f.log.DebugContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// Hijacked connections outlive the request context; Close ends them.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()
	defer context.AfterFunc(f.done, cancel)()

	events, err := f.bus.Subscribe(ctx)
	if err != nil {
		f.log.ErrorContext(ctx, "subscribe to invalidations", slog.String("error", err.Error()))
		f.closeWith(conn, websocket.CloseInternalServerErr, "subscription failed")
		return
	}

	go f.readPump(conn, cancel)

	f.log.DebugContext(ctx, "feed connected", slog.String("region", region))
	ticker := time.NewTicker(f.ping)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if f.done.Err() != nil {
				f.closeWith(conn, websocket.CloseGoingAway, "shutting down")
			}
			return
		case inv, ok := <-events:
			if !ok {
				f.closeWith(conn, websocket.CloseGoingAway, "shutting down")
				return
			}
			if !wanted(inv, region) {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(inv); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// Close disconnects every client. http.Server.Shutdown does not wait for
// hijacked connections, so call it alongside.
func (f *Feed) Close() {
	f.stop()
}

// readPump consumes client frames so control messages are processed, and
// cancels the stream once the client goes away or stops answering pings.
func (f *Feed) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	deadline := 2*f.ping + writeWait
	conn.SetReadLimit(maxInboundSize)
	_ = conn.SetReadDeadline(time.Now().Add(deadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(deadline))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (f *Feed) closeWith(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

func wanted(inv cache.Invalidation, region string) bool {
	return region == "" || inv.Region == region || inv.Region == cache.AllRegions
}

func originAllowed(origin string, allowed []string) bool {
	if origin == "" {
		return true
	}
	for _, a := range allowed {
		a = strings.TrimSpace(a)
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}
