package rest

import (
	"net/http"

	"github.com/heartmarshall/regional-site-backend/internal/transport/middleware"
)

// Router bundles the handlers and middleware chains that make up the HTTP API.
type Router struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Content  *ContentHandler
	Regions  *RegionHandler
	Users    *UserHandler
	Activity *ActivityHandler
	Pages    *PageHandler
	Public   *PublicHandler

	// Feed streams cache invalidations to connected sites. Optional.
	Feed http.Handler

	// Base wraps every API route. Admin is applied on top of Base for
	// /api/admin and authenticated auth routes; Login for the login route.
	Base  middleware.Middleware
	Admin middleware.Middleware
	Login middleware.Middleware
}

// Handler builds the mux. Probes are mounted without middleware.
func (rt Router) Handler() http.Handler {
	base := orIdentity(rt.Base)
	admin := middleware.Chain(base, orIdentity(rt.Admin))
	login := middleware.Chain(base, orIdentity(rt.Login))

	mux := http.NewServeMux()
	handle := func(pattern string, mw middleware.Middleware, fn http.HandlerFunc) {
		mux.Handle(pattern, mw(fn))
	}

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	// Auth.
	handle("POST /api/auth/login", login, rt.Auth.Login)
	handle("POST /api/auth/logout", admin, rt.Auth.Logout)
	handle("GET /api/auth/me", admin, rt.Auth.Me)

	// Regions and users.
	handle("GET /api/admin/regions", admin, rt.Regions.List)
	handle("POST /api/admin/regions", admin, rt.Regions.Create)
	handle("GET /api/admin/regions/{code}", admin, rt.Regions.Get)
	handle("PUT /api/admin/regions/{code}", admin, rt.Regions.Update)
	handle("DELETE /api/admin/regions/{code}", admin, rt.Regions.Delete)

	handle("GET /api/admin/users", admin, rt.Users.List)
	handle("POST /api/admin/users", admin, rt.Users.Create)
	handle("GET /api/admin/users/{id}", admin, rt.Users.Get)
	handle("PUT /api/admin/users/{id}", admin, rt.Users.Update)
	handle("DELETE /api/admin/users/{id}", admin, rt.Users.Delete)

	handle("GET /api/admin/activity-logs", admin, rt.Activity.List)
	handle("GET /api/admin/activity-logs/{id}", admin, rt.Activity.Get)

	handle("GET /api/admin/pages", admin, rt.Pages.List)
	handle("GET /api/admin/pages/{key}", admin, rt.Pages.Get)
	handle("PUT /api/admin/pages/{key}", admin, rt.Pages.Upsert)
	handle("DELETE /api/admin/pages/{key}", admin, rt.Pages.Delete)

	handle("GET /api/admin/images", admin, rt.Content.Image)

	// Ordered collections: /api/admin/slider, /gallery, /logos.
	handle("GET /api/admin/{kind}", admin, rt.Content.List)
	handle("POST /api/admin/{kind}", admin, rt.Content.Create)
	handle("POST /api/admin/{kind}/reorder", admin, rt.Content.Reorder)
	handle("GET /api/admin/{kind}/{id}", admin, rt.Content.Get)
	handle("PUT /api/admin/{kind}/{id}", admin, rt.Content.Update)
	handle("DELETE /api/admin/{kind}/{id}", admin, rt.Content.Delete)
	handle("PUT /api/admin/{kind}/{id}/mobile-visibility", admin, rt.Content.MobileVisibility)

	// Public read API.
	handle("GET /api/public/regions", base, rt.Public.Regions)
	handle("GET /api/public/resolve", base, rt.Public.Resolve)
	if rt.Feed != nil {
		mux.Handle("GET /api/public/invalidations", base(rt.Feed))
	}
	handle("GET /api/public/{region}/home", base, rt.Public.Home)
	handle("GET /api/public/{region}/pages", base, rt.Public.Pages)
	handle("GET /api/public/{region}/{kind}", base, rt.Public.Items)

	// CORS preflight for every API path.
	mux.Handle("OPTIONS /api/", base(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	return mux
}

func orIdentity(mw middleware.Middleware) middleware.Middleware {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
