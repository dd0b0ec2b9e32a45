package main

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/httpx"
	"github.com/vijay-heerarajan/billing-app/internal/handlers"
	"github.com/vijay-heerarajan/billing-app/internal/policy"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux       *http.ServeMux
	routerCfg *policy.RouterConfig
	log       logrus.FieldLogger
	handler   http.Handler
}

// NewApp creates a new application with all routes configured.
func NewApp(routerCfg *policy.RouterConfig, log logrus.FieldLogger) *App {
	app := &App{
		mux:       http.NewServeMux(),
		routerCfg: routerCfg,
		log:       log,
	}
	app.setupRoutes()
	// Global middleware: session cookie, then the explicit session value.
	app.handler = routerCfg.Sessions.Middleware(handlers.WithSession(routerCfg.Users, log)(app.mux))
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

func (a *App) setupRoutes() {
	// Public routes
	ah := a.routerCfg.AuthHandler

	a.mux.HandleFunc("GET /healthz", a.health)
	a.mux.HandleFunc("POST /signup", ah.Signup)
	a.mux.HandleFunc("POST /login", ah.Login)
	a.mux.HandleFunc("POST /logout", ah.Logout)

	// Authenticated routes
	prof := a.routerCfg.ProfileHandler
	ph := a.routerCfg.ProductHandler
	ih := a.routerCfg.InvoiceHandler

	a.mux.Handle("GET /dashboard", a.requireAuth(a.dashboard))

	a.mux.Handle("GET /profile", a.requireAuth(prof.Get))
	a.mux.Handle("PUT /profile", a.requireAuth(prof.Update))

	a.mux.Handle("GET /products", a.requireAuth(ph.List))
	a.mux.Handle("GET /products/search", a.requireAuth(ph.Search))
	a.mux.Handle("POST /products", a.requireAuth(ph.Create))
	a.mux.Handle("PUT /products/{id}", a.requireAuth(ph.Update))
	a.mux.Handle("DELETE /products/{id}", a.requireAuth(ph.Delete))

	a.mux.Handle("GET /invoices", a.requireAuth(ih.List))
	a.mux.Handle("GET /invoices/next-number", a.requireAuth(ih.NextNumber))
	a.mux.Handle("GET /invoices/summary", a.requireAuth(ih.Summary))
	a.mux.Handle("GET /invoices/export.xlsx", a.requireAuth(ih.Export))
	a.mux.Handle("POST /invoices", a.requireAuth(ih.Create))
	a.mux.Handle("GET /invoices/{id}", a.requireAuth(ih.Get))
	a.mux.Handle("GET /invoices/{id}/print", a.requireAuth(ih.Print))
	a.mux.Handle("GET /invoices/{id}/pdf", a.requireAuth(ih.PDF))
	a.mux.Handle("DELETE /invoices/{id}", a.requireAuth(ih.Delete))
}

// requireAuth wraps a handler to require a logged-in user.
func (a *App) requireAuth(next http.HandlerFunc) http.Handler {
	return a.routerCfg.Sessions.RequireAuth(next)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// dashboard returns the catalog size, invoice totals and the five most
// recent invoices.
func (a *App) dashboard(w http.ResponseWriter, r *http.Request) {
	sess := handlers.SessionFrom(r)

	products, err := a.routerCfg.Products.List(r.Context(), sess)
	if err != nil {
		a.fail(w, err)
		return
	}
	invoices, err := a.routerCfg.Invoices.List(r.Context(), sess)
	if err != nil {
		a.fail(w, err)
		return
	}
	summary, err := a.routerCfg.InvoiceService.Summary(r.Context(), sess)
	if err != nil {
		a.fail(w, err)
		return
	}

	recent := invoices
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	// newest first
	latest := make([]any, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		latest = append(latest, recent[i])
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"user": sess.User,
		"stats": map[string]any{
			"products": len(products),
			"invoices": summary,
		},
		"recentInvoices": latest,
	})
}

func (a *App) fail(w http.ResponseWriter, err error) {
	a.log.WithError(err).Error("dashboard failed")
	httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
}
