// Package policy wires the handlers, services and access rules of the API.
//
// Ownership is enforced by the store layout: every product and invoice call
// runs against the namespace of the session user, so a handler can never
// reach another user's records.
package policy

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/auth"
	"github.com/vijay-heerarajan/billing-app/internal/handlers"
	"github.com/vijay-heerarajan/billing-app/internal/render"
	"github.com/vijay-heerarajan/billing-app/internal/repository"
	"github.com/vijay-heerarajan/billing-app/internal/services"
	"github.com/vijay-heerarajan/billing-app/internal/store"
)

// RouterConfig holds configured handlers and middleware for the application.
type RouterConfig struct {
	Sessions *auth.Manager

	Users    *repository.Users
	Products *repository.Products
	Invoices *repository.Invoices

	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	ProductHandler *handlers.ProductHandler
	InvoiceHandler *handlers.InvoiceHandler

	InvoiceService *services.InvoiceService
}

// NewRouterConfig builds repositories over st and the handlers on top.
// Sessions are signed with secret and only accepted for users that still
// exist in the directory.
func NewRouterConfig(st store.Store, secret string, log logrus.FieldLogger) *RouterConfig {
	return NewRouterConfigWithUsers(st, repository.NewUsers(st), secret, log)
}

// NewRouterConfigWithUsers is NewRouterConfig with a preconfigured user
// directory.
func NewRouterConfigWithUsers(st store.Store, users *repository.Users, secret string, log logrus.FieldLogger) *RouterConfig {
	sessions := auth.NewManager(secret)
	sessions.SetUserVerifier(func(ctx context.Context, uid string) bool {
		_, ok, err := users.Identity(ctx, uid)
		if err != nil {
			log.WithError(err).WithField("user", uid).Warn("session verification failed")
		}
		return ok
	})

	products := repository.NewProducts(st)
	invoices := repository.NewInvoices(st)
	invoiceService := services.NewInvoiceService(products, invoices, log)

	return &RouterConfig{
		Sessions:       sessions,
		Users:          users,
		Products:       products,
		Invoices:       invoices,
		AuthHandler:    handlers.NewAuthHandler(users, sessions, log),
		ProfileHandler: handlers.NewProfileHandler(users, log),
		ProductHandler: handlers.NewProductHandler(products, log),
		InvoiceHandler: handlers.NewInvoiceHandler(invoiceService, invoices, users, render.NewRenderer(), log),
		InvoiceService: invoiceService,
	}
}
