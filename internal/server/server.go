// Package server assembles the Fiber application: services, handlers,
// the JWT gate and the error handler.
package server

import (
	"errors"
	"log"
	"time"

	"storeapi/internal/config"
	"storeapi/internal/handlers"
	"storeapi/internal/middleware"
	"storeapi/internal/repositories"
	"storeapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New builds the application. events may be nil; extra middleware runs
// before every route.
func New(cfg *config.Config, repos repositories.Repositories, events services.EventPublisher, extra ...fiber.Handler) *fiber.App {
	storeService := services.NewStoreService(repos.Stores, repos.Items, events)
	itemService := services.NewItemService(repos.Items, repos.Stores, events)
	authService := services.NewAuthService(repos.Users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	app := fiber.New(fiber.Config{
		// Names from the path are stored, so they must not alias fasthttp buffers.
		Immutable:             true,
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	for _, h := range extra {
		app.Use(h)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	authRequired := middleware.AuthRequired(authService, cfg.Auth.HeaderScheme)

	handlers.NewAuthHandler(authService).RegisterRoutes(app)
	handlers.NewStoreHandler(storeService).RegisterRoutes(app)
	handlers.NewItemHandler(itemService).RegisterRoutes(app, authRequired)

	return app
}

// errorHandler turns errors escaping a handler, including unmatched routes,
// into the usual {"message": ...} body.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "An internal error occurred."

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		msg = fiberErr.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{
		"message": msg,
	})
}
