package main

import (
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/middleware/logger"

	"storeapi/internal/config"
	"storeapi/internal/database"
	"storeapi/internal/repositories"
	"storeapi/internal/server"
	"storeapi/internal/services"
	"storeapi/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Repositories ---
	repos, closeDB, err := openRepositories(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}
	defer closeDB.Close()

	// --- Initialize RabbitMQ Client (optional) ---
	// The publisher stays a nil interface when events are disabled.
	var publisher services.EventPublisher
	if cfg.RabbitMQ.Enabled() {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:      cfg.RabbitMQ.URL,
			Exchange: cfg.RabbitMQ.Exchange,
			Queue:    cfg.RabbitMQ.Queue,
		})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		if cfg.RabbitMQ.Consume {
			log.Println("Starting RabbitMQ consumer for inventory events...")
			if err := mqClient.Consume(rabbitmq.LogEvent); err != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", err)
			}
		}
	} else {
		log.Println("RABBITMQ_URL not set, domain events are disabled")
	}

	// --- Initialize Fiber App ---
	app := server.New(cfg, repos, publisher, logger.New())

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openRepositories picks the persistence backend named by cfg.Driver.
// The returned closer releases the connection pool, if any.
func openRepositories(cfg config.Database) (repositories.Repositories, io.Closer, error) {
	if cfg.Driver == "memory" {
		log.Println("Using in-memory repositories; data is lost on exit")
		return repositories.NewMemoryRepositories(), closerFunc(func() error { return nil }), nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return repositories.Repositories{}, nil, err
	}
	log.Printf("Connected to %s database", cfg.Driver)
	return repositories.NewGORMRepositories(db), closerFunc(func() error { return database.Close(db) }), nil
}
