package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqpAdapter "github.com/wildfnc/orderdesk/internal/adapter/amqp"
	httpAdapter "github.com/wildfnc/orderdesk/internal/adapter/http"
	"github.com/wildfnc/orderdesk/internal/adapter/localstore"
	"github.com/wildfnc/orderdesk/internal/adapter/logger"
	"github.com/wildfnc/orderdesk/internal/adapter/notify"
	"github.com/wildfnc/orderdesk/internal/adapter/postgres"
	"github.com/wildfnc/orderdesk/internal/adapter/rabbitmq"
	"github.com/wildfnc/orderdesk/internal/app/auth"
	"github.com/wildfnc/orderdesk/internal/app/order"
	"github.com/wildfnc/orderdesk/internal/app/shell"
	"github.com/wildfnc/orderdesk/internal/config"
	"github.com/wildfnc/orderdesk/internal/interfaces"
)

func main() {
	mode := flag.String("mode", "server", "Service mode: server, notification-subscriber")
	configPath := flag.String("config", "config.yaml", "Path to YAML config")
	port := flag.Int("port", 0, "HTTP port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	ctx := context.Background()
	lgr := logger.New("orderdesk-" + *mode)

	switch *mode {
	case "server":
		runServer(ctx, cfg, lgr)
	case "notification-subscriber":
		runNotificationSubscriber(ctx, cfg, lgr)
	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runServer(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	// The local state file always holds session, tab and theme state, and
	// the order collection too unless postgres is configured.
	store, err := localstore.Open(cfg.Storage.Path, lgr)
	if err != nil {
		log.Fatalf("Failed to open state file: %v", err)
	}
	defer store.Close()

	lgr.Info("state_opened", "Local state file opened", "", map[string]any{
		"path": cfg.Storage.Path,
	})

	var orderRepo interfaces.OrderRepository
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer db.Close()
		orderRepo = postgres.NewOrderRepository(db)

		lgr.Info("db_connected", "Connected to PostgreSQL database", "", map[string]any{
			"host": cfg.Database.Host,
			"db":   cfg.Database.Database,
		})
	default:
		orderRepo = localstore.NewOrderRepository(store)
	}

	notifiers := notify.Multi{}
	if cfg.Notifier.Mode == config.NotifierModeBell {
		notifiers = append(notifiers, notify.NewBell())
	}
	if cfg.RabbitMQ.Enabled {
		mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer mqConn.Close()
		notifiers = append(notifiers, rabbitmq.NewNotifier(mqConn))

		lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "", map[string]any{
			"host": cfg.RabbitMQ.Host,
		})
	}
	var notifier interfaces.Notifier = notifiers
	if len(notifiers) == 0 {
		notifier = notify.Noop{}
	}

	authService := auth.NewService(auth.NewStaticVerifier(), store, lgr, cfg.Auth.TokenSecret)

	// Restore the persisted session, if any, so a restart picks up where
	// the last login left off.
	if sess, err := authService.Current(ctx); err != nil {
		log.Fatalf("Failed to restore session: %v", err)
	} else if sess != nil {
		lgr.Info("session_restored", fmt.Sprintf("Restored session for %s", sess.DisplayName), "", map[string]any{
			"role": sess.Role,
		})
	}

	orderService := order.NewService(orderRepo, notifier, lgr)
	shellService := shell.NewService(store, lgr)

	authHandler := httpAdapter.NewAuthHandler(authService, shellService, lgr)
	orderHandler := httpAdapter.NewOrderHandler(orderService, lgr)
	shellHandler := httpAdapter.NewShellHandler(shellService, lgr)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", authHandler.Login)
	mux.HandleFunc("POST /auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /session", authHandler.Session)
	mux.HandleFunc("POST /orders", orderHandler.Create)
	mux.HandleFunc("GET /orders", orderHandler.Dashboard)
	mux.HandleFunc("POST /orders/{id}/status", orderHandler.UpdateStatus)
	mux.HandleFunc("GET /orders/{id}/history", orderHandler.StatusHistory)
	mux.HandleFunc("GET /history", orderHandler.History)
	mux.HandleFunc("GET /shell", shellHandler.State)
	mux.HandleFunc("POST /shell/tab", shellHandler.SwitchTab)
	mux.HandleFunc("POST /shell/theme", shellHandler.ToggleDarkMode)

	handler := httpAdapter.SessionMiddleware(authService)(mux)
	handler = httpAdapter.LoggingMiddleware(lgr)(handler)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("Orderdesk started on port %d", cfg.HTTP.Port), "", map[string]any{
		"port":           cfg.HTTP.Port,
		"storage_driver": cfg.Storage.Driver,
	})

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down", "", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "", nil, err)
	}
}

func runNotificationSubscriber(ctx context.Context, cfg *config.Config, lgr logger.Logger) {
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	consumer := rabbitmq.NewConsumer(mqConn, lgr)
	eventHandler := amqpAdapter.NewEventHandler(lgr)

	lgr.Info("service_started", "Notification subscriber started", "", nil)

	go func() {
		if err := consumer.ConsumeEvents(ctx, eventHandler.HandleEvent); err != nil {
			lgr.Error("consumer_error", "Error consuming events", "", nil, err)
		}
	}()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down notification subscriber", "", nil)
}
