package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"dinehub/internal/app/notifier"
	"dinehub/internal/config"
	"dinehub/internal/connections/database"
	"dinehub/internal/connections/rabbitmq"
	"dinehub/internal/gateway"
	"dinehub/internal/handler"
	"dinehub/internal/httpx"
	"dinehub/internal/logger"
	"dinehub/internal/repository"
	"dinehub/internal/service"
)

func main() {
	mode := flag.String("mode", "server", "server | notifier")
	cfgPath := flag.String("config", "config.yml", "path to YAML config")
	port := flag.Int("port", 0, "override the configured HTTP port")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		lg.Error("config_load_failed", err, nil)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	switch *mode {
	case "server":
		if err := runServer(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notifier":
		if err := runNotifier(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode must be server or notifier")
		os.Exit(2)
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	lg := logger.New("dinehub")

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()
	lg.Info("db_connected", map[string]any{"host": cfg.Database.Host, "database": cfg.Database.Database})

	var events service.EventPublisher = service.NopPublisher{}
	if cfg.RabbitMQ.Host != "" {
		rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			return fmt.Errorf("rabbitmq connect: %w", err)
		}
		defer rmq.Close()
		if err := rmq.DeclareTopology(); err != nil {
			return fmt.Errorf("rabbitmq topology: %w", err)
		}
		events = service.NewRabbitPublisher(rmq, lg)
		lg.Info("rabbitmq_connected", map[string]any{"host": cfg.RabbitMQ.Host})
	}

	repo := repository.New(db)
	gw := gateway.NewClient(cfg.Payment)
	svc := service.New(repo, gw, events, cfg.Payment.WebhookSecret)
	h := handler.New(svc, logger.New("http"), cfg.Server.PublicCustomerURL)

	srv := httpx.New(":"+strconv.Itoa(cfg.Server.Port), handler.Router(h))
	lg.Info("service_started", map[string]any{"service": "dinehub", "port": cfg.Server.Port})
	return srv.Run(ctx)
}

func runNotifier(ctx context.Context, cfg *config.Config) error {
	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("rabbitmq connect: %w", err)
	}
	defer rmq.Close()
	return notifier.Run(ctx, rmq)
}
