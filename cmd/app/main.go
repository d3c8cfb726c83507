package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"mealdash/internal/api"
	"mealdash/internal/app"
	adminhandler "mealdash/internal/handlers/admin"
	authhandler "mealdash/internal/handlers/auth"
	browsehandler "mealdash/internal/handlers/browse"
	carthandler "mealdash/internal/handlers/cart"
	orderhandler "mealdash/internal/handlers/orders"
	adminservice "mealdash/internal/service/admin"
	cartservice "mealdash/internal/service/cart"
	catalogservice "mealdash/internal/service/catalog"
	orderservice "mealdash/internal/service/order"
	sessionservice "mealdash/internal/service/session"
	"mealdash/internal/storage/localstore"
	"mealdash/pkg/config"
	"mealdash/pkg/lib/logger"
	"mealdash/pkg/lib/logger/sl"
	"mealdash/pkg/lib/notice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.SetupLogger(cfg.HTTP.Env)
	if err != nil {
		panic(err)
	}

	storage, err := localstore.New(log, cfg.Storage.Path)
	if err != nil {
		panic(err)
	}
	defer storage.Close()

	client := api.NewClient(log, cfg.API.BaseURL, cfg.APITimeout())
	notices := notice.NewTerminal(os.Stdout)

	session := sessionservice.New(log, client, storage, client)
	cart := cartservice.New(log, client, session, notices)
	catalog := catalogservice.New(log, client)
	orders := orderservice.New(log, client)
	admin := adminservice.New(log, client)

	application := app.New(
		log,
		session,
		notices,
		os.Stdout,
		authhandler.New(log, session, cart, notices, os.Stdout),
		browsehandler.New(log, catalog, os.Stdout),
		carthandler.New(log, cart, notices, os.Stdout),
		orderhandler.New(log, orders, cart, notices, os.Stdout),
		adminhandler.New(log, orders, admin, catalog, notices, os.Stdout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := application.Run(ctx, os.Args[1:]); err != nil {
		log.Error("Application failed", sl.Err(err))
		os.Exit(1)
	}
}
