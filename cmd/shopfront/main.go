package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartadapter "github.com/adityarama/shopfront/internal/cart/infra/adapter"
	cartpg "github.com/adityarama/shopfront/internal/cart/infra/postgres"
	checkoutadapter "github.com/adityarama/shopfront/internal/checkout/infra/adapter"
	checkoutpg "github.com/adityarama/shopfront/internal/checkout/infra/postgres"
	paymentkafka "github.com/adityarama/shopfront/internal/payment/infra/kafka"
	paymentpg "github.com/adityarama/shopfront/internal/payment/infra/postgres"
	paypalgw "github.com/adityarama/shopfront/internal/payment/infra/paypal"
	stripegw "github.com/adityarama/shopfront/internal/payment/infra/stripe"

	cartapp "github.com/adityarama/shopfront/internal/cart/app"
	catalogapp "github.com/adityarama/shopfront/internal/catalog/app"
	catalogpg "github.com/adityarama/shopfront/internal/catalog/infra/postgres"
	"github.com/adityarama/shopfront/internal/catalog/infra/rediscache"
	checkoutapp "github.com/adityarama/shopfront/internal/checkout/app"
	paymentapp "github.com/adityarama/shopfront/internal/payment/app"
	"github.com/adityarama/shopfront/internal/rest"
	"github.com/adityarama/shopfront/internal/storage"
	"github.com/adityarama/shopfront/pkg/config"
	"github.com/adityarama/shopfront/pkg/logger"
	"github.com/adityarama/shopfront/pkg/postgres"
	"github.com/adityarama/shopfront/pkg/shutdown"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Service:   "shopfront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	db, err := postgres.Open(postgres.Config{
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		DB:   cfg.DBName,
	})
	if err != nil {
		log.Error("connect postgres", slog.Any("err", err))
		os.Exit(1)
	}
	if err := storage.Migrate(db); err != nil {
		log.Error("migrate schema", slog.Any("err", err))
		os.Exit(1)
	}

	itemRepo := catalogpg.NewItemRepo(db)
	var items catalogapp.ItemRepo = itemRepo
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()
		items = rediscache.NewItemCache(itemRepo, rdb, time.Duration(cfg.CacheTTLSec)*time.Second, log)
		log.Info("catalog cache enabled", slog.String("addr", cfg.RedisAddr))
	}
	catalogSvc := catalogapp.NewService(items)

	cartSvc := cartapp.NewService(
		cartpg.NewOrderRepo(db),
		cartadapter.NewCatalogServiceReader(catalogSvc),
	)

	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutpg.NewCheckoutStore(db),
	)

	var events paymentapp.Events
	if len(cfg.KafkaBrokers) > 0 {
		pub := paymentkafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer pub.Close()
		events = pub
		log.Info("order events enabled", slog.String("topic", cfg.KafkaTopic))
	}

	var gateways []paymentapp.Gateway
	if cfg.StripeSecretKey != "" {
		gateways = append(gateways, stripegw.New(cfg.StripeSecretKey))
	}
	if cfg.PayPalClientID != "" {
		pp, err := paypalgw.New(cfg.PayPalClientID, cfg.PayPalSecret, cfg.PayPalLive)
		if err != nil {
			log.Error("configure paypal", slog.Any("err", err))
			os.Exit(1)
		}
		gateways = append(gateways, pp)
	}
	if len(gateways) == 0 {
		log.Warn("no payment gateways configured, checkout will not complete")
	}
	paymentSvc := paymentapp.NewService(paymentpg.NewOrderStore(db), events, log, gateways...)

	srv := rest.NewServer(catalogSvc, cartSvc, checkoutSvc, paymentSvc, []byte(cfg.TokenKey), log)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
