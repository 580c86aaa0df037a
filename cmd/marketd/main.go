package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartapp "github.com/tanvirfarhan/krishibazar/internal/cart/app"
	cartadapter "github.com/tanvirfarhan/krishibazar/internal/cart/infra/adapter"
	catalogapp "github.com/tanvirfarhan/krishibazar/internal/catalog/app"
	catalogmem "github.com/tanvirfarhan/krishibazar/internal/catalog/infra/memory"
	catalogpg "github.com/tanvirfarhan/krishibazar/internal/catalog/infra/postgres"
	checkoutapp "github.com/tanvirfarhan/krishibazar/internal/checkout/app"
	checkoutadapter "github.com/tanvirfarhan/krishibazar/internal/checkout/infra/adapter"
	orderapp "github.com/tanvirfarhan/krishibazar/internal/order/app"
	orderkv "github.com/tanvirfarhan/krishibazar/internal/order/infra/kv"
	"github.com/tanvirfarhan/krishibazar/pkg/config"
	"github.com/tanvirfarhan/krishibazar/pkg/currency"
	"github.com/tanvirfarhan/krishibazar/pkg/kvstore"
	"github.com/tanvirfarhan/krishibazar/pkg/logger"
	"github.com/tanvirfarhan/krishibazar/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "marketd", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := kvstore.NewFile(cfg.DataDir)
	if err != nil {
		log.Error("open session store failed", slog.Any("err", err), slog.String("dir", cfg.DataDir))
		os.Exit(1)
	}

	catalogSvc := mustCatalog(cfg, log)

	cartSvc := cartapp.NewService(store, cartadapter.NewCatalogServiceGateway(catalogSvc))
	orderSvc := orderapp.NewService(orderkv.NewOrderRepo(store))
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceSource(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		orderSvc,
		10,
	)
	log.Info("session hydrated",
		slog.Int("cart_items", cartSvc.ItemCount()),
		slog.String("catalog_backend", cfg.CatalogBackend),
	)

	if cartSvc.ItemCount() > 0 {
		if quote, err := checkoutSvc.Quote(ctx); err != nil {
			log.Warn("cart re-price failed", slog.Any("err", err))
		} else {
			log.Info("cart re-priced", slog.String("total", currency.Format(quote.Total)))
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
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

func mustCatalog(cfg config.Config, log *slog.Logger) *catalogapp.Service {
	switch cfg.CatalogBackend {
	case "postgres":
		db, err := catalogpg.Open(cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database)
		if err != nil {
			log.Error("catalog db open failed", slog.Any("err", err))
			os.Exit(1)
		}
		repo := catalogpg.NewProductRepo(db)
		if err := repo.Migrate(); err != nil {
			log.Error("catalog migrate failed", slog.Any("err", err))
			os.Exit(1)
		}
		return catalogapp.NewService(repo)
	default:
		return catalogapp.NewService(catalogmem.NewProductRepo(catalogmem.Seed()))
	}
}
