package main

import (
	"database/sql"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"PriceDesk/internal/auth"
	"PriceDesk/internal/quote"
	"PriceDesk/pkg/kit"
)

func main() {
	service := "quote"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8083")
	catalogURL := getenv("CATALOG_URL", "http://localhost:8082")

	jwtSecret := os.Getenv("JWT_SECRET")
	if len(jwtSecret) < 32 {
		log.Fatal("JWT_SECRET is required and must be at least 32 chars")
	}

	store, err := buildStore(log)
	if err != nil {
		log.Fatal("init store failed", zap.Error(err))
	}

	s := &quote.Server{
		Store:   store,
		Catalog: quote.NewCatalogClient(catalogURL),
		Chain:   quote.NewPricingChain(),
		Log:     log,
	}

	reg := prometheus.NewRegistry()
	h := quote.NewHandler(s, quote.HTTPDeps{
		Log:      log,
		Service:  service,
		Registry: reg,
		JWT:      auth.NewTokenMaker(jwtSecret),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildStore(log *zap.Logger) (quote.Store, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Info("DATABASE_URL not set, using in-memory store")
		return quote.NewStore(), nil
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return quote.NewPostgresStore(db), nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
