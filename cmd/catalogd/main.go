package main

import (
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ArtisanCatalog/internal/auth"
	"ArtisanCatalog/internal/catalog"
	"ArtisanCatalog/internal/config"
	"ArtisanCatalog/internal/upload"
	"ArtisanCatalog/pkg/kit"
)

func main() {
	service := "catalog"
	cfg := config.Load()

	log := kit.NewLogger(service, cfg.Server.Env)
	defer func() { _ = log.Sync() }()

	products, err := catalog.OpenCollection(
		filepath.Join(cfg.Storage.DataDir, "products.json"),
		catalog.SeedProducts(),
	)
	if err != nil {
		log.Fatal("open products collection", zap.Error(err))
	}

	categories, err := catalog.OpenCollection(
		filepath.Join(cfg.Storage.DataDir, "categories.json"),
		catalog.SeedCategories(),
	)
	if err != nil {
		log.Fatal("open categories collection", zap.Error(err))
	}

	log.Info("collections loaded",
		zap.Int("products", products.Len()),
		zap.Int("categories", categories.Len()),
	)

	s := &catalog.Server{
		Products:   products,
		Categories: categories,
		Images:     upload.NewStore(cfg.Uploads.Dir, cfg.Uploads.MaxBytes),
		Log:        log,
	}

	authSrv := &auth.Server{
		Log:     log,
		Service: auth.NewService(auth.SeedUsers(), auth.NewTokenMaker(cfg.Auth.TokenSecret)),
	}

	reg := prometheus.NewRegistry()
	h := catalog.NewHandler(s, authSrv, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
		CORSOrigins:    cfg.CORS.Origins,
	})

	if err := kit.RunHTTPServer(":"+cfg.Server.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
