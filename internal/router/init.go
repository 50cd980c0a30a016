package router

import (
	"github.com/craftly/craftly-api/internal/application"
	"github.com/craftly/craftly-api/internal/container"
	pginfra "github.com/craftly/craftly-api/internal/infrastructure/postgres"
	handlers "github.com/craftly/craftly-api/internal/interface/http"
	"github.com/craftly/craftly-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them
// with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	// A missing broker must stay a nil interface, not a typed nil.
	var queue application.Publisher
	if pub := container.GetRabbitPub(); pub != nil {
		queue = pub
	}

	userRepo := pginfra.NewUserRepository(pool)
	authSvc := application.NewAuthService(
		userRepo,
		container.GetJWT(),
		container.GetMailgun(),
		queue,
		cfg,
		logger,
	)
	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))

	collectionRepo := pginfra.NewCollectionRepository(pool)
	collectionSvc := application.NewCollectionService(collectionRepo)
	r.Add(modules.NewCollectionModule(handlers.NewCollectionHandler(collectionSvc, logger)))

	productRepo := pginfra.NewProductRepository(pool)
	catalogSvc := application.NewCatalogService(
		productRepo,
		container.GetGCS(),
		logger,
		container.GetES(),
		cfg.ESProductsIndex,
	)
	r.Add(modules.NewProductModule(handlers.NewProductHandler(catalogSvc, logger)))
}
