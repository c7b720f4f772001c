// Package di provides dependency injection configuration for the Bookshelf server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/config"
	"github.com/bookshelfapp/bookshelf-server/internal/di/providers"
	"github.com/bookshelfapp/bookshelf-server/internal/logger"
	"github.com/bookshelfapp/bookshelf-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Upstream clients
	do.Provide(injector, providers.ProvideLookupClient)
	do.Provide(injector, providers.ProvideRecommendClient)

	// Business services
	do.Provide(injector, providers.ProvideSubscriptionService)
	do.Provide(injector, providers.ProvideLibraryService)
	do.Provide(injector, providers.ProvideStatsService)
	do.Provide(injector, providers.ProvideRecommendService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)

	_ = do.MustInvoke[*providers.LookupClientHandle](injector)
	_ = do.MustInvoke[*providers.RecommendClientHandle](injector)

	_ = do.MustInvoke[*service.SubscriptionService](injector)
	_ = do.MustInvoke[*service.LibraryService](injector)
	_ = do.MustInvoke[*service.StatsService](injector)
	_ = do.MustInvoke[*service.RecommendService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
