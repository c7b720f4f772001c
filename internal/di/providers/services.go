package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/config"
	"github.com/bookshelfapp/bookshelf-server/internal/logger"
	"github.com/bookshelfapp/bookshelf-server/internal/service"
)

// ProvideSubscriptionService provides the entitlement service.
func ProvideSubscriptionService(i do.Injector) (*service.SubscriptionService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewSubscriptionService(storeHandle.Store, log.Logger, cfg.Plans.OwnerEmails, cfg.Plans.GuestBookLimit), nil
}

// ProvideLibraryService provides the book library service.
func ProvideLibraryService(i do.Injector) (*service.LibraryService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	subs := do.MustInvoke[*service.SubscriptionService](i)

	return service.NewLibraryService(storeHandle.Store, subs, log.Logger), nil
}

// ProvideStatsService provides the reading statistics service.
func ProvideStatsService(i do.Injector) (*service.StatsService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewStatsService(storeHandle.Store, log.Logger), nil
}

// ProvideRecommendService provides the AI recommendation service.
func ProvideRecommendService(i do.Injector) (*service.RecommendService, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	subs := do.MustInvoke[*service.SubscriptionService](i)
	client := do.MustInvoke[*RecommendClientHandle](i)

	return service.NewRecommendService(storeHandle.Store, client.Client, subs, log.Logger), nil
}
