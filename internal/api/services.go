package api

import (
	"github.com/bookshelfapp/bookshelf-server/internal/metadata/googlebooks"
	"github.com/bookshelfapp/bookshelf-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Library      *service.LibraryService
	Stats        *service.StatsService
	Subscription *service.SubscriptionService
	Recommend    *service.RecommendService
	Lookup       *googlebooks.Client
}
