package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/config"
	"github.com/bookshelfapp/bookshelf-server/internal/logger"
	"github.com/bookshelfapp/bookshelf-server/internal/metadata/googlebooks"
	"github.com/bookshelfapp/bookshelf-server/internal/recommend"
)

// LookupClientHandle wraps the Google Books client.
type LookupClientHandle struct {
	*googlebooks.Client
}

// ProvideLookupClient provides the book lookup client.
func ProvideLookupClient(i do.Injector) (*LookupClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := googlebooks.NewClient(cfg.Lookup.BaseURL, cfg.Lookup.Timeout, log.Logger)
	return &LookupClientHandle{Client: client}, nil
}

// RecommendClientHandle wraps the recommendation backend client.
type RecommendClientHandle struct {
	*recommend.Client
}

// ProvideRecommendClient provides the AI recommendation client.
func ProvideRecommendClient(i do.Injector) (*RecommendClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := recommend.NewClient(cfg.Recommend.BaseURL, cfg.Recommend.Timeout, log.Logger)
	return &RecommendClientHandle{Client: client}, nil
}
