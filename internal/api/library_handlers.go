package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/store"
)

func (s *Server) registerLibraryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "exportLibrary",
		Method:      http.MethodGet,
		Path:        "/api/v1/library/export",
		Summary:     "Export library",
		Description: "Returns the caller's complete data as one snapshot",
		Tags:        []string{"Library"},
	}, s.handleExportLibrary)

	huma.Register(s.api, huma.Operation{
		OperationID: "importLibrary",
		Method:      http.MethodPost,
		Path:        "/api/v1/library/import",
		Summary:     "Import library",
		Description: "Replaces the caller's data with a previously exported snapshot",
		Tags:        []string{"Library"},
	}, s.handleImportLibrary)

	huma.Register(s.api, huma.Operation{
		OperationID: "clearLibrary",
		Method:      http.MethodDelete,
		Path:        "/api/v1/library",
		Summary:     "Clear library",
		Description: "Deletes every collection in the caller's partition",
		Tags:        []string{"Library"},
	}, s.handleClearLibrary)
}

// === DTOs ===

// ExportOutput wraps the snapshot for Huma.
type ExportOutput struct {
	Body store.Snapshot
}

// ImportInput wraps an uploaded snapshot for Huma.
type ImportInput struct {
	UserID string `header:"X-User-ID"`
	Body   store.Snapshot
}

// === Handlers ===

func (s *Server) handleExportLibrary(ctx context.Context, input *PartitionInput) (*ExportOutput, error) {
	snap, err := s.services.Library.Export(ctx, partitionFor(input.UserID))
	if err != nil {
		return nil, err
	}
	return &ExportOutput{Body: *snap}, nil
}

func (s *Server) handleImportLibrary(ctx context.Context, input *ImportInput) (*MessageOutput, error) {
	count, err := s.services.Library.Import(ctx, partitionFor(input.UserID), &input.Body)
	if err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: fmt.Sprintf("Imported %d books", count)}}, nil
}

func (s *Server) handleClearLibrary(ctx context.Context, input *PartitionInput) (*MessageOutput, error) {
	if err := s.services.Library.Clear(ctx, partitionFor(input.UserID)); err != nil {
		return nil, err
	}
	return &MessageOutput{Body: MessageResponse{Message: "Library cleared"}}, nil
}
