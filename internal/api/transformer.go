package api

import (
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookshelfapp/bookshelf-server/internal/http/response"
)

// EnvelopeTransformer wraps every response body, success or error, in
// the shared JSON envelope so clients parse one shape everywhere.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		return &response.Envelope{
			Success: false,
			Error:   apiErr.Message,
			Code:    apiErr.Code,
			Data:    apiErr.Details,
		}, nil
	}

	code, err := strconv.Atoi(status)
	if err != nil {
		code = 200
	}
	return &response.Envelope{
		Success: code < 400,
		Data:    v,
	}, nil
}
