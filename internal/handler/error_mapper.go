package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jogjadev/members-api/internal/middleware"
	"github.com/jogjadev/members-api/internal/model"
	"github.com/jogjadev/members-api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
//
// The service error set is closed: validation, conflict, not-found, and
// storage. Anything else is a bug in the service layer and maps to 500.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	var (
		vErr  *service.ValidationError
		cErr  *service.ConflictError
		nfErr *service.NotFoundError
		sErr  *service.StorageError
	)
	switch {
	case errors.As(err, &vErr):
		return model.NewValidationError(vErr.Fields)
	case errors.As(err, &cErr):
		return model.NewConflictError(cErr.Field, cErr.Value)
	case errors.As(err, &nfErr):
		return model.NewNotFoundError(fmt.Sprintf("member %d", nfErr.ID))
	case errors.As(err, &sErr):
		return model.NewInternalError("")
	default:
		return model.NewInternalError("")
	}
}

// WriteServiceError maps err and writes the response. Storage failures are
// logged here with their full cause; the client only ever sees the generic
// 500 body.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var sErr *service.StorageError
	if errors.As(err, &sErr) {
		slog.Error("storage failure",
			slog.String("operation", sErr.Op),
			slog.String("error", sErr.Err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
	}
	WriteError(w, MapServiceError(err))
}
