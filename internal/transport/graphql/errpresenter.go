package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
	"github.com/werdnakof/ask-parents-25-questions/pkg/ctxutil"
)

// NewErrorPresenter returns a presenter that maps domain errors to GraphQL
// error codes. Unexpected errors are logged and hidden behind "internal error".
func NewErrorPresenter(log *slog.Logger) func(ctx context.Context, err error) *gqlerror.Error {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := &gqlerror.Error{Message: err.Error()}

		switch {
		case errors.Is(err, domain.ErrNotFound):
			gqlErr.Extensions = map[string]interface{}{"code": "NOT_FOUND"}

		case errors.Is(err, domain.ErrValidation):
			gqlErr.Extensions = map[string]interface{}{"code": "VALIDATION"}
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				gqlErr.Extensions["fields"] = ve.Errors
			}

		case errors.Is(err, domain.ErrUnauthorized):
			gqlErr.Extensions = map[string]interface{}{"code": "UNAUTHENTICATED"}

		case errors.Is(err, domain.ErrForbidden):
			gqlErr.Extensions = map[string]interface{}{"code": "FORBIDDEN"}

		case errors.Is(err, domain.ErrUnavailable):
			gqlErr.Extensions = map[string]interface{}{"code": "UNAVAILABLE"}

		default:
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]interface{}{"code": "INTERNAL"}
		}

		return gqlErr
	}
}
