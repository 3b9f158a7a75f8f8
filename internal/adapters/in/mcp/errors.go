package mcp

import (
	"errors"
	"log/slog"

	"orderdesk/internal/pkg/errs"
)

// Error codes reported in tool results.
const (
	CodeOrderNotFound     = "order_not_found"
	CodeAgentNotFound     = "agent_not_found"
	CodeItemNotFound      = "item_not_found"
	CodeInvalidTransition = "invalid_transition"
	CodeInvalidArgument   = "invalid_argument"
	CodeInternal          = "internal"
)

// failure classifies err into an error code and the reason shown to the
// caller. Unclassified errors are logged and reported without detail.
func failure(logger *slog.Logger, tool string, err error) (string, string) {
	var notFound *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFound):
		switch notFound.ParamName {
		case "agent_id":
			return CodeAgentNotFound, err.Error()
		case "order_id":
			return CodeOrderNotFound, err.Error()
		default:
			return CodeItemNotFound, err.Error()
		}
	case errors.Is(err, errs.ErrInvalidTransition):
		return CodeInvalidTransition, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return CodeInvalidArgument, err.Error()
	default:
		logger.Error("tool failed", "tool", tool, "error", err)
		return CodeInternal, "internal error"
	}
}
