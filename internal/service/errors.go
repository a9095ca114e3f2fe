package service

import (
	"context"
	"errors"

	"github.com/lshigami/campuspulse/internal/cache"
	"github.com/rs/zerolog/log"
)

type ErrorCode string

const (
	ErrorInvalid      ErrorCode = "invalid"
	ErrorNotFound     ErrorCode = "not_found"
	ErrorConflict     ErrorCode = "conflict"
	ErrorUnauthorized ErrorCode = "unauthorized"
	ErrorForbidden    ErrorCode = "forbidden"
	ErrorBadGateway   ErrorCode = "bad_gateway"
	ErrorUnavailable  ErrorCode = "unavailable"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error      { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewNotFoundError(msg string) error     { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewConflictError(msg string) error     { return &ServiceError{Code: ErrorConflict, Message: msg} }
func NewUnauthorizedError(msg string) error { return &ServiceError{Code: ErrorUnauthorized, Message: msg} }
func NewForbiddenError(msg string) error    { return &ServiceError{Code: ErrorForbidden, Message: msg} }
func NewBadGatewayError(msg string) error   { return &ServiceError{Code: ErrorBadGateway, Message: msg} }

// ErrInsightUnavailable is returned when no text generator is configured.
var ErrInsightUnavailable error = &ServiceError{Code: ErrorUnavailable, Message: "insight generation is not configured"}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// invalidateStats drops the cached dashboard. A cache failure never fails the write that caused it.
func invalidateStats(ctx context.Context, c cache.StatsCache, reason string) {
	if c == nil {
		return
	}
	if err := c.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Str("reason", reason).Msg("Failed to invalidate stats cache")
	}
}
