// Package controller holds helpers shared by the admin and user HTTP controllers.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/campuspulse/internal/dto"
	"github.com/lshigami/campuspulse/internal/middleware"
	"github.com/lshigami/campuspulse/internal/scoring"
	"github.com/lshigami/campuspulse/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service or core error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, scoring.ErrEmptyInput), errors.Is(err, scoring.ErrInvalidAnswer):
		return http.StatusBadRequest
	case errors.Is(err, scoring.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, scoring.ErrDataAccess):
		return http.StatusInternalServerError
	}
	if se, ok := service.AsServiceError(err); ok {
		switch se.Code {
		case service.ErrorInvalid:
			return http.StatusBadRequest
		case service.ErrorUnauthorized:
			return http.StatusUnauthorized
		case service.ErrorForbidden:
			return http.StatusForbidden
		case service.ErrorNotFound:
			return http.StatusNotFound
		case service.ErrorConflict:
			return http.StatusConflict
		case service.ErrorBadGateway:
			return http.StatusBadGateway
		case service.ErrorUnavailable:
			return http.StatusServiceUnavailable
		}
	}
	return http.StatusInternalServerError
}

// RespondError writes err as a dto.ErrorResponse. Internal failures hide their cause from the client.
func RespondError(ctx *gin.Context, err error, op string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("op", op).Str("path", ctx.FullPath()).Msg("Request failed")
		ctx.JSON(status, dto.ErrorResponse{Message: http.StatusText(status)})
		return
	}
	log.Warn().Err(err).Str("op", op).Int("status", status).Msg("Request rejected")
	ctx.JSON(status, dto.ErrorResponse{Message: err.Error()})
}

// BindError reports a request body that failed validation.
func BindError(ctx *gin.Context, err error, op string) {
	log.Warn().Err(err).Str("op", op).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// CurrentUserID returns the authenticated user's id. Routes using it must sit behind middleware.Authenticate.
func CurrentUserID(ctx *gin.Context) (string, bool) {
	claims, ok := middleware.ClaimsFrom(ctx)
	if !ok || claims.UID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return "", false
	}
	return claims.UID, true
}
