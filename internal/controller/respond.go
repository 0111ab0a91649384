package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/internal/dto"
	"github.com/sahajranjan/jobportal/internal/service"
)

// WriteServiceError translates a service layer error into the matching
// HTTP status. Unrecognized errors become an opaque 500 so database
// details never leak to clients.
func WriteServiceError(ctx *gin.Context, err error, fallback string) {
	if svcErr, ok := service.AsServiceError(err); ok {
		ctx.JSON(statusFor(svcErr.Code), dto.ErrorResponse{Message: svcErr.Message})
		return
	}
	log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback})
}

func statusFor(code service.ErrorCode) int {
	switch code {
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
	default:
		return http.StatusInternalServerError
	}
}

// UintParam parses a numeric path parameter, responding 400 on failure.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

// UintQuery parses an optional numeric query parameter. A missing value
// returns (nil, true); a malformed one responds 400.
func UintQuery(ctx *gin.Context, name string) (*uint, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " parameter"})
		return nil, false
	}
	id := uint(parsed)
	return &id, true
}
