package controller

import (
	"errors"
	"trait_tracer_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service layer's sentinel errors onto HTTP
// statuses; anything unrecognized is logged and reported as a 500.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrOrganizationMissing),
		errors.Is(err, util.ErrJobNotFound),
		errors.Is(err, util.ErrApplicationMissing),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrAssessmentMissing):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrAlreadyApplied):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrJobInactive),
		errors.Is(err, util.ErrProfileIncomplete),
		errors.Is(err, util.ErrInvalidAnswer),
		errors.Is(err, util.ErrSessionClosed):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
