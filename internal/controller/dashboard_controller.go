package controller

import (
	"trait_tracer_backend/internal/service"
	"trait_tracer_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Recruiter godoc
// @Summary Recruiter analytics dashboard
// @Description Pipeline counts, average score, top performers and the trailing week's activity for one organization
// @Tags dashboard
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Organization ID"
// @Success 200 {object} util.Response{data=service.RecruiterDashboard}
// @Failure 403 {object} util.Response "Not the organization owner"
// @Router /api/dashboard/organizations/{id} [get]
func (c *DashboardController) Recruiter(ctx *gin.Context) {
	orgID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid organization id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	dash, err := c.DashboardService.ForRecruiter(ctx.Request.Context(), claims.UserID, orgID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, dash)
}

// Candidate godoc
// @Summary Candidate dashboard
// @Description The caller's applications with assessment state and best score
// @Tags dashboard
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.CandidateDashboard}
// @Router /api/dashboard/candidate [get]
func (c *DashboardController) Candidate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	dash, err := c.DashboardService.ForCandidate(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dash)
}
