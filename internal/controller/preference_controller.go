package controller

import (
	"trait_tracer_backend/internal/service"
	"trait_tracer_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	PreferenceService *service.PreferenceService
}

func NewPreferenceController(preferenceService *service.PreferenceService) *PreferenceController {
	return &PreferenceController{PreferenceService: preferenceService}
}

// Get godoc
// @Summary Get the caller's UI preferences
// @Tags preferences
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Preferences}
// @Router /api/preferences [get]
func (c *PreferenceController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	prefs, err := c.PreferenceService.Get(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

// Save godoc
// @Summary Save the caller's UI preferences
// @Tags preferences
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.Preferences true "Preferences"
// @Success 200 {object} util.Response{data=service.Preferences}
// @Router /api/preferences [put]
func (c *PreferenceController) Save(ctx *gin.Context) {
	var prefs service.Preferences
	if err := ctx.ShouldBindJSON(&prefs); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.PreferenceService.Save(ctx.Request.Context(), claims.UserID, prefs); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}
