package controller

import (
	"errors"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/service"
	"trait_tracer_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ApplicationController struct {
	AppService *service.ApplicationService
}

func NewApplicationController(appService *service.ApplicationService) *ApplicationController {
	return &ApplicationController{AppService: appService}
}

type ProfileRequest struct {
	FullName        string `json:"fullName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	GithubUsername  string `json:"githubUsername"`
	LinkedinProfile string `json:"linkedinProfile"`
}

// GetProfile godoc
// @Summary Get the candidate's profile
// @Tags candidates
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.CandidateProfile}
// @Failure 404 {object} util.Response "No profile yet"
// @Router /api/candidate/profile [get]
func (c *ApplicationController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	profile, err := c.AppService.Profile(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrProfileIncomplete) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, profile)
}

// SaveProfile godoc
// @Summary Create or update the candidate's profile
// @Tags candidates
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body ProfileRequest true "Profile details"
// @Success 200 {object} util.Response{data=model.CandidateProfile}
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/candidate/profile [put]
func (c *ApplicationController) SaveProfile(ctx *gin.Context) {
	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	profile := &model.CandidateProfile{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		GithubUsername:  req.GithubUsername,
		LinkedinProfile: req.LinkedinProfile,
	}
	if err := c.AppService.SaveProfile(claims.UserID, profile); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// Apply godoc
// @Summary Apply to a job opening
// @Description Files an application and enriches it with the candidate's public GitHub profile
// @Tags applications
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Job ID"
// @Success 201 {object} util.Response{data=model.Application}
// @Failure 400 {object} util.Response "Profile incomplete or job inactive"
// @Failure 409 {object} util.Response "Already applied"
// @Router /api/jobs/{id}/apply [post]
func (c *ApplicationController) Apply(ctx *gin.Context) {
	jobID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid job id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	app, err := c.AppService.Apply(ctx.Request.Context(), claims.UserID, jobID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, app)
}

// ListMine godoc
// @Summary List the candidate's applications
// @Tags applications
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Application}
// @Router /api/applications [get]
func (c *ApplicationController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	apps, err := c.AppService.ListForCandidate(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, apps)
}

// Get godoc
// @Summary Get one of the candidate's applications
// @Tags applications
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Application ID"
// @Success 200 {object} util.Response{data=model.Application}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/applications/{id} [get]
func (c *ApplicationController) Get(ctx *gin.Context) {
	appID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid application id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	app, err := c.AppService.GetForCandidate(claims.UserID, appID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, app)
}

// ListForJob godoc
// @Summary Review a job's applications
// @Description Recruiter view with candidate and assessment rows embedded
// @Tags applications
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Job ID"
// @Success 200 {object} util.Response{data=[]model.Application}
// @Failure 403 {object} util.Response "Not the organization owner"
// @Router /api/jobs/{id}/applications [get]
func (c *ApplicationController) ListForJob(ctx *gin.Context) {
	jobID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid job id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	apps, err := c.AppService.ListForJob(claims.UserID, jobID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, apps)
}
