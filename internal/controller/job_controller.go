package controller

import (
	"strconv"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/service"
	"trait_tracer_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	JobService *service.JobService
}

func NewJobController(jobService *service.JobService) *JobController {
	return &JobController{JobService: jobService}
}

type JobRequest struct {
	OrganizationID uint     `json:"organizationId" binding:"required"`
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Requirements   []string `json:"requirements"`
	RequiredSkills []string `json:"requiredSkills"`
	Experience     string   `json:"experience" binding:"omitempty,oneof=entry mid senior"`
	EmploymentType string   `json:"employmentType"`
	Location       string   `json:"location"`
	SalaryRange    string   `json:"salaryRange"`
}

// Create godoc
// @Summary Publish a job opening
// @Tags jobs
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body JobRequest true "Job details"
// @Success 201 {object} util.Response{data=model.JobOpening}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 403 {object} util.Response "Not the organization owner"
// @Router /api/jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	job := jobFromRequest(&req)
	if err := c.JobService.Create(claims.UserID, job); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, job)
}

// ListActive godoc
// @Summary Browse active job openings
// @Description Public job board, paginated, newest first
// @Tags jobs
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/jobs [get]
func (c *JobController) ListActive(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	jobs, total, err := c.JobService.ListActive(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: jobs, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary Get one job opening
// @Tags jobs
// @Produce  json
// @Param   id path int true "Job ID"
// @Success 200 {object} util.Response{data=model.JobOpening}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/jobs/{id} [get]
func (c *JobController) Get(ctx *gin.Context) {
	jobID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid job id")
		return
	}

	job, err := c.JobService.Get(jobID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, job)
}

// ListByOrganization godoc
// @Summary List an organization's openings
// @Description Includes inactive openings, recruiter only
// @Tags jobs
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Organization ID"
// @Success 200 {object} util.Response{data=[]model.JobOpening}
// @Router /api/organizations/{id}/jobs [get]
func (c *JobController) ListByOrganization(ctx *gin.Context) {
	orgID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid organization id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	jobs, err := c.JobService.ListByOrganization(claims.UserID, orgID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, jobs)
}

// Update godoc
// @Summary Update a job opening
// @Tags jobs
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Job ID"
// @Param   body body JobRequest true "Job details"
// @Success 200 {object} util.Response{data=model.JobOpening}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/jobs/{id} [put]
func (c *JobController) Update(ctx *gin.Context) {
	jobID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid job id")
		return
	}

	var req JobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	job, err := c.JobService.Update(claims.UserID, jobID, jobFromRequest(&req))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, job)
}

// Deactivate godoc
// @Summary Retire a job opening
// @Description Removes the opening from the board, existing applications stay readable
// @Tags jobs
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Job ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not found"
// @Router /api/jobs/{id} [delete]
func (c *JobController) Deactivate(ctx *gin.Context) {
	jobID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid job id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.JobService.Deactivate(claims.UserID, jobID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func jobFromRequest(req *JobRequest) *model.JobOpening {
	return &model.JobOpening{
		OrganizationID: req.OrganizationID,
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		RequiredSkills: req.RequiredSkills,
		Experience:     model.ExperienceLevel(req.Experience),
		EmploymentType: req.EmploymentType,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
	}
}
