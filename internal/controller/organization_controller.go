package controller

import (
	"errors"
	"strconv"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/service"
	"trait_tracer_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type OrganizationController struct {
	OrgService     *service.OrganizationService
	StorageService *service.StorageService
}

func NewOrganizationController(orgService *service.OrganizationService, storageService *service.StorageService) *OrganizationController {
	return &OrganizationController{OrgService: orgService, StorageService: storageService}
}

type OrganizationRequest struct {
	Name        string `json:"name" binding:"required"`
	Industry    string `json:"industry"`
	CompanySize string `json:"companySize"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// Create godoc
// @Summary Create an organization
// @Tags organizations
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body OrganizationRequest true "Organization details"
// @Success 201 {object} util.Response{data=model.Organization}
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/organizations [post]
func (c *OrganizationController) Create(ctx *gin.Context) {
	var req OrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	org := &model.Organization{
		Name:        req.Name,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Website:     req.Website,
		Description: req.Description,
	}
	if err := c.OrgService.Create(claims.UserID, org); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, org)
}

// List godoc
// @Summary List the recruiter's organizations
// @Tags organizations
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Organization}
// @Router /api/organizations [get]
func (c *OrganizationController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	orgs, err := c.OrgService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, orgs)
}

// Get godoc
// @Summary Get one organization
// @Tags organizations
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Organization ID"
// @Success 200 {object} util.Response{data=model.Organization}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/organizations/{id} [get]
func (c *OrganizationController) Get(ctx *gin.Context) {
	orgID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid organization id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	org, err := c.OrgService.Get(claims.UserID, orgID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, org)
}

// Update godoc
// @Summary Update an organization
// @Tags organizations
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Organization ID"
// @Param   body body OrganizationRequest true "Organization details"
// @Success 200 {object} util.Response{data=model.Organization}
// @Failure 404 {object} util.Response "Not found"
// @Router /api/organizations/{id} [put]
func (c *OrganizationController) Update(ctx *gin.Context) {
	orgID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid organization id")
		return
	}

	var req OrganizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	org, err := c.OrgService.Update(claims.UserID, orgID, &model.Organization{
		Name:        req.Name,
		Industry:    req.Industry,
		CompanySize: req.CompanySize,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, org)
}

// Delete godoc
// @Summary Delete an organization
// @Tags organizations
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Organization ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not found"
// @Router /api/organizations/{id} [delete]
func (c *OrganizationController) Delete(ctx *gin.Context) {
	orgID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid organization id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.OrgService.Delete(claims.UserID, orgID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadLogo godoc
// @Summary Upload an organization logo
// @Tags organizations
// @Accept  mpfd
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Organization ID"
// @Param   logo formData file true "Logo image"
// @Success 200 {object} util.Response{data=model.Organization}
// @Failure 400 {object} util.Response "Unsupported file type"
// @Router /api/organizations/{id}/logo [post]
func (c *OrganizationController) UploadLogo(ctx *gin.Context) {
	orgID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid organization id")
		return
	}

	claims := util.GetUserFromContext(ctx)
	if _, err := c.OrgService.Get(claims.UserID, orgID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("logo")
	if err != nil {
		util.BadRequest(ctx, "logo file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.StorageService.UploadLogo(ctx.Request.Context(), orgID, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedFileType) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	org, err := c.OrgService.SetLogo(claims.UserID, orgID, url)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, org)
}

func pathID(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	return uint(id), err
}
