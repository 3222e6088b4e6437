package controller

import (
	"time"
	"trait_tracer_backend/internal/model"
	"trait_tracer_backend/internal/service"
	"trait_tracer_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
	AppService        *service.ApplicationService
}

func NewAssessmentController(assessmentService *service.AssessmentService, appService *service.ApplicationService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService, AppService: appService}
}

// SessionResponse is the candidate-facing session view with the countdown
// already resolved.
type SessionResponse struct {
	ID               string              `json:"id"`
	ApplicationID    uint                `json:"applicationId"`
	Status           model.SessionStatus `json:"status"`
	Questions        []model.Question    `json:"questions"`
	Answers          map[int]int         `json:"answers"`
	RemainingSeconds int                 `json:"remainingSeconds"`
	ExpiresAt        time.Time           `json:"expiresAt"`
}

func sessionResponse(s *model.AssessmentSession) SessionResponse {
	return SessionResponse{
		ID:               s.ID,
		ApplicationID:    s.ApplicationID,
		Status:           s.Status,
		Questions:        s.Questions,
		Answers:          s.Answers,
		RemainingSeconds: s.Remaining(time.Now()),
		ExpiresAt:        s.ExpiresAt,
	}
}

// Start godoc
// @Summary Start or resume an assessment session
// @Description Generates the question set and opens the timed session; an open session is resumed unchanged
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Application ID"
// @Success 200 {object} util.Response{data=SessionResponse}
// @Failure 404 {object} util.Response "Application not found"
// @Router /api/applications/{id}/assessment/start [post]
func (c *AssessmentController) Start(ctx *gin.Context) {
	appID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid application id")
		return
	}

	candidateID, ok := c.candidateID(ctx)
	if !ok {
		return
	}

	session, err := c.AssessmentService.StartSession(ctx.Request.Context(), candidateID, appID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, sessionResponse(session))
}

type AnswersRequest struct {
	Answers map[int]int `json:"answers" binding:"required"`
}

// SaveAnswers godoc
// @Summary Save the session's answers
// @Description Replaces the answer map while the session is in progress
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Session ID"
// @Param   body body AnswersRequest true "Answer map, question id to option index"
// @Success 200 {object} util.Response{data=SessionResponse}
// @Failure 400 {object} util.Response "Invalid answer or session closed"
// @Router /api/assessment/sessions/{id}/answers [put]
func (c *AssessmentController) SaveAnswers(ctx *gin.Context) {
	var req AnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	candidateID, ok := c.candidateID(ctx)
	if !ok {
		return
	}

	session, err := c.AssessmentService.SaveAnswers(candidateID, ctx.Param("id"), req.Answers)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, sessionResponse(session))
}

// Submit godoc
// @Summary Submit the session for evaluation
// @Description Closes the session and returns the scored assessment
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "Session ID"
// @Param   body body AnswersRequest false "Final answer map"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 400 {object} util.Response "Session already closed"
// @Router /api/assessment/sessions/{id}/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	var req AnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		req.Answers = nil
	}

	candidateID, ok := c.candidateID(ctx)
	if !ok {
		return
	}

	assessment, err := c.AssessmentService.Submit(ctx.Request.Context(), candidateID, ctx.Param("id"), req.Answers)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, assessment)
}

// Result godoc
// @Summary Get an application's assessment
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "Application ID"
// @Success 200 {object} util.Response{data=model.Assessment}
// @Failure 404 {object} util.Response "No assessment yet"
// @Router /api/applications/{id}/assessment [get]
func (c *AssessmentController) Result(ctx *gin.Context) {
	appID, err := pathID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "invalid application id")
		return
	}

	candidateID, ok := c.candidateID(ctx)
	if !ok {
		return
	}

	assessment, err := c.AssessmentService.Result(candidateID, appID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, assessment)
}

// candidateID resolves the caller's candidate profile id, writing the error
// response itself when that fails.
func (c *AssessmentController) candidateID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	profile, err := c.AppService.Profile(claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return 0, false
	}
	return profile.ID, true
}
