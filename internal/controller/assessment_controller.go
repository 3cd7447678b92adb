package controller

import (
	"encoding/json"
	"errors"

	"life_score_backend/internal/model"
	"life_score_backend/internal/service"
	"life_score_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Assessments *service.AssessmentService
	Users       service.UserLookup
}

func NewAssessmentController(assessments *service.AssessmentService, users service.UserLookup) *AssessmentController {
	return &AssessmentController{Assessments: assessments, Users: users}
}

// List godoc
// @Summary List assessments available to the caller
// @Description Gender-specific assessments are hidden from profiles they do not apply to
// @Tags assessments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response{data=[]service.AssessmentSummary}
// @Router /api/assessments [get]
func (c *AssessmentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var gender model.Gender
	if user, err := c.Users.FindByID(claims.UserID); err == nil {
		gender = user.Gender
	}
	util.Success(ctx, c.Assessments.ListAssessments(gender))
}

// Questions godoc
// @Summary Get the question list for one assessment
// @Tags assessments
// @Security BearerAuth
// @Produce json
// @Param key path string true "assessment key"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/assessments/{key}/questions [get]
func (c *AssessmentController) Questions(ctx *gin.Context) {
	questions, err := c.Assessments.GetQuestions(ctx.Param("key"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, questions)
}

// Submit godoc
// @Summary Submit assessment answers and run a scoring pass
// @Description Scores the submission, merges symptoms into the centralized aggregate, recomputes average pillar and life scores and raises biomarker flags
// @Tags assessments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param key path string true "assessment key"
// @Param body body object true "answers keyed by question id"
// @Success 200 {object} util.Response{data=model.SubmissionResult}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/assessments/{key}/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var answers map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&answers); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Assessments.SubmitAssessment(ctx.Request.Context(), claims.UserID, ctx.Param("key"), answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnknownAssessment):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAssessmentGender):
			util.Forbidden(ctx)
		case errors.Is(err, util.ErrSubmissionLocked), errors.Is(err, util.ErrConcurrentUpdate):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}
