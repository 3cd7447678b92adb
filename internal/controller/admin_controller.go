package controller

import (
	"errors"

	"life_score_backend/internal/model"
	"life_score_backend/internal/repository"
	"life_score_backend/internal/service"
	"life_score_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController exposes the clinician/admin review surface: any user's
// symptoms, flags and scores, flag resolution and report export.
type AdminController struct {
	Users      *repository.UserRepository
	Symptoms   *service.SymptomService
	Biomarkers *service.BiomarkerService
	Scores     *service.ScoreService
	Reports    *service.ReportService
}

func NewAdminController(users *repository.UserRepository, symptoms *service.SymptomService, biomarkers *service.BiomarkerService, scores *service.ScoreService, reports *service.ReportService) *AdminController {
	return &AdminController{
		Users:      users,
		Symptoms:   symptoms,
		Biomarkers: biomarkers,
		Scores:     scores,
		Reports:    reports,
	}
}

// ListUsers godoc
// @Summary Page through registered users
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := c.Users.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

// UserOverview godoc
// @Summary One user's full engine state
// @Description Scores, symptom aggregate and biomarker flags for clinician review
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id}/overview [get]
func (c *AdminController) UserOverview(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.Param("id"))
	user, err := c.Users.FindByID(userID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	snap, err := c.Scores.GetScores(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	symptoms, err := c.Symptoms.GetCentralizedSymptoms(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	flags, err := c.Biomarkers.GetFlags(userID, "")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"user":     user,
		"scores":   snap,
		"symptoms": symptoms,
		"flags":    flags,
	})
}

// ResolveFlag godoc
// @Summary Mark one biomarker flag resolved
// @Description The only mutation of the flag list outside submission passes; never downgrades or deletes other flags
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "user id"
// @Param flagId path string true "flag id"
// @Success 200 {object} util.Response{data=model.BiomarkerFlag}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/admin/users/{id}/flags/{flagId}/resolve [post]
func (c *AdminController) ResolveFlag(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	userID := util.MustParseUint(ctx.Param("id"))
	flag, err := c.Biomarkers.ResolveFlag(userID, ctx.Param("flagId"), claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrFlagNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrFlagAlreadyResolved), errors.Is(err, util.ErrConcurrentUpdate):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, flag)
}

// UserSymptoms godoc
// @Summary One user's symptom aggregate
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} util.Response{data=[]model.Symptom}
// @Router /api/admin/users/{id}/symptoms [get]
func (c *AdminController) UserSymptoms(ctx *gin.Context) {
	symptoms, err := c.Symptoms.GetCentralizedSymptoms(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, symptoms)
}

// UserFlags godoc
// @Summary One user's biomarker flags
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "user id"
// @Param status query string false "filter by status" Enums(active, resolved)
// @Success 200 {object} util.Response{data=[]model.BiomarkerFlag}
// @Router /api/admin/users/{id}/flags [get]
func (c *AdminController) UserFlags(ctx *gin.Context) {
	flags, err := c.Biomarkers.GetFlags(util.MustParseUint(ctx.Param("id")), model.FlagStatus(ctx.Query("status")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, flags)
}

// ExportReport godoc
// @Summary Export one user's full state as a JSON report
// @Description Uploads a point-in-time report to the configured storage backend and returns its URL
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id}/report [post]
func (c *AdminController) ExportReport(ctx *gin.Context) {
	url, err := c.Reports.Export(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
