package controller

import (
	"life_score_backend/internal/model"
	"life_score_backend/internal/service"
	"life_score_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SymptomController struct {
	Symptoms   *service.SymptomService
	Biomarkers *service.BiomarkerService
}

func NewSymptomController(symptoms *service.SymptomService, biomarkers *service.BiomarkerService) *SymptomController {
	return &SymptomController{Symptoms: symptoms, Biomarkers: biomarkers}
}

// List godoc
// @Summary Centralized symptom aggregate
// @Description Every symptom the caller has reported across assessments, at its strongest observed severity and frequency
// @Tags symptoms
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Symptom}
// @Router /api/symptoms [get]
func (c *SymptomController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	symptoms, err := c.Symptoms.GetCentralizedSymptoms(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, symptoms)
}

// Flags godoc
// @Summary Biomarker flags for the caller
// @Tags symptoms
// @Security BearerAuth
// @Produce json
// @Param status query string false "filter by status" Enums(active, resolved)
// @Success 200 {object} util.Response{data=[]model.BiomarkerFlag}
// @Router /api/biomarkers/flags [get]
func (c *SymptomController) Flags(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	status := model.FlagStatus(ctx.Query("status"))
	if status != "" && status != model.FlagActive && status != model.FlagResolved {
		util.BadRequest(ctx, "invalid status filter")
		return
	}

	flags, err := c.Biomarkers.GetFlags(claims.UserID, status)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, flags)
}
