package controller

import (
	"life_score_backend/internal/service"
	"life_score_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	Scores *service.ScoreService
}

func NewScoreController(scores *service.ScoreService) *ScoreController {
	return &ScoreController{Scores: scores}
}

// Get godoc
// @Summary Current score snapshot
// @Description Life score, penalty-adjusted average pillar scores and per-assessment pillar scores
// @Tags scores
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response{data=service.ScoreSnapshot}
// @Router /api/scores [get]
func (c *ScoreController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	snap, err := c.Scores.GetScores(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, snap)
}

// History godoc
// @Summary Life-score recompute trail, oldest first
// @Tags scores
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response{data=[]model.ScoreHistoryEntry}
// @Router /api/scores/history [get]
func (c *ScoreController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	history, err := c.Scores.GetHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// Recommendation godoc
// @Summary Consultation tier recommendation
// @Description Maps the life score and active biomarker flags to a consultation tier
// @Tags scores
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response{data=service.Recommendation}
// @Router /api/recommendation [get]
func (c *ScoreController) Recommendation(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	rec, err := c.Scores.Recommend(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rec)
}
