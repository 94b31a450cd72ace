package handlers

import (
	"net/http"

	"eventify/models"
	"eventify/services/intelligence"
	"eventify/services/recommend"
	"eventify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the chat assistant, the planner and direct package builds.
type AIHandler struct {
	AISvc   intelligence.AIService
	Planner intelligence.PlannerService
	Engine  *recommend.Engine
}

func NewAIHandler(aiSvc intelligence.AIService, planner intelligence.PlannerService, engine *recommend.Engine) *AIHandler {
	return &AIHandler{AISvc: aiSvc, Planner: planner, Engine: engine}
}

type chatRequest struct {
	Text string `json:"text" binding:"required"`
}

// HandleAIRequest handles POST /api/ai/chat.
func (h *AIHandler) HandleAIRequest(c *gin.Context) {
	var body chatRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	userID := utils.UserID(c)
	resp, err := h.AISvc.ProcessUserInput(c.Request.Context(), models.AIRequest{UserID: userID, Text: body.Text})
	if err != nil {
		respondError(c, "failed to process message", err)
		return
	}
	getLogger(c).Debug("chat turn answered", zap.String("userID", userID), zap.String("kind", string(resp.Kind)))
	c.JSON(http.StatusOK, resp)
}

// ResetConversation handles DELETE /api/ai/chat.
func (h *AIHandler) ResetConversation(c *gin.Context) {
	if err := h.AISvc.ClearConversation(c.Request.Context(), utils.UserID(c)); err != nil {
		respondError(c, "failed to reset conversation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conversation cleared"})
}

// GeneratePlan handles POST /api/ai/planner.
func (h *AIHandler) GeneratePlan(c *gin.Context) {
	var req models.PlannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := h.Planner.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		respondError(c, "failed to generate plan", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type packageRequest struct {
	Categories []string `json:"categories" binding:"required,min=1"`
	Budget     int64    `json:"budget" binding:"required,gt=0"`
}

// RecommendPackage handles POST /api/recommend/package. Unknown category
// names are ignored.
func (h *AIHandler) RecommendPackage(c *gin.Context) {
	var body packageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	pkg := recommend.BuildCrossCategoryPackage(h.Engine.CategoriesByName(body.Categories...), body.Budget)
	if pkg.Items == nil {
		pkg.Items = []models.Service{}
	}
	c.JSON(http.StatusOK, pkg)
}
