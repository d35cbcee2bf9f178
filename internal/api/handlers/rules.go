package handlers

import (
	"net/http"

	"baseball-replay/internal/api/models"
	"baseball-replay/internal/model"

	"github.com/gin-gonic/gin"
)

// RulesHandler handles scoring rule requests
type RulesHandler struct{}

// NewRulesHandler creates a new rules handler
func NewRulesHandler() *RulesHandler {
	return &RulesHandler{}
}

// ListRules handles GET /api/v1/rules
func (h *RulesHandler) ListRules(c *gin.Context) {
	rules := []models.RuleInfo{
		{
			Name:        string(model.RuleHold),
			Description: "Standard baserunning. Runners take the forced advance on hits: a single scores third only, a double scores second and third.",
			Default:     true,
		},
		{
			Name:        string(model.RuleAggressive),
			Description: "Send everyone. Runners in scoring position score on any hit, and the runner on first scores on a double.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}
