package handlers

import (
	"net/http"

	"envbridge-core/internal/application/dto"
	"envbridge-core/internal/application/service"

	"github.com/gin-gonic/gin"
)

// EnvVarHandler handles environment variable translation requests
type EnvVarHandler struct {
	translationService *service.TranslationService
}

// NewEnvVarHandler creates a new environment variable handler
func NewEnvVarHandler(translationService *service.TranslationService) *EnvVarHandler {
	return &EnvVarHandler{
		translationService: translationService,
	}
}

// CreateEnvVar handles POST /env
// @Summary Translate an environment variable
// @Description Accepts an environment variable description and returns the creation payloads for the deployment platform and the CI/CD platform. No call is made to either platform.
// @Tags Environment Variables
// @Accept json
// @Produce json
// @Param env_var body dto.CreateEnvVarRequest true "Environment variable description"
// @Success 200 {object} dto.TranslationResponse
// @Failure 422 {object} ErrorResponse
// @Router /env [post]
func (h *EnvVarHandler) CreateEnvVar(c *gin.Context) {
	var req dto.CreateEnvVarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, validationErrorResponse(err))
		return
	}

	response, err := h.translationService.Translate(&req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: "Invalid environment variable",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
