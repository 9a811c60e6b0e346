package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"praxis/internal/domain"
)

// @Summary Admin login
// @Description Issues an access token for the back office
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credentials"
// @Success 200 {object} successResponseBody{data=domain.LoginResponse}
// @Failure 401 {object} errorResponseBody "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input domain.LoginRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	resp, err := h.services.Auth.Login(c.Request.Context(), input)
	if err != nil {
		h.logger.Warn("login rejected", zap.Error(err))
		unauthorizedResponse(c, "invalid email or password")
		return
	}

	successResponse(c, http.StatusOK, resp)
}
