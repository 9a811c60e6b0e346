package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"praxis/internal/domain"
)

// @Summary List blocked periods
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Param date query string false "Filter by day (YYYY-MM-DD)"
// @Success 200 {object} successResponseBody{data=[]domain.BlockedSlot}
// @Router /admin/blocked-slots [get]
func (h *Handler) adminListBlockedSlots(c *gin.Context) {
	var date *time.Time
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			badRequestResponse(c, "invalid date filter")
			return
		}
		date = &parsed
	}

	blocks, err := h.services.BlockedSlot.List(c.Request.Context(), date)
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, blocks)
}

// @Summary Block a slot or a whole day
// @Tags Admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateBlockedSlotDTO true "Block"
// @Success 201 {object} successResponseBody{data=domain.BlockedSlot}
// @Failure 409 {object} errorResponseBody "Period already blocked"
// @Router /admin/blocked-slots [post]
func (h *Handler) adminCreateBlockedSlot(c *gin.Context) {
	var input domain.CreateBlockedSlotDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	block, err := h.services.BlockedSlot.Create(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	createdResponse(c, block)
}

// @Summary Remove a block
// @Tags Admin
// @Security ApiKeyAuth
// @Param id path string true "Block id"
// @Success 204
// @Failure 404 {object} errorResponseBody
// @Router /admin/blocked-slots/{id} [delete]
func (h *Handler) adminDeleteBlockedSlot(c *gin.Context) {
	if err := h.services.BlockedSlot.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	noContentResponse(c)
}
