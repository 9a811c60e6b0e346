package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"praxis/internal/domain"
	"praxis/internal/i18n"
	"praxis/pkg/validator"
)

// @Summary Send a contact message
// @Description Stores the message and notifies the practice inbox
// @Tags Contact
// @Accept json
// @Produce json
// @Param input body domain.CreateContactMessageDTO true "Message"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody
// @Router /contact [post]
func (h *Handler) createContactMessage(c *gin.Context) {
	lang := requestLanguage(c)

	var input domain.CreateContactMessageDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, i18n.Msg(lang, i18n.KeyBadRequest))
		return
	}
	if !validator.ValidateName(input.Name) || !validator.ValidateEmail(input.Email) {
		badRequestResponse(c, i18n.Msg(lang, i18n.KeyBadRequest))
		return
	}

	msg, err := h.services.Contact.Create(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, lang, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": msg.ID,
	})
}

// @Summary List contact messages
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} successResponseBody{data=[]domain.ContactMessage}
// @Router /admin/messages [get]
func (h *Handler) adminListMessages(c *gin.Context) {
	messages, err := h.services.Contact.List(c.Request.Context())
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, messages)
}

// @Summary Mark a message read or unread
// @Tags Admin
// @Security ApiKeyAuth
// @Accept json
// @Param id path string true "Message id"
// @Param input body domain.UpdateContactMessageDTO true "Read flag"
// @Success 200 {object} successResponseBody
// @Failure 404 {object} errorResponseBody
// @Router /admin/messages/{id} [patch]
func (h *Handler) adminUpdateMessage(c *gin.Context) {
	var input domain.UpdateContactMessageDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	if err := h.services.Contact.SetRead(c.Request.Context(), c.Param("id"), input.Read); err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"read": input.Read,
	})
}

// @Summary Delete a contact message
// @Tags Admin
// @Security ApiKeyAuth
// @Param id path string true "Message id"
// @Success 204
// @Failure 404 {object} errorResponseBody
// @Router /admin/messages/{id} [delete]
func (h *Handler) adminDeleteMessage(c *gin.Context) {
	if err := h.services.Contact.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	noContentResponse(c)
}
