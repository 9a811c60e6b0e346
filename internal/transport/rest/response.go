package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"praxis/internal/domain"
	"praxis/internal/i18n"
)

type errorResponseBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

type successResponseBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponseBody{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}

func createdResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, successResponseBody{
		Status: "success",
		Data:   data,
	})
}

func noContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func badRequestResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message)
}

func unauthorizedResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusUnauthorized, message)
}

func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, http.StatusNotFound, message)
}

// serviceErrorResponse maps the sentinel errors to HTTP statuses with a
// message in the request's language. Anything unexpected becomes an
// opaque 500.
func serviceErrorResponse(c *gin.Context, lang domain.Language, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidBookingDate):
		errorResponse(c, http.StatusBadRequest, i18n.Msg(lang, i18n.KeyInvalidDate))
	case errors.Is(err, domain.ErrUnknownSlot):
		errorResponse(c, http.StatusBadRequest, i18n.Msg(lang, i18n.KeyUnknownSlot))
	case errors.Is(err, domain.ErrSlotTooSoon):
		errorResponse(c, http.StatusBadRequest, i18n.Msg(lang, i18n.KeySlotTooSoon))
	case errors.Is(err, domain.ErrAlreadyCancelled):
		errorResponse(c, http.StatusBadRequest, i18n.Msg(lang, i18n.KeyAlreadyCancelled))
	case errors.Is(err, domain.ErrSlotTaken):
		errorResponse(c, http.StatusConflict, i18n.Msg(lang, i18n.KeySlotTaken))
	case errors.Is(err, domain.ErrSlotBlocked):
		errorResponse(c, http.StatusConflict, i18n.Msg(lang, i18n.KeySlotBlocked))
	case errors.Is(err, domain.ErrAlreadyBlocked):
		errorResponse(c, http.StatusConflict, i18n.Msg(lang, i18n.KeySlotBlocked))
	case errors.Is(err, domain.ErrSlugTaken):
		errorResponse(c, http.StatusConflict, "slug already in use")
	case errors.Is(err, domain.ErrNotFound):
		errorResponse(c, http.StatusNotFound, i18n.Msg(lang, i18n.KeyNotFound))
	default:
		errorResponse(c, http.StatusInternalServerError, i18n.Msg(lang, i18n.KeyInternal))
	}
}
