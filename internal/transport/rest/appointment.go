package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"praxis/internal/domain"
	"praxis/internal/i18n"
	"praxis/pkg/validator"
)

func requestLanguage(c *gin.Context) domain.Language {
	if lang := c.Query("lang"); lang == string(domain.LanguageEnglish) {
		return domain.LanguageEnglish
	}
	return domain.LanguageGerman
}

// @Summary Day availability
// @Description Returns all, booked and available slots for one day
// @Tags Appointments
// @Produce json
// @Param date query string true "Day in YYYY-MM-DD"
// @Success 200 {object} successResponseBody{data=domain.DayAvailability}
// @Failure 400 {object} errorResponseBody
// @Router /appointments/slots [get]
func (h *Handler) getDaySlots(c *gin.Context) {
	lang := requestLanguage(c)

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		badRequestResponse(c, i18n.Msg(lang, i18n.KeyBadRequest))
		return
	}

	availability, err := h.services.Appointment.ResolveDay(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("failed to resolve day availability", zap.Error(err))
		serviceErrorResponse(c, lang, err)
		return
	}

	successResponse(c, http.StatusOK, availability)
}

// @Summary Book an appointment
// @Description Books a free slot; the confirmation mail carries the cancel link
// @Tags Appointments
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Booking request"
// @Success 201 {object} successResponseBody
// @Failure 400 {object} errorResponseBody
// @Failure 409 {object} errorResponseBody "Slot taken or blocked"
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var input domain.CreateAppointmentDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("malformed booking request", zap.Error(err))
		badRequestResponse(c, i18n.Msg(requestLanguage(c), i18n.KeyBadRequest))
		return
	}

	lang := input.Language
	if lang == "" {
		lang = requestLanguage(c)
		input.Language = lang
	}

	if !validator.ValidateName(input.Name) || !validator.ValidateEmail(input.Email) || !validator.ValidatePhone(input.Phone) {
		badRequestResponse(c, i18n.Msg(lang, i18n.KeyBadRequest))
		return
	}

	appt, err := h.services.Appointment.Create(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, lang, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id":        appt.ID,
		"date":      appt.Date.Format("2006-01-02"),
		"time_slot": appt.TimeSlot,
		"status":    appt.Status,
	})
}

// @Summary Cancel an appointment
// @Description Cancels via the token from the confirmation mail
// @Tags Appointments
// @Accept json
// @Produce json
// @Param input body domain.CancelAppointmentDTO true "Cancel token"
// @Success 200 {object} successResponseBody
// @Failure 400 {object} errorResponseBody "Already cancelled"
// @Failure 404 {object} errorResponseBody "Unknown token"
// @Router /appointments/cancel [post]
func (h *Handler) cancelAppointment(c *gin.Context) {
	lang := requestLanguage(c)

	var input domain.CancelAppointmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, i18n.Msg(lang, i18n.KeyBadRequest))
		return
	}

	appt, err := h.services.Appointment.CancelByToken(c.Request.Context(), input.Token)
	if err != nil {
		serviceErrorResponse(c, lang, err)
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"id":     appt.ID,
		"status": appt.Status,
	})
}

// @Summary List appointments
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Param date query string false "Filter by day (YYYY-MM-DD)"
// @Param status query string false "Filter by status"
// @Param from query string false "Only days from this date on"
// @Success 200 {object} successResponseBody{data=[]domain.Appointment}
// @Router /admin/appointments [get]
func (h *Handler) adminListAppointments(c *gin.Context) {
	var filter domain.AppointmentFilter

	if v := c.Query("date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			badRequestResponse(c, "invalid date filter")
			return
		}
		filter.Date = &date
	}
	if v := c.Query("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			badRequestResponse(c, "invalid from filter")
			return
		}
		filter.FromDate = &from
	}
	if v := c.Query("status"); v != "" {
		status := domain.AppointmentStatus(v)
		switch status {
		case domain.AppointmentStatusPending, domain.AppointmentStatusConfirmed,
			domain.AppointmentStatusCancelled, domain.AppointmentStatusCompleted:
			filter.Status = &status
		default:
			badRequestResponse(c, "invalid status filter")
			return
		}
	}

	appointments, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, appointments)
}

// @Summary Record an appointment
// @Description Back-office booking, e.g. taken over the phone
// @Tags Admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.AdminCreateAppointmentDTO true "Appointment"
// @Success 201 {object} successResponseBody{data=domain.Appointment}
// @Failure 409 {object} errorResponseBody
// @Router /admin/appointments [post]
func (h *Handler) adminCreateAppointment(c *gin.Context) {
	var input domain.AdminCreateAppointmentDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}
	if input.Email != "" && !validator.ValidateEmail(input.Email) {
		badRequestResponse(c, "invalid email address")
		return
	}

	appt, err := h.services.Appointment.AdminCreate(c.Request.Context(), input)
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	createdResponse(c, appt)
}

// @Summary Change appointment status
// @Tags Admin
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment id"
// @Param input body domain.UpdateAppointmentStatusDTO true "New status"
// @Success 200 {object} successResponseBody{data=domain.Appointment}
// @Failure 404 {object} errorResponseBody
// @Router /admin/appointments/{id} [patch]
func (h *Handler) adminUpdateAppointmentStatus(c *gin.Context) {
	var input domain.UpdateAppointmentStatusDTO

	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "invalid request body")
		return
	}

	appt, err := h.services.Appointment.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, appt)
}

// @Summary Delete an appointment
// @Tags Admin
// @Security ApiKeyAuth
// @Param id path string true "Appointment id"
// @Success 204
// @Failure 404 {object} errorResponseBody
// @Router /admin/appointments/{id} [delete]
func (h *Handler) adminDeleteAppointment(c *gin.Context) {
	if err := h.services.Appointment.Delete(c.Request.Context(), c.Param("id")); err != nil {
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	noContentResponse(c)
}

// @Summary Dashboard stats
// @Tags Admin
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} successResponseBody{data=domain.DashboardStats}
// @Router /admin/stats [get]
func (h *Handler) adminGetStats(c *gin.Context) {
	stats, err := h.services.Appointment.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to load dashboard stats", zap.Error(err))
		serviceErrorResponse(c, domain.LanguageGerman, err)
		return
	}

	successResponse(c, http.StatusOK, stats)
}
