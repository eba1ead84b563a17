package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"staffing/internal/domain"
)

// @Summary Find available professionals
// @Description Returns professionals of the requested profession and region that are free on every day of the window
// @Tags Availability
// @Accept json
// @Produce json
// @Param input body domain.AvailabilityQuery true "Availability window"
// @Success 200 {object} successResponseBody{data=[]domain.Professional}
// @Failure 400 {object} errorResponseBody
// @Failure 500 {object} errorResponseBody
// @Router /availability [post]
func (h *Handler) findAvailable(c *gin.Context) {
	var query domain.AvailabilityQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		h.logger.Warn("invalid availability query", zap.Error(err))
		badRequestResponse(c, "invalid request body: "+err.Error())
		return
	}

	if err := query.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	professionals, err := h.services.Availability.FindAvailable(c.Request.Context(), query)
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, professionals)
}

// @Summary Create schedule
// @Description Assigns a professional to an order and commits one slot per matching day
// @Tags Schedules
// @Accept json
// @Produce json
// @Param input body domain.ScheduleRequest true "Schedule request"
// @Success 201 {object} successResponseBody{data=domain.ScheduleResponse}
// @Failure 400 {object} errorResponseBody "Validation error, conflict or no professional available"
// @Failure 404 {object} errorResponseBody "Order or professional not found"
// @Failure 500 {object} errorResponseBody
// @Router /schedules [post]
func (h *Handler) createSchedule(c *gin.Context) {
	var req domain.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid schedule request", zap.Error(err))
		badRequestResponse(c, "invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		h.respondError(c, err)
		return
	}

	resp, err := h.services.Schedule.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	createdResponse(c, resp)
}

// @Summary List schedule slots
// @Tags Schedules
// @Produce json
// @Param professional_id query int false "Only slots of this professional"
// @Success 200 {object} successResponseBody{data=[]domain.ScheduleSlot}
// @Failure 400 {object} errorResponseBody
// @Failure 500 {object} errorResponseBody
// @Router /schedules [get]
func (h *Handler) getSchedules(c *gin.Context) {
	var filter domain.ScheduleFilter

	if raw := c.Query("professional_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			badRequestResponse(c, "invalid professional_id")
			return
		}
		filter.ProfessionalID = &id
	}

	slots, err := h.services.Directory.ListSchedules(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, slots)
}
