package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"staffing/config"
	"staffing/internal/domain"
	"staffing/internal/service"
	"staffing/internal/transport/websocket"
)

type Handler struct {
	services    *service.Services
	logger      *zap.Logger
	config      *config.Config
	scheduleHub *websocket.ScheduleHub
}

// NewHandler builds the HTTP adapter. scheduleHub may be nil, which disables
// the schedule event stream.
func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config, scheduleHub *websocket.ScheduleHub) *Handler {
	return &Handler{
		services:    services,
		logger:      logger,
		config:      config,
		scheduleHub: scheduleHub,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.requestIDMiddleware())

	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	router.Use(h.timeoutMiddleware(h.config.HTTP.RequestTimeout))

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.health)

		orders := api.Group("/orders")
		{
			orders.GET("", h.getOrders)
			orders.GET("/:id", h.getOrderByID)
		}

		professionals := api.Group("/professionals")
		{
			professionals.GET("", h.getProfessionals)
			professionals.GET("/:id", h.getProfessionalByID)
		}

		schedules := api.Group("/schedules")
		{
			schedules.GET("", h.getSchedules)
			schedules.POST("", h.createSchedule)

			if h.scheduleHub != nil {
				schedules.GET("/events", h.scheduleHub.HandleWebSocket)
			}
		}

		api.POST("/availability", h.findAvailable)
	}
}

type healthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:  "ok",
		Name:    h.config.Name,
		Version: h.config.Version,
	})
}

// respondError maps scheduling error kinds onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, err error) {
	var domainErr *domain.Error
	switch {
	case errors.Is(err, domain.ErrNotFound) && errors.As(err, &domainErr):
		notFoundResponse(c, domainErr.Message)
	case (errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrUnavailable)) && errors.As(err, &domainErr):
		badRequestResponse(c, domainErr.Message)
	default:
		_ = c.Error(err)
		internalServerErrorResponse(c)
	}
}
