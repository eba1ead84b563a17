package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary List orders
// @Tags Orders
// @Produce json
// @Success 200 {object} successResponseBody{data=[]domain.Order}
// @Failure 500 {object} errorResponseBody
// @Router /orders [get]
func (h *Handler) getOrders(c *gin.Context) {
	orders, err := h.services.Directory.ListOrders(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, orders)
}

// @Summary Get order by ID
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} successResponseBody{data=domain.Order}
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Failure 500 {object} errorResponseBody
// @Router /orders/{id} [get]
func (h *Handler) getOrderByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid order id")
		return
	}

	order, err := h.services.Directory.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, order)
}

// @Summary List professionals
// @Tags Professionals
// @Produce json
// @Success 200 {object} successResponseBody{data=[]domain.Professional}
// @Failure 500 {object} errorResponseBody
// @Router /professionals [get]
func (h *Handler) getProfessionals(c *gin.Context) {
	professionals, err := h.services.Directory.ListProfessionals(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, professionals)
}

// @Summary Get professional by ID
// @Tags Professionals
// @Produce json
// @Param id path int true "Professional ID"
// @Success 200 {object} successResponseBody{data=domain.Professional}
// @Failure 400 {object} errorResponseBody
// @Failure 404 {object} errorResponseBody
// @Failure 500 {object} errorResponseBody
// @Router /professionals/{id} [get]
func (h *Handler) getProfessionalByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "invalid professional id")
		return
	}

	professional, err := h.services.Directory.GetProfessional(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	successResponse(c, http.StatusOK, professional)
}
