package api

import (
	"net/http"

	reqdto "rental-storefront/internal/handler/dto/request"
	resdto "rental-storefront/internal/handler/dto/response"
	"rental-storefront/internal/handler/httperr"
	"rental-storefront/internal/handler/middleware"
	"rental-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservations usecase.ReservationUseCase
}

func NewReservationHandler(reservations usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

func workflowID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReservationHandler) respond(c *gin.Context, status int, view resdto.WorkflowResponse, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, view)
}

// @Summary Start reservation
// @Description Open a reservation form for a product, prefilled with the signed-in customer's data
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.StartReservationRequest true "Product to reserve"
// @Success 201 {object} resdto.WorkflowResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/workflows [post]
func (h *ReservationHandler) Start(c *gin.Context) {
	var req reqdto.StartReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.reservations.Start(c.Request.Context(), middleware.GetSessionID(c), req.ProductID)
	h.respond(c, http.StatusCreated, resdto.FromView(view), err)
}

// @Summary Get reservation form
// @Description Current phase, draft, derived quote and, after success, the confirmed reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Workflow ID"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/workflows/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := workflowID(c)
	if !ok {
		return
	}
	view, err := h.reservations.Get(c.Request.Context(), middleware.GetSessionID(c), id)
	h.respond(c, http.StatusOK, resdto.FromView(view), err)
}

// @Summary Set reservation dates
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Workflow ID"
// @Param request body reqdto.DatesRequest true "YYYY-MM-DD dates"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/workflows/{id}/dates [put]
func (h *ReservationHandler) SetDates(c *gin.Context) {
	id, ok := workflowID(c)
	if !ok {
		return
	}
	var req reqdto.DatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	start, end, err := req.Parse()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use the YYYY-MM-DD format", nil)
		return
	}
	view, err := h.reservations.SetDates(c.Request.Context(), middleware.GetSessionID(c), id, start, end)
	h.respond(c, http.StatusOK, resdto.FromView(view), err)
}

// @Summary Set customer details
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Workflow ID"
// @Param request body reqdto.CustomerRequest true "Customer"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/workflows/{id}/customer [put]
func (h *ReservationHandler) SetCustomer(c *gin.Context) {
	id, ok := workflowID(c)
	if !ok {
		return
	}
	var req reqdto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.reservations.SetCustomer(c.Request.Context(), middleware.GetSessionID(c), id, req.ToDomain())
	h.respond(c, http.StatusOK, resdto.FromView(view), err)
}

// @Summary Submit reservation
// @Description Validation problems answer 422 and keep the form. Backend failures answer 200 with phase "error" and its message.
// @Tags reservations
// @Produce json
// @Param id path string true "Workflow ID"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/workflows/{id}/submit [post]
func (h *ReservationHandler) Submit(c *gin.Context) {
	id, ok := workflowID(c)
	if !ok {
		return
	}
	view, err := h.reservations.Submit(c.Request.Context(), middleware.GetSessionID(c), id)
	h.respond(c, http.StatusOK, resdto.FromView(view), err)
}

// @Summary Retry after a failed submission
// @Tags reservations
// @Produce json
// @Param id path string true "Workflow ID"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/workflows/{id}/retry [post]
func (h *ReservationHandler) Retry(c *gin.Context) {
	id, ok := workflowID(c)
	if !ok {
		return
	}
	view, err := h.reservations.Retry(c.Request.Context(), middleware.GetSessionID(c), id)
	h.respond(c, http.StatusOK, resdto.FromView(view), err)
}

// @Summary Start over after a confirmed reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Workflow ID"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/workflows/{id}/reset [post]
func (h *ReservationHandler) Reset(c *gin.Context) {
	id, ok := workflowID(c)
	if !ok {
		return
	}
	view, err := h.reservations.Reset(c.Request.Context(), middleware.GetSessionID(c), id)
	h.respond(c, http.StatusOK, resdto.FromView(view), err)
}

// @Summary Close reservation form
// @Description Discards the form. A response still in flight is ignored.
// @Tags reservations
// @Produce json
// @Param id path string true "Workflow ID"
// @Success 200 {object} resdto.WorkflowResponse
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/workflows/{id}/close [post]
func (h *ReservationHandler) Close(c *gin.Context) {
	id, ok := workflowID(c)
	if !ok {
		return
	}
	view, err := h.reservations.Close(c.Request.Context(), middleware.GetSessionID(c), id)
	h.respond(c, http.StatusOK, resdto.FromView(view), err)
}

// @Summary Price quote
// @Tags reservations
// @Produce json
// @Param productId query string true "Product ID"
// @Param startDate query string true "YYYY-MM-DD"
// @Param endDate query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/quote [get]
func (h *ReservationHandler) Quote(c *gin.Context) {
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "productId, startDate and endDate are required", nil)
		return
	}
	start, end, err := q.Parse()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must use the YYYY-MM-DD format", nil)
		return
	}
	quote, err := h.reservations.Quote(q.ProductID, start, end)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Reservation history
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationRecordResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/reservations/history [get]
func (h *ReservationHandler) History(c *gin.Context) {
	records, err := h.reservations.History(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecords(records))
}
