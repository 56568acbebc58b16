package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a room for [check_in, check_out) with an optional discount code
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /hotels/{id}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	hotelID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.CreateReservation(c.Request.Context(), hotelID, req.ToInput())
	if err != nil {
		abortWithEngineError(c, err, "Create reservation failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(result.Reservation))
}

// @Summary List hotel reservations
// @Description List the reservations of a hotel in booking order
// @Tags reservations
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/reservations [get]
func (h *ReservationHandler) ListByHotel(c *gin.Context) {
	hotelID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		abortWithEngineError(c, err, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Description Find a reservation by its code across all hotels
// @Tags reservations
// @Produce json
// @Param code path string true "Reservation code"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{code} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithEngineError(c, err, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Cancel a reservation by its code
// @Tags reservations
// @Param code path string true "Reservation code"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /reservations/{code} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	if err := h.cmds.CancelReservation(c.Request.Context(), c.Param("code")); err != nil {
		abortWithEngineError(c, err, "Cancel reservation failed")
		return
	}
	c.Status(http.StatusNoContent)
}
