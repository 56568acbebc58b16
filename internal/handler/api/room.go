package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds commands.RoomCommands
	q    queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q}
}

// @Summary Provision rooms
// @Description Add rooms of one type to a hotel, named by floor and type initial
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body reqdto.ProvisionRoomsRequest true "Provision rooms request"
// @Success 201 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /hotels/{id}/rooms [post]
func (h *RoomHandler) Provision(c *gin.Context) {
	hotelID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ProvisionRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	views, err := h.cmds.ProvisionRooms(c.Request.Context(), hotelID, req.ToInput())
	if err != nil {
		abortWithEngineError(c, err, "Provision rooms failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomViews(views))
}

// @Summary List rooms
// @Description List rooms of a hotel, optionally filtered by type and by availability over [check_in, check_out)
// @Tags rooms
// @Produce json
// @Param id path string true "Hotel ID"
// @Param type query string false "Room type (STANDARD, DELUXE, EXECUTIVE)"
// @Param check_in query int false "Check-in day"
// @Param check_out query int false "Check-out day"
// @Param available query bool false "true for free rooms, false for booked rooms; needs check_in and check_out"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /hotels/{id}/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	hotelID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var query reqdto.RoomListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}
	views, err := h.q.List(c.Request.Context(), hotelID, queries.RoomFilter{
		Type:      query.Type,
		CheckIn:   query.CheckIn,
		CheckOut:  query.CheckOut,
		Available: query.Available,
	})
	if err != nil {
		abortWithEngineError(c, err, "List rooms failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Room calendar
// @Description Per-day booking state and nightly price of one room
// @Tags rooms
// @Produce json
// @Param id path string true "Hotel ID"
// @Param roomId path string true "Room ID"
// @Success 200 {object} resdto.RoomCalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/rooms/{roomId}/calendar [get]
func (h *RoomHandler) Calendar(c *gin.Context) {
	hotelID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	roomID, ok := parseUUIDParam(c, "roomId")
	if !ok {
		return
	}
	view, err := h.q.Calendar(c.Request.Context(), hotelID, roomID)
	if err != nil {
		abortWithEngineError(c, err, "Room not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomCalendarView(view))
}

// @Summary Remove rooms
// @Description Remove rooms by ID; rooms with reservations or not in the hotel are skipped
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body reqdto.RemoveRoomsRequest true "Remove rooms request"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/rooms [delete]
func (h *RoomHandler) Remove(c *gin.Context) {
	hotelID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.RemoveRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	views, err := h.cmds.RemoveRooms(c.Request.Context(), hotelID, req.ToInput())
	if err != nil {
		abortWithEngineError(c, err, "Remove rooms failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}
