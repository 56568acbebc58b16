package api

import (
	"net/http"
	"strconv"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	cmds commands.HotelCommands
	q    queries.HotelQueries
}

func NewHotelHandler(cmds commands.HotelCommands, q queries.HotelQueries) *HotelHandler {
	return &HotelHandler{cmds: cmds, q: q}
}

// @Summary Create hotel
// @Description Register a hotel with a unique, case-insensitive name
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body reqdto.CreateHotelRequest true "Create hotel request"
// @Success 201 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /hotels [post]
func (h *HotelHandler) Create(c *gin.Context) {
	var req reqdto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.cmds.CreateHotel(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithEngineError(c, err, "Create hotel failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHotelView(view))
}

// @Summary List hotels
// @Description List hotels in registration order, optionally only those with an available room
// @Tags hotels
// @Produce json
// @Param available query bool false "Only hotels with at least one room not fully booked"
// @Success 200 {array} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels [get]
func (h *HotelHandler) List(c *gin.Context) {
	availableOnly := false
	if v := c.Query("available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			abortBadRequest(c, err, "Invalid available")
			return
		}
		availableOnly = b
	}
	views, err := h.q.List(c.Request.Context(), availableOnly)
	if err != nil {
		abortWithEngineError(c, err, "List hotels failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Get hotel
// @Description Get a hotel summary with room counts per type and date price modifiers
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *HotelHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithEngineError(c, err, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelSummaryView(view))
}

// @Summary Update hotel
// @Description Rename a hotel; omitted fields are left unchanged
// @Tags hotels
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateHotelRequest true "Update hotel request"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /hotels/{id} [patch]
func (h *HotelHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	existing, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithEngineError(c, err, "Hotel not found")
		return
	}
	view, err := h.cmds.RenameHotel(c.Request.Context(), id, req.ToInput(existing.Name))
	if err != nil {
		abortWithEngineError(c, err, "Update hotel failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary Delete hotel
// @Description Remove a hotel that holds no reservations
// @Tags hotels
// @Param id path string true "Hotel ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{id} [delete]
func (h *HotelHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.RemoveHotel(c.Request.Context(), id); err != nil {
		abortWithEngineError(c, err, "Delete hotel failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update base price
// @Description Set the base price of every room in the hotel
// @Tags hotels
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body reqdto.UpdateBasePriceRequest true "Base price request"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /hotels/{id}/base-price [put]
func (h *HotelHandler) UpdateBasePrice(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBasePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	view, err := h.cmds.UpdateBasePrice(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithEngineError(c, err, "Update base price failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary List price modifiers
// @Description List the date price modifier of every bookable day
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.PriceModifierResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/price-modifiers [get]
func (h *HotelHandler) PriceModifiers(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.q.PriceModifiers(c.Request.Context(), id)
	if err != nil {
		abortWithEngineError(c, err, "Hotel not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceModifierViews(views))
}

// @Summary Set price modifier
// @Description Set the price modifier of one day; out-of-range values are ignored and reported as not applied
// @Tags hotels
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param day path int true "Day of month (1-30)"
// @Param request body reqdto.SetPriceModifierRequest true "Modifier request"
// @Success 200 {object} resdto.SetPriceModifierResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/price-modifiers/{day} [put]
func (h *HotelHandler) SetPriceModifier(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	day, ok := parseIntParam(c, "day")
	if !ok {
		return
	}
	var req reqdto.SetPriceModifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	result, err := h.cmds.SetDatePriceModifier(c.Request.Context(), id, req.ToInput(day))
	if err != nil {
		abortWithEngineError(c, err, "Set price modifier failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSetDatePriceModifierResult(result))
}
