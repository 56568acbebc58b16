package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var reasonStatus = map[errs.Reason]int{
	errs.ReasonNameBlank:             http.StatusUnprocessableEntity,
	errs.ReasonNameInvalidChar:       http.StatusUnprocessableEntity,
	errs.ReasonNameLeadingDigit:      http.StatusUnprocessableEntity,
	errs.ReasonDateRangeInvalid:      http.StatusUnprocessableEntity,
	errs.ReasonGuestNameInvalid:      http.StatusUnprocessableEntity,
	errs.ReasonRoomCountInvalid:      http.StatusUnprocessableEntity,
	errs.ReasonRoomTypeInvalid:       http.StatusUnprocessableEntity,
	errs.ReasonBasePriceTooLow:       http.StatusUnprocessableEntity,
	errs.ReasonNameDuplicate:         http.StatusConflict,
	errs.ReasonRoomUnavailable:       http.StatusConflict,
	errs.ReasonHasActiveReservations: http.StatusConflict,
	errs.ReasonRoomLimitExceeded:     http.StatusConflict,
	errs.ReasonNotFound:              http.StatusNotFound,
}

// abortWithEngineError maps a use case error onto the response envelope.
// Errors without a known reason become 500.
func abortWithEngineError(c *gin.Context, err error, msg string) {
	reason := errs.ReasonOf(err)
	status, ok := reasonStatus[reason]
	if !ok {
		slog.Error("unexpected engine error",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	httperr.AbortWithReason(c, status, err, msg, reason.String())
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func parseIntParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return 0, false
	}
	return v, true
}
