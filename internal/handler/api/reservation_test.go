//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-reservation/internal/handler/api"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/httptest"
	"hotel-reservation/tests/common/testutil"
	commandsmock "hotel-reservation/tests/mock/commands"
	queriesmock "hotel-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	hotelID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.hotelID = uuid.New()

	s.router.POST("/hotels/:id/reservations", s.handler.Create)
	s.router.GET("/hotels/:id/reservations", s.handler.ListByHotel)
	s.router.GET("/reservations/:code", s.handler.Get)
	s.router.DELETE("/reservations/:code", s.handler.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/hotels/" + s.hotelID.String() + "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	result := &commands.CreateReservationResult{Reservation: b.BuildView(s.hotelID, "Plaza")}

	s.Run("success: returns 201 with the priced reservation", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), s.hotelID, b.BuildInput()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("101SA0104", body.Code)
		s.Equal(3, body.Nights)
		s.Equal(3897.0, body.TotalPrice)
		s.Equal("STANDARD", body.RoomType)
		s.Equal(1299.0, body.PricePerNight)
		s.Equal("none", body.DiscountOutcome)
	})

	s.Run("success: discount code is trimmed", func() {
		withCode := builder.NewReservationBuilder().WithRoomID(b.RoomID).WithDiscountCode("I_WORK_HERE")
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), s.hotelID, withCode.BuildInput()).
			Return(&commands.CreateReservationResult{Reservation: withCode.BuildView(s.hotelID, "Plaza")}, nil).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("discount_code", "  I_WORK_HERE "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	missing := []testCaseReservation{
		{name: "missing field: check_in (required)", mutate: testutil.Field("check_in", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: check_out (required)", mutate: testutil.Field("check_out", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
		{name: "malformed room_id", mutate: testutil.Field("room_id", "room-1"), expectCode: http.StatusBadRequest},
		{name: "non-numeric check_in", mutate: testutil.Field("check_in", "first"), expectCode: http.StatusBadRequest},
	}
	s.Run("error: 400 Bad Request on binding errors", func() {
		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	reasonCases := []struct {
		name   string
		err    error
		status int
		reason string
	}{
		{"reversed dates", errs.ErrDateRangeInvalid, http.StatusUnprocessableEntity, "DATE_RANGE_INVALID"},
		{"guest name with digits", errs.ErrGuestNameInvalid, http.StatusUnprocessableEntity, "GUEST_NAME_INVALID"},
		{"overlapping stay", errs.Wrap(errs.ErrRoomUnavailable, "create reservation"), http.StatusConflict, "ROOM_UNAVAILABLE"},
		{"room of another hotel", errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range reasonCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.hotelID, gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorReason(s.T(), rec, tc.status, tc.reason)
		})
	}
}

// ================================================================================
// TestListByHotel / TestGet / TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListByHotel() {
	url := "/hotels/" + s.hotelID.String() + "/reservations"

	s.Run("success: lists reservations in booking order", func() {
		views := []*queries.ReservationView{
			builder.NewReservationBuilder().BuildView(s.hotelID, "Plaza"),
			builder.NewReservationBuilder().WithGuestName("Bo").WithStay(5, 7).BuildView(s.hotelID, "Plaza"),
		}
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), s.hotelID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("101SA0104", body[0].Code)
		s.Equal("101SB0507", body[1].Code)
	})

	s.Run("error: 404 for an unknown hotel", func() {
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), s.hotelID).Return(nil, errs.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorReason(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView(s.hotelID, "Plaza")

	s.Run("success: finds by code", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "101SA0104").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/101SA0104", nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Plaza", body.HotelName)
		s.Equal("Ana", body.GuestName)
	})

	s.Run("error: 404 for an unknown code", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(nil, errs.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/NOPE", nil)
		httptest.AssertErrorReason(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), "101SA0104").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/101SA0104", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when already canceled", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), "101SA0104").Return(errs.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/101SA0104", nil)
		httptest.AssertErrorReason(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
