//go:build e2e

package storefront_test

import (
	"net/http"
	"testing"
	"time"

	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/handler/dto/request"
	"rental-storefront/internal/handler/dto/response"
	"rental-storefront/tests/common/authtest"
	"rental-storefront/tests/common/httptest"
	"rental-storefront/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const workflowsURL = "/api/reservations/workflows"

type reservationSuite struct {
	e2e.SharedSuite
	cookies []*http.Cookie
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupTest() {
	s.SharedSuite.SetupTest()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/catalog/refresh", nil, "")
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	s.cookies = []*http.Cookie{authtest.LoginUser(s.T(), s.Router, e2e.TestUserEmail, e2e.TestPassword)}
}

func (s *reservationSuite) do(method, path string, body any) (int, response.WorkflowResponse) {
	w := httptest.PerformRequestWithCookies(s.T(), s.Router, method, path, body, s.cookies, "")
	var view response.WorkflowResponse
	if w.Code < 300 {
		httptest.AssertSuccessResponse(s.T(), w, w.Code, &view)
	}
	return w.Code, view
}

func dateFromToday(days int) *string {
	d := reservation.FormatDate(time.Now().UTC().AddDate(0, 0, days))
	return &d
}

func (s *reservationSuite) startWithDates() response.WorkflowResponse {
	code, view := s.do(http.MethodPost, workflowsURL, request.StartReservationRequest{ProductID: e2e.TestProductID})
	require.Equal(s.T(), http.StatusCreated, code)
	assert.Equal(s.T(), "Ana", view.Customer.Name)
	assert.Equal(s.T(), e2e.TestUserEmail, view.Customer.Email)

	code, view = s.do(http.MethodPut, workflowsURL+"/"+view.ID+"/dates",
		request.DatesRequest{StartDate: dateFromToday(3), EndDate: dateFromToday(6)})
	require.Equal(s.T(), http.StatusOK, code)
	require.NotNil(s.T(), view.Quote)
	assert.Equal(s.T(), 3, view.Quote.TotalDays)
	assert.Equal(s.T(), int64(90000), view.Quote.TotalPrice)
	assert.False(s.T(), view.CanSubmit, "address and phone are still missing")

	code, view = s.do(http.MethodPut, workflowsURL+"/"+view.ID+"/customer", request.CustomerRequest{
		Name:    "Ana",
		Surname: "Pérez",
		Email:   e2e.TestUserEmail,
		Address: "Av. Siempre Viva 742",
		Phone:   "+56 9 1234 5678",
	})
	require.Equal(s.T(), http.StatusOK, code)
	assert.True(s.T(), view.CanSubmit)
	return view
}

func (s *reservationSuite) TestSubmitReservation() {
	view := s.startWithDates()

	code, view := s.do(http.MethodPost, workflowsURL+"/"+view.ID+"/submit", nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), "success", view.Phase)
	require.NotNil(s.T(), view.Reservation)
	assert.Equal(s.T(), "1001", view.Reservation.ReservationID)
	assert.Equal(s.T(), int64(90000), view.Reservation.TotalPrice)

	w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, "/api/reservations/history", nil, s.cookies, "")
	var history []response.ReservationRecordResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &history)
	require.Len(s.T(), history, 1)
	assert.Equal(s.T(), e2e.TestProductID, history[0].ProductID)
}

func (s *reservationSuite) TestSubmitRejectedThenRetried() {
	view := s.startWithDates()
	s.Backend.FailNextCreate("Fechas no disponibles")

	code, view := s.do(http.MethodPost, workflowsURL+"/"+view.ID+"/submit", nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), "error", view.Phase)
	assert.Equal(s.T(), "Fechas no disponibles", view.ErrorMessage)

	code, view = s.do(http.MethodPost, workflowsURL+"/"+view.ID+"/retry", nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), "form", view.Phase)
	assert.Equal(s.T(), dateFromToday(3), view.StartDate)

	code, view = s.do(http.MethodPost, workflowsURL+"/"+view.ID+"/submit", nil)
	require.Equal(s.T(), http.StatusOK, code)
	assert.Equal(s.T(), "success", view.Phase)
}

func (s *reservationSuite) TestPastDatesRejected() {
	code, view := s.do(http.MethodPost, workflowsURL, request.StartReservationRequest{ProductID: e2e.TestProductID})
	require.Equal(s.T(), http.StatusCreated, code)

	code, _ = s.do(http.MethodPut, workflowsURL+"/"+view.ID+"/dates",
		request.DatesRequest{StartDate: dateFromToday(-2), EndDate: dateFromToday(1)})
	assert.Equal(s.T(), http.StatusUnprocessableEntity, code)
}

func (s *reservationSuite) TestAnonymousCannotReserve() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, workflowsURL,
		request.StartReservationRequest{ProductID: e2e.TestProductID}, "")
	httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
}
