//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"rental-storefront/internal/domain/product"
	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/infra/backend"
	"rental-storefront/internal/pkg/errs"
	"rental-storefront/internal/usecase"
	"rental-storefront/tests/common/builder"
	usecasemock "rental-storefront/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationUseCaseTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	fixture *sessionFixture
	catalog *usecasemock.MockCatalogUseCase
	remote  *usecasemock.MockReservationAPI
	useCase usecase.ReservationUseCase
}

func TestReservationUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationUseCaseTestSuite))
}

func (s *ReservationUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fixture = newSessionFixture(s.T(), s.ctrl)
	s.fixture.allowPersistence()
	s.catalog = usecasemock.NewMockCatalogUseCase(s.ctrl)
	s.remote = usecasemock.NewMockReservationAPI(s.ctrl)
	s.useCase = usecase.NewReservationUseCase(s.fixture.registry, s.catalog, s.remote, s.fixture.clock, time.UTC, discardLogger())

	s.catalog.EXPECT().Product("7").Return(builder.NewProductBuilder().MustBuildDomain(), nil).AnyTimes()
}

func (s *ReservationUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func day(d int) *time.Time {
	t := time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// readyWorkflow opens a form for product 7 with dates 04-01..04-05.
func (s *ReservationUseCaseTestSuite) readyWorkflow(sid string) uuid.UUID {
	ctx := context.Background()
	view, err := s.useCase.Start(ctx, sid, "7")
	s.Require().NoError(err)
	view, err = s.useCase.SetDates(ctx, sid, view.ID, day(1), day(5))
	s.Require().NoError(err)
	s.Require().True(view.CanSubmit)
	return view.ID
}

func (s *ReservationUseCaseTestSuite) TestStart() {
	ctx := context.Background()

	s.Run("prefills the signed-in customer", func() {
		sid := s.fixture.loggedIn(s.T())
		view, err := s.useCase.Start(ctx, sid, "7")
		s.Require().NoError(err)
		s.Equal(reservation.PhaseForm, view.Phase)
		s.Equal("Guitarra Fender CD60s", view.Product.Name)
		s.Equal("Ana", view.Draft.Customer.Name)
		s.Equal("ana@example.com", view.Draft.Customer.Email)
		s.Nil(view.Quote)
		s.False(view.CanSubmit)
		s.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), view.MinStartDate)
	})

	s.Run("anonymous visitors must log in", func() {
		sid := s.fixture.anonymous(s.T())
		_, err := s.useCase.Start(ctx, sid, "7")
		s.ErrorIs(err, usecase.ErrNotAuthenticated)
	})

	s.Run("unknown product", func() {
		sid := s.fixture.loggedIn(s.T())
		s.catalog.EXPECT().Product("404").Return(product.Product{}, errs.Mark(usecase.ErrProductNotFound, errs.ErrNotFound))
		_, err := s.useCase.Start(ctx, sid, "404")
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("reopening the same product replaces the form", func() {
		sid := s.fixture.loggedIn(s.T())
		first, err := s.useCase.Start(ctx, sid, "7")
		s.Require().NoError(err)
		second, err := s.useCase.Start(ctx, sid, "7")
		s.Require().NoError(err)
		s.NotEqual(first.ID, second.ID)

		_, err = s.useCase.Get(ctx, sid, first.ID)
		s.ErrorIs(err, usecase.ErrWorkflowNotFound)
	})
}

func (s *ReservationUseCaseTestSuite) TestSubmitSuccess() {
	ctx := context.Background()
	sid := s.fixture.loggedIn(s.T())
	id := s.readyWorkflow(sid)

	created := time.Date(2024, 3, 15, 10, 5, 0, 0, time.UTC)
	s.remote.EXPECT().CreateReservation(gomock.Any(), "tok", usecase.ReservationRequest{
		UserID:    "42",
		ProductID: "7",
		StartDate: *day(1),
		EndDate:   *day(5),
	}).Return(reservation.Confirmation{ReservationID: "R-1001", Status: reservation.StatusPending, CreatedAt: created}, nil)

	view, err := s.useCase.Submit(ctx, sid, id)
	s.Require().NoError(err)
	s.Equal(reservation.PhaseSuccess, view.Phase)
	s.Require().NotNil(view.Record)
	s.Equal("R-1001", view.Record.ReservationID)
	s.Equal(4, view.Record.TotalDays)
	s.Equal(int64(120000), view.Record.TotalPrice)
	s.Equal(created, view.Record.CreatedAt)

	view, err = s.useCase.Reset(ctx, sid, id)
	s.Require().NoError(err)
	s.Equal(reservation.PhaseForm, view.Phase)
	s.Nil(view.Draft.StartDate)
	s.Equal("Ana", view.Draft.Customer.Name)
}

func (s *ReservationUseCaseTestSuite) TestSubmitFailures() {
	ctx := context.Background()

	tests := []struct {
		name        string
		remoteErr   error
		confirm     reservation.Confirmation
		wantMessage string
	}{
		{
			name:        "backend rejection is shown verbatim",
			remoteErr:   &backend.APIError{Status: http.StatusBadRequest, Message: "Fechas no disponibles"},
			wantMessage: "Fechas no disponibles",
		},
		{
			name:        "server error uses the default message",
			remoteErr:   &backend.APIError{Status: http.StatusInternalServerError, Message: "NullPointerException"},
			wantMessage: reservation.DefaultFailureMessage,
		},
		{
			name:        "network failure uses the default message",
			remoteErr:   &backend.APIError{Err: errors.New("connection refused")},
			wantMessage: reservation.DefaultFailureMessage,
		},
		{
			name:        "no backend attached",
			remoteErr:   usecase.ErrBackendUnavailable,
			wantMessage: usecase.MsgReservationsDetached,
		},
		{
			name:        "accepted without an id",
			confirm:     reservation.Confirmation{Status: reservation.StatusPending},
			wantMessage: reservation.DefaultFailureMessage,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			sid := s.fixture.loggedIn(s.T())
			id := s.readyWorkflow(sid)
			s.remote.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.confirm, tt.remoteErr)

			view, err := s.useCase.Submit(ctx, sid, id)
			s.Require().NoError(err)
			s.Equal(reservation.PhaseError, view.Phase)
			s.Equal(tt.wantMessage, view.ErrorMessage)
			s.Nil(view.Record)

			view, err = s.useCase.Retry(ctx, sid, id)
			s.Require().NoError(err)
			s.Equal(reservation.PhaseForm, view.Phase)
			s.Equal(day(1), view.Draft.StartDate)
			s.Equal(day(5), view.Draft.EndDate)
			s.Equal("Ana", view.Draft.Customer.Name)
		})
	}
}

func (s *ReservationUseCaseTestSuite) TestSubmitBlockedByValidation() {
	ctx := context.Background()
	sid := s.fixture.loggedIn(s.T())

	view, err := s.useCase.Start(ctx, sid, "7")
	s.Require().NoError(err)
	_, err = s.useCase.SetDates(ctx, sid, view.ID, day(1), nil)
	s.Require().NoError(err)

	view, err = s.useCase.Submit(ctx, sid, view.ID)
	s.True(errs.Is(err, errs.ErrValidation))
	s.ErrorIs(err, reservation.ErrMissingDates)
	s.Equal(reservation.PhaseForm, view.Phase)
}

func (s *ReservationUseCaseTestSuite) TestCloseWhileSubmitting() {
	ctx := context.Background()
	sid := s.fixture.loggedIn(s.T())
	id := s.readyWorkflow(sid)

	s.remote.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, usecase.ReservationRequest) (reservation.Confirmation, error) {
			closed, err := s.useCase.Close(ctx, sid, id)
			s.Require().NoError(err)
			s.Equal(reservation.PhaseClosed, closed.Phase)
			return reservation.Confirmation{ReservationID: "R-late"}, nil
		})

	view, err := s.useCase.Submit(ctx, sid, id)
	s.Require().NoError(err)
	s.Equal(reservation.PhaseClosed, view.Phase)
	s.Nil(view.Record)

	_, err = s.useCase.Get(ctx, sid, id)
	s.True(errs.Is(err, errs.ErrNotFound))
}

func (s *ReservationUseCaseTestSuite) TestSubmitAfterLogout() {
	ctx := context.Background()
	sid := s.fixture.loggedIn(s.T())
	id := s.readyWorkflow(sid)

	sessions := usecase.NewSessionUseCase(s.fixture.registry, nil, nil, s.fixture.tokens, discardLogger())
	s.Require().NoError(sessions.Logout(ctx, sid))

	s.fixture.store.EXPECT().Load(gomock.Any(), sid).Return(nil, usecase.ErrSessionNotFound)
	_, err := s.useCase.Submit(ctx, sid, id)
	s.ErrorIs(err, usecase.ErrSessionNotFound)
}

func (s *ReservationUseCaseTestSuite) TestQuote() {
	q, err := s.useCase.Quote("7", *day(1), *day(5))
	s.Require().NoError(err)
	s.Equal(reservation.Quote{TotalDays: 4, PricePerDay: 30000, TotalPrice: 120000}, q)
}

func (s *ReservationUseCaseTestSuite) TestHistory() {
	ctx := context.Background()

	s.Run("signed in", func() {
		sid := s.fixture.loggedIn(s.T())
		records := []reservation.Record{{ReservationID: "R-1", ProductID: "7", Status: reservation.StatusActive}}
		s.remote.EXPECT().ReservationHistory(gomock.Any(), "tok", "42").Return(records, nil)

		got, err := s.useCase.History(ctx, sid)
		s.Require().NoError(err)
		s.Equal(records, got)
	})

	s.Run("anonymous", func() {
		sid := s.fixture.anonymous(s.T())
		_, err := s.useCase.History(ctx, sid)
		s.ErrorIs(err, usecase.ErrNotAuthenticated)
	})
}
