package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"rental-storefront/internal/domain/reservation"
	"rental-storefront/internal/pkg/clock"
	"rental-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationUseCase interface {
	Start(ctx context.Context, sessionID, productID string) (reservation.View, error)
	Get(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error)
	SetDates(ctx context.Context, sessionID string, workflowID uuid.UUID, start, end *time.Time) (reservation.View, error)
	SetCustomer(ctx context.Context, sessionID string, workflowID uuid.UUID, c reservation.Customer) (reservation.View, error)
	Submit(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error)
	Retry(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error)
	Reset(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error)
	Close(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error)
	Quote(productID string, start, end time.Time) (reservation.Quote, error)
	History(ctx context.Context, sessionID string) ([]reservation.Record, error)
}

type reservationUseCaseImpl struct {
	registry *SessionRegistry
	catalog  CatalogUseCase
	remote   ReservationAPI
	clock    clock.Clock
	loc      *time.Location
	logger   *slog.Logger
}

func NewReservationUseCase(registry *SessionRegistry, catalog CatalogUseCase, remote ReservationAPI, c clock.Clock, loc *time.Location, logger *slog.Logger) ReservationUseCase {
	return &reservationUseCaseImpl{
		registry: registry,
		catalog:  catalog,
		remote:   remote,
		clock:    c,
		loc:      loc,
		logger:   logger,
	}
}

func (u *reservationUseCaseImpl) today() time.Time {
	return clock.Today(u.clock, u.loc)
}

// Start opens a fresh form. An open workflow for the same product is closed first.
func (u *reservationUseCaseImpl) Start(ctx context.Context, sessionID, productID string) (reservation.View, error) {
	s, err := u.registry.Get(ctx, sessionID)
	if err != nil {
		return reservation.View{}, err
	}
	p, err := u.catalog.Product(productID)
	if err != nil {
		return reservation.View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := reservation.Start(reservation.SnapshotOf(&p), s.state.User)
	if err != nil {
		return reservation.View{}, err
	}
	for id, existing := range s.workflows {
		if existing.Product().ID == productID {
			existing.Close()
			delete(s.workflows, id)
		}
	}
	s.workflows[w.ID()] = w
	return w.View(u.today()), nil
}

// withWorkflow runs fn under the session lock.
func (u *reservationUseCaseImpl) withWorkflow(ctx context.Context, sessionID string, workflowID uuid.UUID, fn func(s *Session, w *reservation.Workflow) error) (reservation.View, error) {
	s, err := u.registry.Get(ctx, sessionID)
	if err != nil {
		return reservation.View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.workflows[workflowID]
	if !ok {
		return reservation.View{}, errs.Mark(ErrWorkflowNotFound, errs.ErrNotFound)
	}
	if err := fn(s, w); err != nil {
		return w.View(u.today()), err
	}
	return w.View(u.today()), nil
}

func (u *reservationUseCaseImpl) Get(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error) {
	return u.withWorkflow(ctx, sessionID, workflowID, func(*Session, *reservation.Workflow) error { return nil })
}

func (u *reservationUseCaseImpl) SetDates(ctx context.Context, sessionID string, workflowID uuid.UUID, start, end *time.Time) (reservation.View, error) {
	return u.withWorkflow(ctx, sessionID, workflowID, func(_ *Session, w *reservation.Workflow) error {
		return w.SetDates(start, end, u.today())
	})
}

func (u *reservationUseCaseImpl) SetCustomer(ctx context.Context, sessionID string, workflowID uuid.UUID, c reservation.Customer) (reservation.View, error) {
	return u.withWorkflow(ctx, sessionID, workflowID, func(_ *Session, w *reservation.Workflow) error {
		return w.SetCustomer(c)
	})
}

// Submit sends the draft to the backend without holding the session lock.
// Backend failures land in the error phase and are not returned as errors.
// A workflow closed while the call was in flight keeps its closed state.
func (u *reservationUseCaseImpl) Submit(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error) {
	var (
		sess   *Session
		wf     *reservation.Workflow
		ticket reservation.Ticket
		req    ReservationRequest
		token  string
	)
	view, err := u.withWorkflow(ctx, sessionID, workflowID, func(s *Session, w *reservation.Workflow) error {
		if s.state.User == nil {
			return ErrNotAuthenticated
		}
		t, err := w.BeginSubmit(u.today())
		if err != nil {
			return err
		}
		d := w.Draft()
		sess, wf, ticket, token = s, w, t, s.state.Token
		req = ReservationRequest{
			UserID:    s.state.User.ID(),
			ProductID: d.ProductID,
			StartDate: *d.StartDate,
			EndDate:   *d.EndDate,
		}
		return nil
	})
	if err != nil {
		return view, err
	}

	conf, remoteErr := u.remote.CreateReservation(ctx, token, req)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	var settleErr error
	if remoteErr != nil {
		u.logger.Warn("reservation submission failed",
			slog.String("workflow_id", workflowID.String()),
			slog.String("product_id", req.ProductID),
			slog.String("error", remoteErr.Error()))
		settleErr = wf.Fail(ticket, failureMessage(remoteErr))
	} else {
		if conf.CreatedAt.IsZero() {
			conf.CreatedAt = u.clock.Now()
		}
		settleErr = wf.Resolve(ticket, conf)
	}

	switch {
	case errors.Is(settleErr, reservation.ErrStaleResponse):
		u.logger.Info("ignoring stale reservation response",
			slog.String("workflow_id", workflowID.String()))
	case errors.Is(settleErr, reservation.ErrMissingConfirmation):
		u.logger.Warn("reservation accepted without an id",
			slog.String("workflow_id", workflowID.String()))
	case settleErr == nil && remoteErr == nil:
		u.logger.Info("reservation created",
			slog.String("workflow_id", workflowID.String()),
			slog.String("reservation_id", conf.ReservationID))
	}
	return wf.View(u.today()), nil
}

// failureMessage surfaces the backend's own message for 400 responses only.
func failureMessage(err error) string {
	if errors.Is(err, ErrBackendUnavailable) {
		return MsgReservationsDetached
	}
	var re RemoteError
	if errors.As(err, &re) && re.StatusCode() == http.StatusBadRequest {
		return re.UserMessage()
	}
	return ""
}

func (u *reservationUseCaseImpl) Retry(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error) {
	return u.withWorkflow(ctx, sessionID, workflowID, func(_ *Session, w *reservation.Workflow) error {
		return w.Retry()
	})
}

func (u *reservationUseCaseImpl) Reset(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error) {
	return u.withWorkflow(ctx, sessionID, workflowID, func(s *Session, w *reservation.Workflow) error {
		return w.Reset(s.state.User)
	})
}

// Close discards the workflow; the returned view is its final, closed state.
func (u *reservationUseCaseImpl) Close(ctx context.Context, sessionID string, workflowID uuid.UUID) (reservation.View, error) {
	return u.withWorkflow(ctx, sessionID, workflowID, func(s *Session, w *reservation.Workflow) error {
		w.Close()
		delete(s.workflows, workflowID)
		return nil
	})
}

func (u *reservationUseCaseImpl) Quote(productID string, start, end time.Time) (reservation.Quote, error) {
	p, err := u.catalog.Product(productID)
	if err != nil {
		return reservation.Quote{}, err
	}
	return reservation.Price(reservation.AsDate(start), reservation.AsDate(end), p.PricePerDay)
}

func (u *reservationUseCaseImpl) History(ctx context.Context, sessionID string) ([]reservation.Record, error) {
	s, err := u.registry.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	state := s.Snapshot()
	if !state.Authenticated() {
		return nil, ErrNotAuthenticated
	}

	records, err := u.remote.ReservationHistory(ctx, state.Token, state.User.ID())
	if err != nil {
		return nil, errs.Wrap(err, "reservation history")
	}
	return records, nil
}
