package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"rental-storefront/internal/domain/product"
	"rental-storefront/internal/domain/user"
	"rental-storefront/internal/pkg/errs"
)

const DefaultFailureMessage = "No se pudo completar la reserva. Intenta nuevamente."

var (
	ErrNotAuthenticated    = errors.New("login required to reserve")
	ErrInvalidTransition   = errors.New("invalid reservation state transition")
	ErrStaleResponse       = errors.New("stale reservation response")
	ErrMissingConfirmation = errors.New("backend did not confirm the reservation")
	ErrMissingDates        = errors.New("start and end dates are required")
)

// ValidationError blocks a submission. It never moves the workflow to the error phase.
type ValidationError struct {
	MissingFields []string
	InvalidFields []string
	Cause         error
}

func (e *ValidationError) Error() string {
	var parts []string
	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	if len(e.MissingFields) > 0 {
		parts = append(parts, "missing: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.InvalidFields) > 0 {
		parts = append(parts, "invalid: "+strings.Join(e.InvalidFields, ", "))
	}
	return "reservation is not valid: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Fields() (missing, invalid []string) {
	return e.MissingFields, e.InvalidFields
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// ProductSnapshot is the slice of a product the workflow needs.
type ProductSnapshot struct {
	ID          string
	Name        string
	PricePerDay int64
}

func SnapshotOf(p *product.Product) ProductSnapshot {
	return ProductSnapshot{ID: p.ID, Name: p.Name, PricePerDay: p.PricePerDay}
}

// Ticket identifies one submission. Responses carrying an outdated ticket are dropped.
type Ticket struct {
	WorkflowID uuid.UUID
	Generation uint64
}

// Workflow is the reservation state machine for one product in one session.
type Workflow struct {
	id         uuid.UUID
	product    ProductSnapshot
	phase      Phase
	draft      Draft
	generation uint64
	errMessage string
	record     *Record
}

func Start(p ProductSnapshot, u *user.User) (*Workflow, error) {
	if u == nil {
		return nil, ErrNotAuthenticated
	}
	w := &Workflow{
		id:      uuid.New(),
		product: p,
		phase:   PhaseForm,
	}
	w.draft = Draft{ProductID: p.ID, Customer: prefill(u)}
	return w, nil
}

func prefill(u *user.User) Customer {
	var c Customer
	if u == nil {
		return c
	}
	_ = copier.Copy(&c, u.Profile())
	return c.Normalize()
}

func (w *Workflow) ID() uuid.UUID { return w.id }
func (w *Workflow) Product() ProductSnapshot { return w.product }
func (w *Workflow) Phase() Phase { return w.phase }
func (w *Workflow) Generation() uint64 { return w.generation }
func (w *Workflow) ErrorMessage() string { return w.errMessage }
func (w *Workflow) Draft() Draft { return w.draft }

func (w *Workflow) Record() *Record {
	if w.record == nil {
		return nil
	}
	r := *w.record
	return &r
}

func (w *Workflow) requirePhase(want Phase) error {
	if w.phase != want {
		return fmt.Errorf("%w: %s -> requires %s", ErrInvalidTransition, w.phase, want)
	}
	return nil
}

// SetDates replaces both dates. A nil date clears it.
func (w *Workflow) SetDates(start, end *time.Time, today time.Time) error {
	if err := w.requirePhase(PhaseForm); err != nil {
		return err
	}
	var s, e *time.Time
	if start != nil {
		d := AsDate(*start)
		s = &d
	}
	if end != nil {
		d := AsDate(*end)
		e = &d
	}
	if err := checkDates(s, e, AsDate(today)); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}
	w.draft.StartDate = s
	w.draft.EndDate = e
	return nil
}

func checkDates(start, end *time.Time, today time.Time) error {
	if start != nil && start.Before(today) {
		return ErrStartBeforeToday
	}
	if end == nil {
		return nil
	}
	if start == nil {
		if end.Before(today) {
			return ErrEndBeforeToday
		}
		return nil
	}
	if end.Before(*start) {
		return ErrEndBeforeStart
	}
	return nil
}

func (w *Workflow) SetCustomer(c Customer) error {
	if err := w.requirePhase(PhaseForm); err != nil {
		return err
	}
	w.draft.Customer = c
	return nil
}

// Quote is nil until both dates are set.
func (w *Workflow) Quote() *Quote {
	if !w.draft.HasDates() {
		return nil
	}
	q, err := Price(*w.draft.StartDate, *w.draft.EndDate, w.product.PricePerDay)
	if err != nil {
		return nil
	}
	return &q
}

func (w *Workflow) Validate(today time.Time) error {
	verr := &ValidationError{
		MissingFields: w.draft.Customer.MissingFields(),
		InvalidFields: w.draft.Customer.InvalidFields(),
	}
	if !w.draft.HasDates() {
		verr.Cause = ErrMissingDates
	} else if err := checkDates(w.draft.StartDate, w.draft.EndDate, AsDate(today)); err != nil {
		verr.Cause = err
	}
	if verr.Cause == nil && len(verr.MissingFields) == 0 && len(verr.InvalidFields) == 0 {
		return nil
	}
	return errs.Mark(verr, errs.ErrValidation)
}

func (w *Workflow) CanSubmit(today time.Time) bool {
	return w.phase == PhaseForm && w.Validate(today) == nil
}

// BeginSubmit moves form -> loading and issues the ticket the response must present.
func (w *Workflow) BeginSubmit(today time.Time) (Ticket, error) {
	if err := w.requirePhase(PhaseForm); err != nil {
		return Ticket{}, err
	}
	if err := w.Validate(today); err != nil {
		return Ticket{}, err
	}
	w.draft.Customer = w.draft.Customer.Normalize()
	w.generation++
	w.phase = PhaseLoading
	w.errMessage = ""
	return w.ticket(), nil
}

func (w *Workflow) ticket() Ticket {
	return Ticket{WorkflowID: w.id, Generation: w.generation}
}

func (w *Workflow) checkTicket(t Ticket) error {
	if t != w.ticket() || w.phase != PhaseLoading {
		return ErrStaleResponse
	}
	return nil
}

// Resolve moves loading -> success. A confirmation without a reservation id is a failure.
func (w *Workflow) Resolve(t Ticket, c Confirmation) error {
	if err := w.checkTicket(t); err != nil {
		return err
	}
	if strings.TrimSpace(c.ReservationID) == "" {
		w.phase = PhaseError
		w.errMessage = DefaultFailureMessage
		return ErrMissingConfirmation
	}
	q := w.Quote()
	rec := Record{
		ReservationID: c.ReservationID,
		ProductID:     w.product.ID,
		ProductName:   w.product.Name,
		StartDate:     *w.draft.StartDate,
		EndDate:       *w.draft.EndDate,
		PricePerDay:   w.product.PricePerDay,
		Customer:      w.draft.Customer,
		CreatedAt:     c.CreatedAt,
		Status:        c.Status,
	}
	if q != nil {
		rec.TotalDays = q.TotalDays
		rec.TotalPrice = q.TotalPrice
	}
	rec = rec.Complete()
	w.record = &rec
	w.phase = PhaseSuccess
	return nil
}

// Fail moves loading -> error. An empty message is replaced by the default one.
func (w *Workflow) Fail(t Ticket, message string) error {
	if err := w.checkTicket(t); err != nil {
		return err
	}
	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultFailureMessage
	}
	w.phase = PhaseError
	w.errMessage = message
	return nil
}

// Retry goes back to the form keeping dates and customer data.
func (w *Workflow) Retry() error {
	if err := w.requirePhase(PhaseError); err != nil {
		return err
	}
	w.phase = PhaseForm
	w.errMessage = ""
	return nil
}

// Reset starts a new reservation for the same product after a success.
func (w *Workflow) Reset(u *user.User) error {
	if err := w.requirePhase(PhaseSuccess); err != nil {
		return err
	}
	w.generation++
	w.phase = PhaseForm
	w.record = nil
	w.errMessage = ""
	w.draft = Draft{ProductID: w.product.ID, Customer: prefill(u)}
	return nil
}

// Close is allowed from any phase. Pending responses become stale.
func (w *Workflow) Close() {
	w.generation++
	w.phase = PhaseClosed
	w.draft = Draft{ProductID: w.product.ID}
	w.record = nil
	w.errMessage = ""
}

// View is a read-only snapshot for rendering.
type View struct {
	ID           uuid.UUID
	Product      ProductSnapshot
	Phase        Phase
	Draft        Draft
	Quote        *Quote
	ErrorMessage string
	Record       *Record
	MinStartDate time.Time
	MinEndDate   time.Time
	CanSubmit    bool
}

func (w *Workflow) View(today time.Time) View {
	today = AsDate(today)
	minEnd := today
	if w.draft.StartDate != nil {
		minEnd = *w.draft.StartDate
	}
	return View{
		ID:           w.id,
		Product:      w.product,
		Phase:        w.phase,
		Draft:        w.draft,
		Quote:        w.Quote(),
		ErrorMessage: w.errMessage,
		Record:       w.Record(),
		MinStartDate: today,
		MinEndDate:   minEnd,
		CanSubmit:    w.CanSubmit(today),
	}
}
