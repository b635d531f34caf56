package registration

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/registro/internal/form"
	"github.com/dmitrymomot/registro/pkg/logger"
	"github.com/dmitrymomot/registro/pkg/statemachine"
)

// State is the submission state of a registration screen.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

// Event drives the submission state machine.
type Event string

const (
	EventSubmit Event = "submit"
	EventSettle Event = "settle"
)

// Outcome is the result of a submission attempt.
type Outcome string

const (
	OutcomeIgnored    Outcome = "ignored"
	OutcomeInvalid    Outcome = "invalid"
	OutcomeSaved      Outcome = "saved"
	OutcomeSaveFailed Outcome = "save_failed"
)

// DefaultHomeRoute is where the user lands after a successful registration.
const DefaultHomeRoute = "/home"

// Alert texts shown by the controller.
const (
	TitleInvalid      = "Formulário inválido"
	TitleSaved        = "Cadastro realizado"
	MessageSaved      = "Usuário cadastrado com sucesso!!"
	TitleSaveFailed   = "Erro ao cadastrar"
	MessageSaveFailed = "Não foi possível concluir o cadastro. Tente novamente."
)

// Controller turns a valid form into a saved user record.
// At most one submission is in flight per controller.
type Controller struct {
	form      *form.Form
	store     UserStore
	alerts    AlertPresenter
	navigator Navigator
	machine   *statemachine.Machine[State, Event]
	log       *slog.Logger
	homeRoute string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHomeRoute overrides the route opened after a successful save.
func WithHomeRoute(route string) Option {
	return func(c *Controller) {
		if route != "" {
			c.homeRoute = route
		}
	}
}

// NewController wires a form to its collaborators.
func NewController(f *form.Form, store UserStore, alerts AlertPresenter, navigator Navigator, opts ...Option) *Controller {
	c := &Controller{
		form:      f,
		store:     store,
		alerts:    alerts,
		navigator: navigator,
		log:       logger.Discard(),
		homeRoute: DefaultHomeRoute,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("registration"))

	c.machine = statemachine.MustNew(StateIdle,
		statemachine.WithTransition[State, Event](StateIdle, StateSubmitting, EventSubmit, c.formValid),
		statemachine.WithTransition[State, Event](StateSubmitting, StateIdle, EventSettle),
		statemachine.WithObserver[State, Event](c.logTransition),
	)
	return c
}

// Form returns the form the controller submits.
func (c *Controller) Form() *form.Form {
	return c.form
}

// State returns the current submission state.
func (c *Controller) State() State {
	return c.machine.Current()
}

// Submit validates the form and, when valid, saves it as a new user.
// A submit received while another one is in flight is ignored.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	if err := c.machine.Fire(ctx, EventSubmit); err != nil {
		switch {
		case statemachine.IsNoTransitionAvailableError(err):
			c.log.DebugContext(ctx, "submit ignored while submitting", logger.Outcome(string(OutcomeIgnored)))
			return OutcomeIgnored, nil
		case statemachine.IsTransitionRejectedError(err):
			return c.reportInvalid(ctx)
		default:
			return OutcomeIgnored, err
		}
	}

	start := time.Now()
	outcome, err := c.save(ctx)
	c.settle(ctx)

	attrs := []any{logger.Outcome(string(outcome)), logger.Duration(time.Since(start))}
	if err != nil {
		c.log.WarnContext(ctx, "registration not saved", append(attrs, logger.Error(err))...)
		c.show(ctx, TitleSaveFailed, MessageSaveFailed)
		return outcome, err
	}

	c.log.InfoContext(ctx, "registration saved", attrs...)
	c.show(ctx, TitleSaved, MessageSaved)
	if err := c.navigator.GoTo(ctx, c.homeRoute); err != nil {
		c.log.WarnContext(ctx, "navigation failed", logger.Route(c.homeRoute), logger.Error(err))
	}
	return outcome, nil
}

// LoadExistingUsers fetches registered users. Failures are logged and
// returned; they never affect the form.
func (c *Controller) LoadExistingUsers(ctx context.Context) ([]UserRecord, error) {
	users, err := c.store.FindAll(ctx)
	if err != nil {
		err = errors.Join(ErrStoreUnavailable, err)
		c.log.WarnContext(ctx, "failed to load users", logger.Error(err))
		return nil, err
	}
	c.log.DebugContext(ctx, "users loaded", logger.Count(len(users)))
	return users, nil
}

func (c *Controller) save(ctx context.Context) (Outcome, error) {
	record, err := BuildRecord(c.form.Values())
	if err != nil {
		return OutcomeSaveFailed, err
	}

	ok, err := c.store.Save(ctx, record)
	switch {
	case err != nil && errors.Is(err, ErrSaveRejected):
		return OutcomeSaveFailed, err
	case err != nil:
		return OutcomeSaveFailed, errors.Join(ErrStoreUnavailable, err)
	case !ok:
		return OutcomeSaveFailed, ErrSaveRejected
	}
	return OutcomeSaved, nil
}

func (c *Controller) reportInvalid(ctx context.Context) (Outcome, error) {
	errs := c.form.ValidationErrors()
	c.log.DebugContext(ctx, "submit rejected by validation",
		logger.Outcome(string(OutcomeInvalid)),
		logger.Fields(errs.Fields()),
	)
	c.show(ctx, TitleInvalid, strings.Join(errs.Messages(), "\n"))
	return OutcomeInvalid, errs
}

func (c *Controller) settle(ctx context.Context) {
	if err := c.machine.Fire(ctx, EventSettle); err != nil {
		c.log.ErrorContext(ctx, "failed to settle submission", logger.Error(err))
		c.machine.Reset()
	}
}

func (c *Controller) show(ctx context.Context, title, message string) {
	if err := c.alerts.Show(ctx, title, message); err != nil {
		c.log.WarnContext(ctx, "alert not shown", logger.Error(err))
	}
}

func (c *Controller) formValid(context.Context, State, Event) bool {
	return c.form.IsValid()
}

func (c *Controller) logTransition(ctx context.Context, from, to State, event Event) {
	c.log.DebugContext(ctx, "submission state changed",
		logger.State(string(from), string(to)),
		slog.String("event", string(event)),
	)
}
