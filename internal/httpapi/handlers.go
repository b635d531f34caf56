package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/registro/internal/form"
	"github.com/dmitrymomot/registro/internal/registration"
	"github.com/dmitrymomot/registro/pkg/logger"
	"github.com/dmitrymomot/registro/pkg/validator"
)

type setFieldRequest struct {
	Value *string `json:"value"`
}

func (a *API) schema(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, schemaView(registration.Fields()))
}

func (a *API) openSession(w http.ResponseWriter, r *http.Request) {
	sc := a.sessions.open()
	a.metrics.IncSessionsOpened()
	a.log.InfoContext(r.Context(), "registration screen opened", logger.SessionID(sc.id))
	writeData(w, http.StatusCreated, newSessionView(sc))
}

func (a *API) getSession(w http.ResponseWriter, r *http.Request) {
	sc, ok := a.screen(w, r)
	if !ok {
		return
	}
	writeData(w, http.StatusOK, newSessionView(sc))
}

func (a *API) closeSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !a.sessions.close(id) {
		writeError(w, http.StatusNotFound, &ErrorDetail{Code: CodeSessionNotFound, Message: ErrSessionNotFound.Error()}, nil)
		return
	}
	a.log.InfoContext(r.Context(), "registration screen closed", logger.SessionID(id))
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) setField(w http.ResponseWriter, r *http.Request) {
	sc, ok := a.screen(w, r)
	if !ok {
		return
	}
	name := chi.URLParam(r, "field")

	var req setFieldRequest
	if err := decodeJSON(w, r, a.cfg.MaxBodyBytes, &req); err != nil || req.Value == nil {
		writeError(w, http.StatusBadRequest, &ErrorDetail{Code: CodeInvalidBody, Message: `body must be {"value": "..."}`}, nil)
		return
	}

	f := sc.ctrl.Form()
	if err := f.SetField(name, *req.Value); err != nil {
		if errors.Is(err, form.ErrUnknownField) {
			writeError(w, http.StatusNotFound, &ErrorDetail{Code: CodeFieldNotFound, Message: err.Error()}, nil)
			return
		}
		a.log.ErrorContext(r.Context(), "failed to set field", logger.SessionID(sc.id), logger.Field(name), logger.Error(err))
		writeError(w, http.StatusInternalServerError, &ErrorDetail{Code: CodeInternal, Message: http.StatusText(http.StatusInternalServerError)}, nil)
		return
	}
	writeData(w, http.StatusOK, newFieldView(f.State(name)))
}

func (a *API) submit(w http.ResponseWriter, r *http.Request) {
	sc, ok := a.screen(w, r)
	if !ok {
		return
	}

	ctx, out := withOutput(r.Context())
	outcome, err := sc.ctrl.Submit(ctx)
	alerts, redirect := out.snapshot()
	a.metrics.IncSubmission(string(outcome))
	view := submitView{Outcome: string(outcome), Alerts: alerts, Redirect: redirect}
	meta := map[string]any{"outcome": view.Outcome, "alerts": view.Alerts}

	switch outcome {
	case registration.OutcomeSaved:
		writeData(w, http.StatusCreated, view)
	case registration.OutcomeInvalid:
		verrs := validator.ExtractValidationErrors(err)
		writeError(w, http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    CodeValidation,
			Message: registration.TitleInvalid,
			Details: verrs.Details(),
		}, meta)
	case registration.OutcomeSaveFailed:
		a.log.WarnContext(ctx, "registration failed", logger.SessionID(sc.id), logger.Error(err))
		writeError(w, http.StatusBadGateway, &ErrorDetail{
			Code:    CodeSaveFailed,
			Message: registration.MessageSaveFailed,
		}, meta)
	default:
		if err != nil {
			a.log.ErrorContext(ctx, "submit failed", logger.SessionID(sc.id), logger.Error(err))
		}
		writeError(w, http.StatusConflict, &ErrorDetail{
			Code:    CodeInProgress,
			Message: "a submission is already in progress",
		}, meta)
	}
}

func (a *API) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.directory.LoadExistingUsers(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, &ErrorDetail{Code: CodeStoreDown, Message: registration.ErrStoreUnavailable.Error()}, nil)
		return
	}

	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}
	writeJSON(w, http.StatusOK, Envelope{Data: views, Meta: map[string]any{"count": len(views)}})
}

func (a *API) screen(w http.ResponseWriter, r *http.Request) (*screen, bool) {
	sc, ok := a.sessions.get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, &ErrorDetail{Code: CodeSessionNotFound, Message: ErrSessionNotFound.Error()}, nil)
		return nil, false
	}
	return sc, true
}
