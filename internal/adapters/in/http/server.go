// Package http is the inbound HTTP adapter: it implements the generated
// ServerInterface, translating requests into commands and queries and
// application errors into status codes. Identity is resolved by the auth
// middleware in this package; the handlers only read the principal.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/cnrcvk7/Asynchronous-service/internal/core/application/usecases/commands"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/application/usecases/queries"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/access"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/kernel"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/medicine"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/domain/model/substance"
	"github.com/cnrcvk7/Asynchronous-service/internal/core/ports"
	"github.com/cnrcvk7/Asynchronous-service/internal/generated/servers"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/errs"
	"github.com/cnrcvk7/Asynchronous-service/internal/pkg/password"
)

// ServerDeps carries everything the HTTP surface needs.
type ServerDeps struct {
	// Catalog commands
	CreateSubstanceHandler  commands.CreateSubstanceCommandHandler
	UpdateSubstanceHandler  commands.UpdateSubstanceCommandHandler
	ArchiveSubstanceHandler commands.ArchiveSubstanceCommandHandler

	// Order commands
	AddSubstanceToDraftHandler      commands.AddSubstanceToDraftCommandHandler
	RemoveSubstanceFromDraftHandler commands.RemoveSubstanceFromDraftCommandHandler
	ChangeLineWeightHandler         commands.ChangeLineWeightCommandHandler
	FormMedicineHandler             commands.FormMedicineCommandHandler
	DecideMedicineHandler           commands.DecideMedicineCommandHandler
	WithdrawMedicineHandler         commands.WithdrawMedicineCommandHandler
	RecordDoseHandler               commands.RecordDoseCommandHandler

	// Account commands
	RegisterAccountHandler commands.RegisterAccountCommandHandler
	UpdateAccountHandler   commands.UpdateAccountCommandHandler

	// Queries
	SearchSubstancesHandler queries.SearchSubstancesQueryHandler
	GetSubstanceHandler     queries.GetSubstanceQueryHandler
	SearchMedicinesHandler  queries.SearchMedicinesQueryHandler
	GetMedicineHandler      queries.GetMedicineQueryHandler

	// Session handling for login and logout
	Accounts   ports.AccountRepository
	Sessions   ports.SessionStore
	SessionTTL time.Duration
}

// Server implements the generated ServerInterface.
type Server struct {
	deps ServerDeps
}

// NewServer creates the HTTP server over the application use cases.
func NewServer(deps ServerDeps) *Server {
	return &Server{deps: deps}
}

// respondError maps the application error taxonomy onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathUUID(paramName string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return parsed, nil
}

// Register handles POST /api/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var body servers.RegisterJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterAccountCommand(
		kernel.NewUUID(), body.Username, string(body.Email), body.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.RegisterAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusCreated)
}

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var body servers.LoginJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}
	if body.Username == "" || body.Password == "" {
		return badRequest(ctx, "username and password are required")
	}

	rctx := ctx.Request().Context()
	// Unknown username and wrong password read the same to the caller.
	acc, err := s.deps.Accounts.GetByUsername(rctx, body.Username)
	if err != nil || !password.Verify(acc.PasswordHash(), body.Password) {
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "invalid credentials",
		})
	}

	sessionID := uuid.NewString()
	if err := s.deps.Sessions.Put(rctx, sessionID, acc.ID(), s.deps.SessionTTL); err != nil {
		return respondError(ctx, err)
	}

	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(s.deps.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return ctx.NoContent(http.StatusNoContent)
}

// Logout handles POST /api/auth/logout. Always succeeds.
func (s *Server) Logout(ctx echo.Context) error {
	if cookie, err := ctx.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := s.deps.Sessions.Delete(ctx.Request().Context(), cookie.Value); err != nil {
			return respondError(ctx, err)
		}
	}
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateAccount handles PUT /api/account.
func (s *Server) UpdateAccount(ctx echo.Context) error {
	p := currentPrincipal(ctx)
	if !p.isUser() {
		return respondError(ctx, errs.NewForbiddenError("session"))
	}

	var body servers.UpdateAccountJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	email := ""
	if body.Email != nil {
		email = string(*body.Email)
	}
	cmd, err := commands.NewUpdateAccountCommand(
		p.accountID, deref(body.Username), email, deref(body.Password))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.UpdateAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SearchSubstances handles GET /api/substances. Open to anonymous callers;
// authenticated callers additionally get their draft context.
func (s *Server) SearchSubstances(ctx echo.Context, params servers.SearchSubstancesParams) error {
	p := currentPrincipal(ctx)
	if err := access.Authorize(p.role, access.CapBrowseCatalog); err != nil {
		return respondError(ctx, err)
	}

	var callerID *kernel.UUID
	if p.isUser() {
		callerID = &p.accountID
	}

	query, err := queries.NewSearchSubstancesQuery(callerID, deref(params.Name))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.deps.SearchSubstancesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	catalog := servers.SubstanceCatalog{
		Substances: make([]servers.Substance, 0, len(result.Substances)),
	}
	for _, row := range result.Substances {
		catalog.Substances = append(catalog.Substances, servers.Substance{
			Id:          row.ID.Bytes(),
			Name:        row.Name,
			Description: optString(row.Description),
			Number:      row.Number,
			ImageRef:    optString(row.ImageRef),
			Status:      substance.StatusActive.String(),
		})
	}
	if result.DraftID != nil {
		draftID := result.DraftID.Bytes()
		lineCount := result.DraftLineCount
		catalog.DraftId = &draftID
		catalog.DraftLineCount = &lineCount
	}
	return ctx.JSON(http.StatusOK, catalog)
}

// GetSubstance handles GET /api/substances/{substanceId}. Archived substances
// stay readable so historical orders keep resolving their lines.
func (s *Server) GetSubstance(ctx echo.Context, substanceId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	if err := access.Authorize(p.role, access.CapBrowseCatalog); err != nil {
		return respondError(ctx, err)
	}

	id, err := pathUUID("substanceId", substanceId)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetSubstanceQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	row, err := s.deps.GetSubstanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Substance{
		Id:          row.ID.Bytes(),
		Name:        row.Name,
		Description: optString(row.Description),
		Number:      row.Number,
		ImageRef:    optString(row.ImageRef),
		Status:      row.Status.String(),
	})
}

// CreateSubstance handles POST /api/substances.
func (s *Server) CreateSubstance(ctx echo.Context) error {
	p := currentPrincipal(ctx)

	var body servers.CreateSubstanceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	substanceID := kernel.NewUUID()
	cmd, err := commands.NewCreateSubstanceCommand(
		p.role, substanceID, body.Name, deref(body.Description), body.Number, deref(body.ImageRef))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.CreateSubstanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Substance{
		Id:          substanceID.Bytes(),
		Name:        body.Name,
		Description: body.Description,
		Number:      body.Number,
		ImageRef:    body.ImageRef,
		Status:      substance.StatusActive.String(),
	})
}

// UpdateSubstance handles PUT /api/substances/{substanceId}.
func (s *Server) UpdateSubstance(ctx echo.Context, substanceId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	id, err := pathUUID("substanceId", substanceId)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.UpdateSubstanceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateSubstanceCommand(
		p.role, id, body.Name, deref(body.Description), body.Number, deref(body.ImageRef))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.UpdateSubstanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ArchiveSubstance handles DELETE /api/substances/{substanceId}.
func (s *Server) ArchiveSubstance(ctx echo.Context, substanceId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	id, err := pathUUID("substanceId", substanceId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewArchiveSubstanceCommand(p.role, id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.ArchiveSubstanceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddSubstanceToDraft handles POST /api/substances/{substanceId}/draft,
// creating the caller's draft order if none exists yet.
func (s *Server) AddSubstanceToDraft(ctx echo.Context, substanceId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	if !p.isUser() {
		return respondError(ctx, errs.NewForbiddenError("session"))
	}

	id, err := pathUUID("substanceId", substanceId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAddSubstanceToDraftCommand(p.accountID, p.role, id)
	if err != nil {
		return respondError(ctx, err)
	}

	composition, err := s.deps.AddSubstanceToDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, compositionResponse(composition))
}

// SearchMedicines handles GET /api/medicines.
func (s *Server) SearchMedicines(ctx echo.Context, params servers.SearchMedicinesParams) error {
	p := currentPrincipal(ctx)
	if !p.isUser() {
		return respondError(ctx, errs.NewForbiddenError("session"))
	}

	var status *medicine.Status
	if params.Status != nil {
		parsed := parseMedicineStatus(*params.Status)
		status = &parsed
	}
	var start, end *time.Time
	if params.DateFormationStart != nil {
		t := params.DateFormationStart.Time
		start = &t
	}
	if params.DateFormationEnd != nil {
		t := params.DateFormationEnd.Time
		end = &t
	}

	query, err := queries.NewSearchMedicinesQuery(
		p.accountID, p.role == access.RoleModerator, status, start, end)
	if err != nil {
		return respondError(ctx, err)
	}

	rows, err := s.deps.SearchMedicinesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Medicine, 0, len(rows))
	for _, row := range rows {
		response = append(response, servers.Medicine{
			Id:            row.ID.Bytes(),
			OwnerId:       row.OwnerID.Bytes(),
			Status:        servers.MedicineStatus(row.Status.String()),
			Dose:          row.Dose,
			DateCreated:   row.DateCreated,
			DateFormation: row.DateFormation,
			DateComplete:  row.DateComplete,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetMedicine handles GET /api/medicines/{medicineId}.
func (s *Server) GetMedicine(ctx echo.Context, medicineId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	if !p.isUser() {
		return respondError(ctx, errs.NewForbiddenError("session"))
	}

	id, err := pathUUID("medicineId", medicineId)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMedicineQuery(p.accountID, p.role == access.RoleModerator, id)
	if err != nil {
		return respondError(ctx, err)
	}

	row, err := s.deps.GetMedicineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	details := servers.MedicineDetails{
		Id:            row.ID.Bytes(),
		OwnerId:       row.OwnerID.Bytes(),
		Status:        servers.MedicineStatus(row.Status.String()),
		Dose:          row.Dose,
		DateCreated:   row.DateCreated,
		DateFormation: row.DateFormation,
		DateComplete:  row.DateComplete,
		Composition:   make([]servers.CompositionLine, 0, len(row.Composition)),
	}
	for _, line := range row.Composition {
		details.Composition = append(details.Composition, servers.CompositionLine{
			SubstanceId:   line.SubstanceID.Bytes(),
			SubstanceName: line.SubstanceName,
			ImageRef:      optString(line.ImageRef),
			Weight:        line.Weight,
		})
	}
	return ctx.JSON(http.StatusOK, details)
}

// FormMedicine handles PUT /api/medicines/{medicineId}/form.
func (s *Server) FormMedicine(ctx echo.Context, medicineId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	if !p.isUser() {
		return respondError(ctx, errs.NewForbiddenError("session"))
	}

	id, err := pathUUID("medicineId", medicineId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewFormMedicineCommand(p.accountID, p.role, id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.FormMedicineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DecideMedicine handles PUT /api/medicines/{medicineId}/decide.
func (s *Server) DecideMedicine(ctx echo.Context, medicineId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	if !p.isUser() {
		return respondError(ctx, errs.NewForbiddenError("session"))
	}

	id, err := pathUUID("medicineId", medicineId)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.DecideMedicineJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var outcome commands.Outcome
	switch body.Outcome {
	case servers.DecisionOutcomeApprove:
		outcome = commands.OutcomeApprove
	case servers.DecisionOutcomeReject:
		outcome = commands.OutcomeReject
	}

	cmd, err := commands.NewDecideMedicineCommand(p.accountID, p.role, id, outcome)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.DecideMedicineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// WithdrawMedicine handles DELETE /api/medicines/{medicineId}.
func (s *Server) WithdrawMedicine(ctx echo.Context, medicineId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	if !p.isUser() {
		return respondError(ctx, errs.NewForbiddenError("session"))
	}

	id, err := pathUUID("medicineId", medicineId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewWithdrawMedicineCommand(p.accountID, p.role, id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.WithdrawMedicineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RecordDose handles PUT /api/medicines/{medicineId}/dose, the callback from
// the dose calculation service. The capability check inside the command
// handler rejects everything but the remote-service principal.
func (s *Server) RecordDose(ctx echo.Context, medicineId openapi_types.UUID) error {
	p := currentPrincipal(ctx)

	id, err := pathUUID("medicineId", medicineId)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.RecordDoseJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRecordDoseCommand(p.role, id, body.Value)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.RecordDoseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeLineWeight handles PUT /api/medicines/{medicineId}/substances/{substanceId}.
func (s *Server) ChangeLineWeight(ctx echo.Context, medicineId openapi_types.UUID, substanceId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	if !p.isUser() {
		return respondError(ctx, errs.NewForbiddenError("session"))
	}

	medicineID, err := pathUUID("medicineId", medicineId)
	if err != nil {
		return respondError(ctx, err)
	}
	substanceID, err := pathUUID("substanceId", substanceId)
	if err != nil {
		return respondError(ctx, err)
	}

	var body servers.ChangeLineWeightJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangeLineWeightCommand(
		p.accountID, p.role, medicineID, substanceID, body.Weight)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deps.ChangeLineWeightHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveSubstanceFromDraft handles DELETE /api/medicines/{medicineId}/substances/{substanceId}.
func (s *Server) RemoveSubstanceFromDraft(ctx echo.Context, medicineId openapi_types.UUID, substanceId openapi_types.UUID) error {
	p := currentPrincipal(ctx)
	if !p.isUser() {
		return respondError(ctx, errs.NewForbiddenError("session"))
	}

	medicineID, err := pathUUID("medicineId", medicineId)
	if err != nil {
		return respondError(ctx, err)
	}
	substanceID, err := pathUUID("substanceId", substanceId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveSubstanceFromDraftCommand(
		p.accountID, p.role, medicineID, substanceID)
	if err != nil {
		return respondError(ctx, err)
	}

	composition, err := s.deps.RemoveSubstanceFromDraftHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, compositionResponse(composition))
}

// compositionResponse maps the materialized draft composition returned by a
// mutation onto the wire schema.
func compositionResponse(lines []commands.CompositionLineResult) []servers.CompositionLine {
	response := make([]servers.CompositionLine, 0, len(lines))
	for _, line := range lines {
		response = append(response, servers.CompositionLine{
			SubstanceId:   line.SubstanceID.Bytes(),
			SubstanceName: line.SubstanceName,
			ImageRef:      optString(line.ImageRef),
			Weight:        line.Weight,
		})
	}
	return response
}

func parseMedicineStatus(s servers.MedicineStatus) medicine.Status {
	switch s {
	case servers.MedicineStatusDraft:
		return medicine.StatusDraft
	case servers.MedicineStatusFormed:
		return medicine.StatusFormed
	case servers.MedicineStatusCompleted:
		return medicine.StatusCompleted
	case servers.MedicineStatusRejected:
		return medicine.StatusRejected
	default:
		return medicine.StatusUnknown
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
