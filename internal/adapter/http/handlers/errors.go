package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	response "construtora_erp/internal/adapter/http/dto/response"
	"construtora_erp/internal/usecase"
	"construtora_erp/internal/usecase/interfaces"
	"construtora_erp/pkg"
)

const (
	RouteQuotations = "/v1/cotacoes"
	RouteViews      = "/v1/telas"
)

// errorBody is an AppError body plus the toast shown for it. Redirect, when
// set, sends the client back to another screen.
type errorBody struct {
	pkg.HTTPError
	Redirect     string                 `json:"redirect,omitempty"`
	Notification *response.Notification `json:"notificacao,omitempty"`
}

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)

// mapQuotationError converts use-case and backend errors into an AppError.
// Backend messages are surfaced verbatim; otherwise fallback is shown.
func mapQuotationError(err error, fallback string) *pkg.AppError {
	var gwErr *interfaces.GatewayError
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrQuotationCompleted):
		return pkg.NewDomainErrorSimple("QUOTATION_COMPLETED", "Cotações concluídas não podem ser excluídas", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotOpen):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_OPEN", "A cotação não está aberta", http.StatusConflict)
	case errors.Is(err, usecase.ErrActionInProgress):
		return pkg.NewDomainErrorSimple("ACTION_IN_PROGRESS", "Aguarde a conclusão da ação em andamento", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoProposalSelected):
		return pkg.NewDomainErrorSimple("NO_PROPOSAL_SELECTED", "Selecione uma proposta antes de confirmar", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposta não encontrada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrViewNotFound):
		return pkg.NewDomainErrorSimple("VIEW_NOT_FOUND", "Tela não encontrada ou expirada", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConfirmationJournalAbsent):
		return pkg.NewDomainErrorSimple("JOURNAL_DISABLED", "Histórico de confirmações indisponível", http.StatusServiceUnavailable)
	case errors.As(err, &gwErr) && strings.TrimSpace(gwErr.Message) != "":
		return pkg.NewDomainError("BACKEND_ERROR", gwErr.Message, err, http.StatusBadGateway)
	case errors.As(err, &gwErr),
		errors.Is(err, interfaces.ErrGatewayUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("BACKEND_ERROR", fallback, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", fallback, err, http.StatusInternalServerError)
	}
}

// userMessage is the text shown in a notification for err.
func userMessage(err error, fallback string) string {
	return mapQuotationError(err, fallback).Message
}

// isPrecondition reports refusals decided locally, before any backend call.
func isPrecondition(err error) bool {
	return errors.Is(err, usecase.ErrNoProposalSelected) ||
		errors.Is(err, usecase.ErrQuotationNotOpen) ||
		errors.Is(err, usecase.ErrActionInProgress) ||
		errors.Is(err, usecase.ErrQuotationCompleted)
}

// newErrorBody renders appErr; precondition refusals come as warnings.
func newErrorBody(err error, appErr *pkg.AppError) errorBody {
	level := response.LevelError
	if isPrecondition(err) {
		level = response.LevelWarning
	}
	return errorBody{
		HTTPError:    appErr.ToHTTPError(),
		Notification: response.NewNotification(level, appErr.Message),
	}
}
