package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "construtora_erp/internal/adapter/http/dto/request"
	response "construtora_erp/internal/adapter/http/dto/response"
	"construtora_erp/internal/domain/entities"
	"construtora_erp/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	msgListFailed          = "Erro ao carregar cotações"
	msgDeleteFailed        = "Erro ao excluir cotação"
	msgDeleteSuccess       = "Cotação excluída com sucesso"
	msgConfirmationsFailed = "Erro ao carregar confirmações"
)

// QuotationListHandler serves the quotation list view.

type QuotationListHandler struct {
	usecase usecase.IQuotationListUseCase
}

func NewQuotationListHandler(uc usecase.IQuotationListUseCase) *QuotationListHandler {
	return &QuotationListHandler{usecase: uc}
}

// ListQuotations godoc
// @Summary  List quotations
// @Tags     cotacoes
// @Produce  json
// @Param    status query string false "exact status filter (ABERTA, CONCLUIDA, CANCELADA)"
// @Success  200 {object} response.QuotationListResponse
// @Router   /cotacoes [get]
//
// A load failure still answers 200: the table comes back empty with an error
// notification and nothing is retried.
func (h *QuotationListHandler) ListQuotations(c *gin.Context) {
	filter := request.ParseStatusFilter(c.Query("status"))
	c.JSON(http.StatusOK, h.render(c, filter, nil))
}

// DeleteQuotation godoc
// @Summary  Delete a quotation
// @Tags     cotacoes
// @Produce  json
// @Param    id        path  int    true  "quotation id"
// @Param    confirmar query string false "must be true to proceed"
// @Success  200 {object} response.QuotationListResponse
// @Failure  428 {object} response.ConfirmationPromptResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /cotacoes/{id} [delete]
func (h *QuotationListHandler) DeleteQuotation(c *gin.Context) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	err = h.usecase.Delete(c.Request.Context(), id, request.ParseConfirmation(c.Query("confirmar")))
	if errors.Is(err, usecase.ErrDeleteNotConfirmed) {
		c.JSON(http.StatusPreconditionRequired, deletePrompt(id))
		return
	}
	if err != nil {
		appErr := mapQuotationError(err, msgDeleteFailed)
		log.Printf("[cotacao][handler] delete failed quotation_id=%d code=%s err=%v", id, appErr.Code, err)
		c.JSON(appErr.HTTPStatus, newErrorBody(err, appErr))
		return
	}

	filter := request.ParseStatusFilter(c.Query("status"))
	c.JSON(http.StatusOK, h.render(c, filter, response.NewNotification(response.LevelSuccess, msgDeleteSuccess)))
}

// ListConfirmations godoc
// @Summary  Purchase confirmations recorded for a quotation
// @Tags     cotacoes
// @Produce  json
// @Param    id path int true "quotation id"
// @Success  200 {array} response.PurchaseConfirmationResponse
// @Router   /cotacoes/{id}/confirmacoes [get]
func (h *QuotationListHandler) ListConfirmations(c *gin.Context) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	items, err := h.usecase.ListConfirmations(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuotationError(err, msgConfirmationsFailed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PurchaseConfirmationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, response.FromPurchaseConfirmation(it))
	}
	c.JSON(http.StatusOK, out)
}

// render loads the full collection and filters it in memory. A success
// notification is replaced by the load error when the reload fails.
func (h *QuotationListHandler) render(c *gin.Context, filter entities.QuotationStatus, n *response.Notification) response.QuotationListResponse {
	quotations, err := h.usecase.List(c.Request.Context())
	if err != nil {
		return response.FromQuotationList(RouteQuotations, filter, nil,
			response.NewNotification(response.LevelError, userMessage(err, msgListFailed)))
	}
	return response.FromQuotationList(RouteQuotations, filter, usecase.FilterByStatus(quotations, filter), n)
}

func deletePrompt(id int64) response.ConfirmationPromptResponse {
	return response.ConfirmationPromptResponse{
		Success: false,
		Code:    "CONFIRMATION_REQUIRED",
		Message: "Tem certeza que deseja excluir esta cotação?",
		Actions: []response.PromptAction{
			{Label: "Confirmar", Method: http.MethodDelete, Href: fmt.Sprintf("%s/%d?confirmar=true", RouteQuotations, id)},
			{Label: "Cancelar"},
		},
	}
}
