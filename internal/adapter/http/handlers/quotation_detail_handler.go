package handlers

import (
	"fmt"
	"log"
	"net/http"

	request "construtora_erp/internal/adapter/http/dto/request"
	response "construtora_erp/internal/adapter/http/dto/response"
	"construtora_erp/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	msgOpenFailed       = "Erro ao carregar detalhes da cotação"
	msgRegenerateFailed = "Erro ao buscar novas propostas"
	msgConfirmFailed    = "Erro ao confirmar compra"
	msgConfirmSuccess   = "Compra confirmada com sucesso"
	msgDetailFailed     = "Erro ao atualizar a tela"
)

// QuotationDetailHandler serves quotation detail view instances.

type QuotationDetailHandler struct {
	usecase usecase.IQuotationDetailUseCase
}

func NewQuotationDetailHandler(uc usecase.IQuotationDetailUseCase) *QuotationDetailHandler {
	return &QuotationDetailHandler{usecase: uc}
}

// OpenDetail godoc
// @Summary  Open a quotation detail view
// @Tags     telas
// @Produce  json
// @Param    id path int true "quotation id"
// @Success  201 {object} response.DetailViewResponse
// @Router   /cotacoes/{id}/telas [post]
//
// Header and proposals load together; if either fails the caller is sent
// back to the list.
func (h *QuotationDetailHandler) OpenDetail(c *gin.Context) {
	id, err := request.ParseID(c.Param("id"))
	if err != nil {
		body := newErrorBody(err, errInvalidRequest)
		body.Redirect = RouteQuotations
		c.JSON(errInvalidRequest.HTTPStatus, body)
		return
	}

	snap, err := h.usecase.Open(c.Request.Context(), id)
	if err != nil {
		appErr := mapQuotationError(err, msgOpenFailed)
		log.Printf("[cotacao][handler] open failed quotation_id=%d code=%s err=%v", id, appErr.Code, err)
		body := newErrorBody(err, appErr)
		body.Redirect = RouteQuotations
		c.JSON(appErr.HTTPStatus, body)
		return
	}

	c.JSON(http.StatusCreated, response.FromDetailSnapshot(RouteViews, snap))
}

// GetDetail godoc
// @Summary  Current state of a detail view
// @Tags     telas
// @Produce  json
// @Param    viewId path string true "view id"
// @Success  200 {object} response.DetailViewResponse
// @Router   /telas/{viewId} [get]
func (h *QuotationDetailHandler) GetDetail(c *gin.Context) {
	snap, err := h.usecase.Get(c.Request.Context(), c.Param("viewId"))
	if err != nil {
		h.fail(c, err, msgDetailFailed)
		return
	}
	c.JSON(http.StatusOK, response.FromDetailSnapshot(RouteViews, snap))
}

// SelectProposal godoc
// @Summary  Select a proposal (local state only)
// @Tags     telas
// @Accept   json
// @Produce  json
// @Param    viewId path string                         true "view id"
// @Param    body   body request.SelectProposalRequest  true "selection"
// @Success  200 {object} response.DetailViewResponse
// @Router   /telas/{viewId}/selecao [put]
func (h *QuotationDetailHandler) SelectProposal(c *gin.Context) {
	var payload request.SelectProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	snap, err := h.usecase.Select(c.Request.Context(), c.Param("viewId"), payload.ProposalID)
	if err != nil {
		h.fail(c, err, msgDetailFailed)
		return
	}
	c.JSON(http.StatusOK, response.FromDetailSnapshot(RouteViews, snap))
}

// RegenerateProposals godoc
// @Summary  Ask the backend for a fresh set of proposals
// @Tags     telas
// @Produce  json
// @Param    viewId path string true "view id"
// @Success  200 {object} response.DetailViewResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /telas/{viewId}/regerar [post]
func (h *QuotationDetailHandler) RegenerateProposals(c *gin.Context) {
	viewID := c.Param("viewId")
	snap, err := h.usecase.Regenerate(c.Request.Context(), viewID)
	if err != nil {
		h.fail(c, err, msgRegenerateFailed)
		return
	}

	res := response.FromDetailSnapshot(RouteViews, snap)
	res.Notification = response.NewNotification(response.LevelSuccess, suppliersFound(len(snap.Proposals)))
	c.JSON(http.StatusOK, res)
}

// ConfirmPurchase godoc
// @Summary  Confirm the purchase of the selected proposal
// @Tags     telas
// @Produce  json
// @Param    viewId path string true "view id"
// @Success  200 {object} response.DetailViewResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /telas/{viewId}/confirmar [post]
func (h *QuotationDetailHandler) ConfirmPurchase(c *gin.Context) {
	viewID := c.Param("viewId")
	snap, err := h.usecase.Confirm(c.Request.Context(), viewID)
	if err != nil {
		h.fail(c, err, msgConfirmFailed)
		return
	}

	res := response.FromDetailSnapshot(RouteViews, snap)
	res.Redirect = RouteQuotations
	res.Notification = response.NewNotification(response.LevelSuccess, msgConfirmSuccess)
	c.JSON(http.StatusOK, res)
}

// CloseDetail godoc
// @Summary  Close a detail view, aborting any request in flight
// @Tags     telas
// @Param    viewId path string true "view id"
// @Success  204
// @Router   /telas/{viewId} [delete]
func (h *QuotationDetailHandler) CloseDetail(c *gin.Context) {
	if err := h.usecase.Close(c.Request.Context(), c.Param("viewId")); err != nil {
		h.fail(c, err, msgDetailFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *QuotationDetailHandler) fail(c *gin.Context, err error, fallback string) {
	appErr := mapQuotationError(err, fallback)
	log.Printf("[cotacao][handler] %s %s failed code=%s err=%v", c.Request.Method, c.FullPath(), appErr.Code, err)
	c.JSON(appErr.HTTPStatus, newErrorBody(err, appErr))
}

func suppliersFound(n int) string {
	if n == 1 {
		return "1 fornecedor encontrado"
	}
	return fmt.Sprintf("%d fornecedores encontrados", n)
}
