package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"construtora_erp/internal/adapter/http/handlers/mocks"
	"construtora_erp/internal/domain/entities"
	"construtora_erp/internal/usecase"
	"construtora_erp/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDetailRouter(h *QuotationDetailHandler) *gin.Engine {
	r := gin.New()
	r.POST(RouteQuotations+"/:id/telas", h.OpenDetail)
	views := r.Group(RouteViews)
	views.GET("/:viewId", h.GetDetail)
	views.PUT("/:viewId/selecao", h.SelectProposal)
	views.POST("/:viewId/regerar", h.RegenerateProposals)
	views.POST("/:viewId/confirmar", h.ConfirmPurchase)
	views.DELETE("/:viewId", h.CloseDetail)
	return r
}

func sevenSnapshot() usecase.DetailSnapshot {
	return usecase.DetailSnapshot{
		ViewID:    "v-1",
		Quotation: entities.Quotation{ID: 7, Status: entities.QuotationStatusAberta, Quantity: 10},
		Proposals: []entities.Proposal{
			{ID: 1, UnitPrice: 5},
			{ID: 2, UnitPrice: 4, BestPrice: true},
		},
		SelectedID:   2,
		HasSelection: true,
		Total:        40,
		State:        entities.ActionStateIdle,
	}
}

func TestQuotationDetailHandler_OpenDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success renders initial selection and total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Open(gomock.Any(), int64(7)).Return(sevenSnapshot(), nil)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteQuotations+"/7/telas", nil))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["propostaSelecionadaId"] != float64(2) {
			t.Fatalf("expected selection 2, got %v", body["propostaSelecionadaId"])
		}
		if body["total"] != float64(40) || body["totalFormatado"] != "R$ 40,00" {
			t.Fatalf("unexpected total: %v %v", body["total"], body["totalFormatado"])
		}
		if body["podeConfirmar"] != true || body["podeRegerar"] != true {
			t.Fatalf("expected controls enabled")
		}
	})

	t.Run("load failure redirects to list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Open(gomock.Any(), int64(7)).Return(usecase.DetailSnapshot{}, fmt.Errorf("%w: %w", usecase.ErrDetailLoadFailed, interfaces.ErrGatewayUnavailable))

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteQuotations+"/7/telas", nil))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["redirect"] != RouteQuotations {
			t.Fatalf("expected redirect to list, got %v", body["redirect"])
		}
		if body["message"] != msgOpenFailed {
			t.Fatalf("unexpected message: %v", body["message"])
		}
	})

	t.Run("invalid id redirects without calling usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteQuotations+"/0/telas", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["redirect"] != RouteQuotations {
			t.Fatalf("expected redirect, got %v", body["redirect"])
		}
	})
}

func TestQuotationDetailHandler_SelectProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPut, RouteViews+"/v-1/selecao", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("select recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		snap := sevenSnapshot()
		snap.SelectedID = 1
		snap.Total = 50
		uc.EXPECT().Select(gomock.Any(), "v-1", int64(1)).Return(snap, nil)

		req := httptest.NewRequest(http.MethodPut, RouteViews+"/v-1/selecao", bytes.NewBufferString(`{"propostaId":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["total"] != float64(50) {
			t.Fatalf("expected total 50, got %v", body["total"])
		}
	})

	t.Run("unknown proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Select(gomock.Any(), "v-1", int64(99)).Return(usecase.DetailSnapshot{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodPut, RouteViews+"/v-1/selecao", bytes.NewBufferString(`{"propostaId":99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuotationDetailHandler_RegenerateProposals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty result shows empty state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		snap := sevenSnapshot()
		snap.Proposals = nil
		snap.SelectedID, snap.HasSelection, snap.Total = 0, false, 0
		uc.EXPECT().Regenerate(gomock.Any(), "v-1").Return(snap, nil)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteViews+"/v-1/regerar", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["propostaSelecionadaId"] != nil {
			t.Fatalf("expected no selection, got %v", body["propostaSelecionadaId"])
		}
		empty, ok := body["estadoVazio"].(map[string]any)
		if !ok {
			t.Fatalf("expected empty state, got %v", body["estadoVazio"])
		}
		action := empty["acao"].(map[string]any)
		if action["rotulo"] != "Buscar fornecedores agora" {
			t.Fatalf("unexpected empty state action: %v", action)
		}
		if body["podeConfirmar"] != false {
			t.Fatalf("expected confirm disabled")
		}
		n := body["notificacao"].(map[string]any)
		if n["mensagem"] != "0 fornecedores encontrados" {
			t.Fatalf("unexpected notification: %v", n)
		}
	})

	t.Run("concurrent action rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Regenerate(gomock.Any(), "v-1").Return(usecase.DetailSnapshot{}, usecase.ErrActionInProgress)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteViews+"/v-1/regerar", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuotationDetailHandler_ConfirmPurchase(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success redirects to list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		snap := sevenSnapshot()
		snap.Quotation.Status = entities.QuotationStatusConcluida
		snap.Closed = true
		uc.EXPECT().Confirm(gomock.Any(), "v-1").Return(snap, nil).Times(1)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteViews+"/v-1/confirmar", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["redirect"] != RouteQuotations {
			t.Fatalf("expected redirect to list, got %v", body["redirect"])
		}
		if _, ok := body["links"]; ok {
			t.Fatalf("closed view must not expose links")
		}
		n := body["notificacao"].(map[string]any)
		if n["mensagem"] != msgConfirmSuccess {
			t.Fatalf("unexpected notification: %v", n)
		}
	})

	t.Run("quotation no longer open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Confirm(gomock.Any(), "v-1").Return(usecase.DetailSnapshot{}, usecase.ErrQuotationNotOpen)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteViews+"/v-1/confirmar", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("no selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Confirm(gomock.Any(), "v-1").Return(usecase.DetailSnapshot{}, usecase.ErrNoProposalSelected)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteViews+"/v-1/confirmar", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backend message verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Confirm(gomock.Any(), "v-1").Return(usecase.DetailSnapshot{}, &interfaces.GatewayError{Status: 409, Message: "Fornecedor sem estoque"})

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteViews+"/v-1/confirmar", nil))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Fornecedor sem estoque" {
			t.Fatalf("expected backend message, got %v", body["message"])
		}
	})

	t.Run("transport failure uses fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Confirm(gomock.Any(), "v-1").Return(usecase.DetailSnapshot{}, interfaces.ErrGatewayUnavailable)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteViews+"/v-1/confirmar", nil))

		if body := decodeBody(t, w); body["message"] != msgConfirmFailed {
			t.Fatalf("expected fallback message, got %v", body["message"])
		}
	})
}

func TestQuotationDetailHandler_GetAndClose(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get unknown view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "nope").Return(usecase.DetailSnapshot{}, usecase.ErrViewNotFound)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, RouteViews+"/nope", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get exposes links", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "v-1").Return(sevenSnapshot(), nil)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, RouteViews+"/v-1", nil))

		body := decodeBody(t, w)
		links, ok := body["links"].(map[string]any)
		if !ok || links["confirmar"] != "/v1/telas/v-1/confirmar" {
			t.Fatalf("unexpected links: %v", body["links"])
		}
	})

	t.Run("close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
		uc.EXPECT().Close(gomock.Any(), "v-1").Return(nil)

		w := httptest.NewRecorder()
		newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, RouteViews+"/v-1", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestSuppliersFound(t *testing.T) {
	if got := suppliersFound(1); got != "1 fornecedor encontrado" {
		t.Fatalf("unexpected singular: %q", got)
	}
	if got := suppliersFound(3); got != "3 fornecedores encontrados" {
		t.Fatalf("unexpected plural: %q", got)
	}
}

func TestQuotationDetailHandler_ErrorNotifications(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		level  string
	}{
		{"busy view is a warning", usecase.ErrActionInProgress, http.StatusConflict, "aviso"},
		{"closed quotation is a warning", usecase.ErrQuotationNotOpen, http.StatusConflict, "aviso"},
		{"missing selection is a warning", usecase.ErrNoProposalSelected, http.StatusBadRequest, "aviso"},
		{"backend rejection is an error", &interfaces.GatewayError{Status: 409, Message: "Fornecedor sem estoque"}, http.StatusBadGateway, "erro"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuotationDetailUseCase(ctrl)
			uc.EXPECT().Confirm(gomock.Any(), "v-1").Return(usecase.DetailSnapshot{}, tc.err)

			w := httptest.NewRecorder()
			newDetailRouter(NewQuotationDetailHandler(uc)).ServeHTTP(w, httptest.NewRequest(http.MethodPost, RouteViews+"/v-1/confirmar", nil))

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			body := decodeBody(t, w)
			n, ok := body["notificacao"].(map[string]any)
			if !ok {
				t.Fatalf("expected notification, got %v", body)
			}
			if n["tipo"] != tc.level {
				t.Fatalf("expected level %q, got %v", tc.level, n["tipo"])
			}
			if n["mensagem"] != body["message"] {
				t.Fatalf("notification should repeat the error message, got %v vs %v", n["mensagem"], body["message"])
			}
		})
	}
}
