package routes

import (
	"construtora_erp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/cotacoes"
	PathViews      = "/telas"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addQuotationRoutes(rg *gin.RouterGroup, listHandler *handlers.QuotationListHandler, detailHandler *handlers.QuotationDetailHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.GET("", listHandler.ListQuotations)
		quotations.DELETE("/:id", listHandler.DeleteQuotation)
		quotations.GET("/:id/confirmacoes", listHandler.ListConfirmations)
		quotations.POST("/:id/telas", detailHandler.OpenDetail)
	}

	views := rg.Group(PathViews)
	{
		views.GET("/:viewId", detailHandler.GetDetail)
		views.PUT("/:viewId/selecao", detailHandler.SelectProposal)
		views.POST("/:viewId/regerar", detailHandler.RegenerateProposals)
		views.POST("/:viewId/confirmar", detailHandler.ConfirmPurchase)
		views.DELETE("/:viewId", detailHandler.CloseDetail)
	}
}
