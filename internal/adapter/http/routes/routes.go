package routes

import (
	"context"
	"fmt"
	"log"

	_ "construtora_erp/docs" // generated by swag init
	"construtora_erp/internal/adapter/http/handlers"
	"construtora_erp/internal/adapter/http/middleware"
	"construtora_erp/internal/adapter/persistence/repository"
	"construtora_erp/internal/config"
	"construtora_erp/internal/infrastructure/database"
	"construtora_erp/internal/infrastructure/erpapi"
	"construtora_erp/internal/usecase"
	"construtora_erp/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg *config.AppConfig) {
	router, err := NewRouter(cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}

	if err := router.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires the ERP client, the journal and the use cases into a gin engine.
func NewRouter(cfg *config.AppConfig) (*gin.Engine, error) {
	gateway, err := erpapi.NewClient(cfg.Backend.BaseURL, cfg.BackendTimeout())
	if err != nil {
		return nil, err
	}
	journal := connectJournal(cfg)

	listUseCase := usecase.NewQuotationListUseCase(gateway, journal)
	detailUseCase := usecase.NewQuotationDetailUseCase(gateway, journal, cfg.ViewIdleTTL(), cfg.BackendTimeout())

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas autenticadas: o token do usuário segue para a API do ERP
	authed := v1.Group("", middleware.ForwardToken(cfg.Server.TokenCookie))
	addQuotationRoutes(authed,
		handlers.NewQuotationListHandler(listUseCase),
		handlers.NewQuotationDetailHandler(detailUseCase),
	)
	return router, nil
}

// connectJournal returns nil when the journal is disabled or DynamoDB cannot
// be configured; the quotation flow works without it.
func connectJournal(cfg *config.AppConfig) interfaces.IPurchaseConfirmationRepository {
	if !cfg.Confirmations.Enabled {
		log.Printf("[cotacao][routes] confirmation journal disabled")
		return nil
	}
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.AWS)
	if err != nil {
		log.Printf("[cotacao][routes] confirmation journal not configured: %v", err)
		return nil
	}
	return repository.NewPurchaseConfirmationDynamoRepository(ddb, cfg.Confirmations.Table)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
