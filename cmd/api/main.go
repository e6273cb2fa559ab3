package main

import (
	"log"

	_ "construtora_erp/docs"
	"construtora_erp/internal/adapter/http/routes"
	"construtora_erp/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Painel de Cotações API
// @version         1.0
// @description     Quotation dashboard backend (list, detail, regenerate, confirm) over the ERP REST API.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	routes.Run(cfg)
}
