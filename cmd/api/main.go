package main

import (
	"log"

	_ "contractor_escrow/docs"
	"contractor_escrow/internal/adapter/http/routes"
	"contractor_escrow/internal/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Contractor Escrow API
// @version         1.0
// @description     Project escrow lifecycle, estimate deposits, bookings and dispute resolution backed by DynamoDB.
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
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.Run(cfg)
}
