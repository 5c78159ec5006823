package main

import (
	_ "educa_taxista/docs"
	"educa_taxista/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Educa Taxista API
// @version         1.0
// @description     Course enrollment and PIX payment service backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
// @description Static token that guards the admin routes.

func main() {
	routes.Run()
}
