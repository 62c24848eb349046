package main

import (
	_ "cfp_agreements/docs"
	"cfp_agreements/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Service Agreement API
// @version         1.0
// @description     Fire-safety service agreements: catalog, quotes, drafts and signed submissions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin API token.

func main() {
	routes.Run()
}
