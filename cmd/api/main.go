package main

import (
	_ "github.com/bhavyaa-1001/Drop2Smart-sub001/docs"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Drop2Smart Assessment API
// @version         1.0
// @description     Rooftop rainwater-harvesting assessment service backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
