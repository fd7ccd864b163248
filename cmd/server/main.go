// @title Event Manager API
// @version 1.0
// @description Events with their participants, speakers, vendors, feedback and budget.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT issued with the token command.
package main

import (
	"eventmanager/cmd/server/cmd"

	_ "eventmanager/docs"
)

func main() {
	cmd.Execute()
}
