// Package main is the entry point for the bag-pricing-service application.
//
// @title           Bag Pricing Service API
// @version         1.0.0
// @description     API for pricing BOPP and CPP flexible-film bags and exporting cost sheets.
//
//	The active pricing configuration is held in memory and can be replaced at runtime.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/bag-pricing-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer JWT. Replacing the configuration requires the economist role.
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Used when API key authentication is enabled.
//
// @tag.name        Config
// @tag.description Pricing configuration management
//
// @tag.name        Pricing
// @tag.description Price calculation and cost-sheet export
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/bag-pricing-service/docs" // swagger docs

	"github.com/guttosm/bag-pricing-service/config"
	"github.com/guttosm/bag-pricing-service/internal/app"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization failed")
	}

	server := app.NewServer(application.Router, cfg.Server)

	runErr := server.Run()
	if err := application.Close(); err != nil {
		log.Error().Err(err).Msg("Shutdown cleanup failed")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
