package main

import (
	"log"
	"os"

	"github.com/oldmonad/readerr/internal/app"
	"github.com/oldmonad/readerr/pkg/config/env"
	"github.com/oldmonad/readerr/pkg/logger"
	"github.com/oldmonad/readerr/pkg/ports/cli"
	"github.com/oldmonad/readerr/pkg/utils/validator"
)

func main() {
	configurations, err := env.SetupConfigurations()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	defer logger.Sync()

	appInstance := app.NewApp(*configurations)
	command := cli.NewCommand(appInstance, validator.NewValidator(), configurations)

	// Failed reads are part of the demonstration and still exit 0; only bad
	// input or setup reaches here.
	if err := command.InitiateCommands().Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
