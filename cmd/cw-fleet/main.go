package main

import (
	"fmt"
	"os"

	"github.com/fleetwatch/cw-fleet/internal/adapter/driven/awsapi"
	"github.com/fleetwatch/cw-fleet/internal/adapter/driven/config"
	"github.com/fleetwatch/cw-fleet/internal/adapter/driven/export"
	"github.com/fleetwatch/cw-fleet/internal/adapter/driven/template"
	"github.com/fleetwatch/cw-fleet/internal/adapter/driving/cli"
	"github.com/fleetwatch/cw-fleet/internal/application/usecase"
	"github.com/fleetwatch/cw-fleet/pkg/console"
	"github.com/fleetwatch/cw-fleet/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version)

	awsRepo := awsapi.NewAWSRepository()
	inventoryRepo := config.NewInventoryRepository()
	templateRepo := template.NewTemplateRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	fleetUseCase := usecase.NewFleetUseCase(
		awsRepo,
		inventoryRepo,
		templateRepo,
		exportRepo,
		consoleImpl,
	)

	app.SetFleetUseCase(fleetUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
