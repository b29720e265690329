package cli

import (
	"context"

	"github.com/fleetwatch/cw-fleet/internal/application/usecase"
	"github.com/fleetwatch/cw-fleet/internal/shared/types"
	"github.com/fleetwatch/cw-fleet/pkg/version"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd      *cobra.Command
	fleetUseCase *usecase.FleetUseCase
	version      string
}

// NewCLIApp creates a new CLI application.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "cw-fleet",
		Short:   "Cross-account CloudWatch fleet CLI",
		Long:    "Download metric widget images, collect alarms and inspect metrics across a fleet of AWS accounts.",
		Version: formattedVersion,
	}
	rootCmd.SetVersionTemplate(`{{printf "cw-fleet version: %s\n" .Version}}`)

	rootCmd.AddCommand(app.newImagesCommand())
	rootCmd.AddCommand(app.newAlarmsCommand())
	rootCmd.AddCommand(app.newConfigCommand())
	rootCmd.AddCommand(app.newShowCommand())

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetFleetUseCase sets the fleet use case for the CLI app.
func (app *CLIApp) SetFleetUseCase(useCase *usecase.FleetUseCase) {
	app.fleetUseCase = useCase
}

func (app *CLIApp) newImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images <template-path> <config-path>",
		Short: "Download metric widget images from CloudWatch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			displayWelcomeBanner(app.version)
			go version.CheckLatestVersion(app.version)

			cliArgs := types.CLIArgs{
				TemplatePath: args[0],
				ConfigPath:   args[1],
			}
			cliArgs.Region, _ = cmd.Flags().GetString("region")
			cliArgs.StartTime, _ = cmd.Flags().GetString("start-time")
			cliArgs.EndTime, _ = cmd.Flags().GetString("end-time")
			cliArgs.Period, _ = cmd.Flags().GetString("period")
			cliArgs.Title, _ = cmd.Flags().GetString("title")
			cliArgs.Pattern, _ = cmd.Flags().GetString("pattern")
			cliArgs.OutputPath, _ = cmd.Flags().GetString("output-path")
			cliArgs.SessionName, _ = cmd.Flags().GetString("session-name")

			return app.fleetUseCase.RunImages(context.Background(), cliArgs)
		},
	}

	cmd.Flags().StringP("region", "r", "", "AWS region override (e.g. us-east-1, eu-west-1); default is each account's region")
	cmd.Flags().StringP("start-time", "s", "4320H", "Start of the graphed period, relative to now (e.g. 4320H)")
	cmd.Flags().StringP("end-time", "e", "0H", "End of the graphed period, relative to now")
	cmd.Flags().StringP("period", "p", "3600", "Metric aggregation period in seconds")
	cmd.Flags().String("title", "metric", "Title to identify the downloaded image")
	cmd.Flags().StringP("pattern", "f", "", "Only process accounts whose namespace contains this pattern")
	cmd.Flags().StringP("output-path", "o", "", "Directory to save the images (default: current directory)")
	cmd.Flags().String("session-name", "dev-cli", "Session name for the assumed role")

	return cmd
}

func (app *CLIApp) newAlarmsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alarms <config-path>",
		Short: "Describe alarms for all accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			displayWelcomeBanner(app.version)
			go version.CheckLatestVersion(app.version)

			cliArgs := types.CLIArgs{
				ConfigPath: args[0],
			}
			cliArgs.Pattern, _ = cmd.Flags().GetString("pattern")
			cliArgs.SessionName, _ = cmd.Flags().GetString("session-name")
			cliArgs.AlarmOutput, _ = cmd.Flags().GetString("output")
			cliArgs.ReportName, _ = cmd.Flags().GetString("report-name")
			cliArgs.ReportType, _ = cmd.Flags().GetStringSlice("report-type")
			cliArgs.Dir, _ = cmd.Flags().GetString("dir")

			return app.fleetUseCase.RunAlarms(context.Background(), cliArgs)
		},
	}

	cmd.Flags().StringP("pattern", "f", "", "Only process accounts whose namespace contains this pattern")
	cmd.Flags().String("session-name", "dev-cli", "Session name for the assumed role")
	cmd.Flags().String("output", "describe-alarms.json", "Path for the JSON alarm report")
	cmd.Flags().StringP("report-name", "n", "alarm-report", "Base name for the exported report files (without extension)")
	cmd.Flags().StringSliceP("report-type", "y", nil, "Additional report formats: csv, pdf")
	cmd.Flags().StringP("dir", "d", "", "Directory to save the exported reports (default: current directory)")

	return cmd
}

func (app *CLIApp) newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <config-path>",
		Short: "Validate and display the account inventory file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs := types.CLIArgs{
				ConfigPath: args[0],
			}
			cliArgs.Pattern, _ = cmd.Flags().GetString("pattern")

			return app.fleetUseCase.RunConfigCheck(cliArgs)
		},
	}

	cmd.Flags().StringP("pattern", "f", "", "Only display accounts whose namespace contains this pattern")

	return cmd
}

func (app *CLIApp) newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show metrics published in a region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs := types.CLIArgs{}
			cliArgs.Region, _ = cmd.Flags().GetString("region")

			return app.fleetUseCase.RunShowMetrics(context.Background(), cliArgs)
		},
	}

	cmd.Flags().StringP("region", "r", "us-west-2", "AWS region to list metrics in")

	return cmd
}
