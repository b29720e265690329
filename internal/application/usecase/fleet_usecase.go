package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleetwatch/cw-fleet/internal/domain/entity"
	"github.com/fleetwatch/cw-fleet/internal/domain/repository"
	"github.com/fleetwatch/cw-fleet/internal/shared/types"
)

// FleetUseCase orchestrates the per-account operations: assume the account
// role, run the CloudWatch call, write the artifact. One account failing
// never stops the rest of the fleet; failures are collected into a RunReport.
type FleetUseCase struct {
	awsRepo       repository.AWSRepository
	inventoryRepo repository.InventoryRepository
	templateRepo  repository.TemplateRepository
	exportRepo    repository.ExportRepository
	console       types.ConsoleInterface
}

// NewFleetUseCase creates a new FleetUseCase.
func NewFleetUseCase(
	awsRepo repository.AWSRepository,
	inventoryRepo repository.InventoryRepository,
	templateRepo repository.TemplateRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *FleetUseCase {
	return &FleetUseCase{
		awsRepo:       awsRepo,
		inventoryRepo: inventoryRepo,
		templateRepo:  templateRepo,
		exportRepo:    exportRepo,
		console:       console,
	}
}

// RunImages downloads one metric widget image per account in the filtered
// inventory.
func (uc *FleetUseCase) RunImages(ctx context.Context, args types.CLIArgs) error {
	accounts, err := uc.loadAccounts(args.ConfigPath, args.Pattern)
	if err != nil {
		return err
	}

	report := &types.RunReport{}

	for _, account := range accounts {
		region := args.Region
		if region == "" {
			region = account.Region
		}

		uc.console.LogInfo("Processing account %s (region %s)", account.Namespace, region)

		widgetJSON, err := uc.templateRepo.RenderWidget(
			args.TemplatePath, region, account.Namespace, args.StartTime, args.EndTime, args.Period)
		if err != nil {
			uc.recordFailure(report, account, region, types.StageTemplate, err)
			continue
		}

		client, err := uc.awsRepo.AssumeAccount(ctx, region, account.RoleARN, args.SessionName)
		if err != nil {
			uc.recordFailure(report, account, region, types.StageCredentials, err)
			continue
		}

		image, err := uc.awsRepo.GetMetricWidgetImage(ctx, client, widgetJSON)
		if err != nil {
			uc.recordFailure(report, account, region, types.StageService, err)
			continue
		}
		if image == nil {
			uc.recordFailure(report, account, client.Region(), types.StageService,
				fmt.Errorf("empty image payload for widget %q", args.Title))
			continue
		}

		req := entity.WidgetRequest{
			Title:        args.Title,
			Namespace:    account.Namespace,
			Region:       client.Region(),
			RoleARN:      account.RoleARN,
			TemplatePath: args.TemplatePath,
			Start:        args.StartTime,
			End:          args.EndTime,
			Period:       args.Period,
		}
		path, err := uc.exportRepo.WriteMetricImage(image, req, args.OutputPath)
		if err != nil {
			uc.recordFailure(report, account, client.Region(), types.StageWrite, err)
			continue
		}

		report.RecordSuccess()
		uc.console.LogSuccess("Saved widget image: %s", path)
	}

	uc.printSummary(report)
	return nil
}

// RunAlarms collects every metric alarm across the filtered inventory into a
// single JSON report, each record stamped with its program namespace.
func (uc *FleetUseCase) RunAlarms(ctx context.Context, args types.CLIArgs) error {
	accounts, err := uc.loadAccounts(args.ConfigPath, args.Pattern)
	if err != nil {
		return err
	}

	report := &types.RunReport{}
	var allAlarms []entity.AlarmRecord

	for _, account := range accounts {
		uc.console.LogInfo("Describing alarms for %s (region %s)", account.Namespace, account.Region)

		client, err := uc.awsRepo.AssumeAccount(ctx, account.Region, account.RoleARN, args.SessionName)
		if err != nil {
			uc.recordFailure(report, account, account.Region, types.StageCredentials, err)
			continue
		}

		records, err := uc.awsRepo.DescribeAlarms(ctx, client)
		if err != nil {
			uc.recordFailure(report, account, client.Region(), types.StageService, err)
			continue
		}

		for i := range records {
			records[i].ProgramName = account.Namespace
		}
		allAlarms = append(allAlarms, records...)

		report.RecordSuccess()
		uc.console.LogSuccess("Found %d alarms for %s", len(records), account.Namespace)
	}

	// The partial report is still written when some accounts failed; the
	// summary tells the operator what is missing.
	if path, err := uc.exportRepo.WriteAlarmReportJSON(allAlarms, args.AlarmOutput); err != nil {
		uc.console.LogError("Error writing alarm report: %v", err)
	} else {
		uc.console.LogSuccess("Saved alarm report: %s", path)
	}

	uc.exportAlarmReports(allAlarms, args)
	uc.printSummary(report)
	return nil
}

// exportAlarmReports writes the optional CSV/PDF renditions of the alarm
// report.
func (uc *FleetUseCase) exportAlarmReports(records []entity.AlarmRecord, args types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			if path, err := uc.exportRepo.ExportAlarmReportToCSV(records, args.ReportName, args.Dir); err != nil {
				uc.console.LogError("Error exporting alarm CSV: %v", err)
			} else {
				uc.console.LogSuccess("Exported alarm report to CSV: %s", path)
			}
		case "pdf":
			if path, err := uc.exportRepo.ExportAlarmReportToPDF(records, args.ReportName, args.Dir); err != nil {
				uc.console.LogError("Error exporting alarm PDF: %v", err)
			} else {
				uc.console.LogSuccess("Exported alarm report to PDF: %s", path)
			}
		case "json", "":
			// The JSON artifact is always written; nothing extra to do.
		default:
			uc.console.LogWarning("Unknown report type: %s", reportType)
		}
	}
}

// RunConfigCheck validates the inventory file and displays the records the
// given pattern selects.
func (uc *FleetUseCase) RunConfigCheck(args types.CLIArgs) error {
	inventory, err := uc.inventoryRepo.LoadInventory(args.ConfigPath)
	if err != nil {
		return err
	}
	if inventory == nil {
		uc.console.LogWarning("No account inventory found at %s", args.ConfigPath)
		return types.ErrNoInventory
	}

	accounts, err := uc.inventoryRepo.FilterInventory(args.Pattern, inventory)
	if err != nil {
		return err
	}

	table := uc.console.CreateTable()
	table.AddColumn("Namespace")
	table.AddColumn("Region")
	table.AddColumn("Role ARN")
	for _, account := range accounts {
		table.AddRow(account.Namespace, account.Region, account.RoleARN)
	}
	uc.console.Println(table.Render())

	if args.Pattern != "" {
		uc.console.LogSuccess("%d of %d accounts match pattern %q",
			len(accounts), len(inventory.Accounts), args.Pattern)
	} else {
		uc.console.LogSuccess("%d accounts in inventory", len(accounts))
	}
	return nil
}

// RunShowMetrics lists the metrics published in one region using the
// caller's own credentials.
func (uc *FleetUseCase) RunShowMetrics(ctx context.Context, args types.CLIArgs) error {
	metrics, err := uc.awsRepo.ListMetrics(ctx, args.Region)
	if err != nil {
		return err
	}

	for _, metric := range metrics {
		uc.console.Printf("Namespace: %s\n", metric.Namespace)
		uc.console.Printf("Name:      %s\n", metric.Name)
		uc.console.Println("Dimensions:")
		for _, d := range metric.Dimensions {
			uc.console.Printf("  Name:  %s\n", d.Name)
			uc.console.Printf("  Value: %s\n", d.Value)
			uc.console.Println()
		}
	}

	uc.console.Printf("Found %d metrics.\n", len(metrics))
	return nil
}

// loadAccounts loads and filters the inventory for the fleet operations,
// where a missing inventory is fatal.
func (uc *FleetUseCase) loadAccounts(configPath, pattern string) ([]entity.AccountRecord, error) {
	inventory, err := uc.inventoryRepo.LoadInventory(configPath)
	if err != nil {
		return nil, err
	}
	if inventory == nil {
		return nil, fmt.Errorf("%w: %s", types.ErrNoInventory, configPath)
	}

	accounts, err := uc.inventoryRepo.FilterInventory(pattern, inventory)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		uc.console.LogWarning("No accounts selected (pattern %q)", pattern)
	}
	return accounts, nil
}

func (uc *FleetUseCase) recordFailure(report *types.RunReport, account entity.AccountRecord, region, stage string, err error) {
	failure := &types.AccountFailure{
		Account: account.Namespace,
		Region:  region,
		RoleARN: account.RoleARN,
		Stage:   stage,
		Err:     err,
	}
	report.RecordFailure(failure)
	uc.console.LogError("%v", failure)
}

func (uc *FleetUseCase) printSummary(report *types.RunReport) {
	if report.Failed == 0 {
		uc.console.LogSuccess("Completed: %d succeeded", report.Succeeded)
		return
	}
	uc.console.LogWarning("Completed: %d succeeded, %d failed", report.Succeeded, report.Failed)
	for _, failure := range report.Failures {
		uc.console.LogError("  %s [%s]: %v", failure.Account, failure.Stage, failure.Err)
	}
}
