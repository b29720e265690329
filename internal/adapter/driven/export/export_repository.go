package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fleetwatch/cw-fleet/internal/domain/entity"
	"github.com/fleetwatch/cw-fleet/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implements the ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository creates a new ExportRepository implementation.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// WriteAlarmReportJSON writes the full record set to path in a single write,
// overwriting any prior file. A nil record set serializes as an empty array.
func (r *ExportRepositoryImpl) WriteAlarmReportJSON(records []entity.AlarmRecord, path string) (string, error) {
	if records == nil {
		records = []entity.AlarmRecord{}
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating alarm report file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return "", fmt.Errorf("error encoding alarm report JSON: %w", err)
	}

	return filepath.Abs(path)
}

// ExportAlarmReportToCSV writes the alarm records as a flat CSV table.
func (r *ExportRepositoryImpl) ExportAlarmReportToCSV(records []entity.AlarmRecord, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating alarm CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Program", "Alarm Name", "Alarm ARN", "Description", "Dimensions",
		"Actions Enabled", "Period", "Threshold", "Comparison Operator",
		"Treat Missing Data", "Statistic",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, rec := range records {
		record := []string{
			rec.ProgramName,
			rec.AlarmName,
			rec.AlarmARN,
			rec.AlarmDescription,
			strings.Join(rec.Dimensions, "\n"),
			strconv.FormatBool(rec.ActionsEnabled),
			strconv.FormatInt(int64(rec.Period), 10),
			strconv.FormatFloat(rec.Threshold, 'f', -1, 64),
			rec.ComparisonOperator,
			rec.TreatMissingData,
			rec.Statistic,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportAlarmReportToPDF writes the alarm records grouped one program per page.
func (r *ExportRepositoryImpl) ExportAlarmReportToPDF(records []entity.AlarmRecord, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if strings.TrimSpace(content) == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	// Page per program, preserving first-seen order.
	byProgram := map[string][]entity.AlarmRecord{}
	var programs []string
	for _, rec := range records {
		if _, seen := byProgram[rec.ProgramName]; !seen {
			programs = append(programs, rec.ProgramName)
		}
		byProgram[rec.ProgramName] = append(byProgram[rec.ProgramName], rec)
	}

	for i, program := range programs {
		pdf.AddPage()

		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Alarm Report: %s", program)), "", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Alarms: %d", len(byProgram[program]))), "", 1, "L", true, 0, "")
		pdf.Ln(10)

		for _, rec := range byProgram[program] {
			var b strings.Builder
			b.WriteString(fmt.Sprintf("ARN: %s\n", rec.AlarmARN))
			if rec.AlarmDescription != "" {
				b.WriteString(fmt.Sprintf("Description: %s\n", rec.AlarmDescription))
			}
			if len(rec.Dimensions) > 0 {
				b.WriteString(fmt.Sprintf("Dimensions: %s\n", strings.Join(rec.Dimensions, ", ")))
			}
			b.WriteString(fmt.Sprintf("Actions Enabled: %t\n", rec.ActionsEnabled))
			b.WriteString(fmt.Sprintf("Period: %ds | Threshold: %g | %s\n", rec.Period, rec.Threshold, rec.ComparisonOperator))
			if rec.Statistic != "" {
				b.WriteString(fmt.Sprintf("Statistic: %s\n", rec.Statistic))
			}
			if rec.TreatMissingData != "" {
				b.WriteString(fmt.Sprintf("Treat Missing Data: %s\n", rec.TreatMissingData))
			}
			drawSection(rec.AlarmName, b.String())
		}

		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by cw-fleet | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", i+1)), "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing alarm PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// WriteMetricImage writes the PNG bytes under outputDir with a name derived
// from the request, stamping the current unix time so successive runs never
// collide.
func (r *ExportRepositoryImpl) WriteMetricImage(image []byte, req entity.WidgetRequest, outputDir string) (string, error) {
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		outputDir = cwd
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", outputDir, err)
	}

	path := filepath.Join(outputDir, ImageFileName(req.Namespace, req.Title, req.Region, req.Start, time.Now()))
	if err := os.WriteFile(path, image, 0644); err != nil {
		return "", fmt.Errorf("error writing metric image: %w", err)
	}

	return filepath.Abs(path)
}

// ImageFileName builds the widget image filename. Keeping namespace, title,
// region and period start in the name makes a directory of downloads
// self-describing.
func ImageFileName(namespace, title, region, start string, ts time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%s-%d.png", namespace, title, region, start, ts.Unix())
}

// generateFilename creates a timestamped report filename and ensures the
// output directory exists.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
