package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetwatch/cw-fleet/internal/domain/entity"
	"github.com/fleetwatch/cw-fleet/internal/domain/repository"
	"github.com/fleetwatch/cw-fleet/internal/shared/types"
	"github.com/stretchr/testify/mock"
)

type fakeScopedClient struct {
	region    string
	expiresAt time.Time
}

func (c *fakeScopedClient) Region() string       { return c.region }
func (c *fakeScopedClient) ExpiresAt() time.Time { return c.expiresAt }

type mockAWSRepository struct {
	mock.Mock
}

func (m *mockAWSRepository) AssumeAccount(ctx context.Context, region, roleARN, sessionName string) (repository.ScopedClient, error) {
	args := m.Called(ctx, region, roleARN, sessionName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.ScopedClient), args.Error(1)
}

func (m *mockAWSRepository) GetMetricWidgetImage(ctx context.Context, client repository.ScopedClient, widgetJSON string) ([]byte, error) {
	args := m.Called(ctx, client, widgetJSON)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockAWSRepository) DescribeAlarms(ctx context.Context, client repository.ScopedClient) ([]entity.AlarmRecord, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AlarmRecord), args.Error(1)
}

func (m *mockAWSRepository) ListMetrics(ctx context.Context, region string) ([]entity.MetricDescriptor, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.MetricDescriptor), args.Error(1)
}

type mockInventoryRepository struct {
	mock.Mock
}

func (m *mockInventoryRepository) LoadInventory(path string) (*entity.Inventory, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Inventory), args.Error(1)
}

func (m *mockInventoryRepository) FilterInventory(pattern string, inv *entity.Inventory) ([]entity.AccountRecord, error) {
	args := m.Called(pattern, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AccountRecord), args.Error(1)
}

type mockTemplateRepository struct {
	mock.Mock
}

func (m *mockTemplateRepository) RenderWidget(path, region, namespace, start, end, period string) (string, error) {
	args := m.Called(path, region, namespace, start, end, period)
	return args.String(0), args.Error(1)
}

type mockExportRepository struct {
	mock.Mock
}

func (m *mockExportRepository) WriteAlarmReportJSON(records []entity.AlarmRecord, path string) (string, error) {
	args := m.Called(records, path)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) ExportAlarmReportToCSV(records []entity.AlarmRecord, filename, outputDir string) (string, error) {
	args := m.Called(records, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) ExportAlarmReportToPDF(records []entity.AlarmRecord, filename, outputDir string) (string, error) {
	args := m.Called(records, filename, outputDir)
	return args.String(0), args.Error(1)
}

func (m *mockExportRepository) WriteMetricImage(image []byte, req entity.WidgetRequest, outputDir string) (string, error) {
	args := m.Called(image, req, outputDir)
	return args.String(0), args.Error(1)
}

// testConsole records output without rendering anything.
type testConsole struct {
	infos     []string
	warnings  []string
	errors    []string
	successes []string
	lines     []string
}

func (c *testConsole) Print(a ...interface{})                 {}
func (c *testConsole) Printf(format string, a ...interface{}) {}
func (c *testConsole) Println(a ...interface{})               {}

func (c *testConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, sprintf(format, a...))
}

func (c *testConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, sprintf(format, a...))
}

func (c *testConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, sprintf(format, a...))
}

func (c *testConsole) LogSuccess(format string, a ...interface{}) {
	c.successes = append(c.successes, sprintf(format, a...))
}

func (c *testConsole) Status(message string) types.StatusHandle {
	return &testStatus{}
}

func (c *testConsole) CreateTable() types.TableInterface {
	return &testTable{}
}

func sprintf(format string, a ...interface{}) string {
	return fmt.Sprintf(format, a...)
}

type testStatus struct{}

func (s *testStatus) Update(message string) {}
func (s *testStatus) Stop()                 {}

type testTable struct {
	rows int
}

func (t *testTable) AddColumn(name string, options ...interface{}) {}
func (t *testTable) AddRow(cells ...interface{})                   { t.rows++ }
func (t *testTable) Render() string                                { return "" }
