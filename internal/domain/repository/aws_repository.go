package repository

import (
	"context"
	"time"

	"github.com/fleetwatch/cw-fleet/internal/domain/entity"
)

// ScopedClient is an API client bound to a region and to temporary,
// role-derived credentials. The concrete client type is owned by the AWS
// adapter; the domain only sees its scope.
type ScopedClient interface {
	Region() string
	ExpiresAt() time.Time
}

// AWSRepository brokers per-account credentials and exposes the CloudWatch
// operations built on top of them.
type AWSRepository interface {
	// AssumeAccount resolves the region, assumes the given role with the given
	// session name, and returns a CloudWatch client scoped to that region and
	// the temporary credentials.
	AssumeAccount(ctx context.Context, region, roleARN, sessionName string) (ScopedClient, error)

	// GetMetricWidgetImage requests a PNG rendering of the widget definition.
	// An empty payload is returned as (nil, nil); the caller decides how to
	// report it.
	GetMetricWidgetImage(ctx context.Context, client ScopedClient, widgetJSON string) ([]byte, error)

	// DescribeAlarms fetches all metric alarms visible to the scoped client,
	// following pagination. ProgramName is left empty for the caller to fill.
	DescribeAlarms(ctx context.Context, client ScopedClient) ([]entity.AlarmRecord, error)

	// ListMetrics enumerates published metrics using ambient (caller)
	// credentials in the given region.
	ListMetrics(ctx context.Context, region string) ([]entity.MetricDescriptor, error)
}
