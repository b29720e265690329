package awsapi

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/fleetwatch/cw-fleet/internal/domain/entity"
	"github.com/fleetwatch/cw-fleet/internal/domain/repository"
)

// CloudWatchAPI defines the CloudWatch operations this tool depends on. The
// real SDK client satisfies it; tests provide mocks.
type CloudWatchAPI interface {
	DescribeAlarms(
		ctx context.Context,
		input *cloudwatch.DescribeAlarmsInput,
		optFns ...func(*cloudwatch.Options)) (*cloudwatch.DescribeAlarmsOutput, error)

	GetMetricWidgetImage(
		ctx context.Context,
		input *cloudwatch.GetMetricWidgetImageInput,
		optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricWidgetImageOutput, error)

	ListMetrics(
		ctx context.Context,
		input *cloudwatch.ListMetricsInput,
		optFns ...func(*cloudwatch.Options)) (*cloudwatch.ListMetricsOutput, error)
}

// GetMetricWidgetImage renders the widget definition to PNG bytes. An empty
// payload from the service is reported as (nil, nil).
func (r *AWSRepositoryImpl) GetMetricWidgetImage(ctx context.Context, client repository.ScopedClient, widgetJSON string) ([]byte, error) {
	sc, err := r.scoped(client)
	if err != nil {
		return nil, err
	}

	out, err := sc.api.GetMetricWidgetImage(ctx, &cloudwatch.GetMetricWidgetImageInput{
		MetricWidget: aws.String(widgetJSON),
		OutputFormat: aws.String("png"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get metric widget image in %s: %w", sc.region, err)
	}
	if len(out.MetricWidgetImage) == 0 {
		return nil, nil
	}
	return out.MetricWidgetImage, nil
}

// DescribeAlarms fetches every metric alarm visible to the scoped client,
// following pagination, and flattens them into alarm records. ProgramName is
// left empty; the orchestrator stamps it per account.
func (r *AWSRepositoryImpl) DescribeAlarms(ctx context.Context, client repository.ScopedClient) ([]entity.AlarmRecord, error) {
	sc, err := r.scoped(client)
	if err != nil {
		return nil, err
	}

	var records []entity.AlarmRecord
	paginator := cloudwatch.NewDescribeAlarmsPaginator(sc.api, &cloudwatch.DescribeAlarmsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe alarms in %s: %w", sc.region, err)
		}
		for _, alarm := range page.MetricAlarms {
			records = append(records, mapAlarm(alarm))
		}
	}
	return records, nil
}

// ListMetrics enumerates published metrics in the given region using ambient
// credentials, following pagination.
func (r *AWSRepositoryImpl) ListMetrics(ctx context.Context, region string) ([]entity.MetricDescriptor, error) {
	resolved := ResolveRegion(region)
	api, err := r.newCWClient(ctx, resolved, nil)
	if err != nil {
		return nil, err
	}

	var metrics []entity.MetricDescriptor
	paginator := cloudwatch.NewListMetricsPaginator(api, &cloudwatch.ListMetricsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list metrics in %s: %w", resolved, err)
		}
		for _, metric := range page.Metrics {
			metrics = append(metrics, mapMetric(metric))
		}
	}
	return metrics, nil
}

func mapAlarm(alarm cwtypes.MetricAlarm) entity.AlarmRecord {
	dimensions := make([]string, 0, len(alarm.Dimensions))
	for _, d := range alarm.Dimensions {
		dimensions = append(dimensions, aws.ToString(d.Name))
	}

	return entity.AlarmRecord{
		AlarmName:          aws.ToString(alarm.AlarmName),
		AlarmARN:           aws.ToString(alarm.AlarmArn),
		AlarmDescription:   aws.ToString(alarm.AlarmDescription),
		Dimensions:         dimensions,
		ActionsEnabled:     aws.ToBool(alarm.ActionsEnabled),
		Period:             aws.ToInt32(alarm.Period),
		Threshold:          aws.ToFloat64(alarm.Threshold),
		ComparisonOperator: comparisonOperatorName(alarm.ComparisonOperator),
		TreatMissingData:   aws.ToString(alarm.TreatMissingData),
		Statistic:          statisticName(alarm.Statistic),
	}
}

func mapMetric(metric cwtypes.Metric) entity.MetricDescriptor {
	dimensions := make([]entity.MetricDimension, 0, len(metric.Dimensions))
	for _, d := range metric.Dimensions {
		dimensions = append(dimensions, entity.MetricDimension{
			Name:  aws.ToString(d.Name),
			Value: aws.ToString(d.Value),
		})
	}
	return entity.MetricDescriptor{
		Namespace:  aws.ToString(metric.Namespace),
		Name:       aws.ToString(metric.MetricName),
		Dimensions: dimensions,
	}
}

// comparisonOperatorName names the threshold operators reports care about.
// Anomaly-detection variants and anything newer collapse to "Unknown".
func comparisonOperatorName(op cwtypes.ComparisonOperator) string {
	switch op {
	case cwtypes.ComparisonOperatorGreaterThanOrEqualToThreshold:
		return "GreaterThanOrEqualToThreshold"
	case cwtypes.ComparisonOperatorGreaterThanThreshold:
		return "GreaterThanThreshold"
	case cwtypes.ComparisonOperatorLessThanThreshold:
		return "LessThanThreshold"
	case cwtypes.ComparisonOperatorLessThanOrEqualToThreshold:
		return "LessThanOrEqualToThreshold"
	default:
		return "Unknown"
	}
}

// statisticName is "" when the alarm has no simple statistic (extended
// statistics and math alarms), and "Unknown" for unrecognized values.
func statisticName(stat cwtypes.Statistic) string {
	switch stat {
	case "":
		return ""
	case cwtypes.StatisticAverage:
		return "Average"
	case cwtypes.StatisticMaximum:
		return "Maximum"
	case cwtypes.StatisticMinimum:
		return "Minimum"
	case cwtypes.StatisticSampleCount:
		return "SampleCount"
	case cwtypes.StatisticSum:
		return "Sum"
	default:
		return "Unknown"
	}
}
