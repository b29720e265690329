package awsapi

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func firstPage(input *cloudwatch.DescribeAlarmsInput) bool {
	return input.NextToken == nil
}

func pageAfter(token string) func(*cloudwatch.DescribeAlarmsInput) bool {
	return func(input *cloudwatch.DescribeAlarmsInput) bool {
		return aws.ToString(input.NextToken) == token
	}
}

func TestGetMetricWidgetImage(t *testing.T) {
	cwAPI := new(mockCloudWatchAPI)
	cwAPI.On("GetMetricWidgetImage", mock.Anything, mock.MatchedBy(func(input *cloudwatch.GetMetricWidgetImageInput) bool {
		return aws.ToString(input.MetricWidget) == `{"metrics":[]}` &&
			aws.ToString(input.OutputFormat) == "png"
	}), mock.Anything).Return(&cloudwatch.GetMetricWidgetImageOutput{
		MetricWidgetImage: []byte{0x89, 0x50, 0x4e, 0x47},
	}, nil)

	repo, _ := newTestRepository(nil, nil)
	client := &ScopedClient{api: cwAPI, region: "us-east-1"}

	image, err := repo.GetMetricWidgetImage(context.Background(), client, `{"metrics":[]}`)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, image)

	cwAPI.AssertExpectations(t)
}

func TestGetMetricWidgetImageEmptyPayload(t *testing.T) {
	cwAPI := new(mockCloudWatchAPI)
	cwAPI.On("GetMetricWidgetImage", mock.Anything, mock.Anything, mock.Anything).
		Return(&cloudwatch.GetMetricWidgetImageOutput{}, nil)

	repo, _ := newTestRepository(nil, nil)
	client := &ScopedClient{api: cwAPI, region: "us-east-1"}

	image, err := repo.GetMetricWidgetImage(context.Background(), client, `{}`)
	require.NoError(t, err)
	assert.Nil(t, image)
}

func TestGetMetricWidgetImageError(t *testing.T) {
	cwAPI := new(mockCloudWatchAPI)
	cwAPI.On("GetMetricWidgetImage", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("throttled"))

	repo, _ := newTestRepository(nil, nil)
	client := &ScopedClient{api: cwAPI, region: "eu-west-1"}

	image, err := repo.GetMetricWidgetImage(context.Background(), client, `{}`)
	require.Error(t, err)
	assert.Nil(t, image)
	assert.Contains(t, err.Error(), "eu-west-1")
}

func TestDescribeAlarmsPagination(t *testing.T) {
	cwAPI := new(mockCloudWatchAPI)
	cwAPI.On("DescribeAlarms", mock.Anything, mock.MatchedBy(firstPage), mock.Anything).
		Return(&cloudwatch.DescribeAlarmsOutput{
			MetricAlarms: []cwtypes.MetricAlarm{
				{
					AlarmName:          aws.String("high-errors"),
					AlarmArn:           aws.String("arn:aws:cloudwatch:us-east-1:111111111111:alarm:high-errors"),
					AlarmDescription:   aws.String("error rate too high"),
					Dimensions:         []cwtypes.Dimension{{Name: aws.String("QueueName"), Value: aws.String("ingest")}},
					ActionsEnabled:     aws.Bool(true),
					Period:             aws.Int32(300),
					Threshold:          aws.Float64(5),
					ComparisonOperator: cwtypes.ComparisonOperatorGreaterThanThreshold,
					TreatMissingData:   aws.String("notBreaching"),
					Statistic:          cwtypes.StatisticSum,
				},
			},
			NextToken: aws.String("page2"),
		}, nil)
	cwAPI.On("DescribeAlarms", mock.Anything, mock.MatchedBy(pageAfter("page2")), mock.Anything).
		Return(&cloudwatch.DescribeAlarmsOutput{
			MetricAlarms: []cwtypes.MetricAlarm{
				{
					AlarmName:          aws.String("low-throughput"),
					AlarmArn:           aws.String("arn:aws:cloudwatch:us-east-1:111111111111:alarm:low-throughput"),
					ComparisonOperator: cwtypes.ComparisonOperatorLessThanLowerThreshold,
				},
			},
		}, nil)

	repo, _ := newTestRepository(nil, nil)
	client := &ScopedClient{api: cwAPI, region: "us-east-1"}

	records, err := repo.DescribeAlarms(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Empty(t, first.ProgramName)
	assert.Equal(t, "high-errors", first.AlarmName)
	assert.Equal(t, "error rate too high", first.AlarmDescription)
	assert.Equal(t, []string{"QueueName"}, first.Dimensions)
	assert.True(t, first.ActionsEnabled)
	assert.Equal(t, int32(300), first.Period)
	assert.Equal(t, 5.0, first.Threshold)
	assert.Equal(t, "GreaterThanThreshold", first.ComparisonOperator)
	assert.Equal(t, "notBreaching", first.TreatMissingData)
	assert.Equal(t, "Sum", first.Statistic)

	second := records[1]
	assert.Equal(t, "low-throughput", second.AlarmName)
	// Anomaly-detection operators are not part of the report vocabulary.
	assert.Equal(t, "Unknown", second.ComparisonOperator)
	// Alarms without a simple statistic serialize it as empty.
	assert.Equal(t, "", second.Statistic)

	cwAPI.AssertExpectations(t)
}

func TestDescribeAlarmsError(t *testing.T) {
	cwAPI := new(mockCloudWatchAPI)
	cwAPI.On("DescribeAlarms", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("expired token"))

	repo, _ := newTestRepository(nil, nil)
	client := &ScopedClient{api: cwAPI, region: "us-west-2"}

	records, err := repo.DescribeAlarms(context.Background(), client)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "us-west-2")
}

func TestListMetricsPagination(t *testing.T) {
	cwAPI := new(mockCloudWatchAPI)
	cwAPI.On("ListMetrics", mock.Anything, mock.MatchedBy(func(input *cloudwatch.ListMetricsInput) bool {
		return input.NextToken == nil
	}), mock.Anything).Return(&cloudwatch.ListMetricsOutput{
		Metrics: []cwtypes.Metric{
			{
				Namespace:  aws.String("AWS/SQS"),
				MetricName: aws.String("ApproximateNumberOfMessagesVisible"),
				Dimensions: []cwtypes.Dimension{{Name: aws.String("QueueName"), Value: aws.String("ingest")}},
			},
		},
		NextToken: aws.String("more"),
	}, nil)
	cwAPI.On("ListMetrics", mock.Anything, mock.MatchedBy(func(input *cloudwatch.ListMetricsInput) bool {
		return aws.ToString(input.NextToken) == "more"
	}), mock.Anything).Return(&cloudwatch.ListMetricsOutput{
		Metrics: []cwtypes.Metric{
			{Namespace: aws.String("AWS/Lambda"), MetricName: aws.String("Invocations")},
		},
	}, nil)

	var gotRegion string
	repo := &AWSRepositoryImpl{
		newCWClient: func(ctx context.Context, region string, creds aws.CredentialsProvider) (CloudWatchAPI, error) {
			gotRegion = region
			assert.Nil(t, creds)
			return cwAPI, nil
		},
	}

	metrics, err := repo.ListMetrics(context.Background(), "eu-central-1")
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	assert.Equal(t, "eu-central-1", gotRegion)
	assert.Equal(t, "AWS/SQS", metrics[0].Namespace)
	assert.Equal(t, "ApproximateNumberOfMessagesVisible", metrics[0].Name)
	require.Len(t, metrics[0].Dimensions, 1)
	assert.Equal(t, "QueueName", metrics[0].Dimensions[0].Name)
	assert.Equal(t, "ingest", metrics[0].Dimensions[0].Value)
	assert.Equal(t, "Invocations", metrics[1].Name)
	assert.Empty(t, metrics[1].Dimensions)

	cwAPI.AssertExpectations(t)
}
