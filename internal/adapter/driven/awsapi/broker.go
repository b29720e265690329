package awsapi

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/fleetwatch/cw-fleet/internal/domain/repository"
	"github.com/fleetwatch/cw-fleet/internal/shared/types"
)

// sessionValidity bounds the lifetime of role-derived credentials. Each
// account gets a fresh set; nothing is cached across accounts or runs.
const sessionValidity = 30 * time.Minute

// STSAPI defines the STS operations required by the credential broker.
type STSAPI interface {
	AssumeRole(
		ctx context.Context,
		input *sts.AssumeRoleInput,
		optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// ScopedCredentials holds one account's temporary credentials. Values are
// kept in memory only and must never be logged or persisted.
type ScopedCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	ExpiresAt       time.Time
}

// ScopedClient is a CloudWatch client bound to a resolved region and one
// account's temporary credentials.
type ScopedClient struct {
	api       CloudWatchAPI
	region    string
	expiresAt time.Time
}

func (c *ScopedClient) Region() string {
	return c.region
}

func (c *ScopedClient) ExpiresAt() time.Time {
	return c.expiresAt
}

// AWSRepositoryImpl implements the AWSRepository. The client constructors are
// fields so tests can swap the AWS endpoints for mocks.
type AWSRepositoryImpl struct {
	newSTSClient func(ctx context.Context, region string) (STSAPI, error)
	newCWClient  func(ctx context.Context, region string, creds aws.CredentialsProvider) (CloudWatchAPI, error)
}

// NewAWSRepository creates an AWSRepository backed by the real AWS SDK.
func NewAWSRepository() *AWSRepositoryImpl {
	return &AWSRepositoryImpl{
		newSTSClient: defaultSTSClient,
		newCWClient:  defaultCloudWatchClient,
	}
}

func defaultSTSClient(ctx context.Context, region string) (STSAPI, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for region %s: %w", region, err)
	}
	return sts.NewFromConfig(cfg), nil
}

func defaultCloudWatchClient(ctx context.Context, region string, creds aws.CredentialsProvider) (CloudWatchAPI, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if creds != nil {
		opts = append(opts, config.WithCredentialsProvider(creds))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for region %s: %w", region, err)
	}
	return cloudwatch.NewFromConfig(cfg), nil
}

// AssumeAccount resolves the region, assumes the account role and builds a
// CloudWatch client bound to the resulting temporary credentials.
func (r *AWSRepositoryImpl) AssumeAccount(ctx context.Context, region, roleARN, sessionName string) (repository.ScopedClient, error) {
	resolved := ResolveRegion(region)

	stsClient, err := r.newSTSClient(ctx, resolved)
	if err != nil {
		return nil, err
	}

	out, err := stsClient.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(sessionName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assume role %s in %s: %w", roleARN, resolved, err)
	}

	creds, err := scopedCredentialsFromResponse(out)
	if err != nil {
		return nil, fmt.Errorf("role %s: %w", roleARN, err)
	}

	provider := credentials.NewStaticCredentialsProvider(
		creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken)

	api, err := r.newCWClient(ctx, resolved, provider)
	if err != nil {
		return nil, err
	}

	return &ScopedClient{
		api:       api,
		region:    resolved,
		expiresAt: creds.ExpiresAt,
	}, nil
}

// scopedCredentialsFromResponse extracts the temporary credentials from an
// assume-role response. Any missing field is a structured error, not a panic;
// the orchestrator catches it at the per-account boundary.
func scopedCredentialsFromResponse(out *sts.AssumeRoleOutput) (ScopedCredentials, error) {
	if out == nil || out.Credentials == nil {
		return ScopedCredentials{}, types.ErrMissingCredentials
	}
	c := out.Credentials
	if c.AccessKeyId == nil || c.SecretAccessKey == nil || c.SessionToken == nil {
		return ScopedCredentials{}, types.ErrMissingCredentials
	}
	return ScopedCredentials{
		AccessKeyID:     *c.AccessKeyId,
		SecretAccessKey: *c.SecretAccessKey,
		SessionToken:    *c.SessionToken,
		ExpiresAt:       time.Now().Add(sessionValidity),
	}, nil
}

func (r *AWSRepositoryImpl) scoped(client repository.ScopedClient) (*ScopedClient, error) {
	sc, ok := client.(*ScopedClient)
	if !ok {
		return nil, fmt.Errorf("unexpected scoped client type %T", client)
	}
	return sc, nil
}
