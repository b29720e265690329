package awsapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRegion(t *testing.T) {
	tests := []struct {
		name   string
		region string
		want   string
	}{
		{"us-east-1 passes through", "us-east-1", "us-east-1"},
		{"us-east-2 passes through", "us-east-2", "us-east-2"},
		{"us-west-1 passes through", "us-west-1", "us-west-1"},
		{"us-west-2 passes through", "us-west-2", "us-west-2"},
		{"eu-west-1 passes through", "eu-west-1", "eu-west-1"},
		{"eu-central-1 passes through", "eu-central-1", "eu-central-1"},
		{"ap-southeast-1 passes through", "ap-southeast-1", "ap-southeast-1"},
		{"ap-northeast-1 passes through", "ap-northeast-1", "ap-northeast-1"},
		{"unknown region falls back", "mars-north-1", "us-west-2"},
		{"empty region falls back", "", "us-west-2"},
		{"case sensitive", "US-EAST-1", "us-west-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRegion(tt.region))
		})
	}
}
