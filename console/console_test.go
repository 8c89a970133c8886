// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package console

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/staranto/arnlinkgo/arn"
)

// TestLinkCorpus pins every registered service against known good URLs.
func TestLinkCorpus(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "links.json"))
	require.NoError(t, err)

	corpus := gjson.ParseBytes(raw)
	require.True(t, corpus.IsObject())

	count := 0
	corpus.ForEach(func(key, value gjson.Result) bool {
		count++
		t.Run(key.String(), func(t *testing.T) {
			got, err := LinkString(key.String())
			require.NoError(t, err)
			assert.Equal(t, value.String(), got)
		})
		return true
	})
	assert.Greater(t, count, 50)
}

func TestLinkUnsupported(t *testing.T) {
	t.Run("unknown service", func(t *testing.T) {
		_, err := LinkString("arn:aws:totally-fake-service:us-east-1:123456789012:thing/t-123")
		require.Error(t, err)

		var ue *UnsupportedServiceError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "totally-fake-service", ue.Service)
	})

	t.Run("unknown resource type", func(t *testing.T) {
		_, err := LinkString("arn:aws:ec2:us-east-1:123456789012:key-pair/kp-0abc")
		require.Error(t, err)

		var ue *UnsupportedResourceTypeError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "ec2", ue.Service)
		assert.Equal(t, "key-pair", ue.Type)
	})

	t.Run("untyped resource for typed service", func(t *testing.T) {
		_, err := LinkString("arn:aws:ec2:us-east-1:123456789012:i-0abc1234")
		require.Error(t, err)

		var ue *UnsupportedResourceTypeError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "", ue.Type)
	})

	t.Run("unknown partition", func(t *testing.T) {
		_, err := LinkString("arn:aws-iso:s3:::sekrit-bucket")
		require.Error(t, err)

		var ue *UnsupportedPartitionError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, "aws-iso", ue.Partition)
	})
}

func TestLinkMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "amplify app without job",
			in:   "arn:aws:amplify:us-east-1:123456789012:apps/d1a2b3c4e5",
		},
		{
			name: "autoscaling group without name",
			in:   "arn:aws:autoscaling:us-east-1:123456789012:autoScalingGroup:uuid-1234",
		},
		{
			name: "ecs service without cluster",
			in:   "arn:aws:ecs:us-east-1:123456789012:service:web",
		},
		{
			name: "eks nodegroup without name",
			in:   "arn:aws:eks:us-east-1:123456789012:nodegroup/prod",
		},
		{
			name: "log group without star",
			in:   "arn:aws:logs:us-east-1:123456789012:log-group:/aws/lambda/fn",
		},
		{
			name: "secret without suffix",
			in:   "arn:aws:secretsmanager:us-east-1:123456789012:secret:nosuffix",
		},
		{
			name: "secret with short suffix",
			in:   "arn:aws:secretsmanager:us-east-1:123456789012:secret:prod-Ab1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LinkString(tt.in)
			require.Error(t, err)

			var me *MalformedResourceError
			require.ErrorAs(t, err, &me)
			assert.NotEmpty(t, me.Detail)
		})
	}
}

func TestLinkString_ParseErrorsPassThrough(t *testing.T) {
	_, err := LinkString("definitely not an arn")
	assert.ErrorIs(t, err, arn.ErrNotAnARN)

	_, err = LinkString("arn:aws:s3:::")
	assert.ErrorIs(t, err, arn.ErrEmptyResource)
}

func TestDomain(t *testing.T) {
	tests := []struct {
		partition string
		want      string
	}{
		{partition: "aws", want: "console.aws.amazon.com"},
		{partition: "aws-cn", want: "console.amazonaws.cn"},
		{partition: "aws-us-gov", want: "console.amazonaws-us-gov.com"},
	}

	for _, tt := range tests {
		t.Run(tt.partition, func(t *testing.T) {
			got, err := Domain(tt.partition)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Domain("aws-iso-b")
	var ue *UnsupportedPartitionError
	require.ErrorAs(t, err, &ue)
}

func TestServices(t *testing.T) {
	names := Services()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "s3")
	assert.Contains(t, names, "ec2")
	assert.Contains(t, names, "iam")
	assert.Contains(t, names, "codestar-connections")
	assert.Contains(t, names, "codeconnections")
	assert.NotContains(t, names, "totally-fake-service")
}

func TestResourceTypes(t *testing.T) {
	ec2 := ResourceTypes("ec2")
	assert.True(t, sort.StringsAreSorted(ec2))
	assert.Contains(t, ec2, "instance")
	assert.Contains(t, ec2, "vpc-endpoint")
	assert.Len(t, ec2, 10)

	assert.Equal(t, []string{""}, ResourceTypes("sqs"))
	assert.Nil(t, ResourceTypes("nope"))
}

func TestSupports(t *testing.T) {
	assert.True(t, Supports("s3", ""))
	assert.True(t, Supports("ec2", "instance"))
	assert.True(t, Supports("EC2", "instance"))
	assert.True(t, Supports("rds", "subgrp"))
	assert.False(t, Supports("ec2", "key-pair"))
	assert.False(t, Supports("ec2", "Instance"))
	assert.False(t, Supports("nope", "thing"))
}

// Service dispatch folds case; the stored service string does not.
func TestLinkServiceCaseFold(t *testing.T) {
	got, err := LinkString("arn:aws:S3:::abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.console.aws.amazon.com/s3/buckets/abc123", got)

	got, err = LinkString("arn:aws:EC2:us-east-1:123456789012:instance/i-0abc1234")
	require.NoError(t, err)
	assert.Contains(t, got, "#InstanceDetails:instanceId=i-0abc1234")

	_, err = LinkString("arn:aws:ec2:us-east-1:123456789012:INSTANCE/i-0abc1234")
	var ue *UnsupportedResourceTypeError
	require.ErrorAs(t, err, &ue)
}

// ARNs without a region still render a usable link. The fallback fills
// the console host and query string, while builders that embed the whole
// ARN keep the original, region-free form.
func TestLinkRegionFallback(t *testing.T) {
	got, err := LinkString("arn:aws:lambda::123456789012:function:orders")
	require.NoError(t, err)
	assert.Equal(t,
		"https://us-east-1.console.aws.amazon.com/lambda/home?region=us-east-1#/functions/orders",
		got)

	got, err = LinkString("arn:aws:states::123456789012:stateMachine:flow")
	require.NoError(t, err)
	assert.Equal(t,
		"https://us-east-1.console.aws.amazon.com/states/home?region=us-east-1"+
			"#/statemachines/view/arn:aws:states::123456789012:stateMachine:flow",
		got)
}
