// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import "strings"

// Builder renders the console URL for one resolved target.
type Builder func(t Target) (string, error)

// Service is one AWS service's console support, keyed by the resource
// types it knows how to render.
type Service struct {
	// Builders maps a resource type to its link builder. The "" key is
	// the typeless entry for services whose ARNs carry a bare resource id.
	Builders map[string]Builder

	// Raw marks services that interpret the resource field themselves
	// instead of having it split into type/id first. Their "" builder
	// receives the resource verbatim in Target.Resource.ID.
	Raw bool
}

// codeConnections is registered under both of the service names AWS has
// used for the same connections console.
var codeConnections = Service{
	Builders: map[string]Builder{
		"connection": expand("https://{region}.{domain}/codesuite/settings/{account}/{region}/{service}/{type}s/{id}"),
	},
}

var services = map[string]Service{
	"access-analyzer": {
		Builders: map[string]Builder{
			"analyzer": expand("https://{region}.{domain}/access-analyzer/home?region={region}#/analyzer/{id}"),
		},
	},
	"acm": {
		Builders: map[string]Builder{
			"certificate": expand("https://{domain}/acm/home?region={region}#/?id={id}"),
		},
	},
	"amplify": {
		Builders: map[string]Builder{
			"apps": amplifyJobLink,
		},
	},
	"apigateway": {
		Builders: map[string]Builder{
			"restapis": expand("https://{region}.{domain}/apigateway/main/apis/{id}/resources?api={id}&region={region}"),
		},
	},
	"autoscaling": {
		Builders: map[string]Builder{
			"autoScalingGroup": autoscalingGroupLink,
		},
	},
	"backup": {
		Builders: map[string]Builder{
			"backup-vault": expand("https://{domain}/backup/home?region={region}#/backupvaults/details/{id}"),
		},
	},
	"cloudfront": {
		Builders: map[string]Builder{
			"distribution": expand("https://{domain}/cloudfront/v4/home#/distributions/{id}"),
		},
	},
	"codeconnections":      codeConnections,
	"codestar-connections": codeConnections,
	"codepipeline": {
		Builders: map[string]Builder{
			"": expand("https://{region}.{domain}/codesuite/codepipeline/pipelines/{id}/view?region={region}"),
		},
	},
	"dynamodb": {
		Builders: map[string]Builder{
			"table": expand("https://{region}.{domain}/dynamodbv2/home?region={region}#table?name={id}"),
		},
	},
	"ec2": {
		Builders: map[string]Builder{
			"image":           expand("https://{region}.{domain}/ec2/home?region={region}#ImageDetails:imageId={id}"),
			"instance":        expand("https://{region}.{domain}/ec2/home?region={region}#InstanceDetails:instanceId={id}"),
			"launch-template": expand("https://{region}.{domain}/ec2/home?region={region}#LaunchTemplateDetails:launchTemplateId={id}"),
			"natgateway":      expand("https://{region}.{domain}/vpcconsole/home?region={region}#NatGatewayDetails:natGatewayId={id}"),
			"security-group":  expand("https://{region}.{domain}/vpc/home?region={region}#SecurityGroup:groupId={id}"),
			"snapshot":        expand("https://{region}.{domain}/ec2/home?region={region}#SnapshotDetails:snapshotId={id}"),
			"subnet":          expand("https://{region}.{domain}/vpc/home?region={region}#SubnetDetails:subnetId={id}"),
			"volume":          expand("https://{region}.{domain}/ec2/home?region={region}#VolumeDetails:volumeId={id}"),
			"vpc":             expand("https://{region}.{domain}/vpc/home?region={region}#VpcDetails:VpcId={id}"),
			"vpc-endpoint":    expand("https://{region}.{domain}/vpcconsole/home?region={region}#EndpointDetails:vpcEndpointId={id}"),
		},
	},
	"ecs": {
		Builders: map[string]Builder{
			"cluster":         expand("https://{region}.{domain}/ecs/v2/clusters/{id}?region={region}"),
			"service":         func(t Target) (string, error) { return ecsChildLink(t, "services") },
			"task":            func(t Target) (string, error) { return ecsChildLink(t, "tasks") },
			"task-definition": expand("https://{region}.{domain}/ecs/v2/task-definitions/{id}/{revision}?region={region}"),
		},
	},
	"eks": {
		Builders: map[string]Builder{
			"cluster":   expand("https://{domain}/eks/home?region={region}#/clusters/{id}"),
			"nodegroup": eksNodegroupLink,
		},
	},
	"elasticloadbalancing": {
		Builders: map[string]Builder{
			"loadbalancer": expand("https://{region}.{domain}/ec2/home?region={region}#LoadBalancer:loadBalancerArn={arn}"),
		},
	},
	"firehose": {
		Builders: map[string]Builder{
			"deliverystream": expand("https://{domain}/firehose/home?region={region}#/details/{id}/monitoring"),
		},
	},
	"iam": {
		Builders: map[string]Builder{
			"group":         pathLastLink("https://{domain}/iamv2/home#/groups/details/"),
			"oidc-provider": expand("https://{domain}/iam/home?#/providers/{arn}"),
			"policy":        expand("https://{domain}/iam/home?#/policies/{arn}"),
			"role":          pathLastLink("https://{domain}/iam/home?#/roles/"),
			"user":          expand("https://{domain}/iam/home?#/users/{id}"),
		},
	},
	"kms": {
		Builders: map[string]Builder{
			"key": expand("https://{domain}/kms/home?region={region}#/kms/keys/{id}"),
		},
	},
	"lambda": {
		Builders: map[string]Builder{
			"function": expand("https://{region}.{domain}/lambda/home?region={region}#/functions/{id}"),
			"layer":    lambdaLayerLink,
		},
	},
	"logs": {
		Builders: map[string]Builder{
			"log-group": logGroupLink,
		},
	},
	"medialive": {
		Builders: map[string]Builder{
			"channel": expand("https://{region}.{domain}/medialive/home?region={region}#/channels/{id}"),
		},
	},
	"rds": {
		Builders: map[string]Builder{
			"cluster":  expand("https://{domain}/rds/home?region={region}#database:id={id};is-cluster=true"),
			"db":       expand("https://{domain}/rds/home?region={region}#database:id={id}"),
			"og":       expand("https://{domain}/rds/home?region={region}#option-group-details:option-group-name={id}"),
			"snapshot": expand("https://{domain}/rds/home?region={region}#db-snapshot:id={id}"),
			"subgrp":   expand("https://{domain}/rds/home?region={region}#db-subnet-group:id={id}"),
		},
	},
	"route53": {
		Builders: map[string]Builder{
			"healthcheck":           expand("https://{domain}/route53/healthchecks/home"),
			"hostedzone":            expand("https://{domain}/route53/home?#resource-record-sets:{id}"),
			"trafficpolicy":         expand("https://{domain}/route53/trafficflow/home#/policy/{id}"),
			"trafficpolicyinstance": expand("https://{domain}/route53/trafficflow/home#/modify-records/edit/{id}"),
		},
	},
	"s3": {
		Raw: true,
		Builders: map[string]Builder{
			"": s3Link,
		},
	},
	"secretsmanager": {
		Builders: map[string]Builder{
			"secret": secretLink,
		},
	},
	"sns": {
		Builders: map[string]Builder{
			"": expand("https://{domain}/sns/v3/home?region={region}#/topic/{arn}"),
		},
	},
	"sqs": {
		Builders: map[string]Builder{
			"": expand("https://{region}.{domain}/sqs/v2/home?region={region}#/queues/https%3A%2F%2Fsqs.{region}.amazonaws.com%2F{account}%2F{id}"),
		},
	},
	"states": {
		Builders: map[string]Builder{
			"execution":    expand("https://{region}.{domain}/states/home?region={region}#/v2/executions/details/{arn}"),
			"stateMachine": expand("https://{region}.{domain}/states/home?region={region}#/statemachines/view/{arn}"),
		},
	},
	"wafv2": {
		Builders: map[string]Builder{
			"global":   func(t Target) (string, error) { return wafv2Link(t, "global") },
			"regional": func(t Target) (string, error) { return wafv2Link(t, t.Region) },
		},
	},
}

// expand returns a Builder that substitutes the target's fields into
// pattern. Recognized placeholders: {domain}, {region}, {account},
// {service}, {type}, {id}, {revision}, and {arn} for the whole input.
// {region} is the resolved region, so it is never empty; {arn} rebuilds
// the input verbatim.
func expand(pattern string) Builder {
	return func(t Target) (string, error) {
		r := strings.NewReplacer(
			"{domain}", t.Domain,
			"{region}", t.Region,
			"{account}", t.ARN.AccountID,
			"{service}", t.ARN.Service,
			"{type}", t.Resource.Type,
			"{id}", t.Resource.ID,
			"{revision}", t.Resource.Revision,
			"{arn}", t.ARN.String(),
		)
		return r.Replace(pattern), nil
	}
}

// pathLastLink appends the last path segment of the id to prefix. IAM
// links ignore the path portion of path qualified names.
func pathLastLink(prefix string) Builder {
	inner := expand(prefix)
	return func(t Target) (string, error) {
		base, err := inner(t)
		if err != nil {
			return "", err
		}
		return base + t.Resource.PathLast(), nil
	}
}

// amplifyJobLink handles apps/{app}/branches/{branch}/jobs/{job}. The
// console drops the leading zeros Amplify pads job numbers with.
func amplifyJobLink(t Target) (string, error) {
	if !strings.Contains(t.Resource.ID, "/jobs/") {
		return "", malformed(t, "expected {app}/branches/{branch}/jobs/{job}")
	}
	parts := strings.Split(t.Resource.ID, "/")
	if len(parts) < 4 {
		return "", malformed(t, "expected {app}/branches/{branch}/jobs/{job}")
	}
	job := strings.TrimLeft(parts[len(parts)-1], "0")
	return "https://" + t.Region + "." + t.Domain +
		"/amplify/home?region=" + t.Region +
		"#/" + parts[0] + "/" + parts[2] + "/" + job, nil
}

// autoscalingGroupLink pulls the group name out of
// autoScalingGroup:{uuid}:autoScalingGroupName/{name}.
func autoscalingGroupLink(t Target) (string, error) {
	_, name, found := strings.Cut(t.Resource.ID, "/")
	if !found {
		return "", malformed(t, "missing group name")
	}
	return "https://" + t.Region + "." + t.Domain +
		"/ec2/home?region=" + t.Region +
		"#AutoScalingGroupDetails:id=" + name + ";view=details", nil
}

// ecsChildLink renders services and tasks, whose ids are
// {cluster}/{name} in the current ARN format.
func ecsChildLink(t Target, kind string) (string, error) {
	i := strings.LastIndexByte(t.Resource.ID, '/')
	if i < 0 {
		return "", malformed(t, "missing cluster name")
	}
	return "https://" + t.Region + "." + t.Domain +
		"/ecs/v2/clusters/" + t.Resource.ID[:i] + "/" + kind + "/" + t.Resource.ID[i+1:] +
		"?region=" + t.Region, nil
}

// eksNodegroupLink handles nodegroup/{cluster}/{nodegroup}/{uuid}.
func eksNodegroupLink(t Target) (string, error) {
	parts := strings.Split(t.Resource.ID, "/")
	if len(parts) < 2 {
		return "", malformed(t, "expected {cluster}/{nodegroup}/{uuid}")
	}
	return "https://" + t.Domain +
		"/eks/home?region=" + t.Region +
		"#/clusters/" + parts[0] + "/nodegroups/" + parts[1], nil
}

// lambdaLayerLink splits layer:{name}:{version}. An unqualified layer ARN
// links to version 1.
func lambdaLayerLink(t Target) (string, error) {
	name, ver, found := strings.Cut(t.Resource.ID, ":")
	if !found || ver == "" {
		ver = "1"
	}
	return "https://" + t.Region + "." + t.Domain +
		"/lambda/home?region=" + t.Region +
		"#/layers/" + name + "/versions/" + ver, nil
}

// logGroupLink requires the :* suffix CloudWatch puts on log group ARNs
// and applies the console's own escaping to the group name.
func logGroupLink(t Target) (string, error) {
	name, ok := strings.CutSuffix(t.Resource.ID, ":*")
	if !ok {
		return "", malformed(t, "expected trailing :*")
	}
	esc := strings.NewReplacer(":", "$3A", "#", "$2523", "/", "$252F").Replace(name)
	return "https://" + t.Region + "." + t.Domain +
		"/cloudwatch/home?region=" + t.Region +
		"#logsV2:log-groups/log-group/" + esc, nil
}

// s3Link treats the whole resource as {bucket} or {bucket}/{key}.
func s3Link(t Target) (string, error) {
	bucket, key, found := strings.Cut(t.Resource.ID, "/")
	if !found {
		return "https://s3." + t.Domain + "/s3/buckets/" + bucket, nil
	}
	return "https://s3." + t.Domain + "/s3/object/" + bucket + "?prefix=" + key, nil
}

// secretLink strips the random 6 character suffix Secrets Manager adds to
// secret names.
func secretLink(t Target) (string, error) {
	i := strings.LastIndexByte(t.Resource.ID, '-')
	if i < 0 || len(t.Resource.ID)-i-1 != 6 {
		return "", malformed(t, "missing 6 character suffix")
	}
	return "https://" + t.Region + "." + t.Domain +
		"/secretsmanager/secret?name=" + t.Resource.ID[:i], nil
}

// wafv2Link drops the webacl/ prefix and pins the console's region query
// parameter, which is the literal "global" for CLOUDFRONT scoped ACLs.
func wafv2Link(t Target, region string) (string, error) {
	acl := strings.TrimPrefix(t.Resource.ID, "webacl/")
	return "https://" + t.Domain + "/wafv2/homev2/web-acl/" + acl + "/overview?region=" + region, nil
}
