// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"sort"
	"strings"

	"github.com/staranto/arnlinkgo/arn"
)

// FallbackRegion fills the {region} slot of a template when the ARN
// itself has no region. Global resources still need a region in the
// console host and query string, and us-east-1 is the one every console
// accepts.
const FallbackRegion = "us-east-1"

// Target carries everything a Builder needs to render one link.
//
// Region is the region the link should use: the ARN's own region, or
// FallbackRegion when the ARN omits one. Builders that embed the whole
// ARN in the URL read Target.ARN, which keeps the original fields.
type Target struct {
	ARN      arn.ARN
	Resource Resource
	Domain   string
	Region   string
}

// Link renders the console URL for a. Service dispatch is
// case-insensitive; the resource type is not. The error is one of
// UnsupportedPartitionError, UnsupportedServiceError,
// UnsupportedResourceTypeError, or MalformedResourceError.
func Link(a arn.ARN) (string, error) {
	d, err := Domain(a.Partition)
	if err != nil {
		return "", err
	}

	svc, ok := services[strings.ToLower(a.Service)]
	if !ok {
		return "", &UnsupportedServiceError{Service: a.Service}
	}

	res := Resource{ID: a.Resource}
	if !svc.Raw {
		res = SplitResource(a.Resource)
	}

	build, ok := svc.Builders[res.Type]
	if !ok {
		return "", &UnsupportedResourceTypeError{Service: a.Service, Type: res.Type}
	}

	region := a.Region
	if region == "" {
		region = FallbackRegion
	}

	return build(Target{ARN: a, Resource: res, Domain: d, Region: region})
}

// LinkString parses s and renders its console link in one step. Parse
// errors from the arn package pass through unchanged.
func LinkString(s string) (string, error) {
	a, err := arn.Parse(s)
	if err != nil {
		return "", err
	}
	return Link(a)
}

// Domain returns the console hostname for a partition.
func Domain(partition string) (string, error) {
	switch partition {
	case "aws":
		return "console.aws.amazon.com", nil
	case "aws-cn":
		return "console.amazonaws.cn", nil
	case "aws-us-gov":
		return "console.amazonaws-us-gov.com", nil
	}
	return "", &UnsupportedPartitionError{Partition: partition}
}

// Services returns the registered service names in sorted order.
func Services() []string {
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResourceTypes returns the resource types registered for a service in
// sorted order. A "" entry means the service links bare resource ids.
// Unknown services return nil.
func ResourceTypes(service string) []string {
	svc, ok := services[strings.ToLower(service)]
	if !ok {
		return nil
	}
	types := make([]string, 0, len(svc.Builders))
	for typ := range svc.Builders {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Supports reports whether a console link is registered for the service
// and resource type pair. The service match is case-insensitive, the
// type match is not.
func Supports(service, resourceType string) bool {
	svc, ok := services[strings.ToLower(service)]
	if !ok {
		return false
	}
	_, ok = svc.Builders[resourceType]
	return ok
}
