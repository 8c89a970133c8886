// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import "fmt"

// UnsupportedServiceError is returned when no console links are registered
// for the ARN's service.
type UnsupportedServiceError struct {
	Service string
}

func (e *UnsupportedServiceError) Error() string {
	return fmt.Sprintf("no console link for service %q", e.Service)
}

// UnsupportedResourceTypeError is returned when the service is known but
// the resource type has no registered link.
type UnsupportedResourceTypeError struct {
	Service string
	Type    string
}

func (e *UnsupportedResourceTypeError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("no console link for untyped %s resources", e.Service)
	}
	return fmt.Sprintf("no console link for %s resource type %q", e.Service, e.Type)
}

// UnsupportedPartitionError is returned for partitions with no public
// console domain, such as the isolated regions.
type UnsupportedPartitionError struct {
	Partition string
}

func (e *UnsupportedPartitionError) Error() string {
	return fmt.Sprintf("no console domain for partition %q", e.Partition)
}

// MalformedResourceError is returned when a resource matched a registered
// type but does not have the shape that type requires.
type MalformedResourceError struct {
	Service  string
	Resource string
	Detail   string
}

func (e *MalformedResourceError) Error() string {
	return fmt.Sprintf("malformed %s resource %q: %s", e.Service, e.Resource, e.Detail)
}

func malformed(t Target, detail string) error {
	return &MalformedResourceError{
		Service:  t.ARN.Service,
		Resource: t.ARN.Resource,
		Detail:   detail,
	}
}
