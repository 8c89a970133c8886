// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package arn

import (
	"errors"
	"strings"

	sdkarn "github.com/aws/aws-sdk-go-v2/aws/arn"
)

// Parse failure modes. Callers discriminate with errors.Is.
var (
	ErrNotAnARN       = errors.New("not an ARN")
	ErrTooLong        = errors.New("ARN is too long")
	ErrBadCharacters  = errors.New("ARN contains bad characters")
	ErrTooFewFields   = errors.New("ARN has too few fields")
	ErrEmptyPartition = errors.New("ARN has an empty partition")
	ErrEmptyService   = errors.New("ARN has an empty service")
	ErrEmptyResource  = errors.New("ARN has an empty resource")
)

// Punctuation legal anywhere in an ARN. Everything else must be ASCII
// alphanumeric.
const punct = ":/+=,.@_*#-"

const maxLength = 2048

// ARN is a parsed Amazon Resource Name.
//
// The Resource field is kept exactly as it appeared in the input. Service
// specific conventions (type/id pairs, paths, qualifiers) are left to the
// caller; see the console package for the splitting rules console links
// rely on.
type ARN struct {
	Partition string
	Service   string
	Region    string
	AccountID string
	Resource  string
}

// Parse validates s and splits it into its five fields. Leading and
// trailing whitespace is ignored. The resource field keeps any embedded
// colons and slashes.
func Parse(s string) (ARN, error) {
	s = strings.TrimSpace(s)

	if !strings.HasPrefix(s, "arn:") {
		return ARN{}, ErrNotAnARN
	}
	if len(s) > maxLength {
		return ARN{}, ErrTooLong
	}
	if !clean(s, punct) {
		return ARN{}, ErrBadCharacters
	}

	fields := strings.SplitN(s, ":", 6)
	if len(fields) < 6 {
		return ARN{}, ErrTooFewFields
	}

	a := ARN{
		Partition: fields[1],
		Service:   fields[2],
		Region:    fields[3],
		AccountID: fields[4],
		Resource:  fields[5],
	}

	if a.Partition == "" {
		return ARN{}, ErrEmptyPartition
	}
	if a.Service == "" {
		return ARN{}, ErrEmptyService
	}

	// The region ends up as a hostname label in console URLs, so it gets a
	// much stricter charset than the ARN at large.
	if !clean(a.Region, "-") {
		return ARN{}, ErrBadCharacters
	}

	if a.Resource == "" {
		return ARN{}, ErrEmptyResource
	}

	return a, nil
}

// IsARN reports whether s parses cleanly as an ARN.
func IsARN(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// String reassembles the ARN. Parse(a.String()) is the identity for any
// value Parse returned.
func (a ARN) String() string {
	return "arn:" + a.Partition + ":" + a.Service + ":" + a.Region + ":" + a.AccountID + ":" + a.Resource
}

// FromSDK converts an AWS SDK ARN into the local representation.
func FromSDK(a sdkarn.ARN) ARN {
	return ARN{
		Partition: a.Partition,
		Service:   a.Service,
		Region:    a.Region,
		AccountID: a.AccountID,
		Resource:  a.Resource,
	}
}

// SDK converts a into the AWS SDK's ARN type for callers that hand it to
// SDK APIs.
func (a ARN) SDK() sdkarn.ARN {
	return sdkarn.ARN{
		Partition: a.Partition,
		Service:   a.Service,
		Region:    a.Region,
		AccountID: a.AccountID,
		Resource:  a.Resource,
	}
}

func clean(s, extra string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case strings.IndexByte(extra, c) >= 0:
		default:
			return false
		}
	}
	return true
}
