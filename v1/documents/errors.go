// Copyright 2026 The Xpathkit Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package documents

import (
	"errors"
	"fmt"
)

// Error codes returned by the documents package.
const (
	// ParseErr indicates the supplied text could not be parsed as XML.
	ParseErr = "documents_parse_error"

	// InternalErr indicates a caller contract was not met.
	InternalErr = "documents_internal_error"
)

// Error is the error type returned by the documents package.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%v: %v", e.Code, e.Message)
	}
	return e.Code
}

// Unwrap exposes the underlying cause, when present.
func (e *Error) Unwrap() error {
	return e.err
}

// IsParseErr reports whether err is a parse failure from a load operation.
func IsParseErr(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ParseErr
}

func parseErr(uri string, cause error) *Error {
	msg := cause.Error()
	if uri != "" {
		msg = fmt.Sprintf("%s: %s", uri, msg)
	}
	return &Error{Code: ParseErr, Message: msg, err: cause}
}
