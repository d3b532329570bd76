/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package httpurl

import (
	"errors"
	"fmt"
)

// Validation failure kinds. Every error returned by Parse or Builder.Create
// wraps exactly one of them, and its message starts with the same phrase.
var (
	// ErrMissingSchemeOrHost is returned when the input has no "scheme://"
	// prefix or when the host is empty.
	ErrMissingSchemeOrHost = errors.New("must have a scheme and host")
	// ErrUnsupportedScheme is returned for any scheme other than http or https.
	ErrUnsupportedScheme = errors.New("scheme must be http or https")
	// ErrInvalidHost is returned when a host is neither a valid IPv4 literal,
	// IPv6 literal nor DNS name.
	ErrInvalidHost = errors.New("invalid host")
	// ErrInvalidPort is returned for non-decimal or out of range ports.
	ErrInvalidPort = errors.New("invalid port")
)

// ValidationError is the error type returned by Parse and Builder.Create.
// Message always starts with the message of the wrapped kind, Err is that kind.
type ValidationError struct {
	Message string
	Err     error
}

// Error returns the message of the validation error.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// newValidationError converts an internal error to a ValidationError whose
// Err is the kind the internal error wraps.
// It returns nil if the input error is nil.
func newValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	return &ValidationError{Message: err.Error(), Err: errors.Unwrap(err)}
}

// kindError carries the detailed context of a validation failure.
type kindError struct {
	kind    error
	message string
	char    rune
	details string
}

// Error formats the kind, then the message, then either the offending
// character or the details.
func (e *kindError) Error() string {
	msg := e.kind.Error()
	if e.message != "" {
		msg += ": " + e.message
	}
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}

// Unwrap returns the failure kind.
func (e *kindError) Unwrap() error {
	return e.kind
}

func hostError(message, details string) error {
	return &kindError{kind: ErrInvalidHost, message: message, details: details}
}

func hostCharError(message string, char rune) error {
	return &kindError{kind: ErrInvalidHost, message: message, char: char}
}

func portError(message, details string) error {
	return &kindError{kind: ErrInvalidPort, message: message, details: details}
}
