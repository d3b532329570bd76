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
	"strings"

	"braces.dev/errtrace"
)

// Scheme is the scheme of a URL. Only http and https are supported.
type Scheme int

const (
	// HTTP is the "http" scheme, default port 80.
	HTTP Scheme = iota + 1
	// HTTPS is the "https" scheme, default port 443.
	HTTPS
)

// ParseScheme parses a scheme name, ignoring case.
func ParseScheme(s string) (Scheme, error) {
	scheme, err := parseScheme(s)
	if err != nil {
		return 0, errtrace.Wrap(newValidationError(err))
	}
	return scheme, nil
}

func parseScheme(s string) (Scheme, error) {
	switch strings.ToLower(s) {
	case "http":
		return HTTP, nil
	case "https":
		return HTTPS, nil
	default:
		return 0, &kindError{kind: ErrUnsupportedScheme, details: s}
	}
}

// String returns the lowercase name of the scheme.
func (s Scheme) String() string {
	switch s {
	case HTTP:
		return "http"
	case HTTPS:
		return "https"
	default:
		return ""
	}
}

// DefaultPort returns the port used when a URL does not name one.
func (s Scheme) DefaultPort() int {
	switch s {
	case HTTP:
		return 80
	case HTTPS:
		return 443
	default:
		return 0
	}
}

// IsValid reports whether s is one of the supported schemes.
func (s Scheme) IsValid() bool { return s == HTTP || s == HTTPS }
